package zstdio

import (
	"bytes"
	"testing"

	"github.com/zstdstream/zstdio/internal/native"
)

func loadLibrary(t *testing.T) *native.Library {
	t.Helper()
	lib, err := native.Load()
	if err != nil {
		t.Skipf("libzstd not available in this environment: %v", err)
	}
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestEncodeAllDecodeAllRoundTrip(t *testing.T) {
	lib := loadLibrary(t)

	for _, level := range []int32{1, 3, 19} {
		input := []byte("the quick brown fox jumps over the lazy dog, repeatedly: " +
			string(bytes.Repeat([]byte("abc"), 200)))

		compressed, err := EncodeAll(lib, bytes.NewReader(input), level)
		if err != nil {
			t.Fatalf("EncodeAll level %d: %v", level, err)
		}
		decoded, err := DecodeAll(lib, bytes.NewReader(compressed))
		if err != nil {
			t.Fatalf("DecodeAll level %d: %v", level, err)
		}
		if !bytes.Equal(decoded, input) {
			t.Errorf("level %d: round trip mismatch", level)
		}
	}
}

func TestEncodeAllEmptyInput(t *testing.T) {
	lib := loadLibrary(t)

	compressed, err := EncodeAll(lib, bytes.NewReader(nil), DefaultCompression)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	decoded, err := DecodeAll(lib, bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("got %q, want empty", decoded)
	}
}

func TestDecodeAllGarbageInput(t *testing.T) {
	lib := loadLibrary(t)

	_, err := DecodeAll(lib, bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05}))
	if err == nil {
		t.Fatal("expected error decoding garbage input, got nil")
	}
}

func TestCopyEncodeCopyDecodeConcatenation(t *testing.T) {
	lib := loadLibrary(t)

	var stream bytes.Buffer
	for _, s := range []string{"foo", "bar", "baz"} {
		if err := CopyEncode(lib, &stream, bytes.NewReader([]byte(s)), 1); err != nil {
			t.Fatalf("CopyEncode(%q): %v", s, err)
		}
	}

	var out bytes.Buffer
	if err := CopyDecode(lib, &out, bytes.NewReader(stream.Bytes())); err != nil {
		t.Fatalf("CopyDecode: %v", err)
	}
	if out.String() != "foobarbaz" {
		t.Errorf("got %q, want %q", out.String(), "foobarbaz")
	}
}
