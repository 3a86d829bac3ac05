package read

import (
	"bytes"
	"io"
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

func TestEncoderThenDecoderRoundTrip(t *testing.T) {
	lib := loadLibrary(t)

	input := []byte("hello, streaming world")

	encoder, err := NewEncoder(lib, bytes.NewReader(input), 5)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	compressed, err := io.ReadAll(encoder)
	encoder.Close()
	if err != nil {
		t.Fatalf("ReadAll(encoder): %v", err)
	}

	decoder, err := NewDecoder(lib, bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	output, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("ReadAll(decoder): %v", err)
	}
	if !bytes.Equal(output, input) {
		t.Errorf("got %q, want %q", output, input)
	}
}

func TestDecoderWithDictionary(t *testing.T) {
	lib := loadLibrary(t)

	dict := bytes.Repeat([]byte("dictionary-content-"), 100)
	input := []byte("payload referencing dictionary-content-somewhere")

	encoder, err := NewEncoderWithDictionary(lib, bytes.NewReader(input), 3, dict)
	if err != nil {
		t.Fatalf("NewEncoderWithDictionary: %v", err)
	}
	compressed, err := io.ReadAll(encoder)
	encoder.Close()
	if err != nil {
		t.Fatalf("ReadAll(encoder): %v", err)
	}

	decoder, err := NewDecoderWithDictionary(lib, bytes.NewReader(compressed), dict)
	if err != nil {
		t.Fatalf("NewDecoderWithDictionary: %v", err)
	}
	defer decoder.Close()

	output, err := io.ReadAll(decoder)
	if err != nil {
		t.Fatalf("ReadAll(decoder): %v", err)
	}
	if !bytes.Equal(output, input) {
		t.Errorf("got %q, want %q", output, input)
	}

	wrongDictDecoder, err := NewDecoderWithDictionary(lib, bytes.NewReader(compressed), nil)
	if err != nil {
		t.Fatalf("NewDecoderWithDictionary (no dict): %v", err)
	}
	defer wrongDictDecoder.Close()
	if _, err := io.ReadAll(wrongDictDecoder); err == nil {
		t.Fatal("expected an engine error decoding without the dictionary, got nil")
	}
}
