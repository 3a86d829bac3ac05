package zio

import (
	"bytes"
	"io"
	"testing"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/raw"
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

func TestWriterReaderRoundTripWithRealEncoder(t *testing.T) {
	lib := loadLibrary(t)

	encoder, err := raw.NewEncoder(lib, 3)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer encoder.Close()

	var compressed bytes.Buffer
	w := NewWriter(&compressed, encoder)
	input := bytes.Repeat([]byte("hello world "), 1000)
	if _, err := w.Write(input); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	decoder, err := raw.NewDecoder(lib)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	r := NewReader(bytes.NewReader(compressed.Bytes()), decoder)
	output, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(output, input) {
		t.Errorf("round trip mismatch: got %d bytes, want %d", len(output), len(input))
	}
}

func TestReaderConcatenatedFrames(t *testing.T) {
	lib := loadLibrary(t)

	encodeAll := func(s string) []byte {
		encoder, err := raw.NewEncoder(lib, 1)
		if err != nil {
			t.Fatalf("NewEncoder: %v", err)
		}
		defer encoder.Close()
		var buf bytes.Buffer
		w := NewWriter(&buf, encoder)
		if _, err := w.Write([]byte(s)); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := w.Finish(); err != nil {
			t.Fatalf("Finish: %v", err)
		}
		return buf.Bytes()
	}

	var concatenated bytes.Buffer
	concatenated.Write(encodeAll("foo"))
	concatenated.Write(encodeAll("bar"))
	concatenated.Write(encodeAll("baz"))

	decoder, err := raw.NewDecoder(lib)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	r := NewReader(bytes.NewReader(concatenated.Bytes()), decoder)
	output, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(output) != "foobarbaz" {
		t.Errorf("got %q, want %q", output, "foobarbaz")
	}
}

func TestReaderSingleFrameStopsAtBoundary(t *testing.T) {
	lib := loadLibrary(t)

	encoder, err := raw.NewEncoder(lib, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	var frameA bytes.Buffer
	w := NewWriter(&frameA, encoder)
	if _, err := w.Write([]byte("foo")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	encoder.Close()

	var stream bytes.Buffer
	stream.Write(frameA.Bytes())
	stream.WriteByte(0x00)

	decoder, err := raw.NewDecoder(lib)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	r := NewReader(bytes.NewReader(stream.Bytes()), decoder)
	r.SetSingleFrame()

	output, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(output) != "foo" {
		t.Errorf("got %q, want %q", output, "foo")
	}
}

func TestDecoderAsWriterRejectsIncompleteFrame(t *testing.T) {
	lib := loadLibrary(t)

	encoder, err := raw.NewEncoder(lib, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	var compressed bytes.Buffer
	w := NewWriter(&compressed, encoder)
	if _, err := w.Write(bytes.Repeat([]byte("x"), 4096)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	encoder.Close()

	truncated := compressed.Bytes()[:len(compressed.Bytes())-4]

	decoder, err := raw.NewDecoder(lib)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	var out bytes.Buffer
	dw := NewWriter(&out, decoder)
	if _, err := dw.Write(truncated); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := dw.Finish(); err == nil {
		t.Fatal("expected incomplete-frame error, got nil")
	}
}
