package raw

import (
	"bytes"
	"testing"

	"github.com/zstdstream/zstdio/internal/native"
)

func TestNoOpCopiesBytesUnchanged(t *testing.T) {
	input := []byte("AbcdefghAbcdefgh.")

	var op NoOp
	in := NewInBuffer(input)
	dst := make([]byte, 128)
	out := NewOutBuffer(NewFixedSink(dst))

	for in.Pos < len(in.Src) {
		if _, err := op.Run(in, out); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}

	if !bytes.Equal(out.Written(), input) {
		t.Errorf("got %q, want %q", out.Written(), input)
	}
}

func TestNoOpRespectsFixedCapacity(t *testing.T) {
	input := []byte("0123456789")
	var op NoOp
	in := NewInBuffer(input)
	dst := make([]byte, 4)
	out := NewOutBuffer(NewFixedSink(dst))

	if _, err := op.Run(in, out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Pos != 4 {
		t.Errorf("Pos = %d, want 4 (capacity-limited)", out.Pos)
	}
	if in.Pos != 4 {
		t.Errorf("in.Pos = %d, want 4", in.Pos)
	}
}

func loadLibrary(t *testing.T) *native.Library {
	t.Helper()
	lib, err := native.Load()
	if err != nil {
		t.Skipf("libzstd not available in this environment: %v", err)
	}
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestEncoderDecoderRoundTrip(t *testing.T) {
	lib := loadLibrary(t)

	input := []byte("AbcdefghAbcdefgh.")

	encoder, err := NewEncoder(lib, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer encoder.Close()

	compressed := make([]byte, 0, 256)
	in := NewInBuffer(input)
	out := NewOutBuffer(NewGrowableSink(&compressed))
	for in.Pos < len(in.Src) {
		if _, err := encoder.Run(in, out); err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
	for {
		remaining, err := encoder.Finish(out, true)
		if err != nil {
			t.Fatalf("Finish: %v", err)
		}
		if remaining == 0 {
			break
		}
	}
	compressed = out.Written()

	decoder, err := NewDecoder(lib)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	decoded := make([]byte, 0, 256)
	din := NewInBuffer(compressed)
	dout := NewOutBuffer(NewGrowableSink(&decoded))
	finishedFrame := false
	for din.Pos < len(din.Src) {
		hint, err := decoder.Run(din, dout)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if hint == 0 {
			finishedFrame = true
		}
	}
	if _, err := decoder.Finish(dout, finishedFrame); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if !bytes.Equal(dout.Written(), input) {
		t.Errorf("got %q, want %q", dout.Written(), input)
	}
}

func TestDecoderFinishIncompleteFrame(t *testing.T) {
	lib := loadLibrary(t)

	decoder, err := NewDecoder(lib)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	dst := make([]byte, 0, 16)
	out := NewOutBuffer(NewGrowableSink(&dst))
	if _, err := decoder.Finish(out, false); err == nil {
		t.Fatal("expected incomplete-frame error, got nil")
	}
}
