package write

import (
	"bytes"
	"io"
	"testing"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/stream/read"
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

func TestEncoderWriteThenDecoderRead(t *testing.T) {
	lib := loadLibrary(t)

	input := []byte("hello")

	var compressed bytes.Buffer
	encoder, err := NewEncoder(lib, &compressed, 19)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	if _, err := encoder.Write(input); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := encoder.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if _, err := encoder.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	decoder, err := read.NewDecoder(lib, bytes.NewReader(compressed.Bytes()))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()

	var out bytes.Buffer
	buf := make([]byte, 16)
	for {
		n, err := decoder.Read(buf)
		out.Write(buf[:n])
		if err != nil {
			break
		}
		if n == 0 {
			break
		}
	}
	if out.String() != "hello" {
		t.Errorf("got %q, want %q", out.String(), "hello")
	}
}

func TestAutoFinishEncoderClosesAndFinishes(t *testing.T) {
	lib := loadLibrary(t)

	var compressed bytes.Buffer
	encoder, err := NewEncoder(lib, &compressed, 1)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	var finished bool
	var finishErr error
	auto := encoder.OnFinish(func(_ io.Writer, err error) {
		finished = true
		finishErr = err
	})

	if _, err := auto.Write([]byte("auto-finished payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := auto.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !finished {
		t.Error("onFinish callback was not invoked")
	}
	if finishErr != nil {
		t.Errorf("onFinish error: %v", finishErr)
	}

	// Closing twice must be a no-op, not a double-finish/double-close panic.
	if err := auto.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	decoder, err := read.NewDecoder(lib, bytes.NewReader(compressed.Bytes()))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer decoder.Close()
}
