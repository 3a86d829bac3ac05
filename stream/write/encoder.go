// Package write provides io.Writer-facing wrappers around the engine: an
// Encoder compresses caller bytes on the fly and forwards the result to an
// underlying writer; a Decoder does the inverse. AutoFinishEncoder adds a
// Close-based finalizer on top of Encoder for callers that would otherwise
// forget to call Finish.
package write

import (
	"io"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/raw"
	"github.com/zstdstream/zstdio/zio"
)

// Encoder compresses bytes written to it and forwards the compressed
// stream to an underlying writer. Finish must be called once writing is
// done, either directly or via AutoFinish/OnFinish.
type Encoder struct {
	*zio.Writer
	op *raw.Encoder
}

// NewEncoder creates an Encoder at the given compression level, with no
// dictionary.
func NewEncoder(lib *native.Library, w io.Writer, level int32) (*Encoder, error) {
	return NewEncoderWithDictionary(lib, w, level, nil)
}

// NewEncoderWithDictionary creates an Encoder using an ephemeral
// dictionary, copied into the engine's own state.
func NewEncoderWithDictionary(lib *native.Library, w io.Writer, level int32, dictionary []byte) (*Encoder, error) {
	op, err := raw.NewEncoderWithDictionary(lib, level, dictionary)
	if err != nil {
		return nil, err
	}
	return &Encoder{Writer: zio.NewWriter(w, op), op: op}, nil
}

// NewEncoderWithPreparedDictionary creates an Encoder referencing a
// prepared dictionary. The returned Encoder must be closed before the
// dictionary is.
func NewEncoderWithPreparedDictionary(lib *native.Library, w io.Writer, dictionary *raw.EncoderDictionary) (*Encoder, error) {
	op, err := raw.NewEncoderWithPreparedDictionary(lib, dictionary)
	if err != nil {
		return nil, err
	}
	return &Encoder{Writer: zio.NewWriter(w, op), op: op}, nil
}

// SetParameter sets a single compression parameter.
func (e *Encoder) SetParameter(p raw.CParameter) error { return e.op.SetParameter(p) }

// SetPledgedSrcSize declares the total input size ahead of time. Pass
// raw.ContentSizeUnknown if it isn't known.
func (e *Encoder) SetPledgedSrcSize(size uint64) error { return e.op.SetPledgedSrcSize(size) }

// RecommendedInputSize returns the engine's recommended chunk size for
// calls to Write.
func (e *Encoder) RecommendedInputSize() int { return e.op.RecommendedInputSize() }

// DoFinish attempts to finish the stream, writing the frame footer. Unlike
// Finish, it never releases the native context, even on success, and does
// not return the underlying writer; it is safe to call again to retry (e.g.
// after a WouldBlock from a non-blocking sink).
func (e *Encoder) DoFinish() error { return e.Writer.Finish() }

// Close releases the native compression context without finishing the
// stream. The Encoder must not be used after this call.
func (e *Encoder) Close() { e.op.Close() }

// Finish finishes the stream and releases the native compression context,
// returning the underlying writer. On error, the Encoder is left usable
// for a retry by calling Finish again; unlike a move-based finish, nothing
// here is consumed on failure.
func (e *Encoder) Finish() (io.Writer, error) {
	if err := e.DoFinish(); err != nil {
		return nil, err
	}
	underlying := e.Writer.Underlying()
	e.op.Close()
	return underlying, nil
}

// AutoFinish wraps e in an AutoFinishEncoder that panics on a finish error
// when closed.
func (e *Encoder) AutoFinish() *AutoFinishEncoder {
	return e.OnFinish(func(_ io.Writer, err error) {
		if err != nil {
			panic(err)
		}
	})
}

// OnFinish wraps e in an AutoFinishEncoder that calls onFinish with the
// result of Finish when closed.
func (e *Encoder) OnFinish(onFinish func(io.Writer, error)) *AutoFinishEncoder {
	return &AutoFinishEncoder{encoder: e, onFinish: onFinish}
}
