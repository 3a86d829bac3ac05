package write

import (
	"io"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/raw"
	"github.com/zstdstream/zstdio/zio"
)

// Decoder decompresses bytes written to it and forwards the decompressed
// stream to an underlying writer.
type Decoder struct {
	*zio.Writer
	op *raw.Decoder
}

// NewDecoder creates a Decoder with no dictionary.
func NewDecoder(lib *native.Library, w io.Writer) (*Decoder, error) {
	return NewDecoderWithDictionary(lib, w, nil)
}

// NewDecoderWithDictionary creates a Decoder using an ephemeral
// dictionary, copied into the engine's own state.
func NewDecoderWithDictionary(lib *native.Library, w io.Writer, dictionary []byte) (*Decoder, error) {
	op, err := raw.NewDecoderWithDictionary(lib, dictionary)
	if err != nil {
		return nil, err
	}
	return &Decoder{Writer: zio.NewWriter(w, op), op: op}, nil
}

// NewDecoderWithPreparedDictionary creates a Decoder referencing a
// prepared dictionary. The returned Decoder must be closed before the
// dictionary is.
func NewDecoderWithPreparedDictionary(lib *native.Library, w io.Writer, dictionary *raw.DecoderDictionary) (*Decoder, error) {
	op, err := raw.NewDecoderWithPreparedDictionary(lib, dictionary)
	if err != nil {
		return nil, err
	}
	return &Decoder{Writer: zio.NewWriter(w, op), op: op}, nil
}

// SetParameter sets a single decompression parameter.
func (d *Decoder) SetParameter(p raw.DParameter) error { return d.op.SetParameter(p) }

// RecommendedInputSize returns the engine's recommended chunk size for
// calls to Write.
func (d *Decoder) RecommendedInputSize() int { return d.op.RecommendedInputSize() }

// SetFrameFormat toggles whether the decoder expects the 4-byte frame magic
// number on incoming frames.
func (d *Decoder) SetFrameFormat(f raw.FrameFormat) error {
	return d.SetParameter(raw.DecoderFrameFormat(f))
}

// IntoInner finishes nothing; it simply returns the underlying writer,
// matching the reference's into_inner (the decoder has no frame footer of
// its own to emit on close).
func (d *Decoder) IntoInner() io.Writer { return d.Writer.Underlying() }

// Close releases the native decompression context. The Decoder must not
// be used after this call.
func (d *Decoder) Close() { d.op.Close() }
