package read

import (
	"io"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/raw"
	"github.com/zstdstream/zstdio/zio"
)

// Encoder adapts an io.Reader of raw bytes into an io.Reader of
// Zstandard-compressed bytes, compressing on the fly as the caller pulls.
type Encoder struct {
	*zio.Reader
	op *raw.Encoder
}

// NewEncoder creates an Encoder at the given compression level, with no
// dictionary.
func NewEncoder(lib *native.Library, r io.Reader, level int32) (*Encoder, error) {
	return NewEncoderWithDictionary(lib, r, level, nil)
}

// NewEncoderWithDictionary creates an Encoder using an ephemeral
// dictionary, copied into the engine's own state.
func NewEncoderWithDictionary(lib *native.Library, r io.Reader, level int32, dictionary []byte) (*Encoder, error) {
	op, err := raw.NewEncoderWithDictionary(lib, level, dictionary)
	if err != nil {
		return nil, err
	}
	return &Encoder{Reader: zio.NewReader(r, op), op: op}, nil
}

// NewEncoderWithPreparedDictionary creates an Encoder referencing a
// prepared dictionary. The returned Encoder must be closed before the
// dictionary is.
func NewEncoderWithPreparedDictionary(lib *native.Library, r io.Reader, dictionary *raw.EncoderDictionary) (*Encoder, error) {
	op, err := raw.NewEncoderWithPreparedDictionary(lib, dictionary)
	if err != nil {
		return nil, err
	}
	return &Encoder{Reader: zio.NewReader(r, op), op: op}, nil
}

// SetParameter sets a single compression parameter.
func (e *Encoder) SetParameter(p raw.CParameter) error { return e.op.SetParameter(p) }

// SetPledgedSrcSize declares the total input size ahead of time. Pass
// raw.ContentSizeUnknown if it isn't known.
func (e *Encoder) SetPledgedSrcSize(size uint64) error { return e.op.SetPledgedSrcSize(size) }

// Close releases the native compression context. The Encoder must not be
// used after this call.
func (e *Encoder) Close() { e.op.Close() }
