// Package read provides io.Reader-facing wrappers around the engine: a
// Decoder turns a reader of compressed bytes into a reader of the
// decompressed content, and an Encoder does the inverse, compressing on
// the fly as the caller pulls bytes.
package read

import (
	"io"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/raw"
	"github.com/zstdstream/zstdio/zio"
)

// Decoder adapts an io.Reader of Zstandard-compressed bytes into an
// io.Reader of the decompressed content.
type Decoder struct {
	*zio.Reader
	op *raw.Decoder
}

// NewDecoder creates a Decoder with no dictionary.
func NewDecoder(lib *native.Library, r io.Reader) (*Decoder, error) {
	return NewDecoderWithDictionary(lib, r, nil)
}

// NewDecoderWithDictionary creates a Decoder using an ephemeral dictionary,
// copied into the engine's own state.
func NewDecoderWithDictionary(lib *native.Library, r io.Reader, dictionary []byte) (*Decoder, error) {
	op, err := raw.NewDecoderWithDictionary(lib, dictionary)
	if err != nil {
		return nil, err
	}
	return &Decoder{Reader: zio.NewReader(r, op), op: op}, nil
}

// NewDecoderWithPreparedDictionary creates a Decoder referencing a prepared
// dictionary. The returned Decoder must be closed before the dictionary is.
func NewDecoderWithPreparedDictionary(lib *native.Library, r io.Reader, dictionary *raw.DecoderDictionary) (*Decoder, error) {
	op, err := raw.NewDecoderWithPreparedDictionary(lib, dictionary)
	if err != nil {
		return nil, err
	}
	return &Decoder{Reader: zio.NewReader(r, op), op: op}, nil
}

// SetParameter sets a single decompression parameter.
func (d *Decoder) SetParameter(p raw.DParameter) error { return d.op.SetParameter(p) }

// RecommendedOutputSize returns the engine's recommended chunk size for
// calls to Read.
func (d *Decoder) RecommendedOutputSize() int { return d.op.RecommendedOutputSize() }

// SingleFrame switches the decoder to stop at the first frame boundary,
// leaving any following bytes unconsumed in its buffered source (see
// zio.Reader.SetSingleFrame for when they remain readable from r).
func (d *Decoder) SingleFrame() *Decoder {
	d.Reader.SetSingleFrame()
	return d
}

// Close releases the native decompression context. The Decoder must not be
// used after this call.
func (d *Decoder) Close() { d.op.Close() }
