package raw

import "github.com/zstdstream/zstdio/internal/native"

// EncoderDictionary is a dictionary pre-digested for repeated compression
// use. It is immutable once built and safe to share by reference across
// many Encoders; those Encoders must not be used after the dictionary is
// closed.
type EncoderDictionary struct {
	cdict *native.CDict
}

// NewEncoderDictionary pre-digests dict at the given compression level.
func NewEncoderDictionary(lib *native.Library, dict []byte, level int32) (*EncoderDictionary, error) {
	cdict, err := native.NewCDict(lib, dict, level)
	if err != nil {
		return nil, err
	}
	return &EncoderDictionary{cdict: cdict}, nil
}

// Close releases the prepared dictionary. Every Encoder built from it must
// be discarded first.
func (d *EncoderDictionary) Close() { d.cdict.Free() }

// DecoderDictionary is the decompression-side counterpart of
// EncoderDictionary.
type DecoderDictionary struct {
	ddict *native.DDict
}

// NewDecoderDictionary pre-digests dict for decompression.
func NewDecoderDictionary(lib *native.Library, dict []byte) (*DecoderDictionary, error) {
	ddict, err := native.NewDDict(lib, dict)
	if err != nil {
		return nil, err
	}
	return &DecoderDictionary{ddict: ddict}, nil
}

// Close releases the prepared dictionary. Every Decoder built from it must
// be discarded first.
func (d *DecoderDictionary) Close() { d.ddict.Free() }
