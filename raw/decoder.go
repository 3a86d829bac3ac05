package raw

import "github.com/zstdstream/zstdio/internal/native"

// Decoder is an in-memory decompression Operation. It owns a native
// decompression context for its whole lifetime and, if constructed with a
// prepared dictionary, must not outlive it.
type Decoder struct {
	lib  *native.Library
	ctx  *native.DCtx
	dict *DecoderDictionary
}

// NewDecoder creates a decoder with no dictionary.
func NewDecoder(lib *native.Library) (*Decoder, error) {
	return NewDecoderWithDictionary(lib, nil)
}

// NewDecoderWithDictionary creates a decoder initialized with an ephemeral
// dictionary, copied into the context's own state.
func NewDecoderWithDictionary(lib *native.Library, dictionary []byte) (*Decoder, error) {
	ctx, err := native.NewDCtx(lib)
	if err != nil {
		return nil, err
	}
	if len(dictionary) > 0 {
		if err := ctx.LoadDictionary(dictionary); err != nil {
			ctx.Free()
			return nil, err
		}
	}
	return &Decoder{lib: lib, ctx: ctx}, nil
}

// NewDecoderWithPreparedDictionary creates a decoder that references a
// prepared DecoderDictionary. The returned Decoder must be closed before
// the dictionary is.
func NewDecoderWithPreparedDictionary(lib *native.Library, dictionary *DecoderDictionary) (*Decoder, error) {
	ctx, err := native.NewDCtx(lib)
	if err != nil {
		return nil, err
	}
	if err := ctx.RefDDict(dictionary.ddict); err != nil {
		ctx.Free()
		return nil, err
	}
	return &Decoder{lib: lib, ctx: ctx, dict: dictionary}, nil
}

// RecommendedInputSize returns the engine's recommended input chunk size
// for streaming decompression.
func (d *Decoder) RecommendedInputSize() int { return d.lib.DStreamInSize() }

// RecommendedOutputSize returns the engine's recommended output chunk size
// for streaming decompression.
func (d *Decoder) RecommendedOutputSize() int { return d.lib.DStreamOutSize() }

// SetParameter sets a single decompression parameter.
func (d *Decoder) SetParameter(p DParameter) error {
	return d.ctx.SetParameter(p.id, p.value)
}

// Close releases the native context. The Decoder must not be used after
// this call.
func (d *Decoder) Close() { d.ctx.Free() }

func (d *Decoder) Run(in *InBuffer, out *OutBuffer) (int, error) {
	nIn := nativeIn(in)
	nOut := nativeOut(out)
	hint, err := d.ctx.DecompressStream(&nOut, &nIn)
	in.Pos = int(nIn.Pos)
	commitOut(out, nOut)
	if err != nil {
		return 0, err
	}
	return int(hint), nil
}

// Flush offers no additional input and reports whether the engine's
// internal buffer still holds undelivered decompressed data: 0 once the
// output produced didn't fill the buffer (nothing more is buffered), 1
// (a non-zero placeholder) otherwise.
func (d *Decoder) Flush(out *OutBuffer) (int, error) {
	empty := &InBuffer{}
	if _, err := d.Run(empty, out); err != nil {
		return 0, err
	}
	if out.Pos < out.Capacity() {
		return 0, nil
	}
	return 1, nil
}

// Finish requires the last Run to have already observed a complete frame;
// otherwise the stream ended mid-frame.
func (d *Decoder) Finish(out *OutBuffer, finishedFrame bool) (int, error) {
	if finishedFrame {
		return 0, nil
	}
	return 0, IncompleteFrameError()
}

func (d *Decoder) Reinit() error {
	return d.ctx.Reset(native.ResetSessionOnly)
}
