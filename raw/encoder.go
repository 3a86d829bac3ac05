package raw

import "github.com/zstdstream/zstdio/internal/native"

// ContentSizeUnknown tells SetPledgedSrcSize that the total input size for
// the next frame is not known ahead of time (the default).
const ContentSizeUnknown uint64 = ^uint64(0)

// Encoder is an in-memory compression Operation. It owns a native
// compression context for its whole lifetime and, if constructed with a
// prepared dictionary, must not outlive it.
type Encoder struct {
	lib  *native.Library
	ctx  *native.CCtx
	dict *EncoderDictionary
}

// NewEncoder creates an encoder at the given compression level, with no
// dictionary.
func NewEncoder(lib *native.Library, level int32) (*Encoder, error) {
	return NewEncoderWithDictionary(lib, level, nil)
}

// NewEncoderWithDictionary creates an encoder initialized with an ephemeral
// dictionary: dictionary is copied into the context's own state, so the
// caller's slice need not outlive this call.
func NewEncoderWithDictionary(lib *native.Library, level int32, dictionary []byte) (*Encoder, error) {
	ctx, err := native.NewCCtx(lib)
	if err != nil {
		return nil, err
	}
	if err := ctx.SetParameter(native.CParamCompressionLevel, level); err != nil {
		ctx.Free()
		return nil, err
	}
	if len(dictionary) > 0 {
		if err := ctx.LoadDictionary(dictionary); err != nil {
			ctx.Free()
			return nil, err
		}
	}
	return &Encoder{lib: lib, ctx: ctx}, nil
}

// NewEncoderWithPreparedDictionary creates an encoder that references a
// prepared EncoderDictionary. The returned Encoder must be closed before
// the dictionary is.
func NewEncoderWithPreparedDictionary(lib *native.Library, dictionary *EncoderDictionary) (*Encoder, error) {
	ctx, err := native.NewCCtx(lib)
	if err != nil {
		return nil, err
	}
	if err := ctx.RefCDict(dictionary.cdict); err != nil {
		ctx.Free()
		return nil, err
	}
	return &Encoder{lib: lib, ctx: ctx, dict: dictionary}, nil
}

// RecommendedInputSize returns the engine's recommended input chunk size
// for streaming compression.
func (e *Encoder) RecommendedInputSize() int { return e.lib.CStreamInSize() }

// SetParameter sets a single compression parameter.
func (e *Encoder) SetParameter(p CParameter) error {
	return e.ctx.SetParameter(p.id, p.value)
}

// SetPledgedSrcSize declares the total input size for the next frame. Pass
// ContentSizeUnknown (the default) if the size isn't known ahead of time.
// Giving an incorrect size is only detected when the stream is finished.
func (e *Encoder) SetPledgedSrcSize(size uint64) error {
	return e.ctx.SetPledgedSrcSize(size)
}

// Close releases the native context. The Encoder must not be used after
// this call.
func (e *Encoder) Close() { e.ctx.Free() }

func (e *Encoder) Run(in *InBuffer, out *OutBuffer) (int, error) {
	nIn := nativeIn(in)
	nOut := nativeOut(out)
	hint, err := e.ctx.CompressStream2(&nOut, &nIn, native.EndContinue)
	in.Pos = int(nIn.Pos)
	commitOut(out, nOut)
	if err != nil {
		return 0, err
	}
	// A continue step never ends a frame, yet the engine returns 0 whenever
	// it has nothing left to flush. The zio drivers read a 0 hint as a
	// completed frame and Reinit before the next step, which would discard
	// the input the engine has buffered, so report a non-zero advisory
	// input size instead.
	if hint == 0 {
		return e.RecommendedInputSize(), nil
	}
	return int(hint), nil
}

func (e *Encoder) Flush(out *OutBuffer) (int, error) {
	nOut := nativeOut(out)
	hint, err := e.ctx.FlushStream(&nOut)
	commitOut(out, nOut)
	if err != nil {
		return 0, err
	}
	return int(hint), nil
}

func (e *Encoder) Finish(out *OutBuffer, _ bool) (int, error) {
	nOut := nativeOut(out)
	hint, err := e.ctx.EndStream(&nOut)
	commitOut(out, nOut)
	if err != nil {
		return 0, err
	}
	return int(hint), nil
}

func (e *Encoder) Reinit() error {
	return e.ctx.Reset(native.ResetSessionOnly)
}
