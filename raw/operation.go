package raw

import (
	"github.com/zstdstream/zstdio/internal/native"
)

// Operation is the driver-facing abstraction of a single engine step:
// encoder, decoder, or pass-through. zio.Reader and zio.Writer are built
// entirely in terms of this interface and never touch the native library
// directly.
type Operation interface {
	// Run consumes from in and writes to out, advancing both cursors.
	// A returned hint of 0 is a strong signal that a frame just completed
	// (decoder); the zio drivers Reinit the operation before its next step
	// after one. Encoder.Run never returns 0, since a compression step never
	// ends a frame. hint > 0 is advisory only.
	Run(in *InBuffer, out *OutBuffer) (hint int, err error)

	// Flush writes any buffered engine state to out. Keep calling until
	// it returns 0.
	Flush(out *OutBuffer) (remaining int, err error)

	// Finish writes the frame footer/tail. finishedFrame tells a decoder
	// whether the last Run already observed a complete frame. Keep
	// calling until it returns 0, then never call it again.
	Finish(out *OutBuffer, finishedFrame bool) (remaining int, err error)

	// Reinit resets session state for a new frame, keeping parameters and
	// any referenced dictionary.
	Reinit() error
}

func nativeIn(in *InBuffer) native.Buffer {
	return native.Buffer{
		Ptr:  basePtr(in.Src),
		Size: uint64(len(in.Src)),
		Pos:  uint64(in.Pos),
	}
}

func nativeOut(out *OutBuffer) native.Buffer {
	region := out.Dst.Region()
	return native.Buffer{
		Ptr:  basePtr(region),
		Size: uint64(len(region)),
		Pos:  uint64(out.Pos),
	}
}

func commitOut(out *OutBuffer, n native.Buffer) {
	out.Pos = int(n.Pos)
	out.Dst.Commit(out.Pos)
}
