// Package raw implements the Operation abstraction over a native Zstandard
// context: a single step that consumes from an input window and writes to
// an output window, plus flush/finish/reinit. It is the engine-adapter
// layer the zio drivers sit on top of.
package raw

import "unsafe"

// InBuffer is a read-cursor over a caller-owned byte slice. Pos denotes how
// many bytes of Src have been consumed by the operation so far.
type InBuffer struct {
	Src []byte
	Pos int
}

// NewInBuffer wraps src for a single operation step.
func NewInBuffer(src []byte) *InBuffer { return &InBuffer{Src: src} }

// Remaining returns the unconsumed suffix of Src.
func (b *InBuffer) Remaining() []byte { return b.Src[b.Pos:] }

// Sink is the capability an OutBuffer needs from its backing store: a
// fully-addressable region to write into (up to capacity, not just current
// logical length) and a way to record how much of it now holds valid
// output. A fixed-size destination and a growable one both implement it.
type Sink interface {
	// Region returns the entire backing store, addressable up to its
	// capacity.
	Region() []byte
	// Commit records that the first n bytes of Region() now hold valid
	// output. Fixed sinks treat this as a no-op; growable sinks resize
	// their logical length to n.
	Commit(n int)
}

// FixedSink adapts a fixed-capacity, already fully-allocated []byte. This
// is the "I am a fixed slice; track the high-water mark, don't reallocate"
// side of the capability split described for OutBuffer.
type FixedSink struct {
	buf []byte
}

// NewFixedSink wraps a fixed-size destination buffer.
func NewFixedSink(buf []byte) *FixedSink { return &FixedSink{buf: buf} }

func (f *FixedSink) Region() []byte { return f.buf }
func (f *FixedSink) Commit(int)     {}

// GrowableSink adapts a *[]byte whose logical length may grow up to its
// existing capacity, mirroring Vec<u8>::set_len in the original driver.
// Unlike that driver, no unsafe promotion is required: a Go slice's
// backing array is already zero-initialized, so re-slicing up to cap is
// always safe.
type GrowableSink struct {
	buf *[]byte
}

// NewGrowableSink adapts buf, growing its visible length as output is
// produced, capped at its current capacity.
func NewGrowableSink(buf *[]byte) *GrowableSink { return &GrowableSink{buf: buf} }

func (g *GrowableSink) Region() []byte { return (*g.buf)[:cap(*g.buf)] }
func (g *GrowableSink) Commit(n int)   { *g.buf = (*g.buf)[:n] }

// OutBuffer is a write-cursor over a Sink. Pos is the number of bytes
// written so far; Pos <= len(Dst.Region()) always holds.
type OutBuffer struct {
	Dst Sink
	Pos int
}

// NewOutBuffer wraps dst for a single operation step.
func NewOutBuffer(dst Sink) *OutBuffer { return &OutBuffer{Dst: dst} }

// Capacity returns the total addressable size of the destination.
func (o *OutBuffer) Capacity() int { return len(o.Dst.Region()) }

// Written returns the bytes produced so far.
func (o *OutBuffer) Written() []byte { return o.Dst.Region()[:o.Pos] }

// basePtr returns a pointer to the first byte of a possibly-empty region.
func basePtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
