// Package zio adapts a raw.Operation to the io.Reader and io.Writer
// interfaces: Reader pulls compressed or decompressed bytes through an
// Operation from a buffered byte source, Writer pushes them through to an
// underlying sink. Frame-boundary bookkeeping, partial-I/O retry, and
// skippable-frame handling live here; nothing above this layer touches a
// native context directly.
package zio

import (
	"bufio"
	"io"

	"github.com/zstdstream/zstdio/raw"
)

const defaultBufferSize = 32 * 1024

// Reader turns pull requests for up to len(buf) transformed bytes into
// Operation steps against a buffered byte source.
type Reader struct {
	underlying io.Reader
	src        *bufio.Reader
	op         raw.Operation

	finished      bool
	singleFrame   bool
	finishedFrame bool
}

// NewReader creates a Reader pulling input from r through op, with a default
// input buffer size.
func NewReader(r io.Reader, op raw.Operation) *Reader {
	return NewReaderSize(r, op, defaultBufferSize)
}

// NewReaderSize is like NewReader but lets the caller size the input
// buffer. A larger buffer is needed to call ReadSkippableFrame on frames
// bigger than the default.
func NewReaderSize(r io.Reader, op raw.Operation, size int) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok || br.Size() < size {
		br = bufio.NewReaderSize(r, size)
	}
	return &Reader{underlying: r, src: br, op: op}
}

// Underlying returns the wrapped source. Reading from or otherwise mutating
// it directly is likely to corrupt the stream, since bytes may already be
// buffered ahead of what Read has delivered.
func (r *Reader) Underlying() io.Reader { return r.underlying }

// SetSingleFrame switches the reader to stop as soon as the first frame
// completes, leaving any following bytes unconsumed in the reader's
// buffered source. Those bytes stay readable from the source passed in only
// when it is a *bufio.Reader that the Reader uses directly (see
// NewReaderSize); any other source has already had them read ahead into
// the Reader's own buffer.
func (r *Reader) SetSingleFrame() { r.singleFrame = true }

// Operation returns the underlying Operation.
func (r *Reader) Operation() raw.Operation { return r.op }

// Finished reports whether the reader has delivered a complete stream and
// will only return (0, io.EOF) from now on.
func (r *Reader) Finished() bool { return r.finished }

// Read implements io.Reader.
func (r *Reader) Read(buf []byte) (int, error) {
	if r.finished {
		return 0, io.EOF
	}

	for {
		window, err := fillBuf(r.src)
		if err != nil {
			return 0, err
		}

		in := raw.NewInBuffer(window)
		out := raw.NewOutBuffer(raw.NewFixedSink(buf))

		if len(window) > 0 {
			if r.finishedFrame {
				if err := r.op.Reinit(); err != nil {
					return 0, err
				}
				r.finishedFrame = false
			}
			hint, err := r.op.Run(in, out)
			if err != nil {
				return 0, err
			}
			if hint == 0 {
				r.finishedFrame = true
				if r.singleFrame {
					r.finished = true
				}
			}
		} else {
			remaining, err := r.op.Finish(out, r.finishedFrame)
			if err != nil {
				return 0, err
			}
			if remaining == 0 {
				r.finished = true
			}
		}

		if in.Pos > 0 {
			if _, err := r.src.Discard(in.Pos); err != nil {
				return 0, err
			}
		}

		if out.Pos > 0 {
			return out.Pos, nil
		}
		if r.finished {
			return 0, io.EOF
		}
	}
}

// fillBuf returns the source's current buffered window without consuming
// it, refilling from the underlying reader if the window is empty. A nil
// slice with a nil error means the source is at EOF.
func fillBuf(src *bufio.Reader) ([]byte, error) {
	if src.Buffered() == 0 {
		if _, err := src.Peek(1); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, err
		}
	}
	return src.Peek(src.Buffered())
}
