package zio

import (
	"encoding/binary"
	"io"

	"github.com/zstdstream/zstdio/raw"
)

// Writer turns push bytes into Operation steps, staging engine output in an
// internal buffer that is drained to the underlying sink between steps.
type Writer struct {
	underlying io.Writer
	op         raw.Operation

	buffer []byte
	offset int

	finished      bool
	finishedFrame bool
	writingFrame  bool
}

// NewWriter creates a Writer pushing output to w through op, with a
// default-sized staging buffer.
func NewWriter(w io.Writer, op raw.Operation) *Writer {
	return &Writer{
		underlying: w,
		op:         op,
		buffer:     make([]byte, 0, defaultBufferSize),
	}
}

// Operation returns the underlying Operation.
func (w *Writer) Operation() raw.Operation { return w.op }

// Underlying returns the wrapped sink. Writing to it directly bypasses any
// data still staged in the writer's internal buffer.
func (w *Writer) Underlying() io.Writer { return w.underlying }

// WritingFrame reports whether a frame is currently open (some data has
// been written since construction or since the last Finish).
func (w *Writer) WritingFrame() bool { return w.writingFrame }

// drain writes buffer[offset:] to the underlying sink, advancing offset as
// bytes are accepted, looping on short writes until the buffer is empty.
func (w *Writer) drain() error {
	for w.offset < len(w.buffer) {
		n, err := w.underlying.Write(w.buffer[w.offset:])
		w.offset += n
		if err != nil {
			return err
		}
	}
	return nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.writingFrame = true
	w.finished = false
	for {
		if err := w.drain(); err != nil {
			return 0, err
		}

		if w.finishedFrame {
			if err := w.op.Reinit(); err != nil {
				return 0, err
			}
			w.finishedFrame = false
		}

		in := raw.NewInBuffer(p)
		out := raw.NewOutBuffer(raw.NewGrowableSink(&w.buffer))
		hint, err := w.op.Run(in, out)
		w.offset = 0
		if err != nil {
			return 0, err
		}
		if hint == 0 {
			w.finishedFrame = true
		}

		if in.Pos > 0 || len(p) == 0 {
			return in.Pos, nil
		}
	}
}

// Flush drains pending output, then repeatedly calls the operation's Flush
// until it reports nothing left, draining between calls, and finally
// flushes the underlying sink if it supports it.
func (w *Writer) Flush() error {
	if err := w.drain(); err != nil {
		return err
	}
	for {
		out := raw.NewOutBuffer(raw.NewGrowableSink(&w.buffer))
		remaining, err := w.op.Flush(out)
		w.offset = 0
		if err != nil {
			return err
		}
		if err := w.drain(); err != nil {
			return err
		}
		if remaining == 0 {
			break
		}
	}
	if f, ok := w.underlying.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Finish writes the frame footer and marks the writer closed. Calling it
// again after it has succeeded once is a no-op.
func (w *Writer) Finish() error {
	if w.finished {
		return nil
	}
	for {
		if err := w.drain(); err != nil {
			return err
		}
		if w.finished {
			w.writingFrame = false
			return nil
		}

		out := raw.NewOutBuffer(raw.NewGrowableSink(&w.buffer))
		remaining, err := w.op.Finish(out, w.finishedFrame)
		w.offset = 0
		if err != nil {
			return err
		}
		if remaining != 0 && out.Pos == 0 {
			return raw.IncompleteFrameError()
		}
		if remaining == 0 {
			w.finished = true
			w.finishedFrame = true
		}
	}
}

// WriteSkippableFrame finishes any open frame, then writes a skippable
// frame with the given variant (0-15) and content to the underlying sink.
func (w *Writer) WriteSkippableFrame(content []byte, variant int) error {
	if variant < 0 || variant > 15 {
		return raw.ErrInvalidParameter
	}
	if w.writingFrame {
		if err := w.Finish(); err != nil {
			return err
		}
	}

	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], SkippableMagicLow+uint32(variant))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(content)))

	if err := w.drain(); err != nil {
		return err
	}
	if _, err := w.underlying.Write(header); err != nil {
		return err
	}
	if _, err := w.underlying.Write(content); err != nil {
		return err
	}
	return nil
}
