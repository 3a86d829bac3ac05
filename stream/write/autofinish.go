package write

import "io"

// AutoFinishEncoder wraps an Encoder so that Close finishes the stream and
// reports the result through a callback, instead of requiring the caller
// to remember to call Finish. Go has no destructors, so unlike the
// reference this wrapping is finalize-on-Close rather than
// finalize-on-drop: a caller that never calls Close leaks the native
// context and leaves the stream unterminated, exactly as if Finish had
// simply never been called.
type AutoFinishEncoder struct {
	encoder  *Encoder
	onFinish func(io.Writer, error)
}

// Write compresses and forwards buf.
func (a *AutoFinishEncoder) Write(buf []byte) (int, error) { return a.encoder.Write(buf) }

// Flush flushes any buffered compressed data to the underlying writer.
func (a *AutoFinishEncoder) Flush() error { return a.encoder.Flush() }

// Close finishes the stream and invokes the on-finish callback with the
// result. Safe to call more than once; only the first call does any work.
func (a *AutoFinishEncoder) Close() error {
	if a.encoder == nil {
		return nil
	}
	w, err := a.encoder.Finish()
	a.encoder = nil
	if a.onFinish != nil {
		a.onFinish(w, err)
	}
	return err
}
