package raw

import (
	"errors"
	"fmt"
	"io"

	"github.com/zstdstream/zstdio/internal/native"
)

// EngineError reports a native zstd error code and its textual name. Every
// Operation step that hits a malformed-input or parameter-misuse condition
// returns one of these (see native.EngineError).
type EngineError = native.EngineError

// IsEngineError reports whether err (or something it wraps) is an
// EngineError, and returns it.
func IsEngineError(err error) (*EngineError, bool) {
	var e *EngineError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IncompleteFrameError builds the error a Decoder.Finish (or a zio driver)
// returns when asked to close a frame that never completed. It wraps
// io.ErrUnexpectedEOF so callers can match it with errors.Is, matching kind
// UnexpectedEof.
func IncompleteFrameError() error {
	return fmt.Errorf("zstd: incomplete frame: %w", io.ErrUnexpectedEOF)
}

// ErrInvalidParameter is returned when a caller-supplied value fails this
// module's own range checks (such as a skippable-frame variant outside
// 0-15). Values the engine rejects at set-time come back as EngineError.
var ErrInvalidParameter = errors.New("zstd: invalid parameter value")
