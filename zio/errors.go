package zio

import "errors"

// ErrUnsupportedFrame is returned by Reader.ReadSkippableFrame when the next
// frame in the source is a regular (non-skippable) frame. The source is left
// positioned at the start of that frame.
var ErrUnsupportedFrame = errors.New("zstd: next frame is not skippable")

// ErrBufferTooSmall is returned by Reader.ReadSkippableFrame when dest
// cannot hold the frame's content. The source is left positioned at the
// start of the frame.
var ErrBufferTooSmall = errors.New("zstd: destination buffer too small for skippable frame")
