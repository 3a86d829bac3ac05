// Package zstdio is the public entry point: one-shot compress/decompress
// helpers and a small set of preset option bundles built on top of
// stream/read, stream/write, and raw.
package zstdio

// Compression level constants.
const (
	BestSpeed          = 1
	DefaultCompression = 3
	BetterCompression  = 7
	BestCompression    = 19 // highest practical level, very slow
	UltraCompression   = 22 // maximum possible level
)

const defaultBufferSize = 32 * 1024

// Options bundles the knobs simple streaming callers commonly want to set
// together. No function in this package takes an Options value: the
// one-shot helpers take a compression level directly.
type Options struct {
	CompressionLevel int  // 1-22, default DefaultCompression
	Checksum         bool // append a content checksum to each frame
	BufferSize       int  // I/O buffer size; the zio drivers use their own fixed 32 KiB buffers
}

// DefaultOptions returns balanced defaults.
func DefaultOptions() Options {
	return Options{
		CompressionLevel: DefaultCompression,
		BufferSize:       defaultBufferSize,
	}
}

// FastOptions favors speed over ratio.
func FastOptions() Options {
	opts := DefaultOptions()
	opts.CompressionLevel = BestSpeed
	return opts
}

// BestOptions favors compression ratio over speed.
func BestOptions() Options {
	opts := DefaultOptions()
	opts.CompressionLevel = BestCompression
	return opts
}
