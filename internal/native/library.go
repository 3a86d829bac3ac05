// Package native binds the Zstandard advanced streaming API through purego,
// the same way develerltd/zstd-purego binds the simple and context APIs.
package native

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// candidateNames lists the sonames tried, in order, for each platform.
// Unlike a vendored-blob approach, this module has no prebuilt libzstd to
// go:embed, so it resolves against the host's installed library instead.
var candidateNames = map[string][]string{
	"linux":  {"libzstd.so.1", "libzstd.so"},
	"darwin": {"libzstd.1.dylib", "libzstd.dylib"},
}

// Library holds every libzstd entry point this module calls.
type Library struct {
	handle uintptr

	versionNumber func() uint32
	versionString func() string
	isError       func(code uint64) int32
	getErrorName  func(code uint64) string

	createCCtx func() unsafe.Pointer
	freeCCtx   func(ctx unsafe.Pointer) uint64
	createDCtx func() unsafe.Pointer
	freeDCtx   func(ctx unsafe.Pointer) uint64

	cctxSetParameter      func(ctx unsafe.Pointer, param int32, value int32) uint64
	cctxSetPledgedSrcSize func(ctx unsafe.Pointer, pledgedSrcSize uint64) uint64
	cctxLoadDictionary    func(ctx unsafe.Pointer, dict unsafe.Pointer, dictSize uint64) uint64
	cctxRefCDict          func(ctx unsafe.Pointer, cdict unsafe.Pointer) uint64
	cctxReset             func(ctx unsafe.Pointer, directive int32) uint64

	dctxSetParameter   func(ctx unsafe.Pointer, param int32, value int32) uint64
	dctxLoadDictionary func(ctx unsafe.Pointer, dict unsafe.Pointer, dictSize uint64) uint64
	dctxRefDDict       func(ctx unsafe.Pointer, ddict unsafe.Pointer) uint64
	dctxReset          func(ctx unsafe.Pointer, directive int32) uint64

	compressStream2  func(cctx unsafe.Pointer, output *Buffer, input *Buffer, endOp int32) uint64
	flushStream      func(cctx unsafe.Pointer, output *Buffer) uint64
	endStream        func(cctx unsafe.Pointer, output *Buffer) uint64
	decompressStream func(dctx unsafe.Pointer, output *Buffer, input *Buffer) uint64

	createCDict func(dict unsafe.Pointer, dictSize uint64, level int32) unsafe.Pointer
	freeCDict   func(cdict unsafe.Pointer) uint64
	createDDict func(dict unsafe.Pointer, dictSize uint64) unsafe.Pointer
	freeDDict   func(ddict unsafe.Pointer) uint64

	cStreamInSize  func() uint64
	dStreamInSize  func() uint64
	dStreamOutSize func() uint64
}

// Load resolves libzstd from the host system and registers the symbols
// this module needs. It does not embed or extract any bundled binary.
func Load() (*Library, error) {
	names, ok := candidateNames[runtime.GOOS]
	if !ok {
		return nil, fmt.Errorf("native: unsupported platform %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	if override := os.Getenv("LIBZSTD_PATH"); override != "" {
		names = append([]string{override}, names...)
	}

	var handle uintptr
	var lastErr error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			handle = h
			break
		}
		lastErr = err
	}
	if handle == 0 {
		return nil, fmt.Errorf("native: failed to load libzstd (tried %v): %w", names, lastErr)
	}

	lib := &Library{handle: handle}
	purego.RegisterLibFunc(&lib.versionNumber, handle, "ZSTD_versionNumber")
	purego.RegisterLibFunc(&lib.versionString, handle, "ZSTD_versionString")
	purego.RegisterLibFunc(&lib.isError, handle, "ZSTD_isError")
	purego.RegisterLibFunc(&lib.getErrorName, handle, "ZSTD_getErrorName")

	purego.RegisterLibFunc(&lib.createCCtx, handle, "ZSTD_createCCtx")
	purego.RegisterLibFunc(&lib.freeCCtx, handle, "ZSTD_freeCCtx")
	purego.RegisterLibFunc(&lib.createDCtx, handle, "ZSTD_createDCtx")
	purego.RegisterLibFunc(&lib.freeDCtx, handle, "ZSTD_freeDCtx")

	purego.RegisterLibFunc(&lib.cctxSetParameter, handle, "ZSTD_CCtx_setParameter")
	purego.RegisterLibFunc(&lib.cctxSetPledgedSrcSize, handle, "ZSTD_CCtx_setPledgedSrcSize")
	purego.RegisterLibFunc(&lib.cctxLoadDictionary, handle, "ZSTD_CCtx_loadDictionary")
	purego.RegisterLibFunc(&lib.cctxRefCDict, handle, "ZSTD_CCtx_refCDict")
	purego.RegisterLibFunc(&lib.cctxReset, handle, "ZSTD_CCtx_reset")

	purego.RegisterLibFunc(&lib.dctxSetParameter, handle, "ZSTD_DCtx_setParameter")
	purego.RegisterLibFunc(&lib.dctxLoadDictionary, handle, "ZSTD_DCtx_loadDictionary")
	purego.RegisterLibFunc(&lib.dctxRefDDict, handle, "ZSTD_DCtx_refDDict")
	purego.RegisterLibFunc(&lib.dctxReset, handle, "ZSTD_DCtx_reset")

	purego.RegisterLibFunc(&lib.compressStream2, handle, "ZSTD_compressStream2")
	purego.RegisterLibFunc(&lib.flushStream, handle, "ZSTD_flushStream")
	purego.RegisterLibFunc(&lib.endStream, handle, "ZSTD_endStream")
	purego.RegisterLibFunc(&lib.decompressStream, handle, "ZSTD_decompressStream")

	purego.RegisterLibFunc(&lib.createCDict, handle, "ZSTD_createCDict")
	purego.RegisterLibFunc(&lib.freeCDict, handle, "ZSTD_freeCDict")
	purego.RegisterLibFunc(&lib.createDDict, handle, "ZSTD_createDDict")
	purego.RegisterLibFunc(&lib.freeDDict, handle, "ZSTD_freeDDict")

	purego.RegisterLibFunc(&lib.cStreamInSize, handle, "ZSTD_CStreamInSize")
	purego.RegisterLibFunc(&lib.dStreamInSize, handle, "ZSTD_DStreamInSize")
	purego.RegisterLibFunc(&lib.dStreamOutSize, handle, "ZSTD_DStreamOutSize")

	return lib, nil
}

// Close unloads the library. Safe to call once; subsequent calls are no-ops.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

// VersionNumber returns the packed ZSTD version (e.g. 10507 for 1.5.7).
func (l *Library) VersionNumber() uint32 { return l.versionNumber() }

// VersionString returns the human-readable ZSTD version string.
func (l *Library) VersionString() string { return l.versionString() }

// IsError reports whether a size_t-style result is an error code.
func (l *Library) IsError(code uint64) bool { return l.isError(code) != 0 }

// ErrorName returns the engine's textual name for an error code.
func (l *Library) ErrorName(code uint64) string { return l.getErrorName(code) }

// CStreamInSize returns the engine's recommended compressor input chunk size.
func (l *Library) CStreamInSize() int { return int(l.cStreamInSize()) }

// DStreamInSize returns the engine's recommended decompressor input chunk size.
func (l *Library) DStreamInSize() int { return int(l.dStreamInSize()) }

// DStreamOutSize returns the engine's recommended decompressor output chunk size.
func (l *Library) DStreamOutSize() int { return int(l.dStreamOutSize()) }
