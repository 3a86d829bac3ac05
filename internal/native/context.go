package native

import (
	"fmt"
	"unsafe"
)

// CCtx wraps a native ZSTD_CCtx. It must not be used from multiple
// goroutines at once; the engine itself is single-threaded per context.
type CCtx struct {
	lib *Library
	ptr unsafe.Pointer
}

// NewCCtx creates a compression context bound to lib.
func NewCCtx(lib *Library) (*CCtx, error) {
	ptr := lib.createCCtx()
	if ptr == nil {
		return nil, fmt.Errorf("native: failed to create compression context")
	}
	return &CCtx{lib: lib, ptr: ptr}, nil
}

// Free releases the native context. Safe to call once.
func (c *CCtx) Free() {
	if c.ptr != nil {
		c.lib.freeCCtx(c.ptr)
		c.ptr = nil
	}
}

// SetParameter sets a single ZSTD_cParameter.
func (c *CCtx) SetParameter(param, value int32) error {
	code := c.lib.cctxSetParameter(c.ptr, param, value)
	return checkError(c.lib, code)
}

// SetPledgedSrcSize declares the total input size for the next frame.
func (c *CCtx) SetPledgedSrcSize(size uint64) error {
	code := c.lib.cctxSetPledgedSrcSize(c.ptr, size)
	return checkError(c.lib, code)
}

// LoadDictionary copies dict into the context's session state.
func (c *CCtx) LoadDictionary(dict []byte) error {
	ptr, size := bytesPtr(dict)
	code := c.lib.cctxLoadDictionary(c.ptr, ptr, size)
	return checkError(c.lib, code)
}

// RefCDict binds a prepared compression dictionary by reference.
func (c *CCtx) RefCDict(cdict *CDict) error {
	var ptr unsafe.Pointer
	if cdict != nil {
		ptr = cdict.ptr
	}
	code := c.lib.cctxRefCDict(c.ptr, ptr)
	return checkError(c.lib, code)
}

// Reset resets session state (and optionally parameters) while keeping the
// native context allocation alive.
func (c *CCtx) Reset(directive int32) error {
	code := c.lib.cctxReset(c.ptr, directive)
	return checkError(c.lib, code)
}

// CompressStream2 runs a single compression step.
func (c *CCtx) CompressStream2(output, input *Buffer, endOp int32) (uint64, error) {
	code := c.lib.compressStream2(c.ptr, output, input, endOp)
	if c.lib.IsError(code) {
		return 0, newEngineError(c.lib, code)
	}
	return code, nil
}

// FlushStream flushes any buffered compressed data.
func (c *CCtx) FlushStream(output *Buffer) (uint64, error) {
	code := c.lib.flushStream(c.ptr, output)
	if c.lib.IsError(code) {
		return 0, newEngineError(c.lib, code)
	}
	return code, nil
}

// EndStream writes the frame epilogue.
func (c *CCtx) EndStream(output *Buffer) (uint64, error) {
	code := c.lib.endStream(c.ptr, output)
	if c.lib.IsError(code) {
		return 0, newEngineError(c.lib, code)
	}
	return code, nil
}

// DCtx wraps a native ZSTD_DCtx.
type DCtx struct {
	lib *Library
	ptr unsafe.Pointer
}

// NewDCtx creates a decompression context bound to lib.
func NewDCtx(lib *Library) (*DCtx, error) {
	ptr := lib.createDCtx()
	if ptr == nil {
		return nil, fmt.Errorf("native: failed to create decompression context")
	}
	return &DCtx{lib: lib, ptr: ptr}, nil
}

// Free releases the native context. Safe to call once.
func (d *DCtx) Free() {
	if d.ptr != nil {
		d.lib.freeDCtx(d.ptr)
		d.ptr = nil
	}
}

// SetParameter sets a single ZSTD_dParameter.
func (d *DCtx) SetParameter(param, value int32) error {
	code := d.lib.dctxSetParameter(d.ptr, param, value)
	return checkError(d.lib, code)
}

// LoadDictionary copies dict into the context's session state.
func (d *DCtx) LoadDictionary(dict []byte) error {
	ptr, size := bytesPtr(dict)
	code := d.lib.dctxLoadDictionary(d.ptr, ptr, size)
	return checkError(d.lib, code)
}

// RefDDict binds a prepared decompression dictionary by reference.
func (d *DCtx) RefDDict(ddict *DDict) error {
	var ptr unsafe.Pointer
	if ddict != nil {
		ptr = ddict.ptr
	}
	code := d.lib.dctxRefDDict(d.ptr, ptr)
	return checkError(d.lib, code)
}

// Reset resets session state while keeping the native context allocation alive.
func (d *DCtx) Reset(directive int32) error {
	code := d.lib.dctxReset(d.ptr, directive)
	return checkError(d.lib, code)
}

// DecompressStream runs a single decompression step.
func (d *DCtx) DecompressStream(output, input *Buffer) (uint64, error) {
	code := d.lib.decompressStream(d.ptr, output, input)
	if d.lib.IsError(code) {
		return 0, newEngineError(d.lib, code)
	}
	return code, nil
}

// CDict is a prepared compression dictionary.
type CDict struct {
	lib *Library
	ptr unsafe.Pointer
}

// NewCDict pre-digests dict at the given compression level.
func NewCDict(lib *Library, dict []byte, level int32) (*CDict, error) {
	ptr, size := bytesPtr(dict)
	h := lib.createCDict(ptr, size, level)
	if h == nil {
		return nil, fmt.Errorf("native: failed to create compression dictionary")
	}
	return &CDict{lib: lib, ptr: h}, nil
}

// Free releases the prepared dictionary.
func (c *CDict) Free() {
	if c.ptr != nil {
		c.lib.freeCDict(c.ptr)
		c.ptr = nil
	}
}

// DDict is a prepared decompression dictionary.
type DDict struct {
	lib *Library
	ptr unsafe.Pointer
}

// NewDDict pre-digests dict for decompression.
func NewDDict(lib *Library, dict []byte) (*DDict, error) {
	ptr, size := bytesPtr(dict)
	h := lib.createDDict(ptr, size)
	if h == nil {
		return nil, fmt.Errorf("native: failed to create decompression dictionary")
	}
	return &DDict{lib: lib, ptr: h}, nil
}

// Free releases the prepared dictionary.
func (d *DDict) Free() {
	if d.ptr != nil {
		d.lib.freeDDict(d.ptr)
		d.ptr = nil
	}
}

func checkError(lib *Library, code uint64) error {
	if lib.IsError(code) {
		return newEngineError(lib, code)
	}
	return nil
}

func newEngineError(lib *Library, code uint64) error {
	return &EngineError{Name: lib.ErrorName(code), Code: code}
}

// EngineError reports a native zstd error code and its textual name.
type EngineError struct {
	Name string
	Code uint64
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("zstd: %s", e.Name)
}

// bytesPtr returns a pointer usable across the purego FFI boundary for a
// possibly-empty byte slice, along with its length.
func bytesPtr(b []byte) (unsafe.Pointer, uint64) {
	if len(b) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&b[0]), uint64(len(b))
}
