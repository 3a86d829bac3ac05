package native

import "unsafe"

// Buffer mirrors ZSTD_inBuffer / ZSTD_outBuffer: both are
// { void* / const void* ptr; size_t size; size_t pos; } at the ABI level,
// so a single Go struct can stand in for either side of a stream step.
type Buffer struct {
	Ptr  unsafe.Pointer
	Size uint64
	Pos  uint64
}

// EndDirective values for ZSTD_compressStream2.
const (
	EndContinue int32 = 0
	EndFlush    int32 = 1
	EndEnd      int32 = 2
)

// ResetDirective values for ZSTD_CCtx_reset / ZSTD_DCtx_reset.
const (
	ResetSessionOnly          int32 = 1
	ResetParameters           int32 = 2
	ResetSessionAndParameters int32 = 3
)
