package zstdio

import (
	"fmt"

	"github.com/zstdstream/zstdio/internal/native"
)

// Version returns the native libzstd version as an integer encoded
// MAJOR*10000 + MINOR*100 + RELEASE, as reported by ZSTD_versionNumber.
func Version(lib *native.Library) uint32 { return lib.VersionNumber() }

// VersionString returns the native libzstd version, e.g. "1.5.5".
func VersionString(lib *native.Library) string { return lib.VersionString() }

// VersionInfo returns a human-readable summary of the loaded native
// library's version.
func VersionInfo(lib *native.Library) string {
	return fmt.Sprintf("libzstd %s (%d)", lib.VersionString(), lib.VersionNumber())
}
