package zstdio

import (
	"bytes"
	"io"

	"github.com/zstdstream/zstdio/internal/native"
	"github.com/zstdstream/zstdio/stream/read"
	"github.com/zstdstream/zstdio/stream/write"
)

// EncodeAll reads r to completion and returns its content compressed as a
// single Zstandard frame at the given level.
func EncodeAll(lib *native.Library, r io.Reader, level int32) ([]byte, error) {
	var out bytes.Buffer
	if err := CopyEncode(lib, &out, r, level); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeAll reads r to completion and returns its decompressed content. r
// may contain multiple concatenated frames.
func DecodeAll(lib *native.Library, r io.Reader) ([]byte, error) {
	var out bytes.Buffer
	if err := CopyDecode(lib, &out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// CopyEncode compresses everything read from src at the given level and
// writes the result to dst.
func CopyEncode(lib *native.Library, dst io.Writer, src io.Reader, level int32) error {
	encoder, err := write.NewEncoder(lib, dst, level)
	if err != nil {
		return err
	}
	defer encoder.Close()

	if _, err := io.Copy(encoder, src); err != nil {
		return err
	}
	_, err = encoder.Finish()
	return err
}

// CopyDecode decompresses everything read from src and writes the result
// to dst. src may contain multiple concatenated frames.
func CopyDecode(lib *native.Library, dst io.Writer, src io.Reader) error {
	decoder, err := read.NewDecoder(lib, src)
	if err != nil {
		return err
	}
	defer decoder.Close()

	_, err = io.Copy(dst, decoder)
	return err
}

