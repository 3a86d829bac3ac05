package zio

import (
	"encoding/binary"
	"io"
)

// Magic is the 4-byte magic number at the start of a standard Zstandard
// frame.
const Magic uint32 = 0xFD2FB528

// SkippableMagicLow and SkippableMagicHigh bound the range of magic numbers
// reserved for skippable frames; the low nibble of the magic is the frame's
// variant (0-15).
const (
	SkippableMagicLow  uint32 = 0x184D2A50
	SkippableMagicHigh uint32 = 0x184D2A5F
)

// ReadSkippableFrame reads the next frame as a skippable frame: it peeks
// the 4-byte magic, and if it falls outside the skippable range, fails with
// ErrUnsupportedFrame without advancing the source. Otherwise it reads the
// 4-byte little-endian content size and copies the frame's content into
// dest, returning its length and variant. If dest cannot hold the content,
// it fails with ErrBufferTooSmall, again without advancing the source.
func (r *Reader) ReadSkippableFrame(dest []byte) (n int, variant int, err error) {
	header, err := r.src.Peek(8)
	if err != nil {
		if err == io.EOF {
			return 0, 0, io.ErrUnexpectedEOF
		}
		return 0, 0, err
	}

	magic := binary.LittleEndian.Uint32(header[0:4])
	if magic < SkippableMagicLow || magic > SkippableMagicHigh {
		return 0, 0, ErrUnsupportedFrame
	}
	variant = int(magic - SkippableMagicLow)

	size := binary.LittleEndian.Uint32(header[4:8])
	if uint64(size) > uint64(len(dest)) {
		return 0, variant, ErrBufferTooSmall
	}

	body, err := r.src.Peek(8 + int(size))
	if err != nil {
		if err == io.EOF {
			return 0, variant, io.ErrUnexpectedEOF
		}
		return 0, variant, err
	}
	n = copy(dest, body[8:])
	if _, err := r.src.Discard(8 + int(size)); err != nil {
		return 0, variant, err
	}
	return n, variant, nil
}

// SkipFrame advances the source past the next frame, skippable or regular,
// without decompressing it. A regular frame's size is determined by
// parsing its header and walking its block headers.
func (r *Reader) SkipFrame() error {
	header, err := r.src.Peek(4)
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	magic := binary.LittleEndian.Uint32(header)
	if magic >= SkippableMagicLow && magic <= SkippableMagicHigh {
		sizeHeader, err := r.src.Peek(8)
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		size := binary.LittleEndian.Uint32(sizeHeader[4:8])
		_, err = r.src.Discard(8 + int(size))
		return err
	}

	total, err := r.regularFrameSize()
	if err != nil {
		return err
	}
	_, err = r.src.Discard(total)
	return err
}

// regularFrameSize computes the total on-wire size of the regular frame
// currently at the front of the source, without consuming any of it: the
// frame header size, plus every block's compressed size up to and
// including the last block, plus a trailing 4-byte checksum if present.
func (r *Reader) regularFrameSize() (int, error) {
	fhd, err := r.src.Peek(5)
	if err != nil {
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	descriptor := fhd[4]

	singleSegment := descriptor&(1<<5) != 0
	dictIDFlag := descriptor & 3
	dictIDSize := 0
	if dictIDFlag != 0 {
		dictIDSize = 1 << (dictIDFlag - 1)
		if dictIDFlag == 3 {
			dictIDSize = 4
		}
	}
	fcsFieldSize := 0
	switch descriptor >> 6 {
	case 0:
		if singleSegment {
			fcsFieldSize = 1
		}
	case 1:
		fcsFieldSize = 2
	case 2:
		fcsFieldSize = 4
	case 3:
		fcsFieldSize = 8
	}
	windowDescriptorSize := 0
	if !singleSegment {
		windowDescriptorSize = 1
	}
	hasChecksum := descriptor&(1<<2) != 0

	headerSize := 4 + 1 + windowDescriptorSize + dictIDSize + fcsFieldSize

	if _, err := r.src.Peek(headerSize); err != nil {
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}

	total := headerSize
	for {
		block, err := r.src.Peek(total + 3)
		if err != nil {
			if err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		h := block[total : total+3]
		raw := uint32(h[0]) | uint32(h[1])<<8 | uint32(h[2])<<16
		last := raw&1 != 0
		blockType := (raw >> 1) & 3
		sizeField := int(raw >> 3)

		blockSize := sizeField
		if blockType == 1 { // RLE: one literal byte regardless of the size field
			blockSize = 1
		}
		total += 3 + blockSize

		if last {
			break
		}
	}
	if hasChecksum {
		total += 4
	}
	return total, nil
}
