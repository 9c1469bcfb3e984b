// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package hfsimage

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BlockSize is the HFS logical block size and the size of the MDB.
const BlockSize = 512

// Signature is the MDB signature word, "BD".
const Signature = 0x4244

// MDB field offsets. All fields are big-endian.
const (
	offSignature       = 0
	offNumAllocBlocks  = 18
	offAllocBlockSize  = 20
	offFirstAllocBlock = 28
)

// MDB holds the Master Directory Block fields needed to locate the data region.
type MDB struct {
	Signature       uint16
	NumAllocBlocks  uint16
	AllocBlockSize  uint32
	FirstAllocBlock uint16
}

// ParseMDB decodes an MDB from a BlockSize-byte block.
func ParseMDB(block []byte) (*MDB, error) {
	if len(block) < BlockSize {
		return nil, fmt.Errorf("%w: MDB block is %d bytes", ErrImageTooSmall, len(block))
	}

	m := &MDB{
		Signature:       binary.BigEndian.Uint16(block[offSignature:]),
		NumAllocBlocks:  binary.BigEndian.Uint16(block[offNumAllocBlocks:]),
		AllocBlockSize:  binary.BigEndian.Uint32(block[offAllocBlockSize:]),
		FirstAllocBlock: binary.BigEndian.Uint16(block[offFirstAllocBlock:]),
	}
	if m.Signature != Signature {
		return nil, fmt.Errorf("%w: signature 0x%04x", ErrNotDiskImage, m.Signature)
	}

	return m, nil
}

// ReadAltMDB reads the alternate MDB from the last block of an image of the given
// size. It returns the MDB and its offset.
func ReadAltMDB(r io.ReaderAt, size int64) (*MDB, int64, error) {
	if size < BlockSize {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrImageTooSmall, size)
	}

	off := size - BlockSize
	block := make([]byte, BlockSize)
	// A full read at the end of input may also report io.EOF.
	if n, err := r.ReadAt(block, off); n < BlockSize {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, 0, fmt.Errorf("read alternate MDB at %d: %w", off, err)
	}

	m, err := ParseMDB(block)
	if err != nil {
		return nil, 0, err
	}

	return m, off, nil
}
