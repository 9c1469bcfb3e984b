// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package hfsimage

import (
	"fmt"
	"io"
)

// Layout describes where the regions of a compressed image lie.
type Layout struct {
	MDB          MDB
	DataStart    int64 // first byte of the compressed span
	DataEnd      int64 // end of the compressed span, exclusive
	AltMDBOffset int64 // offset of the trailing alternate MDB
}

// CompressedSize returns the size of the compressed span.
func (l Layout) CompressedSize() int64 {
	return l.DataEnd - l.DataStart
}

// Locate reads the alternate MDB and computes the image layout.
func Locate(r io.ReaderAt, size int64) (Layout, error) {
	m, altOff, err := ReadAltMDB(r, size)
	if err != nil {
		return Layout{}, err
	}

	start := int64(m.FirstAllocBlock) * int64(m.AllocBlockSize)
	if start > altOff {
		return Layout{}, fmt.Errorf("%w: data starts at %d past alternate MDB at %d", ErrInvalidLayout, start, altOff)
	}

	return Layout{
		MDB:          *m,
		DataStart:    start,
		DataEnd:      altOff,
		AltMDBOffset: altOff,
	}, nil
}
