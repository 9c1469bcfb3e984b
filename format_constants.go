// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

// WindowSize is the size of the back-reference history (ring buffer).
const WindowSize = 1 << 16

// Control byte layout.
const (
	literalFlag    = 0x80 // bit 7 set: literal run
	largeMatchFlag = 0x40 // bit 6 set (bit 7 clear): 3-byte match

	literalLenMask    = 0x7f
	largeMatchLenMask = 0x3f
	smallMatchLenMask = 0x3c
	smallMatchOffMask = 0x03
)

// Length bounds per code kind.
const (
	minLiteralLen    = 1
	maxLiteralLen    = 128
	minSmallMatchLen = 3
	maxSmallMatchLen = 18
	minLargeMatchLen = 4
	maxLargeMatchLen = 67

	maxSmallMatchOffset = 0x03ff
	maxLargeMatchOffset = 0xffff

	// maxChunkLen is the largest chunk a single code can produce.
	maxChunkLen = maxLiteralLen
)
