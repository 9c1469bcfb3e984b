// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

// slidingWindow holds the most recent WindowSize bytes of decoded output.
// Bytes older than WindowSize are overwritten and can never be referenced again.
type slidingWindow struct {
	buffer [WindowSize]byte // ring storage

	pos     int   // next write position, always in [0, WindowSize)
	written int64 // total bytes inserted since reset
}

// reset rewinds the window. Old buffer contents are left in place; history()
// keeps them from being referenced.
func (w *slidingWindow) reset() {
	w.pos = 0
	w.written = 0
}

// insert appends p at the cursor, wrapping at the ring boundary.
// Inputs longer than the window leave only their last WindowSize bytes.
func (w *slidingWindow) insert(p []byte) {
	w.written += int64(len(p))

	for len(p) > 0 {
		n := copy(w.buffer[w.pos:], p)
		p = p[n:]
		w.pos += n
		if w.pos == WindowSize {
			w.pos = 0
		}
	}
}

// readAt fills dst starting at ring position start, wrapping at the boundary.
func (w *slidingWindow) readAt(start int, dst []byte) {
	for len(dst) > 0 {
		n := copy(dst, w.buffer[start:])
		dst = dst[n:]
		start = 0
	}
}

// history returns how many bytes behind the cursor may be referenced.
func (w *slidingWindow) history() int {
	if w.written >= WindowSize {
		return WindowSize
	}

	return int(w.written)
}

// positionBehind returns the ring position distance bytes behind the cursor.
func (w *slidingWindow) positionBehind(distance int) int {
	return (w.pos - distance + WindowSize) & (WindowSize - 1)
}
