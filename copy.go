// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import "fmt"

// expandMatch fills dst with the back-reference of the given distance.
//
// When len(dst) > distance the reference overlaps the bytes being produced, so
// the result is the last distance bytes of history repeated with period
// distance. Reading the same distance bytes from the window again and again
// gives exactly that without inserting dst first.
func expandMatch(w *slidingWindow, dst []byte, distance int) error {
	if distance <= 0 || distance > WindowSize {
		return fmt.Errorf("%w: distance %d outside window", ErrInvalidDistance, distance)
	}

	if distance > w.history() {
		return fmt.Errorf("%w: distance %d with %d bytes of history", ErrInvalidDistance, distance, w.history())
	}

	readPos := w.positionBehind(distance)
	for len(dst) > distance {
		w.readAt(readPos, dst[:distance])
		dst = dst[distance:]
	}

	w.readAt(readPos, dst)

	return nil
}
