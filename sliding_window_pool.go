// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import "sync"

// slidingWindowPool is a pool of 64 KiB decode windows.
var slidingWindowPool = sync.Pool{
	New: func() any {
		return &slidingWindow{}
	},
}

// acquireSlidingWindow acquires a rewound window from the pool.
func acquireSlidingWindow() *slidingWindow {
	w := slidingWindowPool.Get().(*slidingWindow)
	w.reset()
	return w
}

// releaseSlidingWindow returns a window to the pool.
func releaseSlidingWindow(w *slidingWindow) {
	if w == nil {
		return
	}

	slidingWindowPool.Put(w)
}
