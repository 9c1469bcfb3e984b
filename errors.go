// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import "errors"

// Sentinel errors for decompression. Every error is fatal to the run.
var (
	// ErrTruncatedInput is returned when the compressed stream ends before a code is complete.
	ErrTruncatedInput = errors.New("truncated compressed input")
	// ErrBudgetExceeded is returned when a code would consume more bytes than remain in the budget.
	ErrBudgetExceeded = errors.New("code exceeds remaining budget")
	// ErrSinkWrite is returned when the output sink rejects a write.
	ErrSinkWrite = errors.New("output write failed")
	// ErrInvalidDistance is returned when a back-reference points outside the window
	// or before the first decoded byte.
	ErrInvalidDistance = errors.New("invalid back-reference distance")
	// ErrOutputSizeMismatch is returned when DecompressOptions.ExpectedOutLen is set and
	// the run produces a different number of bytes.
	ErrOutputSizeMismatch = errors.New("decoded size mismatch")
	// ErrNegativeBudget is returned when DecompressOptions.Budget is negative.
	ErrNegativeBudget = errors.New("budget must be non-negative")
	// ErrOptionsRequired is returned by streaming entry points called with nil options
	// (the budget cannot be inferred from a stream).
	ErrOptionsRequired = errors.New("options required: Budget must be set")
	// ErrNilReader is returned when the compressed source is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrNilWriter is returned when the output sink is nil.
	ErrNilWriter = errors.New("writer is nil")
)
