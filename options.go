// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import "log/slog"

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// Budget is the size of the compressed span. Every consumed input byte
	// (control, offset and literal bytes alike) is charged against it and the
	// run ends successfully when it reaches zero. Decompress and DecompressN
	// use len(src) when Budget is 0.
	Budget int64
	// ExpectedOutLen, when > 0, requires the run to produce exactly this many bytes.
	ExpectedOutLen int64
	// Logger receives debug records about the run. nil disables logging.
	Logger *slog.Logger
}

// DefaultDecompressOptions returns options with the given budget, no output size check
// and no logging.
func DefaultDecompressOptions(budget int64) *DecompressOptions {
	return &DecompressOptions{Budget: budget}
}

// logger returns the configured logger or a discarding one.
func (o *DecompressOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
