// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package hfsimage

import "log/slog"

// DefaultBufferSize is the default read buffer for the compressed span.
const DefaultBufferSize = 64 << 10

// Option configures Expand.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	bufferSize       int
	expectedDataSize int64
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:     slog.New(slog.DiscardHandler),
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger for expansion progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBufferSize sets the read buffer size. Values below 16 use the bufio minimum.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// WithExpectedDataSize requires the decoded data region to be exactly n bytes.
func WithExpectedDataSize(n int64) Option {
	return func(c *config) {
		c.expectedDataSize = n
	}
}
