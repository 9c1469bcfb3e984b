// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package hfsimage

import (
	"bufio"
	"context"
	_ "crypto/sha256" // registers the digest.Canonical hash
	"fmt"
	"io"
	"log/slog"

	"github.com/opencontainers/go-digest"

	"github.com/woozymasta/adc"
)

// Result describes a finished expansion.
type Result struct {
	Layout   Layout
	DataSize int64         // decoded size of the data region
	Written  int64         // total bytes written to dst
	Digest   digest.Digest // digest of everything written to dst
}

// Expand writes the uncompressed form of the image in src to dst: the prefix
// before the compressed span verbatim, the decoded span, then the alternate MDB.
//
// On error dst holds a partial image that the caller should discard.
func Expand(ctx context.Context, src io.ReaderAt, size int64, dst io.Writer, opts ...Option) (Result, error) {
	cfg := newConfig(opts)

	layout, err := Locate(src, size)
	if err != nil {
		return Result{}, err
	}
	cfg.logger.Debug("hfsimage: layout located",
		slog.Int64("data_start", layout.DataStart),
		slog.Int64("data_end", layout.DataEnd),
		slog.Int("alloc_blocks", int(layout.MDB.NumAllocBlocks)),
		slog.Int64("alloc_block_size", int64(layout.MDB.AllocBlockSize)))

	digester := digest.Canonical.Digester()
	out := io.MultiWriter(dst, digester.Hash())
	res := Result{Layout: layout}
	buf := make([]byte, 32<<10)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	n, err := copySection(out, src, 0, layout.DataStart, buf)
	res.Written += n
	if err != nil {
		return res, fmt.Errorf("copy prefix: %w", err)
	}

	span := io.NewSectionReader(src, layout.DataStart, layout.CompressedSize())
	n, err = adc.DecompressTo(out, bufio.NewReaderSize(&contextReader{ctx: ctx, r: span}, cfg.bufferSize), &adc.DecompressOptions{
		Budget:         layout.CompressedSize(),
		ExpectedOutLen: cfg.expectedDataSize,
		Logger:         cfg.logger,
	})
	res.Written += n
	res.DataSize = n
	if err != nil {
		return res, fmt.Errorf("decompress data region: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	n, err = copySection(out, src, layout.AltMDBOffset, BlockSize, buf)
	res.Written += n
	if err != nil {
		return res, fmt.Errorf("copy alternate MDB: %w", err)
	}

	res.Digest = digester.Digest()
	cfg.logger.Debug("hfsimage: image expanded",
		slog.Int64("written", res.Written),
		slog.Int64("data_size", res.DataSize),
		slog.String("digest", res.Digest.String()))

	return res, nil
}

// copySection copies exactly n bytes at off from src to w.
func copySection(w io.Writer, src io.ReaderAt, off, n int64, buf []byte) (int64, error) {
	copied, err := io.CopyBuffer(w, io.NewSectionReader(src, off, n), buf)
	if err != nil {
		return copied, err
	}
	if copied != n {
		return copied, fmt.Errorf("%w: %d of %d bytes at %d", ErrShortCopy, copied, n, off)
	}

	return copied, nil
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

// Read returns ctx.Err() once ctx is done and reads from the wrapped reader otherwise.
func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	return r.r.Read(p)
}
