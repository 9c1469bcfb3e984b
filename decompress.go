// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// runState is the state of a decompression run.
type runState uint8

const (
	stateRunning runState = iota
	stateDone
	stateFailed
)

// Decompress decompresses src. Budget defaults to len(src) when opts is nil or opts.Budget is 0.
// Bytes after the budget are ignored.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressN decompresses src and also returns the number of input bytes consumed,
// which equals the budget on success. nRead is 0 on error.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	resolved := DecompressOptions{Budget: int64(len(src))}
	if opts != nil {
		resolved = *opts
		if resolved.Budget == 0 {
			resolved.Budget = int64(len(src))
		}
	}

	var out bytes.Buffer
	if resolved.ExpectedOutLen > 0 {
		out.Grow(int(min(resolved.ExpectedOutLen, 64<<20)))
	} else {
		out.Grow(len(src) * 2)
	}

	r := bytes.NewReader(src)
	if _, err := decompressStream(&out, r, &resolved); err != nil {
		return nil, 0, err
	}

	return out.Bytes(), len(src) - r.Len(), nil
}

// DecompressTo decodes opts.Budget compressed bytes from r and writes the output to w
// in order. It returns the number of bytes written. r is read exactly as far as the
// decoded codes require; wrap it in a bufio.Reader for unbuffered sources.
//
// On error the bytes already written to w are incomplete and should be discarded.
func DecompressTo(w io.Writer, r io.Reader, opts *DecompressOptions) (int64, error) {
	if opts == nil {
		return 0, ErrOptionsRequired
	}

	return decompressStream(w, r, opts)
}

// decompressStream runs the decode loop: parse, emit, insert.
func decompressStream(w io.Writer, r io.Reader, opts *DecompressOptions) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	d, err := newDecoder(r, opts)
	if err != nil {
		return 0, err
	}
	defer d.release()

	var written int64
	for {
		chunk, err := d.next()
		if errors.Is(err, io.EOF) {
			return written, nil
		}
		if err != nil {
			return written, err
		}

		n, err := w.Write(chunk)
		written += int64(n)
		if err == nil && n < len(chunk) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return written, d.fail(fmt.Errorf("%w: %w", ErrSinkWrite, err))
		}

		d.commit(chunk)
	}
}

// decoder holds the state of one decompression run.
type decoder struct {
	parser   codeParser
	window   *slidingWindow
	chunk    [maxChunkLen]byte
	state    runState
	err      error
	expected int64
	produced int64
	codes    int64
	logger   *slog.Logger
}

// newDecoder validates opts and acquires a window for the run.
func newDecoder(r io.Reader, opts *DecompressOptions) (*decoder, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	if opts.Budget < 0 {
		return nil, ErrNegativeBudget
	}

	d := &decoder{
		parser:   codeParser{src: r, remaining: opts.Budget},
		window:   acquireSlidingWindow(),
		expected: opts.ExpectedOutLen,
		logger:   opts.logger(),
	}
	d.logger.Debug("adc: run started",
		slog.Int64("budget", opts.Budget),
		slog.Int64("expected_out_len", opts.ExpectedOutLen))

	return d, nil
}

// next decodes the next chunk. The chunk is valid until the following call.
// It returns io.EOF once the budget is spent. The caller must commit the chunk
// after emitting it.
func (d *decoder) next() ([]byte, error) {
	switch d.state {
	case stateDone:
		return nil, io.EOF
	case stateFailed:
		return nil, d.err
	}

	if d.parser.remaining == 0 {
		if d.expected > 0 && d.produced != d.expected {
			return nil, d.fail(fmt.Errorf("%w: produced %d bytes, expected %d", ErrOutputSizeMismatch, d.produced, d.expected))
		}

		d.state = stateDone
		d.logger.Debug("adc: run finished",
			slog.Int64("codes", d.codes),
			slog.Int64("consumed", d.parser.consumed),
			slog.Int64("produced", d.produced))

		return nil, io.EOF
	}

	c, err := d.parser.next(d.chunk[:])
	if err != nil {
		return nil, d.fail(err)
	}
	d.codes++

	chunk := c.literal
	if c.kind != codeLiteral {
		chunk = d.chunk[:c.length]
		if err := expandMatch(d.window, chunk, c.distance()); err != nil {
			return nil, d.fail(fmt.Errorf("%s at input offset %d: %w", c.kind, d.parser.consumed, err))
		}
	}

	if d.expected > 0 && d.produced+int64(len(chunk)) > d.expected {
		return nil, d.fail(fmt.Errorf("%w: output exceeds %d bytes", ErrOutputSizeMismatch, d.expected))
	}

	return chunk, nil
}

// commit records an emitted chunk in the window.
func (d *decoder) commit(chunk []byte) {
	d.window.insert(chunk)
	d.produced += int64(len(chunk))
}

// fail moves the run to the failed state and returns err.
func (d *decoder) fail(err error) error {
	d.state = stateFailed
	d.err = err
	d.logger.Debug("adc: run failed",
		slog.Int64("codes", d.codes),
		slog.Int64("consumed", d.parser.consumed),
		slog.Int64("produced", d.produced),
		slog.Any("error", err))

	return err
}

// release returns the window to the pool. It is safe to call more than once.
func (d *decoder) release() {
	releaseSlidingWindow(d.window)
	d.window = nil
}
