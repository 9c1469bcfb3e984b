// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import (
	"bytes"
	"errors"
	"io"
)

// errReaderClosed is returned by Read after Close.
var errReaderClosed = errors.New("adc: read on closed reader")

// Reader decodes a compressed span lazily, one code per refill.
// It returns io.EOF once opts.Budget input bytes have been decoded.
type Reader struct {
	dec     *decoder
	pending []byte
	err     error
}

// NewReader returns a Reader decoding opts.Budget bytes of r.
// Call Close to return the window early if the stream is not read to the end.
func NewReader(r io.Reader, opts *DecompressOptions) (*Reader, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	dec, err := newDecoder(r, opts)
	if err != nil {
		return nil, err
	}

	return &Reader{dec: dec}, nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		chunk, err := r.dec.next()
		if err != nil {
			r.err = err
			r.dec.release()
			continue
		}

		r.dec.commit(chunk)
		r.pending = chunk
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]

	return n, nil
}

// Consumed returns the number of compressed bytes read so far.
func (r *Reader) Consumed() int64 {
	return r.dec.parser.consumed
}

// Close releases the decode window. Read returns an error afterwards unless the
// stream already ended.
func (r *Reader) Close() error {
	if r.err == nil {
		r.err = errReaderClosed
	}
	r.pending = nil
	r.dec.release()

	return nil
}

// DecompressFromReader decodes opts.Budget compressed bytes from r into a new buffer.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	var out bytes.Buffer
	if _, err := decompressStream(&out, r, opts); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
