// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

/*
Package adc implements decompression of the LZ-style codec used for the data
region of compressed DiskCopy-era HFS disk images (the Apple Data Compression
opcode layout).

Each code starts with a control byte:

	1LLLLLLL             literal, L+1 bytes (1..128) follow verbatim
	01LLLLLL  HHHHHHHH LLLLLLLL
	                     match, length L+4 (4..67), 16-bit big-endian offset
	00LLLLOO  OOOOOOOO   match, length L+3 (3..18), 10-bit offset

The back-reference distance is offset+1 and reaches at most 64 KiB back into
the output. A match may be longer than its distance, in which case it repeats
the last distance bytes (distance 1 is a run of one byte).

The run is bounded by a budget: the size of the compressed span. Every input
byte consumed (control, offset and literal bytes) is charged against it and
decoding stops exactly when it is spent. A code that does not fit the
remaining budget is ErrBudgetExceeded; an input that ends early is
ErrTruncatedInput.

# Decompress

From a byte slice holding exactly the compressed span:

	out, err := adc.Decompress(span, nil)

With an explicit budget, and the number of input bytes consumed:

	out, nRead, err := adc.DecompressN(src, adc.DefaultDecompressOptions(spanLen))

Streaming into a writer (nothing is buffered beyond one code):

	n, err := adc.DecompressTo(w, bufio.NewReader(r), adc.DefaultDecompressOptions(spanLen))

As an io.Reader:

	zr, err := adc.NewReader(r, adc.DefaultDecompressOptions(spanLen))
	if err != nil {
		return err
	}
	defer zr.Close()
	_, err = io.Copy(w, zr)

The hfsimage subpackage locates the compressed span inside an image and
expands whole images.
*/
package adc
