// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

/*
Package hfsimage expands compressed DiskCopy-era HFS volume images.

Such an image keeps the leading allocation area verbatim, compresses the data
region with the codec implemented by package adc, and ends with the 512-byte
alternate Master Directory Block (MDB). The MDB fields locate the span:

	data start = FirstAllocBlock * AllocBlockSize
	data end   = offset of the alternate MDB (size - 512)

Expand copies the prefix, decodes the span and copies the alternate MDB:

	f, err := os.Open("disk.img")
	...
	st, _ := f.Stat()
	res, err := hfsimage.Expand(ctx, f, st.Size(), out)
	fmt.Println(res.Digest)
*/
package hfsimage
