// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package hfsimage

import "errors"

var (
	// ErrNotDiskImage is returned when the alternate MDB lacks the "BD" signature.
	ErrNotDiskImage = errors.New("not an HFS disk image")
	// ErrImageTooSmall is returned when the image cannot hold an alternate MDB.
	ErrImageTooSmall = errors.New("image too small")
	// ErrInvalidLayout is returned when the MDB describes a data region outside the image.
	ErrInvalidLayout = errors.New("invalid image layout")
	// ErrShortCopy is returned when a verbatim region could not be copied in full.
	ErrShortCopy = errors.New("short copy")
)
