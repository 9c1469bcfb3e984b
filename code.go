// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/adc

package adc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// codeKind classifies a compressed code by its control byte.
type codeKind uint8

const (
	codeLiteral codeKind = iota
	codeSmallMatch
	codeLargeMatch
)

// String implements fmt.Stringer.
func (k codeKind) String() string {
	switch k {
	case codeLiteral:
		return "literal"
	case codeSmallMatch:
		return "small-match"
	case codeLargeMatch:
		return "large-match"
	default:
		return fmt.Sprintf("codeKind(%d)", uint8(k))
	}
}

// code is one decoded instruction. It is only valid for the step that parsed it.
type code struct {
	kind    codeKind
	length  int    // output bytes produced by the code
	offset  int    // coded offset; matches only
	literal []byte // literal payload; literals only
}

// distance returns the back-reference distance. The format stores distance-1.
func (c code) distance() int {
	return c.offset + 1
}

// codeParser reads codes from the compressed stream and charges every consumed
// byte against the remaining budget.
type codeParser struct {
	src       io.Reader
	remaining int64 // budget left
	consumed  int64 // bytes read from src
	extra     [2]byte
}

// next parses one code. Literal payloads are read into buf, which must hold
// at least maxLiteralLen bytes. The caller guarantees remaining > 0.
func (p *codeParser) next(buf []byte) (code, error) {
	if err := p.read(p.extra[:1]); err != nil {
		return code{}, err
	}
	c0 := p.extra[0]
	p.remaining--

	switch {
	case c0&literalFlag != 0:
		n := int(c0&literalLenMask) + minLiteralLen
		if int64(n) > p.remaining {
			return code{}, fmt.Errorf("%w: literal of %d bytes with %d remaining", ErrBudgetExceeded, n, p.remaining)
		}

		lit := buf[:n]
		if err := p.read(lit); err != nil {
			return code{}, err
		}
		p.remaining -= int64(n)

		return code{kind: codeLiteral, length: n, literal: lit}, nil

	case c0&largeMatchFlag != 0:
		if p.remaining < 2 {
			return code{}, fmt.Errorf("%w: large match offset with %d remaining", ErrBudgetExceeded, p.remaining)
		}

		if err := p.read(p.extra[:2]); err != nil {
			return code{}, err
		}
		p.remaining -= 2

		return code{
			kind:   codeLargeMatch,
			length: int(c0&largeMatchLenMask) + minLargeMatchLen,
			offset: int(binary.BigEndian.Uint16(p.extra[:2])),
		}, nil

	default:
		if p.remaining < 1 {
			return code{}, fmt.Errorf("%w: small match offset with %d remaining", ErrBudgetExceeded, p.remaining)
		}

		if err := p.read(p.extra[:1]); err != nil {
			return code{}, err
		}
		p.remaining--

		return code{
			kind:   codeSmallMatch,
			length: int(c0&smallMatchLenMask)>>2 + minSmallMatchLen,
			offset: int(c0&smallMatchOffMask)<<8 | int(p.extra[0]),
		}, nil
	}
}

// read fills dst from the source, mapping end of input to ErrTruncatedInput.
func (p *codeParser) read(dst []byte) error {
	n, err := io.ReadFull(p.src, dst)
	p.consumed += int64(n)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: wanted %d bytes at input offset %d, got %d", ErrTruncatedInput, len(dst), p.consumed-int64(n), n)
	}

	return fmt.Errorf("%w: %w", ErrTruncatedInput, err)
}
