package adc

import (
	"bytes"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeParser_Classification(t *testing.T) {
	tests := []struct {
		name   string
		src    []byte
		kind   codeKind
		length int
		offset int
	}{
		{name: "literal-min", src: []byte{0x80, 'x'}, kind: codeLiteral, length: 1},
		{name: "literal-max", src: append([]byte{0xFF}, bytes.Repeat([]byte{'y'}, 128)...), kind: codeLiteral, length: 128},
		{name: "large-min", src: []byte{0x40, 0x12, 0x34}, kind: codeLargeMatch, length: 4, offset: 0x1234},
		{name: "large-max", src: []byte{0x7F, 0xFF, 0xFF}, kind: codeLargeMatch, length: 67, offset: 0xFFFF},
		{name: "small-min", src: []byte{0x00, 0x00}, kind: codeSmallMatch, length: 3, offset: 0},
		{name: "small-max", src: []byte{0x3F, 0xFF}, kind: codeSmallMatch, length: 18, offset: 1023},
		{name: "small-high-offset-bits", src: []byte{0x03, 0x00}, kind: codeSmallMatch, length: 3, offset: 768},
		{name: "small-length-bits", src: []byte{0x24, 0x10}, kind: codeSmallMatch, length: 12, offset: 0x10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := codeParser{src: bytes.NewReader(tt.src), remaining: int64(len(tt.src))}
			var buf [maxChunkLen]byte

			c, err := p.next(buf[:])
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.kind)
			assert.Equal(t, tt.length, c.length)
			assert.Equal(t, int64(0), p.remaining)
			assert.Equal(t, int64(len(tt.src)), p.consumed)

			if tt.kind == codeLiteral {
				assert.Equal(t, tt.src[1:], c.literal)
			} else {
				assert.Equal(t, tt.offset, c.offset)
				assert.Equal(t, tt.offset+1, c.distance())
			}
		})
	}
}

func TestCodeParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		budget  int64
		wantErr error
	}{
		{name: "no-control-byte", src: nil, budget: 1, wantErr: ErrTruncatedInput},
		{name: "literal-short", src: []byte{0x82, 'a'}, budget: 4, wantErr: ErrTruncatedInput},
		{name: "literal-over-budget", src: []byte{0x82, 'a', 'b', 'c'}, budget: 3, wantErr: ErrBudgetExceeded},
		{name: "large-offset-short", src: []byte{0x40, 0x00}, budget: 3, wantErr: ErrTruncatedInput},
		{name: "large-offset-over-budget", src: []byte{0x40, 0x00, 0x00}, budget: 2, wantErr: ErrBudgetExceeded},
		{name: "small-offset-short", src: []byte{0x00}, budget: 2, wantErr: ErrTruncatedInput},
		{name: "small-offset-over-budget", src: []byte{0x00, 0x00}, budget: 1, wantErr: ErrBudgetExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := codeParser{src: bytes.NewReader(tt.src), remaining: tt.budget}
			var buf [maxChunkLen]byte

			_, err := p.next(buf[:])
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCodeParser_ReadErrorIsTruncation(t *testing.T) {
	p := codeParser{src: iotest.ErrReader(iotest.ErrTimeout), remaining: 10}
	var buf [maxChunkLen]byte

	_, err := p.next(buf[:])
	require.ErrorIs(t, err, ErrTruncatedInput)
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestCodeKind_String(t *testing.T) {
	assert.Equal(t, "literal", codeLiteral.String())
	assert.Equal(t, "small-match", codeSmallMatch.String())
	assert.Equal(t, "large-match", codeLargeMatch.String())
	assert.Equal(t, "codeKind(9)", codeKind(9).String())
}
