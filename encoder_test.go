package adc

// Test-only greedy encoder used to build round-trip fixtures.

// appendLiterals appends lit as literal codes of at most maxLiteralLen bytes.
func appendLiterals(dst, lit []byte) []byte {
	for len(lit) > 0 {
		n := min(len(lit), maxLiteralLen)
		dst = append(dst, literalFlag|byte(n-minLiteralLen))
		dst = append(dst, lit[:n]...)
		lit = lit[n:]
	}

	return dst
}

// appendMatch appends one match code. Short near matches use the 2-byte form.
func appendMatch(dst []byte, length, distance int) []byte {
	offset := distance - 1
	if offset <= maxSmallMatchOffset && length <= maxSmallMatchLen {
		return append(dst,
			byte((length-minSmallMatchLen)<<2|offset>>8),
			byte(offset),
		)
	}

	return append(dst,
		largeMatchFlag|byte(length-minLargeMatchLen),
		byte(offset>>8),
		byte(offset),
	)
}

// encodable reports whether a match can be expressed by one code.
func encodable(length, distance int) bool {
	if length < minSmallMatchLen || distance < 1 || distance > WindowSize {
		return false
	}
	if length == minSmallMatchLen {
		return distance-1 <= maxSmallMatchOffset
	}

	return true
}

// matchLen counts matching bytes at pos against pos-distance, overlap included.
func matchLen(src []byte, pos, distance, limit int) int {
	n := 0
	for n < limit && pos+n < len(src) && src[pos+n] == src[pos+n-distance] {
		n++
	}

	return n
}

func hashKey(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// encodeForTest compresses src. The result decodes with Budget = len(result).
func encodeForTest(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/maxLiteralLen+16)
	last := make(map[uint32]int)

	remember := func(pos int) {
		if pos+3 <= len(src) {
			last[hashKey(src[pos:])] = pos
		}
	}

	litStart := 0
	pos := 0
	for pos < len(src) {
		bestLen, bestDist := 0, 0

		if pos > 0 {
			bestLen, bestDist = matchLen(src, pos, 1, maxLargeMatchLen), 1
		}
		if pos+3 <= len(src) {
			if cand, ok := last[hashKey(src[pos:])]; ok && pos-cand <= WindowSize {
				dist := pos - cand
				if n := matchLen(src, pos, dist, maxLargeMatchLen); n > bestLen {
					bestLen, bestDist = n, dist
				}
			}
		}

		if !encodable(bestLen, bestDist) {
			remember(pos)
			pos++
			continue
		}

		out = appendLiterals(out, src[litStart:pos])
		out = appendMatch(out, bestLen, bestDist)
		for end := pos + bestLen; pos < end; pos++ {
			remember(pos)
		}
		litStart = pos
	}

	return appendLiterals(out, src[litStart:])
}
