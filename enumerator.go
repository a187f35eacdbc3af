package mih

// ballShell is a lazy, allocation-free cursor over every b-bit mask of
// popcount exactly d, produced in ascending numeric order via Gosper's hack.
// It is the iterator/cursor pattern component D calls for: a small state
// object with a next() that returns either a mask or end-of-sequence,
// instead of materializing the C(b, d) masks up front.
type ballShell struct {
	mask       uint64 // current combination; not meaningful once exhausted
	limit      uint64 // 2^b, one past the highest b-bit pattern (1 marks the d == 0 cursor)
	exhausted  bool
	blockWidth int
}

// newBallShell starts a cursor over all masks of popcount d within a
// b-bit block. d == 0 yields the single all-zero mask (center-only probe).
func newBallShell(blockWidth, d int) ballShell {
	if d == 0 {
		return ballShell{mask: 0, limit: 1, blockWidth: blockWidth}
	}
	if d > blockWidth {
		return ballShell{exhausted: true, blockWidth: blockWidth}
	}
	// The smallest d-bit combination: d ones in the low bits.
	start := (uint64(1) << uint(d)) - 1
	return ballShell{
		mask:       start,
		limit:      uint64(1) << uint(blockWidth),
		blockWidth: blockWidth,
	}
}

// next returns the current mask and advances the cursor via Gosper's hack.
// ok is false once the sequence is exhausted (including the degenerate
// d == 0 case after its single value has been consumed).
func (g *ballShell) next() (mask uint64, ok bool) {
	if g.exhausted {
		return 0, false
	}
	mask = g.mask
	if mask == 0 && g.limit == 1 {
		// d == 0: single value, then done.
		g.exhausted = true
		return mask, true
	}
	if mask >= g.limit {
		g.exhausted = true
		return 0, false
	}
	// Gosper's hack: lowest set bit, ripple carry, restore trailing ones.
	c := mask & -mask
	r := mask + c
	g.mask = (((r ^ mask) >> 2) / c) | r
	if g.mask >= g.limit {
		g.exhausted = true
	}
	return mask, true
}

// countShell returns C(blockWidth, d), the number of masks ballShell would
// produce for the given parameters.
func countShell(blockWidth, d int) uint64 {
	if d < 0 || d > blockWidth {
		return 0
	}
	return binomial(blockWidth, d)
}

func binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := 0; i < k; i++ {
		result = result * uint64(n-i) / uint64(i+1)
	}
	return result
}
