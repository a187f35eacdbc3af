package mih

// RangeSearcher owns the per-query scratch state (stamp array) needed to
// run range queries against an Index (component G). Create one per
// goroutine via Index.RangeSearcher; a single RangeSearcher must not be
// used concurrently from multiple goroutines, but the Index it was created
// from may back any number of independent RangeSearchers.
type RangeSearcher[T Code] struct {
	idx     *Index[T]
	stamps  *stampSet
	offsets []int
}

// RangeSearcher returns a new RangeSearcher bound to idx, with its own
// scratch state.
func (idx *Index[T]) RangeSearcher() *RangeSearcher[T] {
	return &RangeSearcher[T]{
		idx:     idx,
		stamps:  newStampSet(idx.Len()),
		offsets: idx.blockOffsetsView(),
	}
}

// Run returns every id j with Hamming(codes[j], q) <= r, sorted ascending
// with no duplicates. r > W is clamped to W (returning every id); r < 0 is
// an *Error of kind InvalidQueryParam.
func (rs *RangeSearcher[T]) Run(q T, r int) ([]uint32, error) {
	if r < 0 {
		return nil, newErrorf(InvalidQueryParam, "range radius %d must be >= 0", r)
	}
	w := rs.idx.Width()
	if r > w {
		r = w
	}
	if r == w {
		return rs.idx.allIDs(), nil
	}

	rs.stamps.reset()
	m := rs.idx.m
	perBlockR := r / m

	for i := 0; i < m; i++ {
		bw := rs.idx.widths[i]
		qi := extractBlock(q, rs.offsets[i], bw)
		maxD := perBlockR
		if maxD > bw {
			maxD = bw
		}
		table := rs.idx.tables[i]
		for d := 0; d <= maxD; d++ {
			shell := newBallShell(bw, d)
			for {
				maskBits, ok := shell.next()
				if !ok {
					break
				}
				v := composeWithFlip(qi, maskBits, bw)
				for _, id := range table.get(v) {
					rs.stamps.tryMark(id)
				}
			}
		}
	}

	survivors := make([]uint32, 0, len(rs.stamps.touched))
	for _, id := range rs.stamps.touched {
		if hamming(rs.idx.codes[id], q) <= r {
			survivors = append(survivors, id)
		}
	}
	sortUint32(survivors)
	return survivors, nil
}
