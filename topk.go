package mih

// TopKSearcher owns the per-query scratch state needed to run top-K
// queries against an Index (component H): the dedup stamp set from
// component G, plus W+1 distance bins. Create one per goroutine via
// Index.TopKSearcher; a single TopKSearcher must not be used concurrently
// from multiple goroutines.
type TopKSearcher[T Code] struct {
	idx     *Index[T]
	stamps  *stampSet
	offsets []int
	bins    [][]uint32 // bins[d] holds ids verified at Hamming distance d
}

// TopKSearcher returns a new TopKSearcher bound to idx, with its own
// scratch state.
func (idx *Index[T]) TopKSearcher() *TopKSearcher[T] {
	return &TopKSearcher[T]{
		idx:     idx,
		stamps:  newStampSet(idx.Len()),
		offsets: idx.blockOffsetsView(),
		bins:    make([][]uint32, idx.Width()+1),
	}
}

// Run returns the K ids with smallest Hamming distance to q, sorted by
// (distance, id) ascending. K must satisfy 1 <= K <= N, or Run returns an
// *Error of kind InvalidQueryParam.
func (ts *TopKSearcher[T]) Run(q T, k int) ([]uint32, error) {
	n := ts.idx.Len()
	if k < 1 || k > n {
		return nil, newErrorf(InvalidQueryParam, "k=%d must satisfy 1 <= k <= %d", k, n)
	}

	w := ts.idx.Width()
	m := ts.idx.m

	ts.stamps.reset()
	for i := range ts.bins {
		ts.bins[i] = ts.bins[i][:0]
	}

	for d := 0; ; d++ {
		for i := 0; i < m; i++ {
			bw := ts.idx.widths[i]
			if d > bw {
				continue // this block's shell at depth d is empty
			}
			qi := extractBlock(q, ts.offsets[i], bw)
			table := ts.idx.tables[i]
			shell := newBallShell(bw, d)
			for {
				maskBits, ok := shell.next()
				if !ok {
					break
				}
				v := composeWithFlip(qi, maskBits, bw)
				for _, id := range table.get(v) {
					if ts.stamps.tryMark(id) {
						dist := hamming(ts.idx.codes[id], q)
						ts.bins[dist] = append(ts.bins[dist], id)
					}
				}
			}
		}

		sealed := m * d
		if sealed > w {
			sealed = w
		}
		verified := 0
		for dist := 0; dist <= sealed; dist++ {
			verified += len(ts.bins[dist])
		}
		if m*d >= w || verified >= k {
			break
		}
	}

	result := make([]uint32, 0, k)
	for dist := 0; dist <= w && len(result) < k; dist++ {
		sortUint32(ts.bins[dist])
		for _, id := range ts.bins[dist] {
			if len(result) >= k {
				break
			}
			result = append(result, id)
		}
	}
	return result, nil
}
