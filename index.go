package mih

import "sort"

// Index is an immutable multi-index-hash database of N W-bit codes, split
// into m per-block sparse tables (component F). It is built once via Build
// and is safe to share across any number of concurrent searchers, each of
// which owns its own scratch state (see RangeSearcher, TopKSearcher).
type Index[T Code] struct {
	codes  []T // the retained original code array, for exact verification
	m      int
	widths []int // b_0..b_{m-1}, cached per-block widths
	tables []sparseTable
}

// Build constructs an Index from codes. If m is 0, the optimal-m chooser
// (component E) picks m automatically; otherwise m must satisfy 1 <= m <= W
// or Build returns an *Error of kind InvalidM. Build returns an *Error of
// kind EmptyInput if codes is empty.
func Build[T Code](codes []T, m int) (*Index[T], error) {
	n := len(codes)
	if n == 0 {
		return nil, newError(EmptyInput, "build requires at least one code")
	}

	w := width[T]()
	if m == 0 {
		m = chooseM(n, w)
	} else if m < 1 || m > w {
		return nil, newErrorf(InvalidM, "m=%d must satisfy 1 <= m <= %d", m, w)
	}

	widths := blockWidths(w, m)
	offsets := blockOffsets(widths)

	tables := make([]sparseTable, m)
	for i := 0; i < m; i++ {
		values := make([]uint64, n)
		for j, code := range codes {
			values[j] = extractBlock(code, offsets[i], widths[i])
		}
		tables[i] = buildSparseTable(values, widths[i])
	}

	return &Index[T]{
		codes:  append([]T(nil), codes...),
		m:      m,
		widths: widths,
		tables: tables,
	}, nil
}

// Len returns N, the number of codes in the index.
func (idx *Index[T]) Len() int { return len(idx.codes) }

// Width returns W, the bit width of a code.
func (idx *Index[T]) Width() int { return width[T]() }

// Blocks returns m, the number of blocks the index was built with.
func (idx *Index[T]) Blocks() int { return idx.m }

// Code returns the code stored at id. It panics if id is out of range, the
// same way indexing codes directly would.
func (idx *Index[T]) Code(id uint32) T { return idx.codes[id] }

// blockOffsetsView recomputes the bit offsets of each block from the cached
// widths; it is cheap (O(m)) and avoids storing a third parallel slice.
func (idx *Index[T]) blockOffsetsView() []int {
	return blockOffsets(idx.widths)
}

// allIDs returns every id [0, N) in ascending order. Used by range(q, W)
// (edge case: a radius covering the whole code space).
func (idx *Index[T]) allIDs() []uint32 {
	ids := make([]uint32, idx.Len())
	for i := range ids {
		ids[i] = uint32(i)
	}
	return ids
}

// sortUint32 sorts ids ascending in place. Small helper kept separate so
// call sites read as intent ("sort the survivors") rather than an inline
// sort.Slice closure repeated at each call site.
func sortUint32(ids []uint32) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
