package mih

// sparseTable is a compact CSR-style map from a block value v in
// [0, 2^blockWidth) to the sorted ascending list of database ids whose
// block equals v. It is built with a two-pass counting sort: tally bucket
// sizes, prefix-sum into offsets, then scatter ids — the same shape as the
// counting-sort bucket construction the teacher library uses to lay out
// symbols by length group in Table.finalize, generalized here from 8
// length-buckets to 2^blockWidth value-buckets.
type sparseTable struct {
	offsets []uint32 // len == 2^blockWidth + 1, monotonically non-decreasing
	ids     []uint32 // len == N, ids concatenated in bucket order
}

// buildSparseTable constructs a sparseTable from N (id, value) pairs, where
// values[j] is the block value contributed by id j, 0 <= values[j] < 2^blockWidth.
func buildSparseTable(values []uint64, blockWidth int) sparseTable {
	numBuckets := int(uint64(1) << uint(blockWidth))
	n := len(values)

	// Pass 1: tally bucket sizes.
	counts := make([]uint32, numBuckets+1)
	for _, v := range values {
		counts[v+1]++
	}

	// Pass 2: prefix-sum into offsets. offsets[0] = 0, offsets[numBuckets] = N.
	for i := 1; i <= numBuckets; i++ {
		counts[i] += counts[i-1]
	}
	offsets := counts // counts now holds the final offsets array

	// Pass 3: scatter ids into bucket order using a cursor copy so offsets
	// itself is left untouched for the caller.
	cursor := make([]uint32, numBuckets)
	copy(cursor, offsets[:numBuckets])
	ids := make([]uint32, n)
	for id, v := range values {
		pos := cursor[v]
		ids[pos] = uint32(id)
		cursor[v]++
	}

	return sparseTable{offsets: offsets, ids: ids}
}

// get returns the ids whose block value equals v. The returned slice aliases
// the table's backing array and must not be mutated or retained past the
// table's lifetime assumptions (it is immutable once built).
func (t sparseTable) get(v uint64) []uint32 {
	return t.ids[t.offsets[v]:t.offsets[v+1]]
}

// numBuckets returns 2^blockWidth, the number of buckets in the table.
func (t sparseTable) numBuckets() int {
	return len(t.offsets) - 1
}

// total returns the number of id entries held across all buckets, which
// must equal N (invariant 8).
func (t sparseTable) total() int {
	return len(t.ids)
}
