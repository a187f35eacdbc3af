package mih

import "testing"

func TestBuildEmptyInput(t *testing.T) {
	_, err := Build[uint64](nil, 0)
	var mErr *Error
	if err == nil {
		t.Fatalf("expected EmptyInput error")
	}
	if !asError(err, &mErr) || mErr.Kind != EmptyInput {
		t.Fatalf("expected EmptyInput, got %v", err)
	}
}

func TestBuildInvalidM(t *testing.T) {
	codes := []uint64{1, 2, 3}
	for _, m := range []int{-1, 65, 100} {
		_, err := Build(codes, m)
		var mErr *Error
		if !asError(err, &mErr) || mErr.Kind != InvalidM {
			t.Fatalf("m=%d: expected InvalidM, got %v", m, err)
		}
	}
}

func TestBuildValidMRange(t *testing.T) {
	codes := []uint64{1, 2, 3, 4}
	for m := 1; m <= 64; m++ {
		idx, err := Build(codes, m)
		if err != nil {
			t.Fatalf("m=%d: unexpected error %v", m, err)
		}
		if idx.Blocks() != m {
			t.Fatalf("m=%d: idx.Blocks()=%d", m, idx.Blocks())
		}
	}
}

func TestBuildChooserPicksValidM(t *testing.T) {
	codes := []uint64{1, 2, 3, 4, 5}
	idx, err := Build(codes, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Blocks() < 1 || idx.Blocks() > 64 {
		t.Fatalf("chooser picked m=%d out of bounds", idx.Blocks())
	}
}

func TestIndexLenWidthBlocks(t *testing.T) {
	codes := []uint32{10, 20, 30}
	idx, err := Build(codes, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", idx.Len())
	}
	if idx.Width() != 32 {
		t.Fatalf("Width()=%d, want 32", idx.Width())
	}
	if idx.Blocks() != 4 {
		t.Fatalf("Blocks()=%d, want 4", idx.Blocks())
	}
}

func TestIndexCode(t *testing.T) {
	codes := []uint8{1, 2, 3}
	idx, err := Build(codes, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range codes {
		if idx.Code(uint32(i)) != c {
			t.Fatalf("Code(%d)=%d, want %d", i, idx.Code(uint32(i)), c)
		}
	}
}

func TestSparseTablesCoverAllIDs(t *testing.T) {
	// Invariant 8: for every block's table, total ids across buckets == N.
	codes := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	idx, err := Build(codes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, table := range idx.tables {
		if table.total() != len(codes) {
			t.Fatalf("block %d: total=%d, want %d", i, table.total(), len(codes))
		}
	}
}

// asError is a tiny errors.As helper used to keep tests terse; defined here
// instead of importing "errors" into every test file for a single call.
func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
