package mih

import (
	"context"
	"testing"
)

func TestParallelRangeSearchMatchesSerial(t *testing.T) {
	var codes []uint32
	for i := uint32(0); i < 300; i++ {
		codes = append(codes, i*2246822519)
	}
	idx, err := Build(codes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	queries := []uint32{0, 111, 222, 333, 444, 0xABCD_EF01}
	got, err := idx.ParallelRangeSearch(context.Background(), queries, 5)
	if err != nil {
		t.Fatalf("ParallelRangeSearch: %v", err)
	}

	rs := idx.RangeSearcher()
	for i, q := range queries {
		want, err := rs.Run(q, 5)
		if err != nil {
			t.Fatalf("serial Run: %v", err)
		}
		if !idsEqual(got[i], want) {
			t.Fatalf("query %d: parallel=%v, serial=%v", i, got[i], want)
		}
	}
}

func TestParallelTopKMatchesSerial(t *testing.T) {
	var codes []uint32
	for i := uint32(0); i < 300; i++ {
		codes = append(codes, i*2246822519)
	}
	idx, err := Build(codes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	queries := []uint32{0, 111, 222, 333, 444, 0xABCD_EF01}
	got, err := idx.ParallelTopK(context.Background(), queries, 10)
	if err != nil {
		t.Fatalf("ParallelTopK: %v", err)
	}

	ts := idx.TopKSearcher()
	for i, q := range queries {
		want, err := ts.Run(q, 10)
		if err != nil {
			t.Fatalf("serial Run: %v", err)
		}
		if !idsEqual(got[i], want) {
			t.Fatalf("query %d: parallel=%v, serial=%v", i, got[i], want)
		}
	}
}

func TestParallelRangeSearchPropagatesFirstError(t *testing.T) {
	codes := []uint32{1, 2, 3}
	idx, err := Build(codes, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = idx.ParallelRangeSearch(context.Background(), []uint32{1, 2, 3}, -1)
	var mErr *Error
	if !asError(err, &mErr) || mErr.Kind != InvalidQueryParam {
		t.Fatalf("expected InvalidQueryParam, got %v", err)
	}
}
