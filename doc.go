// Package mih implements exact nearest-neighbor search over fixed-width
// binary codes under Hamming distance, using multi-index hashing (MIH).
//
// # Overview
//
// Given a database of N codes, each a W-bit unsigned integer (W is 8, 16,
// 32, or 64), an Index answers two exact queries against any query code q:
//
//   - Range search: every id whose code is within Hamming distance r of q.
//   - Top-K search: the K ids with smallest Hamming distance to q, ties
//     broken by ascending id.
//
// MIH splits each code into m blocks whose widths differ by at most one bit
// (the first W mod m blocks are one bit wider) and keeps one sparse hash
// table per block. A pigeonhole argument says that two codes within total
// Hamming distance r must agree within ⌊r/m⌋ bits on at least one block, so
// a query only needs to probe small Hamming balls inside each block's table
// instead of scanning every code. Results are exact: every candidate found
// through the tables is re-verified against the full code before it is
// returned.
//
// # When to Use MIH
//
// MIH excels at:
//   - Large databases of short binary codes (hashes, sketches, fingerprints)
//   - Repeated range/top-K queries against a fixed, unchanging database
//   - Workloads that need exact answers, not approximate ones
//
// # When NOT to Use MIH
//
// MIH is not suitable for:
//   - Databases that mutate after construction (the index is immutable)
//   - Metrics other than Hamming distance
//   - A single query against a tiny database (linear scan is simpler and
//     the table-construction cost is not amortized)
//
// # Basic Usage
//
//	codes := []uint64{0x0, 0xFFFFFFFFFFFFFFFF, 0xF0F0F0F0F0F0F0F0}
//	idx, err := mih.Build(codes, 0) // m=0 requests the optimal-m chooser
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rs := idx.RangeSearcher()
//	ids, err := rs.Run(0x1, 2) // ids within Hamming distance 2 of 0x1
//
//	ts := idx.TopKSearcher()
//	nearest, err := ts.Run(0x1, 2) // 2 nearest ids to 0x1
//
//	data, _ := idx.MarshalBinary()
//	var idx2 mih.Index[uint64]
//	_ = idx2.UnmarshalBinary(data)
//
// # Performance Characteristics
//
// Build: O(N·m) to populate the per-block sparse tables via counting sort.
// Range/Top-K query: sub-linear in N for well-chosen m, dominated by the
// number of block values enumerated at the probed radius and the number of
// verified candidates.
//
// Package mih is a pure data structure: construction is single-threaded,
// but the resulting Index is immutable and safe to share across any number
// of concurrent searchers, each of which owns its own scratch state.
package mih
