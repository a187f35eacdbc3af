package mih

import (
	"math"

	"golang.org/x/exp/constraints"
)

// argmin returns the index of the smallest value in costs, breaking ties by
// the smallest index. It is a tiny generic helper in the spirit of the
// ecosystem's constraints-based numeric generics, used here so the
// optimal-m search reads as "pick the minimizer" rather than a hand-rolled
// loop with a sentinel.
func argmin[N constraints.Ordered](costs []N) int {
	best := 0
	for i := 1; i < len(costs); i++ {
		if costs[i] < costs[best] {
			best = i
		}
	}
	return best
}

// chooseM picks the number of blocks m for a database of N codes of width
// W, minimizing the expected cost of a top-1 search under a uniform-code
// model (component E). The heuristic targets a per-block width b ≈ log2(N)
// so each block's sparse table bucket is, on average, sparsely populated;
// ties are broken by the smaller m.
//
// The cost model approximates the number of candidate (block, bucket)
// probes a top-1 query performs before the first sealed hit: for m blocks
// each of width ~W/m, probing shells up to radius d costs roughly
// m * C(W/m, d) table lookups, and d grows until m*d covers a plausible
// nearest-neighbor distance of W/2 - log2(N) (the expected minimum distance
// in a random database of N points). Candidate m values are the divisors of
// W together with every integer in [1, W], since block widths need not be
// perfectly uniform.
func chooseM(n, w int) int {
	if w <= 0 {
		return 1
	}
	logN := math.Log2(float64(max(n, 1)))
	if logN < 1 {
		logN = 1
	}

	candidates := make([]int, 0, w)
	for m := 1; m <= w; m++ {
		candidates = append(candidates, m)
	}

	costs := make([]float64, len(candidates))
	for i, m := range candidates {
		costs[i] = expectedCost(n, w, m, logN)
	}

	best := argmin(costs)
	return candidates[best]
}

// expectedCost estimates the work a top-1 query performs for a given m, by
// summing, over increasing per-block probe radius d, the number of buckets
// examined (m * C(b, d) where b = ceil(W/m)) until the cumulative total
// distance m*d reaches the expected nearest-neighbor distance for a
// database of this size under a uniform-code model.
func expectedCost(n, w, m int, logN float64) float64 {
	b := (w + m - 1) / m // ceil(W/m), an upper bound on any block's width
	// Expected minimum Hamming distance to the nearest of N random points
	// in a W-bit space is approximately W/2 - logN (a standard
	// concentration-of-measure heuristic for this model).
	expectedDist := float64(w)/2 - logN
	if expectedDist < 0 {
		expectedDist = 0
	}

	total := 0.0
	for d := 0; d <= b; d++ {
		total += float64(m) * float64(binomial(b, d))
		if float64(m*d) >= expectedDist {
			break
		}
	}
	return total
}
