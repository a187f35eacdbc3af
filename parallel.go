package mih

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelRangeSearch runs Run(queries[i], r) for every query concurrently,
// each on its own RangeSearcher (its own scratch state), per the
// concurrency model in §5: the immutable Index may be shared by any number
// of concurrent searchers as long as each owns its own scratch. results[i]
// holds the ids for queries[i]. If any query fails (e.g. a negative r), the
// first error encountered is returned and results is nil.
func (idx *Index[T]) ParallelRangeSearch(ctx context.Context, queries []T, r int) ([][]uint32, error) {
	results := make([][]uint32, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rs := idx.RangeSearcher()
			ids, err := rs.Run(q, r)
			if err != nil {
				return err
			}
			results[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParallelTopK runs Run(queries[i], k) for every query concurrently, each
// on its own TopKSearcher. results[i] holds the ids for queries[i].
func (idx *Index[T]) ParallelTopK(ctx context.Context, queries []T, k int) ([][]uint32, error) {
	results := make([][]uint32, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ts := idx.TopKSearcher()
			ids, err := ts.Run(q, k)
			if err != nil {
				return err
			}
			results[i] = ids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
