package fuzzy

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SearchListConcurrent is SearchList with the input partitioned across
// worker goroutines, for large batches. Each worker runs the ordinary
// sequential search, so results are identical to SearchList up to the
// same ascending score order. workers <= 0 means one per CPU.
//
// The only possible error is context cancellation.
func (e *Engine) SearchListConcurrent(ctx context.Context, pattern string, texts []string, workers int) ([]ListResult, error) {
	results := []ListResult{}
	p := e.CreatePattern(pattern)
	if p == nil {
		return results, nil
	}

	partial, err := inChunks(ctx, len(texts), workers, func(ctx context.Context, lo, hi int) ([]ListResult, error) {
		var out []ListResult
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r := e.SearchPattern(p, texts[i])
			if r == nil {
				continue
			}
			out = append(out, ListResult{Index: i, Score: r.Score, Ranges: r.Ranges})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for _, part := range partial {
		results = append(results, part...)
	}
	sortByScore(results, func(r ListResult) float64 { return r.Score })
	return results, nil
}

// SearchFieldsConcurrent is SearchFields with the items partitioned
// across worker goroutines. Semantics match SearchFields exactly.
func (e *Engine) SearchFieldsConcurrent(ctx context.Context, pattern string, items [][]WeightedField, workers int) ([]CollectionResult, error) {
	results := []CollectionResult{}
	p := e.CreatePattern(pattern)
	if p == nil {
		return results, nil
	}

	partial, err := inChunks(ctx, len(items), workers, func(ctx context.Context, lo, hi int) ([]CollectionResult, error) {
		var out []CollectionResult
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			item := e.searchItem(p, items[i])
			if item == nil {
				continue
			}
			item.Index = i
			out = append(out, *item)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for _, part := range partial {
		results = append(results, part...)
	}
	sortByScore(results, func(r CollectionResult) float64 { return r.Score })
	return results, nil
}

// inChunks splits [0, n) into contiguous per-worker chunks and runs
// them in an errgroup. Chunk results come back in input order so the
// final sort's tie-breaking matches the sequential methods.
func inChunks[T any](ctx context.Context, n, workers int, run func(ctx context.Context, lo, hi int) ([]T, error)) ([][]T, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers == 0 {
		return nil, nil
	}

	chunk := (n + workers - 1) / workers
	partial := make([][]T, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			out, err := run(gctx, lo, hi)
			if err != nil {
				return err
			}
			partial[w] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partial, nil
}
