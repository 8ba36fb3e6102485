package dijkstra

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
)

// SolveAll runs one independent Search per constraint concurrently over the
// shared, read-only grid g. results[i] belongs to cs[i].
//
// Each search owns its frontier, cost table and visited set. The first failure
// cancels the remaining searches and is returned, prefixed with its constraint.
func SolveAll(ctx context.Context, g *gridgraph.CostGrid, start, goal gridgraph.Cell, cs []Constraint, opts ...Option) ([]*Result, error) {
	results := make([]*Result, len(cs))
	eg, gctx := errgroup.WithContext(ctx)
	for i, c := range cs {
		i, c := i, c
		runOpts := append(slices.Clone(opts), WithContext(gctx))
		eg.Go(func() error {
			res, err := Search(g, start, goal, c, runOpts...)
			if err != nil {
				return fmt.Errorf("run %v: %w", c, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
