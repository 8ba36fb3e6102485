package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Reconstruct walks prev backward from terminal until it reaches a start
// state (Dir == None) and returns the states in travel order, start first.
//
// prev[v] == u means the best path to v arrives from u. The walk fails with
// ErrBrokenPath if a state on the way has no predecessor or the chain loops.
func Reconstruct(prev map[State]State, terminal State) ([]State, error) {
	path := []State{terminal}
	for cur := terminal; !cur.IsStart(); {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrBrokenPath, cur)
		}
		path = append(path, p)
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenPath, p)
		}
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// PathCost recomputes the cost of path on g: the sum of the costs of every
// cell entered after the first state. Consecutive states must be one move
// apart with consistent runs (ErrBrokenPath); cells must lie inside g
// (gridgraph.ErrOutOfBounds).
func PathCost(g *gridgraph.CostGrid, path []State) (int64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	var total int64
	for i := 1; i < len(path); i++ {
		want := path[i-1].Step(path[i].Dir)
		if path[i].Dir == None || want != path[i] {
			return 0, fmt.Errorf("%w: step %d from %v does not lead to %v", ErrBrokenPath, i, path[i-1], path[i])
		}
		cost, err := g.Cost(path[i].Pos.Row, path[i].Pos.Col)
		if err != nil {
			return 0, fmt.Errorf("step %d: %w", i, err)
		}
		total += int64(cost)
	}

	return total, nil
}
