// Package gridgraph provides an immutable cost grid for grid path searches.
// It supports:
//
//   - Construction from a rectangular [][]int with validation
//   - Parsing from digit text, one row per line
//   - Bound-checked cost lookups
//   - Labelling of 4-connected passable regions
package gridgraph

import (
	"fmt"
	"strings"
)

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice
// indexed values[row][col]. It copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost if any cell is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	costs := make([]int, 0, w*h)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell %v holds %d", ErrNegativeCost, Cell{r, c}, v)
			}
		}
		costs = append(costs, row...)
	}

	return &CostGrid{width: w, height: h, costs: costs}, nil
}

// Width returns the number of columns.
func (g *CostGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *CostGrid) Height() int { return g.height }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Contains reports whether c lies within the grid boundaries.
func (g *CostGrid) Contains(c Cell) bool {
	return g.InBounds(c.Row, c.Col)
}

// Cost returns the traversal cost of (row,col).
// Returns ErrOutOfBounds if the cell lies outside the grid.
// Complexity: O(1).
func (g *CostGrid) Cost(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, Cell{row, col}, g.height, g.width)
	}

	return g.costs[g.index(row, col)], nil
}

// MustCost returns the cost of c and panics if c lies outside the grid.
// Callers that bound-check every candidate cell use it in hot loops,
// where an out-of-range query can only mean a programming error.
func (g *CostGrid) MustCost(c Cell) int {
	v, err := g.Cost(c.Row, c.Col)
	if err != nil {
		panic(err)
	}

	return v
}

// Corners returns the top-left and bottom-right cells, the default start
// and goal of a crossing.
func (g *CostGrid) Corners() (start, goal Cell) {
	return Cell{0, 0}, Cell{g.height - 1, g.width - 1}
}

// Values returns a fresh copy of the grid as values[row][col].
func (g *CostGrid) Values() [][]int {
	out := make([][]int, g.height)
	for r := 0; r < g.height; r++ {
		out[r] = make([]int, g.width)
		copy(out[r], g.costs[r*g.width:(r+1)*g.width])
	}

	return out
}

// String renders the grid as text, one row per line, each cost printed
// in decimal without separators. For costs below 10 the output parses back
// into an identical grid.
func (g *CostGrid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			fmt.Fprintf(&sb, "%d", g.costs[g.index(r, c)])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (row,col) to a row‑major index: row*Width + col.
// Complexity: O(1).
func (g *CostGrid) index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *CostGrid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}
