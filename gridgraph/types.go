// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell carries a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrOutOfBounds indicates a query for a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrParse indicates malformed grid text (non-digit character or ragged rows).
	ErrParse = errors.New("gridgraph: malformed grid text")
)

// Cell addresses one grid cell by 0-indexed row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CostGrid is a read-only rectangular matrix of non-negative traversal costs.
// It is immutable once built and may be shared by any number of concurrent
// searches without synchronization.
// costs holds the cells in row-major order: costs[row*width+col].
type CostGrid struct {
	width, height int
	costs         []int
}

// cell4Offsets lists the orthogonal neighbor offsets (row, col): Up, Right, Down, Left.
var cell4Offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
