// Package gridgraph treats a 2D grid of traversal costs as the static
// terrain for grid path searches, such as the run-length constrained
// search in package dijkstra.
//
// What:
//
//   - CostGrid wraps a rectangular matrix of non-negative integer costs.
//   - Parse reads the grid from digit text, one row per line.
//   - Cost performs bound-checked lookups; MustCost asserts in-range access.
//   - Components labels 4-connected regions of passable cells (cost < threshold).
//
// Why:
//
//   - Logistics: heat-loss or fuel cost per tile of a city block map.
//   - Game maps: terrain difficulty with per-tile movement cost.
//   - Fast rejection: detect a goal walled off from the start before searching.
//
// Complexity:
//
//   - NewCostGrid, Parse: O(W×H), Memory: O(W×H).
//   - Cost, InBounds:     O(1).
//   - Components:         O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell carries a cost below zero.
//   - ErrOutOfBounds: a cost was queried outside the grid.
//   - ErrParse: grid text holds a non-digit or ragged rows.
//
// A CostGrid is never mutated after construction, so one parsed grid may be
// handed by pointer to several independent searches running at once.
package gridgraph
