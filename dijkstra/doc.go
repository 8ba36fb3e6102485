// Package dijkstra provides a precise shortest-path search on cost grids where
// movement is constrained by straight-run lengths: a mover must travel at least
// MinRun cells in one heading before it may turn or stop, at most MaxRun cells
// before it must turn, and may never reverse.
//
// Overview:
//
//   - The search runs Dijkstra's algorithm over augmented states (cell, heading, run)
//     instead of bare cells, so the run-length rule becomes ordinary graph structure.
//   - Edges are never materialized; Expand generates them on demand from the grid.
//   - It relies on a min-heap (priority queue) to always finalize the next-cheapest state.
//   - Supports optional path reconstruction, cost caps, impassable cells, expansion
//     budgets and cancellation.
//
// When to use:
//
//   - Vehicles with momentum: carts, crucibles, ships that cannot turn on the spot.
//   - Game units with minimum straight-move rules.
//   - Any grid routing where the cost of a step depends on the cell entered.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: records predecessors and returns the full state sequence.
//   - MaxCost: prunes states whose cumulative cost exceeds a cap.
//   - InfCostThreshold: treats every cell with cost ≥ threshold as a wall, and rejects
//     walled-off goals up front using gridgraph.CostGrid.Connected.
//   - MaxExpansions: bounds the work done on malformed inputs.
//   - SolveAll: runs several constraint configurations concurrently over one shared grid.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S ≤ 4 × MaxRun × W × H states.
//   - Space: O(S) for the cost table, visited set, heap and (optional) predecessor map.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          a nil *gridgraph.CostGrid.
//   - ErrBadRunLimits:     MinRun < 1 or MaxRun < MinRun.
//   - ErrStartOutOfBounds: start cell outside the grid.
//   - ErrGoalOutOfBounds:  goal cell outside the grid.
//   - ErrUnreachable:      no move sequence honors the run limits and reaches the goal.
//   - ErrBudgetExhausted:  always wrapped with ErrUnreachable when MaxExpansions ran out.
//   - ErrBrokenPath:       Reconstruct or PathCost was given an inconsistent chain.
//
// API reference:
//
//	func Solve(g *gridgraph.CostGrid, start, goal gridgraph.Cell,
//	    minRun, maxRun int, opts ...Option) (int64, error)
//	func Search(g *gridgraph.CostGrid, start, goal gridgraph.Cell,
//	    c Constraint, opts ...Option) (*Result, error)
//	func SolveAll(ctx context.Context, g *gridgraph.CostGrid, start, goal gridgraph.Cell,
//	    cs []Constraint, opts ...Option) ([]*Result, error)
//	func Expand(g *gridgraph.CostGrid, s State, c Constraint) []Edge
//	func Reconstruct(prev map[State]State, terminal State) ([]State, error)
//	func PathCost(g *gridgraph.CostGrid, path []State) (int64, error)
//
// Terminal condition:
//
//   - A popped state at the goal with Run ≥ MinRun ends the search with its cost.
//   - When start == goal the start state itself is terminal and the cost is 0,
//     whatever MinRun is.
//
// Thread safety:
//
//   - A single search is sequential. The grid is never written, so concurrent
//     searches may share one *gridgraph.CostGrid without locking.
//   - Options and Results are plain values owned by the caller.
//
// See also:
//
//   - gridgraph.Parse: read a cost grid from digit text.
package dijkstra
