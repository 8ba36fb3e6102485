// Package dijkstra implements a run-length constrained variant of Dijkstra's
// shortest-path algorithm on cost grids.
//
// Nodes of the search are augmented states (cell, direction, run); edges are
// generated on demand by the transition rule (see Expand) and weighted by the
// cost of the cell being entered. States are processed in order of increasing
// cumulative cost using a min-heap priority queue.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4 × MaxRun × W × H reachable states at most.
//   - Each state is finalized at most once.
//   - Each state expands into at most 4 candidates (3 after the first move).
//   - Space: O(S) for the cost table, the visited set and the heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Equal-cost entries pop in insertion order, so results and paths are reproducible.
//   - The first popped state at the goal with Run ≥ MinRun is optimal, since weights are non-negative.
//   - A start state at the goal is terminal regardless of MinRun (the empty path is valid).
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ctxCheckMask sets how often (in pops) the context is polled: every 1024 pops.
const ctxCheckMask = 1<<10 - 1

// Result reports a successful search.
//
//   - Cost:     minimal cumulative cost from start to goal.
//   - Terminal: the goal state that satisfied the terminal condition.
//   - Path:     the state sequence from the start state to Terminal
//     (nil unless WithReturnPath was given).
//   - Expanded: number of states finalized.
//   - Pushed:   number of frontier insertions, stale duplicates included.
type Result struct {
	Cost     int64
	Terminal State
	Path     []State
	Expanded int
	Pushed   int
}

// Directions returns the headings taken along Path, one per move.
func (r *Result) Directions() []Direction {
	if len(r.Path) < 2 {
		return nil
	}
	dirs := make([]Direction, 0, len(r.Path)-1)
	for _, s := range r.Path[1:] {
		dirs = append(dirs, s.Dir)
	}

	return dirs
}

// Arrows renders Directions as a string of ^ v < > runes.
func (r *Result) Arrows() string {
	dirs := r.Directions()
	out := make([]rune, len(dirs))
	for i, d := range dirs {
		out[i] = d.Arrow()
	}

	return string(out)
}

// Solve returns the minimal cost of moving from start to goal on g when every
// straight run must be at least minRun and at most maxRun moves long.
// It is Search without the extra result fields.
func Solve(g *gridgraph.CostGrid, start, goal gridgraph.Cell, minRun, maxRun int, opts ...Option) (int64, error) {
	res, err := Search(g, start, goal, Constraint{MinRun: minRun, MaxRun: maxRun}, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search runs the constrained search from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. c must satisfy 1 ≤ MinRun ≤ MaxRun (ErrBadRunLimits).
//  3. start must lie inside g (ErrStartOutOfBounds).
//  4. goal must lie inside g (ErrGoalOutOfBounds).
//
// The search fails with ErrUnreachable when the frontier drains without a
// terminal pop, when InfCostThreshold walls the goal off from the start, or
// (wrapping ErrBudgetExhausted) when MaxExpansions runs out. A cancelled
// context yields ctx.Err().
//
// g is only read; any number of searches may share it concurrently.
func Search(g *gridgraph.CostGrid, start, goal gridgraph.Cell, c Constraint, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, g.Height(), g.Width())
	}
	if !g.Contains(goal) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrGoalOutOfBounds, goal, g.Height(), g.Width())
	}

	// 3) Walls may separate the goal from the start entirely; reject without searching.
	if start != goal && cfg.InfCostThreshold > 0 && !g.Connected(start, goal, cfg.InfCostThreshold) {
		return nil, fmt.Errorf("%w: %v is walled off from %v", ErrUnreachable, goal, start)
	}

	// 4) Run
	r := newRunner(g, goal, c, cfg)
	r.init(start)

	return r.process()
}

// costTable maps a state to the lowest cumulative cost seen for it so far.
// Entries are only ever lowered.
type costTable map[State]int64

// lower records cost for s if it beats the current entry (or there is none)
// and reports whether it did.
func (t costTable) lower(s State, cost int64) bool {
	if old, ok := t[s]; ok && old <= cost {
		return false
	}
	t[s] = cost

	return true
}

// stateSet holds finalized states.
type stateSet map[State]struct{}

// add inserts s and reports whether it was absent.
func (v stateSet) add(s State) bool {
	if _, ok := v[s]; ok {
		return false
	}
	v[s] = struct{}{}

	return true
}

// runner holds the mutable state for a single search execution.
// Nothing in it is shared between searches; only g is.
type runner struct {
	g       *gridgraph.CostGrid // The input grid; read-only.
	goal    gridgraph.Cell      // Goal cell.
	c       Constraint          // Run-length limits.
	options Options             // Configuration options.
	best    costTable           // State → best known cumulative cost.
	visited stateSet            // Finalized states.
	prev    map[State]State     // State → predecessor on its best path (nil unless ReturnPath).
	pq      *frontier           // Min-heap of (cost, state).
	edges   []Edge              // Scratch buffer reused across expansions.
	pops    int                 // Total pops, stale included.
	done    int                 // States finalized.
}

func newRunner(g *gridgraph.CostGrid, goal gridgraph.Cell, c Constraint, cfg Options) *runner {
	// A rough state count: every cell reached in a couple of headings.
	hint := g.Width() * g.Height() * 2
	r := &runner{
		g:       g,
		goal:    goal,
		c:       c,
		options: cfg,
		best:    make(costTable, hint),
		visited: make(stateSet, hint),
		pq:      newFrontier(hint),
		edges:   make([]Edge, 0, 4),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, hint)
	}

	return r
}

// init seeds the cost table and the frontier with the start state at cost 0.
func (r *runner) init(start gridgraph.Cell) {
	s := StartState(start)
	r.best[s] = 0
	r.pq.push(s, 0)
}

// terminal reports whether a popped state completes the search.
func (r *runner) terminal(s State) bool {
	return s.Pos == r.goal && (s.IsStart() || s.Run >= r.c.MinRun)
}

// process is the core loop. It repeatedly extracts the cheapest unfinalized
// state, stops if it is terminal, and otherwise relaxes its transitions.
//
// Loop termination conditions:
//
//   - A terminal state is popped (success).
//   - The heap becomes empty (ErrUnreachable).
//   - MaxExpansions states have been finalized (ErrUnreachable + ErrBudgetExhausted).
//   - The context is done (ctx.Err()).
func (r *runner) process() (*Result, error) {
	ctx := r.options.Ctx
	for {
		// 1) Poll for cancellation every few pops.
		if r.pops&ctxCheckMask == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		// 2) Pop the cheapest entry.
		item, ok := r.pq.pop()
		if !ok {
			return nil, fmt.Errorf("%w: %v not reached with run >= %d after %d states",
				ErrUnreachable, r.goal, r.c.MinRun, r.done)
		}
		r.pops++

		// 3) Skip stale entries; the state was finalized at a lower cost.
		if _, seen := r.visited[item.state]; seen {
			continue
		}

		// 4) Respect the budget before finalizing another state.
		if r.options.MaxExpansions > 0 && r.done >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %w after %d states", ErrUnreachable, ErrBudgetExhausted, r.done)
		}
		r.visited.add(item.state)
		r.done++

		// 5) First terminal pop is optimal.
		if r.terminal(item.state) {
			return r.result(item)
		}

		// 6) Relax transitions.
		r.relax(item)
	}
}

// relax expands u and records every candidate whose cost improves.
func (r *runner) relax(u frontierItem) {
	r.edges = appendEdges(r.edges[:0], r.g, u.state, r.c, r.options.InfCostThreshold)
	for _, e := range r.edges {
		if _, seen := r.visited[e.To]; seen {
			continue
		}
		// u.cost ≤ MaxCost always holds, so the subtraction cannot wrap and
		// sums beyond math.MaxInt64 are pruned along with the cap.
		if int64(e.Cost) > r.options.MaxCost-u.cost {
			continue
		}
		newCost := u.cost + int64(e.Cost)
		if !r.best.lower(e.To, newCost) {
			continue
		}
		if r.prev != nil {
			r.prev[e.To] = u.state
		}
		r.pq.push(e.To, newCost)
	}
}

// result assembles the Result for the terminal entry.
func (r *runner) result(t frontierItem) (*Result, error) {
	res := &Result{
		Cost:     t.cost,
		Terminal: t.state,
		Expanded: r.done,
		Pushed:   r.pq.pushed(),
	}
	if r.prev != nil {
		path, err := Reconstruct(r.prev, t.state)
		if err != nil {
			return nil, err
		}
		res.Path = path
	}

	return res, nil
}
