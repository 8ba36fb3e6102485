package dijkstra

import "github.com/katalvlaran/crucible/gridgraph"

// expansionKind selects which headings a state may take next.
// Exactly one kind applies to every state under a given Constraint.
type expansionKind uint8

const (
	// expandAny: a start state may leave in any of the four headings.
	expandAny expansionKind = iota
	// expandStraight: the run is shorter than MinRun, so only continuing is allowed.
	expandStraight
	// expandStraightOrTurn: MinRun ≤ run < MaxRun, continue or turn left/right.
	expandStraightOrTurn
	// expandTurn: the run has reached MaxRun, a turn is forced.
	expandTurn
)

// classify picks the expansion kind for s under c.
func classify(s State, c Constraint) expansionKind {
	switch {
	case s.Dir == None:
		return expandAny
	case s.Run < c.MinRun:
		return expandStraight
	case s.Run < c.MaxRun:
		return expandStraightOrTurn
	default:
		return expandTurn
	}
}

// headings writes the candidate headings for kind into buf and returns them.
// Reversal never appears.
func (k expansionKind) headings(cur Direction, buf *[4]Direction) []Direction {
	switch k {
	case expandAny:
		*buf = AllDirections
		return buf[:4]
	case expandStraight:
		buf[0] = cur
		return buf[:1]
	case expandStraightOrTurn:
		buf[0] = cur
		buf[1], buf[2] = cur.Perpendicular()
		return buf[:3]
	default:
		buf[0], buf[1] = cur.Perpendicular()
		return buf[:2]
	}
}

// Edge is one lazily generated transition: the state it leads to and the
// cost of entering that state's cell.
type Edge struct {
	To   State
	Cost int
}

// Expand returns every state reachable from s in one move under c, each
// weighted by the cost of its target cell. Targets outside g are discarded.
// It is the transition rule of the search, exported for inspection and tests.
func Expand(g *gridgraph.CostGrid, s State, c Constraint) []Edge {
	return appendEdges(nil, g, s, c, 0)
}

// appendEdges appends the transitions of s to dst, skipping cells whose cost is ≥ wall.
// A wall of 0 disables the check.
func appendEdges(dst []Edge, g *gridgraph.CostGrid, s State, c Constraint, wall int) []Edge {
	var buf [4]Direction
	for _, d := range classify(s, c).headings(s.Dir, &buf) {
		next := s.Step(d)
		if !g.Contains(next.Pos) {
			continue
		}
		cost := g.MustCost(next.Pos)
		if wall > 0 && cost >= wall {
			continue
		}
		dst = append(dst, Edge{To: next, Cost: cost})
	}

	return dst
}
