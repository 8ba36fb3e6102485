package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Direction is a heading on the grid. None is used only by a start state,
// before any move has been made.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// AllDirections lists the four headings in the order start states expand them.
var AllDirections = [4]Direction{Up, Down, Left, Right}

// Reverse returns the opposite heading. None reverses to None.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return None
}

// Perpendicular returns the two headings at right angles to d.
// For None it returns (None, None).
func (d Direction) Perpendicular() (Direction, Direction) {
	switch d {
	case Up, Down:
		return Left, Right
	case Left, Right:
		return Up, Down
	}

	return None, None
}

// Delta returns the (row, col) offset of one move in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}

	return 0, 0
}

// Arrow returns a one-rune rendering: ^ v < > and '.' for None.
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	case Right:
		return '>'
	}

	return '.'
}

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// State is one node of the augmented search space: a cell, the heading of the
// last move, and how many consecutive moves were made in that heading.
// Invariant: Run == 0 iff Dir == None.
//
// State is a comparable value; it keys the cost table, the visited set and the
// predecessor map directly. It does not reference the grid.
type State struct {
	Pos gridgraph.Cell
	Dir Direction
	Run int
}

// StartState returns the state at c before any move.
func StartState(c gridgraph.Cell) State {
	return State{Pos: c, Dir: None, Run: 0}
}

// IsStart reports whether s is a start state (no move made yet).
func (s State) IsStart() bool {
	return s.Dir == None
}

// Step derives the state reached by one move from s in direction d.
// The run grows when d continues the current heading and restarts at 1 otherwise.
// Step does not check bounds or constraints.
func (s State) Step(d Direction) State {
	dr, dc := d.Delta()
	next := State{
		Pos: gridgraph.Cell{Row: s.Pos.Row + dr, Col: s.Pos.Col + dc},
		Dir: d,
		Run: 1,
	}
	if d == s.Dir {
		next.Run = s.Run + 1
	}

	return next
}

func (s State) String() string {
	return fmt.Sprintf("%v %v×%d", s.Pos, s.Dir, s.Run)
}
