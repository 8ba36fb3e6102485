package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// defaultRuns are the two configurations printed by default: short hops of at
// most 3 moves, and long runs of 4 to 10 moves.
var defaultRuns = []string{"1:3", "4:10"}

// config is the resolved command configuration after flags, environment and .env.
type config struct {
	InputPath     string
	Runs          []dijkstra.Constraint
	Start, Goal   *gridgraph.Cell // nil means the grid corner
	ShowPath      bool
	MaxExpansions int
	Verbose       bool
}

// parseConstraint parses "MIN:MAX" (or "MIN-MAX") into a validated constraint.
func parseConstraint(s string) (dijkstra.Constraint, error) {
	sep := strings.IndexAny(s, ":-")
	if sep < 0 {
		return dijkstra.Constraint{}, fmt.Errorf("run %q: want MIN:MAX", s)
	}
	minRun, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return dijkstra.Constraint{}, fmt.Errorf("run %q: min: %w", s, err)
	}
	maxRun, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return dijkstra.Constraint{}, fmt.Errorf("run %q: max: %w", s, err)
	}
	c := dijkstra.Constraint{MinRun: minRun, MaxRun: maxRun}
	if err := c.Validate(); err != nil {
		return dijkstra.Constraint{}, fmt.Errorf("run %q: %w", s, err)
	}

	return c, nil
}

// parseRuns parses every flag value. A value may hold several
// comma-separated runs, as an environment variable would.
func parseRuns(values []string) ([]dijkstra.Constraint, error) {
	var out []dijkstra.Constraint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			c, err := parseConstraint(part)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no runs configured")
	}

	return out, nil
}

// parseCell parses "ROW,COL". An empty string yields nil.
func parseCell(s string) (*gridgraph.Cell, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("cell %q: want ROW,COL", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return nil, fmt.Errorf("cell %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return nil, fmt.Errorf("cell %q: col: %w", s, err)
	}

	return &gridgraph.Cell{Row: row, Col: col}, nil
}

// endpoints resolves the start and goal for g, defaulting to its corners.
func (c config) endpoints(g *gridgraph.CostGrid) (start, goal gridgraph.Cell) {
	start, goal = g.Corners()
	if c.Start != nil {
		start = *c.Start
	}
	if c.Goal != nil {
		goal = *c.Goal
	}

	return start, goal
}

// options turns the configuration into search options.
func (c config) options() []dijkstra.Option {
	var opts []dijkstra.Option
	if c.ShowPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if c.MaxExpansions > 0 {
		opts = append(opts, dijkstra.WithMaxExpansions(c.MaxExpansions))
	}

	return opts
}
