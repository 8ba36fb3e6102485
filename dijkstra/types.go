// Package dijkstra defines core types and configuration options
// for the run-length constrained shortest-path search on cost grids.
//
// The search operates on augmented states (cell, direction, run) rather than
// bare cells. A state may move straight only while its run is below MaxRun,
// and may turn only once its run has reached MinRun.
//
// Options:
//
//	– ReturnPath:       if true, record predecessors and return the reconstructed path.
//	– MaxCost:          optional cap on cumulative cost; states beyond it are never pushed.
//	– InfCostThreshold: cells with cost >= this threshold are treated as impassable.
//	– MaxExpansions:    optional budget on finalized states; exhaustion is ErrUnreachable.
//	– Ctx:              cancellation; checked periodically while the frontier drains.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrBadRunLimits     if MinRun < 1 or MaxRun < MinRun.
//	– ErrStartOutOfBounds if the start cell lies outside the grid.
//	– ErrGoalOutOfBounds  if the goal cell lies outside the grid.
//	– ErrUnreachable      if no state satisfies the terminal condition.
//	– ErrBudgetExhausted  (wrapped with ErrUnreachable) if MaxExpansions ran out.
//	– ErrBrokenPath       if a predecessor chain does not lead back to a start state.
//	– ErrBadMaxCost, ErrBadInfThreshold, ErrBadBudget (via panic) for invalid options.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the constrained search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed to the search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadRunLimits indicates run-length limits outside 1 ≤ MinRun ≤ MaxRun.
	ErrBadRunLimits = errors.New("dijkstra: run limits must satisfy 1 <= min <= max")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("dijkstra: goal cell out of bounds")

	// ErrUnreachable indicates the frontier was exhausted without reaching the goal
	// with a run of at least MinRun.
	ErrUnreachable = errors.New("dijkstra: goal unreachable under run constraints")

	// ErrBudgetExhausted indicates the MaxExpansions budget ran out before the goal
	// was reached. It is always reported wrapped together with ErrUnreachable.
	ErrBudgetExhausted = errors.New("dijkstra: expansion budget exhausted")

	// ErrBrokenPath indicates a predecessor chain that does not end at a start state.
	ErrBrokenPath = errors.New("dijkstra: predecessor chain is broken")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadInfThreshold indicates that InfCostThreshold was set to zero or negative,
	// which would make every cell (including zero-cost cells) impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfCostThreshold must be positive")

	// ErrBadBudget indicates that MaxExpansions was set to a negative value.
	ErrBadBudget = errors.New("dijkstra: MaxExpansions must be non-negative")
)

// Constraint bounds the length of every straight run of moves.
//
// MinRun – moves that must be made in one direction before a turn (or a stop at the goal).
// MaxRun – moves that may be made in one direction before a turn is forced.
type Constraint struct {
	MinRun int
	MaxRun int
}

// Validate reports ErrBadRunLimits unless 1 ≤ MinRun ≤ MaxRun.
func (c Constraint) Validate() error {
	if c.MinRun < 1 || c.MaxRun < c.MinRun {
		return fmt.Errorf("%w: got min=%d max=%d", ErrBadRunLimits, c.MinRun, c.MaxRun)
	}

	return nil
}

// String renders the constraint as "min:max", the form the command line accepts.
func (c Constraint) String() string {
	return fmt.Sprintf("%d:%d", c.MinRun, c.MaxRun)
}

// Options configures the behavior of the constrained search.
//
// ReturnPath       – if true, Result.Path holds the reconstructed state sequence.
// MaxCost          – states whose cumulative cost would exceed this are never pushed.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfCostThreshold – cells with cost ≥ this threshold are never entered.
//
//	Must be > 0 when set. Default is 0 (no walls).
//
// MaxExpansions    – maximum number of states finalized before giving up. 0 means unlimited.
// Ctx              – cancellation context; defaults to context.Background().
type Options struct {
	ReturnPath       bool
	MaxCost          int64
	InfCostThreshold int
	MaxExpansions    int
	Ctx              context.Context
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables predecessor tracking and path reconstruction.
// If not set (default), Result.Path is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps cumulative cost. Candidates costing more are pruned, so a
// goal beyond the cap is reported as ErrUnreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	if max < 0 {
		// Invalid configuration is a programming error; fail at construction.
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithInfCostThreshold marks every cell whose cost is ≥ threshold as a wall.
// The start cell is never entered, so it may itself be a wall.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfCostThreshold(threshold int) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfCostThreshold = threshold
	}
}

// WithMaxExpansions bounds how many states may be finalized. When the budget
// runs out the search fails with ErrUnreachable wrapping ErrBudgetExhausted.
// Zero means unlimited; negative values panic with ErrBadBudget.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadBudget.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
// Cancelling the context aborts the search with ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:       false.
//   - MaxCost:          math.MaxInt64 (no cap).
//   - InfCostThreshold: 0 (no walls).
//   - MaxExpansions:    0 (unlimited).
//   - Ctx:              context.Background().
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxCost:          math.MaxInt64,
		InfCostThreshold: 0,
		MaxExpansions:    0,
		Ctx:              context.Background(),
	}
}
