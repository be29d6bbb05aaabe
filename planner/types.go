package planner

import "errors"

// Sentinel errors returned by Plan.
var (
	// ErrInvalidEndpoint indicates start or goal is out of bounds or on
	// a blocked cell.
	ErrInvalidEndpoint = errors.New("planner: start or goal is out of bounds or blocked")
	// ErrNoPath indicates the open set was exhausted without reaching
	// the goal.
	ErrNoPath = errors.New("planner: no path to goal")
	// ErrBudgetExhausted indicates the expansion budget (max nodes
	// popped) was hit before the goal was reached. Distinct from
	// ErrNoPath: the caller should widen the budget, not conclude the
	// goal is unreachable.
	ErrBudgetExhausted = errors.New("planner: expansion budget exhausted")
)

// Mode selects the search variant.
type Mode int

const (
	// ThetaStar is the any-angle variant: when the current node's
	// parent has line of sight to a candidate child, the child is
	// reparented to the grandparent and costed by straight-line
	// distance instead of unit grid steps.
	ThetaStar Mode = iota
	// AStar is plain 4-connected A*: every edge costs 1, and the
	// heuristic is Manhattan distance (tight and admissible under
	// uniform 4-connected costs).
	AStar
)

// Options configures a single Plan call.
type Options struct {
	Mode Mode
	// ExpansionBudget caps the number of nodes popped from the open
	// set. Zero means unlimited. See spec §5: this is an optional
	// ceiling, not part of the base contract.
	ExpansionBudget int64
}

// Option is a functional option for Plan, following the same pattern as
// lvlath/dijkstra.Option.
type Option func(*Options)

// DefaultOptions returns Theta* mode with no expansion budget.
func DefaultOptions() Options {
	return Options{Mode: ThetaStar, ExpansionBudget: 0}
}

// WithMode selects A* or Theta* search.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithExpansionBudget caps the number of heap pops. A non-positive
// budget is treated as unlimited (the zero value already means
// unlimited; negative values are clamped to it rather than panicking,
// since an accidental negative budget should not turn into "never
// search" instead of "search without limit").
func WithExpansionBudget(maxPops int64) Option {
	return func(o *Options) {
		if maxPops < 0 {
			maxPops = 0
		}
		o.ExpansionBudget = maxPops
	}
}
