// This file declares sentinel errors, the Move/Plan result types, and the
// Options / functional-option configuration surface of the crossing solver.
package crossing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the crossing solver.
var (
	// ErrNilRoster indicates that a nil *core.Roster was passed to Solve.
	ErrNilRoster = errors.New("crossing: roster is nil")

	// ErrNoAgents indicates that the roster holds no agents; there is
	// nothing to schedule.
	ErrNoAgents = errors.New("crossing: roster has no agents")

	// ErrTooManyAgents indicates that the roster exceeds MaxAgents; state
	// identity packs source-side membership into a 64-bit word.
	ErrTooManyAgents = errors.New("crossing: roster exceeds MaxAgents")

	// ErrBadCapacity indicates a transfer capacity below MinCapacity.
	// With capacity 1 no return crossing could carry anyone, so the
	// resource would strand on the destination side after the first move.
	ErrBadCapacity = errors.New("crossing: capacity must be at least 2")

	// ErrNonPositiveCost indicates that an agent carries a zero or negative
	// cost. The facade requires strictly positive costs (detected by a fast
	// pre-scan of the roster before the search starts).
	ErrNonPositiveCost = errors.New("crossing: agent cost must be positive")

	// ErrInvalidBatch indicates that a transition candidate violated batch
	// size bounds. The transition generator never constructs such a batch;
	// if this error surfaces, it is an internal defect, not a user fault.
	ErrInvalidBatch = errors.New("crossing: batch size out of bounds")

	// ErrUnreachable indicates that the frontier was exhausted (or the
	// MaxCost cap was hit) before any goal state was reached.
	ErrUnreachable = errors.New("crossing: goal not reachable within configured limits")

	// ErrStepLimitExceeded indicates that the configured frontier-pop
	// budget ran out before the search finished.
	ErrStepLimitExceeded = errors.New("crossing: step limit exceeded before reaching the goal")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("crossing: MaxCost must be non-negative")

	// ErrBadStepLimit indicates that StepLimit was set to zero or negative.
	ErrBadStepLimit = errors.New("crossing: StepLimit must be positive")
)

const (
	// MinCapacity is the smallest workable transfer capacity: one seat for
	// the agent piloting the resource back, one for a passenger.
	MinCapacity = 2

	// DefaultCapacity matches the classic two-seat puzzle rule.
	DefaultCapacity = 2

	// MaxAgents is the largest roster Solve accepts; source-side
	// membership is packed into a uint64 for state identity.
	MaxAgents = 64
)

// Direction tags a Move as a forward crossing (source → destination) or a
// return crossing (destination → source).
type Direction int

const (
	// Forward moves a batch from the source side to the destination side.
	Forward Direction = iota

	// Return moves a batch from the destination side back to the source.
	Return
)

// String renders the direction as "forward" or "return".
func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}

	return "return"
}

// Move is one batch crossing: the agents moving together, the direction,
// and the batch cost (maximum of the members' individual costs).
// Batch is always sorted in ascending lexicographic order.
type Move struct {
	// Batch lists the IDs of the agents crossing together.
	Batch []string

	// Dir is the crossing direction.
	Dir Direction

	// Cost is the batch cost of this crossing.
	Cost int64
}

// String renders the move as e.g. "forward: (A, B) costs 2".
func (m Move) String() string {
	return fmt.Sprintf("%s: (%s) costs %d", m.Dir, strings.Join(m.Batch, ", "), m.Cost)
}

// Plan is the result of a solve: the ordered crossing sequence and its
// total cost. TotalCost always equals the sum of the moves' costs.
type Plan struct {
	// Moves is the optimal crossing sequence, first move first.
	Moves []Move

	// TotalCost is the minimum achievable total cost.
	TotalCost int64
}

// String renders the plan as one line per move followed by the total:
//
//	forward: (A, B) costs 2
//	return: (A) costs 1
//	...
//	total cost: 15
func (p Plan) String() string {
	var b strings.Builder
	for _, m := range p.Moves {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "total cost: %d", p.TotalCost)

	return b.String()
}

// Options configures the behavior of Solve.
//
// Capacity  – transfer capacity C: forward crossings carry 1..C agents,
//
//	return crossings 1..C-1. Must be ≥ MinCapacity.
//
// MaxCost   – cap on accumulated cost; a goal beyond the cap reports
//
//	ErrUnreachable. Default is math.MaxInt64 (no cap).
//
// StepLimit – defensive budget on frontier pops; 0 means unlimited.
type Options struct {
	Capacity  int   // transfer capacity C
	MaxCost   int64 // accumulated-cost cap for the search
	StepLimit int   // frontier-pop budget (0 = unlimited)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithCapacity sets the transfer capacity. The value is validated in
// Solve (ErrBadCapacity), not here, so invalid configurations surface as
// errors rather than panics.
func WithCapacity(c int) Option {
	return func(o *Options) {
		o.Capacity = c
	}
}

// WithMaxCost caps the accumulated cost the search is allowed to explore.
// If every schedule exceeds the cap, Solve reports ErrUnreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithStepLimit bounds the number of frontier pops the search may perform,
// as a defensive hook for oversized rosters. When the budget runs out,
// Solve reports ErrStepLimitExceeded.
// Must pass a positive value; zero or negative panic with ErrBadStepLimit.
// Default (if not set) is unlimited.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadStepLimit.Error())
		}
		o.StepLimit = n
	}
}

// DefaultOptions returns an Options struct initialized with the solver
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Capacity:  DefaultCapacity (the classic two-seat rule).
//   - MaxCost:   math.MaxInt64 (no accumulated-cost cap).
//   - StepLimit: 0 (unlimited frontier pops).
func DefaultOptions() Options {
	return Options{
		Capacity:  DefaultCapacity,
		MaxCost:   math.MaxInt64,
		StepLimit: 0,
	}
}
