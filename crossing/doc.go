// Package crossing solves resource-constrained sequential-transfer
// scheduling: relocate every agent of a roster from a source side to a
// destination side over a capacity-limited channel, at provably minimal
// total cost, with the single enabling resource finishing on the
// destination side.
//
// Overview:
//
//   - A configuration is the pair (source-side agent set, resource side);
//     the destination-side set is always the complement and is never
//     stored separately.
//   - Forward crossings carry 1..C agents, return crossings carry 1..C-1
//     agents: the resource never travels alone, so a return crossing
//     always spends one seat on the agent piloting it back.
//   - A batch crossing costs the maximum of its members' individual costs.
//   - Because batch costs vary, a plain breadth-first traversal would only
//     minimize the number of crossings, not their total cost. Solve runs a
//     uniform-cost (Dijkstra-style) expansion over the implicit state
//     graph instead: a min-heap frontier ordered by accumulated cost, with
//     lazy decrease-key and stale-entry skipping. The first goal state
//     popped from a cost-ordered frontier is globally optimal.
//
// Key features:
//
//   - Exact minimum total cost for any roster size up to MaxAgents and any
//     capacity ≥ 2; capacity ≥ roster size collapses to a single crossing.
//   - Deterministic plans: agents iterate in sorted order, subsets
//     enumerate sizes ascending then lexicographic, and the frontier
//     breaks cost ties by insertion sequence, so identical inputs always
//     produce the identical Plan.
//   - Functional options: WithCapacity, WithMaxCost (accumulated-cost
//     cap, adapted search cut-off), WithStepLimit (defensive frontier-pop
//     budget for oversized rosters).
//   - Each Solve call owns its frontier and cost table, so concurrent
//     solves over independent rosters need no locking.
//
// Complexity:
//
//   - The state space is bounded by 2^n · 2 configurations for n agents.
//   - Each expansion enumerates at most Σ_{k=1..C} C(n,k) subsets.
//   - Frontier operations cost O(log F) where F is the frontier size.
//
// Error handling (sentinel errors):
//
//   - ErrNilRoster, ErrNoAgents, ErrTooManyAgents, ErrBadCapacity,
//     ErrNonPositiveCost — invalid configuration, reported before the
//     search begins.
//   - ErrInvalidBatch — a transition candidate violated size bounds; this
//     signals an internal defect, never a user condition.
//   - ErrUnreachable — frontier exhausted (or cost cap hit) before the
//     goal; cannot occur for capacity ≥ 2 without a MaxCost cap, but is
//     detected and reported distinctly for robustness.
//   - ErrStepLimitExceeded — the configured pop budget ran out.
//
// API reference:
//
//	func Solve(r *core.Roster, opts ...Option) (Plan, error)
//
// See example_test.go for runnable examples.
package crossing
