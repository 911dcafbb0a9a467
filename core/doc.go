// Package core provides the Roster: a thread-safe registry of agents and
// their individual transfer costs, plus the batch cost model shared by all
// convoy solvers.
//
// Overview:
//
//   - An agent is an identifier (non-empty string) with a non-negative
//     integer cost. Agents are registered once and never mutated.
//   - A batch is any non-empty set of registered agents moving together;
//     its cost is the maximum of the members' individual costs — the group
//     travels at the pace of its slowest member.
//   - Roster methods are guarded by a sync.RWMutex, so a Roster may be
//     built from one goroutine and read from many.
//
// Key properties:
//
//   - Agents() always returns IDs in ascending lexicographic order, giving
//     every caller a stable, reproducible iteration order.
//   - BatchCost is a pure read: no allocation beyond the lookup, no
//     mutation, safe for concurrent use.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyAgentID   — AddAgent called with an empty identifier.
//   - ErrNegativeCost   — AddAgent called with a cost below zero.
//   - ErrDuplicateAgent — AddAgent called twice for the same identifier.
//   - ErrAgentNotFound  — Cost or BatchCost referenced an unknown agent.
//   - ErrEmptyBatch     — BatchCost called with no members.
//
// See examples in the crossing package for end-to-end usage.
package core
