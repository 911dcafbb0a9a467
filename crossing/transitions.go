// This file implements the transition generator: deterministic enumeration
// of every legal crossing out of a given state, with its successor state
// and incremental cost.
package crossing

import "fmt"

// successors invokes visit for every legal crossing out of s.
//
// Rules:
//   - Resource on the source side: every subset of the source-side agents
//     of size 1..C crosses forward; the successor has those agents (and
//     the resource) on the destination side.
//   - Resource on the destination side: every subset of the
//     destination-side agents of size 1..C-1 crosses back; one seat is
//     always spent on piloting the resource, which never travels alone.
//
// Enumeration order is fixed: subset sizes ascending, lexicographic by
// sorted agent index within each size. The sequence is finite, recomputed
// from s on every call, and keeps no iterator state between calls.
//
// The members slice handed to visit is reused between invocations; visit
// must copy it if it retains the batch.
//
// Complexity: O(Σ_{k=1..limit} C(p,k) · k) where p is the moving side's
// population and limit the applicable size bound.
func successors(s state, costs []int64, capacity int, visit func(next state, members []int, cost int64, dir Direction)) error {
	n := len(costs)

	// 1) Collect the indices on the side currently holding the resource,
	//    in ascending order; only they are allowed to move.
	var (
		pool  = make([]int, 0, n)
		limit int
		dir   Direction
		i     int
	)
	if s.res == sideSource {
		for i = 0; i < n; i++ {
			if s.src&bitOf(i) != 0 {
				pool = append(pool, i)
			}
		}
		limit = capacity
		dir = Forward
	} else {
		for i = 0; i < n; i++ {
			if s.src&bitOf(i) == 0 {
				pool = append(pool, i)
			}
		}
		limit = capacity - 1
		dir = Return
	}
	if limit > len(pool) {
		limit = len(pool)
	}

	// 2) Enumerate subsets: sizes ascending, lexicographic within size.
	var k int
	for k = 1; k <= limit; k++ {
		if err := combinations(pool, k, func(members []int) error {
			cost, err := batchCost(members, costs, limit)
			if err != nil {
				return err
			}

			m := maskOf(members)
			var next state
			if dir == Forward {
				next = state{src: s.src &^ m, res: sideDest}
			} else {
				next = state{src: s.src | m, res: sideSource}
			}
			visit(next, members, cost, dir)

			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

// batchCost returns the cost of moving the given batch: the maximum of the
// members' individual costs. Size bounds (1..limit) are re-checked here as
// the defensive contract of the cost model; a violation means the
// transition generator is defective, and the error says so via
// ErrInvalidBatch.
//
// Complexity: O(k) where k = len(members).
func batchCost(members []int, costs []int64, limit int) (int64, error) {
	if len(members) == 0 || len(members) > limit {
		return 0, fmt.Errorf("%w: size=%d limit=%d", ErrInvalidBatch, len(members), limit)
	}

	var best int64
	for _, i := range members {
		if costs[i] > best {
			best = costs[i]
		}
	}

	return best, nil
}

// combinations invokes visit for every k-subset of pool in lexicographic
// order. The members slice is reused across invocations to avoid
// per-subset allocation; callers copy it when they need to retain it.
//
// Complexity: O(C(p,k) · k) where p = len(pool).
func combinations(pool []int, k int, visit func(members []int) error) error {
	members := make([]int, k)

	var rec func(start, depth int) error
	rec = func(start, depth int) error {
		if depth == k {
			return visit(members)
		}
		// Leave room for the remaining k-depth picks.
		for i := start; i <= len(pool)-(k-depth); i++ {
			members[depth] = pool[i]
			if err := rec(i+1, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	return rec(0, 0)
}
