// This file implements the batch cost model: the cost of a batch of agents
// moving together is the maximum of the members' individual costs.
package core

import "fmt"

// BatchCost returns the cost of moving the given agents as one batch,
// defined as max(cost(id) for id in ids): the group travels at the pace
// of its slowest member.
//
// Validation:
//   - ids must be non-empty (ErrEmptyBatch).
//   - every id must be registered (ErrAgentNotFound, wrapped with the
//     offending ID).
//
// Pure read; no side effects. Size bounds relative to a transfer capacity
// are the caller's concern (see the crossing package).
//
// Complexity: O(k) where k = len(ids).
func (r *Roster) BatchCost(ids ...string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyBatch
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best int64
	for _, id := range ids {
		c, ok := r.costs[id]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrAgentNotFound, id)
		}
		if c > best {
			best = c
		}
	}

	return best, nil
}
