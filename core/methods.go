// This file implements Roster registration and query methods.
package core

import "sort"

// AddAgent registers a new agent with its individual transfer cost.
//
// Validation (in order):
//  1. id must be non-empty (ErrEmptyAgentID).
//  2. cost must be ≥ 0 (ErrNegativeCost).
//  3. id must not already be registered (ErrDuplicateAgent).
//
// Complexity: O(1) amortized.
func (r *Roster) AddAgent(id string, cost int64) error {
	if id == "" {
		return ErrEmptyAgentID
	}
	if cost < 0 {
		return ErrNegativeCost
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.costs[id]; exists {
		return ErrDuplicateAgent
	}
	r.costs[id] = cost

	return nil
}

// Has reports whether the agent id is registered.
//
// Complexity: O(1).
func (r *Roster) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.costs[id]

	return ok
}

// Cost returns the individual transfer cost of the agent id,
// or ErrAgentNotFound if it was never registered.
//
// Complexity: O(1).
func (r *Roster) Cost(id string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.costs[id]
	if !ok {
		return 0, ErrAgentNotFound
	}

	return c, nil
}

// Count returns the number of registered agents.
//
// Complexity: O(1).
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.costs)
}

// Agents returns all registered agent IDs in ascending lexicographic order.
// The sorted order gives every caller a stable, reproducible iteration
// sequence regardless of map internals.
//
// Complexity: O(n log n) where n = number of agents.
func (r *Roster) Agents() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.costs))
	for id := range r.costs {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)

	return ids
}
