// Package crossing implements the optimal transfer scheduler: a
// uniform-cost (Dijkstra-style) search over the implicit graph of
// (source-side set, resource side) configurations.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of the roster (O(n)) to detect
//     non-positive costs and fail fast.
//   - We stop exploring once the minimum accumulated cost in the frontier
//     exceeds MaxCost; the frontier is cost-ordered, so nothing cheaper
//     can remain.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries when popped.
//   - Cost ties in the frontier break by insertion sequence, so the first
//     discovered of equal-cost candidates is expanded first and identical
//     inputs always yield identical plans.
package crossing

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/convoy/core"
)

// Solve computes the minimum-total-cost crossing schedule that relocates
// every agent of the roster r from the source side to the destination
// side, with the enabling resource finishing on the destination side.
// It accepts functional options to customize behavior (WithCapacity,
// WithMaxCost, WithStepLimit).
//
// Returns:
//
//   - plan: the optimal ordered Move sequence and its total cost.
//   - err:  an error if the configuration is invalid or no schedule fits
//     within the configured limits.
//
// Preconditions and validation (in order):
//  1. r must be non-nil (ErrNilRoster).
//  2. r must hold at least one agent (ErrNoAgents) and at most MaxAgents
//     (ErrTooManyAgents).
//  3. Capacity must be ≥ MinCapacity (ErrBadCapacity).
//  4. Every agent cost must be strictly positive (ErrNonPositiveCost).
//
// Determinism: agents are snapshotted in sorted order, successor subsets
// enumerate in a fixed order, and the frontier breaks cost ties by
// insertion sequence — Solve is a pure function of its inputs.
//
// Each call owns its frontier and cost tables, so concurrent Solve calls
// over independent rosters are safe without locking.
//
// Complexity:
//
//   - Time:  O(S · B · log F) where S ≤ 2^n · 2 states, B the subsets
//     enumerated per expansion, F the frontier size.
//   - Space: O(S + F).
func Solve(r *core.Roster, opts ...Option) (Plan, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate roster presence.
	if r == nil {
		return Plan{}, ErrNilRoster
	}

	// 3) Snapshot the agents in sorted order. The snapshot pins the
	//    deterministic agent ordering and decouples the search from any
	//    later roster mutation.
	ids := r.Agents()
	n := len(ids)
	if n == 0 {
		return Plan{}, ErrNoAgents
	}
	if n > MaxAgents {
		return Plan{}, fmt.Errorf("%w: %d agents", ErrTooManyAgents, n)
	}

	// 4) Validate the transfer capacity.
	if cfg.Capacity < MinCapacity {
		return Plan{}, fmt.Errorf("%w: got %d", ErrBadCapacity, cfg.Capacity)
	}

	// 5) Pre-scan all costs to detect non-positive values. Fail fast with
	//    ErrNonPositiveCost and the offending agent.
	costs := make([]int64, n)
	var (
		i  int
		id string
	)
	for i, id = range ids {
		c, err := r.Cost(id)
		if err != nil {
			return Plan{}, err
		}
		if c <= 0 {
			return Plan{}, fmt.Errorf("%w: agent %q cost=%d", ErrNonPositiveCost, id, c)
		}
		costs[i] = c
	}

	// 6) Initialize the runner with fresh per-call tables and run the
	//    cost-ordered search.
	run := &runner{
		ids:     ids,
		costs:   costs,
		options: cfg,
		dist:    make(map[state]int64),
		prev:    make(map[state]hop),
		visited: make(map[state]bool),
		pq:      make(frontier, 0, n),
	}
	run.init()
	goal, err := run.process()
	if err != nil {
		return Plan{}, err
	}

	// 7) Walk back-pointers from the goal to the start and reverse into
	//    the ordered move sequence.
	return run.reconstruct(goal), nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	ids     []string        // Sorted agent IDs; index = membership bit.
	costs   []int64         // costs[i] is the individual cost of ids[i].
	options Options         // Configuration (capacity, caps, budget).
	start   state           // Initial configuration: everyone at source.
	dist    map[state]int64 // Best accumulated cost found per state.
	prev    map[state]hop   // Back-pointer per state for reconstruction.
	visited map[state]bool  // States whose cost is finalized.
	pq      frontier        // Min-heap of *frontierItem (lazy decrease-key).
	seq     uint64          // Insertion counter for deterministic ties.
	steps   int             // Frontier pops performed so far.
}

// hop is the back-pointer record: the predecessor configuration and the
// move that produced the transition.
type hop struct {
	parent state
	move   Move
}

// init seeds the search: everyone on the source side with the resource,
// accumulated cost zero.
func (r *runner) init() {
	r.start = state{src: fullMask(len(r.ids)), res: sideSource}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// push enqueues a frontier entry, stamping it with the next insertion
// sequence number so equal-cost entries pop in discovery order.
func (r *runner) push(s state, d int64) {
	r.seq++
	heap.Push(&r.pq, &frontierItem{st: s, dist: d, seq: r.seq})
}

// process is the core loop: repeatedly extract the cheapest frontier entry
// and either finish (goal), skip (stale), or expand it.
//
// Loop termination:
//
//   - A goal state is popped: it is globally optimal, return it.
//   - The cheapest entry exceeds MaxCost: nothing affordable remains.
//   - The frontier empties: the goal is unreachable under the limits.
//   - The step budget (if configured) runs out.
func (r *runner) process() (state, error) {
	for r.pq.Len() > 0 {
		// 1) Defensive step budget, checked at the top of each pop.
		r.steps++
		if r.options.StepLimit > 0 && r.steps > r.options.StepLimit {
			return state{}, fmt.Errorf("%w: budget=%d", ErrStepLimitExceeded, r.options.StepLimit)
		}

		// 2) Pop the smallest-cost entry from the heap.
		item := heap.Pop(&r.pq).(*frontierItem)
		s := item.st
		d := item.dist

		// 3) Skip stale entries: the state was already finalized at a
		//    cost ≤ this entry's cost.
		if r.visited[s] {
			continue
		}

		// 4) Cost cap: the frontier is cost-ordered, so once the minimum
		//    exceeds MaxCost no cheaper candidate can remain.
		if d > r.options.MaxCost {
			break
		}

		// 5) Finalize s at cost d.
		r.visited[s] = true

		// 6) The first goal popped from a cost-ordered frontier is
		//    globally optimal; the search stops here.
		if s.goal() {
			return s, nil
		}

		// 7) Relax all successors of s.
		if err := r.expand(s, d); err != nil {
			return state{}, err
		}
	}

	return state{}, ErrUnreachable
}

// expand enumerates the legal crossings out of s and relaxes each
// successor: if the tentative cost improves on the best recorded cost for
// that configuration, record it, store the back-pointer, and (re)enqueue.
//
// Assumes dist[s] == d is finalized before the call.
func (r *runner) expand(s state, d int64) error {
	return successors(s, r.costs, r.options.Capacity, func(next state, members []int, cost int64, dir Direction) {
		tentative := d + cost

		// Skip candidates beyond the accumulated-cost cap.
		if tentative > r.options.MaxCost {
			return
		}

		// Strict improvement only; equal-cost duplicates are not pushed.
		if cur, ok := r.dist[next]; ok && tentative >= cur {
			return
		}

		r.dist[next] = tentative
		r.prev[next] = hop{parent: s, move: r.toMove(members, dir, cost)}
		r.push(next, tentative)
	})
}

// toMove materializes a Move from member indices. The members slice is
// transition-generator scratch, so the batch IDs are copied out here;
// indices arrive ascending, hence the batch is already sorted.
func (r *runner) toMove(members []int, dir Direction, cost int64) Move {
	batch := make([]string, len(members))
	var i, idx int
	for i, idx = range members {
		batch[i] = r.ids[idx]
	}

	return Move{Batch: batch, Dir: dir, Cost: cost}
}

// reconstruct walks back-pointers from the goal to the start and reverses
// them into the ordered move sequence.
//
// Complexity: O(L) where L is the plan length.
func (r *runner) reconstruct(goal state) Plan {
	var moves []Move
	for s := goal; s != r.start; {
		h := r.prev[s]
		moves = append(moves, h.move)
		s = h.parent
	}

	// Reverse in place: back-pointers were collected goal-first.
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return Plan{Moves: moves, TotalCost: r.dist[goal]}
}

// frontierItem is one frontier entry: a configuration, its accumulated
// cost, and the insertion sequence stamp used to break cost ties.
type frontierItem struct {
	st   state  // configuration
	dist int64  // accumulated cost from the start
	seq  uint64 // insertion order, for deterministic equal-cost popping
}

// frontier is a min-heap of *frontierItem ordered by (dist, seq) ascending.
// Under the lazy-decrease-key strategy, improved costs push fresh entries;
// outdated ones remain and are skipped when popped (checked via visited).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by accumulated cost, then by insertion sequence so that
// equal-cost entries pop in discovery order.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
