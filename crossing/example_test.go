// Package crossing_test provides examples demonstrating how to use the
// transfer scheduler. Each example is runnable via "go test -run Example",
// showing both code and expected output.
package crossing_test

import (
	"fmt" // fmt is used to print results in examples

	"github.com/katalvlaran/convoy/core"
	"github.com/katalvlaran/convoy/crossing"
)

// ExampleSolve demonstrates the smallest non-trivial instance: two agents
// who both fit into one crossing, so the plan is a single forward move at
// the slower agent's pace.
func ExampleSolve() {
	// 1) Register the agents and their individual crossing costs.
	r := core.NewRoster()
	r.AddAgent("A", 1)
	r.AddAgent("B", 2)

	// 2) Solve with the default two-seat capacity.
	plan, err := crossing.Solve(r)
	// 3) Handle any potential error (nil roster, bad capacity, …).
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print the rendered plan: each move on its own line, then the total.
	fmt.Println(plan)
	// Output:
	// forward: (A, B) costs 2
	// total cost: 2
}

// ExampleSolve_classic runs the textbook four-crosser instance
// (costs 1, 2, 5, 8, capacity 2). Several distinct move sequences share
// the optimal total of 15, so the example asserts the quantities every
// optimum shares: five crossings, total cost 15.
func ExampleSolve_classic() {
	// 1) The classic night-bridge party.
	r := core.NewRoster()
	r.AddAgent("A", 1)
	r.AddAgent("B", 2)
	r.AddAgent("C", 5)
	r.AddAgent("D", 8)

	// 2) Solve with the default capacity of 2.
	plan, err := crossing.Solve(r)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every optimal schedule here needs exactly five crossings.
	fmt.Printf("moves=%d total=%d\n", len(plan.Moves), plan.TotalCost)
	// Output: moves=5 total=15
}

// ExampleSolve_fullCapacity shows the boundary case where the capacity
// covers the whole roster: no returns are needed and the optimum collapses
// to a single forward crossing at the slowest agent's pace.
func ExampleSolve_fullCapacity() {
	// 1) Three agents, three seats.
	r := core.NewRoster()
	r.AddAgent("X", 3)
	r.AddAgent("Y", 4)
	r.AddAgent("Z", 5)

	// 2) Raise the capacity to cover everyone at once.
	plan, err := crossing.Solve(r, crossing.WithCapacity(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(plan)
	// Output:
	// forward: (X, Y, Z) costs 5
	// total cost: 5
}

// ExampleSolve_maxCost demonstrates the accumulated-cost cap: when every
// schedule exceeds the cap, Solve reports ErrUnreachable instead of a plan.
func ExampleSolve_maxCost() {
	r := core.NewRoster()
	r.AddAgent("A", 1)
	r.AddAgent("B", 2)
	r.AddAgent("C", 5)
	r.AddAgent("D", 8)

	// The optimum is 15; a cap of 10 makes the goal unaffordable.
	_, err := crossing.Solve(r, crossing.WithMaxCost(10))
	fmt.Println(err)
	// Output: crossing: goal not reachable within configured limits
}
