// Package convoy is an in-memory solver for resource-constrained
// sequential-transfer scheduling — moving a group of agents across a
// capacity-limited channel at provably minimal total cost.
//
// 🚀 What is convoy?
//
//	A small, deterministic, zero-dependency library that generalizes the
//	classic "bridge and flashlight" puzzle:
//		• Any number of agents, each with an individual crossing cost
//		• Any transfer capacity C ≥ 2 (not just pairs)
//		• One shared enabling resource that must accompany every crossing
//		• Batch cost = the slowest member of the batch
//		• Guaranteed minimum-total-cost schedule, not a greedy approximation
//
// ✨ Why choose convoy?
//
//   - Exact – cost-ordered (uniform-cost) search, never move-count BFS
//   - Deterministic – identical inputs always yield the identical plan
//   - Concurrency-friendly – every solve owns its state; calls never share
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	core/     — the Roster: thread-safe agent registry and batch cost model
//	crossing/ — state space, transition rules, optimal search, Solve facade
//
// Quick ASCII example (capacity 2, costs A:1 B:2 C:5 D:8):
//
//	source │████ bridge ████│ destination
//	{A,B,C,D} ⛯             →            {}
//
//	forward: (A, B) costs 2
//	return:  (A) costs 1
//	forward: (C, D) costs 8
//	return:  (B) costs 2
//	forward: (A, B) costs 2
//	total cost: 15
package convoy
