// Package netaheuristics is a toolbox for building improving metaheuristics —
// algorithms that repeatedly generate and filter candidate solutions to an
// arbitrary optimization problem until a stopping rule fires.
//
// 🚀 What is Netaheuristics?
//
//	A small, deterministic library that brings together:
//		• One shared control loop: propose → track best → accept → terminate
//		• Three concrete algorithms on top of it:
//		  – Variable Neighborhood Search (VNS)
//		  – Simulated Annealing (SA)
//		  – Large Neighborhood Search (LNS)
//		• Pluggable operator-selection policies: sequential, random, adaptive
//		• Composable termination criteria: iteration budgets, deadlines, AND/OR
//
// ✨ Why choose Netaheuristics?
//
//   - Problem-agnostic – solutions are opaque values exposing one scalar fitness
//   - Reproducible – all randomness flows through an explicit handle; same
//     seed ⇒ identical runs
//   - Pure Go – no cgo, no hidden deps
//   - Strict contracts – builders fail fast on missing pieces; caller bugs
//     (empty neighborhoods, bad indices) surface as panics, never as silently
//     wrong results
//
// Everything is organized under six subpackages:
//
//	core/        — Evaluable, Operator, the improving loop, RNG helpers
//	selector/    — operator-selection strategies (Sequential/Random/Adaptive)
//	termination/ — stopping rules and their AND/OR composition
//	vns/         — variable neighborhood search
//	sa/          — simulated annealing + cooling schedules
//	lns/         — large neighborhood search (destroy/repair pairs)
//
// Callers supply the problem-specific pieces: a solution type implementing
// core.Evaluable, one or more operators producing neighboring solutions, and
// a randomness source. The library supplies the iterate/accept/terminate
// structure shared by all three algorithms.
//
//	go get github.com/DaPurr/Netaheuristics
package netaheuristics
