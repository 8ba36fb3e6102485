// Package crucible is an in-memory engine for grid crossings under
// straight-run limits: the cheapest way across a cost grid when a mover must
// go at least MinRun cells before turning, at most MaxRun cells before it has
// to turn, and can never reverse.
//
// 🚀 What is crucible?
//
//	A small, dependency-light library plus a command that brings together:
//		• Cost grids: parse digit text, bound-checked lookups, passable regions
//		• Augmented-state Dijkstra: (cell, heading, run) search with lazy edges
//		• Path reconstruction and cost verification
//		• Concurrent independent configurations over one shared grid
//
// Under the hood, everything is organized under two subpackages and a command:
//
//	gridgraph/     — CostGrid, Parse, Components / Connected
//	dijkstra/      — Solve, Search, SolveAll, Expand, Reconstruct, PathCost
//	cmd/crucible/  — reads a grid file and prints one cost per configuration
//
// Quick ASCII example (MinRun 1, MaxRun 3):
//
//	1 9 9
//	1 9 9      cost 4, moves v v > >
//	1 1 1
//
//	go get github.com/katalvlaran/crucible
package crucible
