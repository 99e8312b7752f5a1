// Package kcolor is an exact solver for graph k-colorability: for any
// finite simple undirected graph and color budget k it either produces
// a verified proper k-coloring or proves none exists, optionally under
// a wall-clock budget after which it reports failure with partial
// counters.
//
// 🎨 What is kcolor?
//
//	A DSATUR-ordered backtracking engine wrapped in three execution
//	strategies that share one decision procedure:
//		• Serial: deterministic single-threaded depth-first search
//		• Threads: a fixed worker pool racing over sub-problems split
//		  from the search tree, with a cooperative global stop
//		• Distributed: a master/worker exchange over a message-passing
//		  substrate (in-process channels or websockets)
//	A fast-path cascade dispatches easy instances first: BFS
//	bipartiteness for k=2, then a one-shot greedy DSATUR pass, and only
//	then the exact search.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     — the dense undirected graph shared by all solvers
//	coloring/ — assignments, DSATUR chooser, fast paths, verifier
//	solver/   — backtracking engine, sub-problem split, strategies
//	cluster/  — messaging substrates and the in-process cluster harness
//	builder/  — synthetic generators (complete, cycle, grid, random)
//	graphio/  — edge-list text reader/writer
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │
//	    3───2
//
//	K4 needs four colors; ask for three and every strategy proves it
//	impossible, ask for four and the greedy pass answers instantly.
//
// The kcolor command under cmd/ exposes solving, graph generation, and
// CSV benchmarking.
package kcolor
