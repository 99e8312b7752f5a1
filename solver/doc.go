// Package solver decides k-colorability of a core.Graph and produces a
// witness assignment when one exists.
//
// What
//
//   - Solve is the single entry point. It runs the fast-path cascade
//     (2-coloring for k=2, otherwise the greedy pre-pass) and falls
//     through to the exact DSATUR-ordered backtracking search under one
//     of three strategies:
//   - Serial: one goroutine, depth-first, deterministic.
//   - Threads: the search tree is split into sub-problems at a fixed
//     depth and raced by a fixed pool of workers sharing a stop flag.
//   - Distributed: a master hands sub-problems to single-threaded
//     workers over a message-passing Transport.
//   - GenerateSubproblems performs the breadth-first split; its leaves
//     partition the serial search space exactly.
//
// Stop and deadline semantics
//
//	Every search checks the shared stop flag and the wall-clock deadline
//	on node entry and before each color branch. A worker observing
//	either abandons its sub-search with an ordinary failure return; no
//	exceptional control flow is used. The stop flag transitions
//	false→true exactly once per solve and never back.
//
// Determinism
//
//	Within one worker the search is deterministic: identical inputs
//	find the same first witness or exhaust identically, so running the
//	serial solver twice yields bitwise-identical results apart from
//	Seconds. Across racing workers only the Success value is
//	reproducible; the witness is whichever worker wins.
//
// Results
//
//	A deadline hit and exhaustion both report Success=false with an
//	empty Color; they are distinguished by comparing Seconds against
//	the configured budget. Counters are never rolled back.
package solver
