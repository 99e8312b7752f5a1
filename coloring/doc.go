// Package coloring provides the building blocks shared by every solver
// strategy: the Assignment type, the DSATUR branching heuristic, the
// per-vertex feasibility check, the two fast paths (BFS bipartiteness
// for k=2 and the one-shot greedy pass), and the independent verifier.
//
// What
//
//   - Assignment: vertex→color slice, Uncolored (−1) marks unassigned.
//   - ChooseVertex: DSATUR, the uncolored vertex with the most distinct
//     neighbor colors, ties broken by larger degree, then smaller index.
//   - Feasible: no neighbor of u already holds color c.
//   - TwoColor: BFS bipartition per connected component, O(n+m).
//   - Greedy: one-shot DSATUR coloring; success short-circuits the
//     exact search, failure proves nothing.
//   - Verify: accepts (g, a, k) iff a is a complete proper k-coloring.
//
// Why
//
//	The exact search, the sub-problem generator, and both parallel
//	schedulers all branch with the same chooser and the same feasibility
//	test. Keeping them here as pure functions is what makes the
//	sub-problem decomposition exact: a worker resuming from a partial
//	assignment reaches exactly the leaves the serial search would.
//
// Determinism
//
//	ChooseVertex is a pure function of (adjacency, assignment, degree).
//	Given identical inputs every strategy picks the same vertex, which
//	the sub-problem partition law depends on.
//
// Complexity
//
//   - ChooseVertex: O(n + Σ degree); saturation is recomputed per call,
//     memoization is deliberately not part of the contract.
//   - Feasible: O(deg(u)).
//   - TwoColor, Verify: O(n + m).
//   - Greedy: one ChooseVertex call per vertex, O(n · (n + Σ degree)).
package coloring
