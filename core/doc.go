// Package core defines the dense undirected Graph used by every solver
// in this module.
//
// What
//
//   - Vertices are the integers 0..n−1; no labels, no metadata.
//   - Adjacency is a slice of neighbor slices, symmetric by construction.
//   - Self-loops are dropped silently on AddEdge.
//   - Parallel edges are tolerated and preserved; callers that need a
//     simple graph must deduplicate before building.
//
// Why
//
//	The coloring search touches adjacency lists millions of times per
//	second. A flat []int per vertex keeps the hot loop free of map
//	lookups and locks: the graph is built once, then treated as
//	read-only by every solver strategy, so no synchronization is needed
//	during a solve.
//
// Complexity (n = |V|, m = |E|)
//
//   - AddEdge: amortized O(1)
//   - Degree, Neighbors: O(1)
//   - EdgeCount: O(n)
//   - Degrees: O(n)
//
// Errors
//
//   - ErrNegativeVertexCount  if NewGraph is given n < 0.
//   - ErrVertexOutOfRange     if an edge endpoint is not in [0, n).
package core
