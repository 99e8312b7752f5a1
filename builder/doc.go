// Package builder provides deterministic synthetic graph generators
// for benchmarks, tests, and the gen CLI mode.
//
// What
//
//   - Complete(n): K_n.
//   - Cycle(n): C_n, n ≥ 3.
//   - Grid(rows, cols): 4-neighborhood grid, row-major vertex ids.
//   - RandomGnp(n, p, seed): Erdős–Rényi G(n, p).
//   - RandomBipartite(left, right, p, seed): random bipartite graph
//     with independent sides 0..left−1 and left..left+right−1.
//
// Determinism
//
//	The stochastic generators draw from a local rand.Rand seeded by the
//	caller: the same parameters and seed always produce the same graph.
//	Edge emission order is fixed for every generator, so adjacency
//	lists are reproducible too.
//
// Validation
//
//	Constructors validate parameters early and return sentinel errors;
//	they never panic. Known chromatic numbers of these families anchor
//	the solver's property tests: χ(K_n) = n, χ(C_n) = 2 or 3 by parity,
//	χ(grid) = 2, χ(bipartite) ≤ 2.
package builder
