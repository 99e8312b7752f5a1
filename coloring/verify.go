package coloring

import (
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// Verify reports whether a is a complete proper k-coloring of g:
// length n, every color inside {0..k−1}, and no monochromatic edge.
//
// Verify is independent of the solvers: it walks the graph itself and
// trusts nothing about how a was produced. The test suite runs it
// against every claimed success, and the CLI after every successful
// solve.
func Verify(g *core.Graph, a Assignment, k int) bool {
	if len(a) != g.VertexCount() {
		return false
	}
	for u := 0; u < g.VertexCount(); u++ {
		if a[u] < 0 || a[u] >= k {
			return false
		}
		for _, v := range g.Neighbors(u) {
			if u < v && a[u] == a[v] {
				return false
			}
		}
	}
	return true
}
