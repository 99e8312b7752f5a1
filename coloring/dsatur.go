package coloring

import (
	"sort"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// NoVertex is returned by ChooseVertex when every vertex is colored.
const NoVertex = -1

// ChooseVertex picks the next vertex to branch on using the DSATUR
// rule: maximize saturation (distinct colors among neighbors), break
// ties by larger original degree, then by smaller vertex index (the
// natural scan order).
//
// degree must be the original degree vector of g; it is read-only here.
// Returns NoVertex once the assignment is complete.
func ChooseVertex(g *core.Graph, a Assignment, degree []int) int {
	best, bestSat, bestDeg := NoVertex, -1, -1
	seen := make([]int, 0, 64)

	for u := 0; u < g.VertexCount(); u++ {
		if a[u] != Uncolored {
			continue
		}

		seen = seen[:0]
		for _, v := range g.Neighbors(u) {
			if c := a[v]; c != Uncolored {
				seen = append(seen, c)
			}
		}
		sat := countDistinct(seen)

		if sat > bestSat || (sat == bestSat && degree[u] > bestDeg) {
			best, bestSat, bestDeg = u, sat, degree[u]
		}
	}
	return best
}

// countDistinct sorts seen in place and counts unique values.
func countDistinct(seen []int) int {
	if len(seen) < 2 {
		return len(seen)
	}
	sort.Ints(seen)
	distinct := 1
	for i := 1; i < len(seen); i++ {
		if seen[i] != seen[i-1] {
			distinct++
		}
	}
	return distinct
}

// Feasible reports whether color c is legal at u: no neighbor of u
// holds c in a. O(deg(u)).
func Feasible(g *core.Graph, u, c int, a Assignment) bool {
	for _, v := range g.Neighbors(u) {
		if a[v] == c {
			return false
		}
	}
	return true
}
