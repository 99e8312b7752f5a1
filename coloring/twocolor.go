package coloring

import (
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// TwoColor decides 2-colorability with a BFS bipartition over each
// connected component, starting from the lowest-numbered uncolored
// vertex with color 0.
//
// Returns the assignment, the number of vertices dequeued, and whether
// g is bipartite. On any edge whose endpoints agree the graph is not
// bipartite and the assignment is discarded. O(n + m); this path skips
// the greedy pass and the exact search entirely.
func TwoColor(g *core.Graph) (Assignment, int64, bool) {
	n := g.VertexCount()
	a := NewAssignment(n)

	var nodes int64
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if a[start] != Uncolored {
			continue
		}
		a[start] = 0
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nodes++

			for _, v := range g.Neighbors(u) {
				switch a[v] {
				case Uncolored:
					a[v] = 1 - a[u]
					queue = append(queue, v)
				case a[u]:
					return nil, nodes, false
				}
			}
		}
	}
	return a, nodes, true
}
