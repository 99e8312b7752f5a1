package coloring_test

import (
	"reflect"
	"testing"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// buildGraph constructs a graph on n vertices from an edge list.
func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestChooseVertex_AllColored(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	a := coloring.Assignment{0, 1}
	if u := coloring.ChooseVertex(g, a, g.Degrees()); u != coloring.NoVertex {
		t.Errorf("complete assignment: got %d; want NoVertex", u)
	}
}

// TestChooseVertex_Saturation: the vertex seeing the most distinct
// neighbor colors wins regardless of degree.
func TestChooseVertex_Saturation(t *testing.T) {
	// Path 0-1-2 plus pendant 3 on vertex 1. Color 0 and 2 differently:
	// vertex 1 sees two distinct colors, vertex 3 sees none.
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {1, 3}})
	a := coloring.NewAssignment(4)
	a[0], a[2] = 0, 1
	if u := coloring.ChooseVertex(g, a, g.Degrees()); u != 1 {
		t.Errorf("ChooseVertex = %d; want 1 (sat 2)", u)
	}
}

// TestChooseVertex_DegreeTieBreak: equal saturation falls back to the
// larger original degree.
func TestChooseVertex_DegreeTieBreak(t *testing.T) {
	// Star center 0 with leaves 1..3, plus isolated edge 4-5.
	// Nothing colored: all saturations are 0, vertex 0 has degree 3.
	g := buildGraph(t, 6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {4, 5}})
	a := coloring.NewAssignment(6)
	if u := coloring.ChooseVertex(g, a, g.Degrees()); u != 0 {
		t.Errorf("ChooseVertex = %d; want 0 (deg 3)", u)
	}
}

// TestChooseVertex_IndexTieBreak: full ties resolve to the smallest
// index, the natural scan order.
func TestChooseVertex_IndexTieBreak(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	a := coloring.NewAssignment(4)
	if u := coloring.ChooseVertex(g, a, g.Degrees()); u != 0 {
		t.Errorf("ChooseVertex = %d; want 0 (lowest index)", u)
	}
}

// TestChooseVertex_ParallelEdges: duplicate neighbor colors count once
// toward saturation.
func TestChooseVertex_ParallelEdges(t *testing.T) {
	// Vertex 1 has two parallel edges to 0 and one edge to 2.
	// Vertex 3-4-5 path gives vertex 4 two distinctly colored neighbors.
	g := buildGraph(t, 6, [][2]int{{0, 1}, {0, 1}, {1, 2}, {3, 4}, {4, 5}})
	a := coloring.NewAssignment(6)
	a[0] = 0      // vertex 1 sees {0, 0} → sat 1
	a[3], a[5] = 0, 1 // vertex 4 sees {0, 1} → sat 2
	if u := coloring.ChooseVertex(g, a, g.Degrees()); u != 4 {
		t.Errorf("ChooseVertex = %d; want 4 (sat 2 beats duplicated sat 1)", u)
	}
}

func TestFeasible(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	a := coloring.Assignment{0, coloring.Uncolored, 1}
	if coloring.Feasible(g, 1, 0, a) {
		t.Error("color 0 at vertex 1 conflicts with neighbor 0")
	}
	if coloring.Feasible(g, 1, 1, a) {
		t.Error("color 1 at vertex 1 conflicts with neighbor 2")
	}
	if !coloring.Feasible(g, 1, 2, a) {
		t.Error("color 2 at vertex 1 must be feasible")
	}
}

func TestGreedy_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 5, nil)
	a, nodes, ok := coloring.Greedy(g, 1)
	if !ok {
		t.Fatal("edgeless graph is 1-colorable")
	}
	if want := (coloring.Assignment{0, 0, 0, 0, 0}); !reflect.DeepEqual(a, want) {
		t.Errorf("assignment = %v; want %v", a, want)
	}
	if nodes != 5 {
		t.Errorf("nodes = %d; want 5", nodes)
	}
}

func TestGreedy_FailureProvesNothing(t *testing.T) {
	// C5 is 3-chromatic; greedy with k=2 must fail without claiming
	// anything about 3-colorability.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	if a, _, ok := coloring.Greedy(g, 2); ok {
		t.Fatalf("odd cycle greedy k=2 succeeded with %v", a)
	}
	a, _, ok := coloring.Greedy(g, 3)
	if !ok {
		t.Fatal("C5 greedy k=3 must succeed")
	}
	if !coloring.Verify(g, a, 3) {
		t.Errorf("greedy produced improper coloring %v", a)
	}
}

func TestGreedy_ZeroColors(t *testing.T) {
	g := buildGraph(t, 1, nil)
	if _, _, ok := coloring.Greedy(g, 0); ok {
		t.Error("k=0 with n>0 cannot succeed")
	}
}

func TestTwoColor_Bipartite(t *testing.T) {
	// K_{3,2}: left {0,1,2}, right {3,4}.
	g := buildGraph(t, 5, [][2]int{{0, 3}, {0, 4}, {1, 3}, {1, 4}, {2, 3}, {2, 4}})
	a, nodes, ok := coloring.TwoColor(g)
	if !ok {
		t.Fatal("K_{3,2} is bipartite")
	}
	if nodes < 1 {
		t.Errorf("nodes = %d; want >= 1", nodes)
	}
	if a[0] != a[1] || a[1] != a[2] || a[3] != a[4] || a[0] == a[3] {
		t.Errorf("sides must be monochromatic and distinct: %v", a)
	}
	if !coloring.Verify(g, a, 2) {
		t.Errorf("verifier rejected %v", a)
	}
}

func TestTwoColor_OddCycle(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	if a, _, ok := coloring.TwoColor(g); ok {
		t.Fatalf("odd cycle reported bipartite: %v", a)
	}
}

func TestTwoColor_Disconnected(t *testing.T) {
	// Two disjoint edges; each component seeded with color 0.
	g := buildGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	a, _, ok := coloring.TwoColor(g)
	if !ok {
		t.Fatal("disjoint edges are bipartite")
	}
	if a[0] != 0 || a[2] != 0 {
		t.Errorf("component roots must take color 0: %v", a)
	}
}

func TestVerify(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	cases := []struct {
		name string
		a    coloring.Assignment
		k    int
		want bool
	}{
		{"proper triangle", coloring.Assignment{0, 1, 2}, 3, true},
		{"monochromatic edge", coloring.Assignment{0, 0, 1}, 3, false},
		{"color out of range", coloring.Assignment{0, 1, 3}, 3, false},
		{"uncolored vertex", coloring.Assignment{0, 1, coloring.Uncolored}, 3, false},
		{"wrong length", coloring.Assignment{0, 1}, 3, false},
		{"k too small", coloring.Assignment{0, 1, 2}, 2, false},
	}
	for _, tc := range cases {
		if got := coloring.Verify(g, tc.a, tc.k); got != tc.want {
			t.Errorf("%s: Verify = %v; want %v", tc.name, got, tc.want)
		}
	}
}
