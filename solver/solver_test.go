package solver_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/builder"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/solver"
)

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

func triangleGraph(t *testing.T) *core.Graph {
	return buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
}

func k4Graph(t *testing.T) *core.Graph {
	return buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
}

func c5Graph(t *testing.T) *core.Graph {
	return buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
}

// bothStrategies runs a case under serial and threads; the distributed
// strategy is covered by the cluster package tests.
func bothStrategies(t *testing.T, g *core.Graph, k int, wantSuccess bool) {
	t.Helper()
	for _, opts := range [][]solver.Option{
		{solver.WithStrategy(solver.Serial)},
		{solver.WithStrategy(solver.Threads), solver.WithThreads(4), solver.WithSplitDepth(2)},
	} {
		res, err := solver.Solve(g, k, opts...)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if res.Success != wantSuccess {
			t.Fatalf("success = %v; want %v", res.Success, wantSuccess)
		}
		if res.Success {
			if !coloring.Verify(g, res.Color, k) {
				t.Errorf("witness %v rejected by verifier", res.Color)
			}
		} else if res.Color != nil {
			t.Errorf("failed solve must report an empty assignment, got %v", res.Color)
		}
		if res.Backtracks > res.Nodes {
			t.Errorf("backtracks %d exceed nodes %d", res.Backtracks, res.Nodes)
		}
	}
}

func TestSolve_EmptyGraphFiveVertices(t *testing.T) {
	g := buildGraph(t, 5, nil)
	res, err := solver.Solve(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatal("edgeless graph is 1-colorable")
	}
	if want := (coloring.Assignment{0, 0, 0, 0, 0}); !reflect.DeepEqual(res.Color, want) {
		t.Errorf("assignment = %v; want %v", res.Color, want)
	}
}

func TestSolve_Triangle(t *testing.T) {
	bothStrategies(t, triangleGraph(t), 2, false)
	bothStrategies(t, triangleGraph(t), 3, true)
}

func TestSolve_K4(t *testing.T) {
	bothStrategies(t, k4Graph(t), 3, false)
	bothStrategies(t, k4Graph(t), 4, true)
}

func TestSolve_FiveCycle(t *testing.T) {
	bothStrategies(t, c5Graph(t), 2, false)
	bothStrategies(t, c5Graph(t), 3, true)
}

// TestSolve_BipartiteFastPath: K_{3,2} at k=2 goes through the
// two-color path, sides monochromatic and distinct.
func TestSolve_BipartiteFastPath(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 3}, {0, 4}, {1, 3}, {1, 4}, {2, 3}, {2, 4}})
	res, err := solver.Solve(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatal("bipartite graph must 2-color")
	}
	a := res.Color
	if a[0] != a[1] || a[1] != a[2] {
		t.Errorf("left side not monochromatic: %v", a)
	}
	if a[3] != a[4] || a[3] == a[0] {
		t.Errorf("right side must share a color distinct from the left: %v", a)
	}
}

func TestSolve_GridBipartite(t *testing.T) {
	g, err := builder.Grid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	bothStrategies(t, g, 2, true)
}

// TestSolve_Boundaries covers the n=0, k=0, k=1 and k>=n corners.
func TestSolve_Boundaries(t *testing.T) {
	empty := buildGraph(t, 0, nil)
	for _, k := range []int{0, 1, 2, 5} {
		res, err := solver.Solve(empty, k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		if !res.Success || len(res.Color) != 0 {
			t.Errorf("n=0 k=%d: want trivial success, got %+v", k, res)
		}
	}

	one := buildGraph(t, 1, nil)
	if res, _ := solver.Solve(one, 0); res.Success {
		t.Error("k=0 with n>0 must fail")
	}

	edge := buildGraph(t, 2, [][2]int{{0, 1}})
	if res, _ := solver.Solve(edge, 1); res.Success {
		t.Error("k=1 with an edge must fail")
	}
	edgeless := buildGraph(t, 3, nil)
	if res, _ := solver.Solve(edgeless, 1); !res.Success {
		t.Error("k=1 without edges must succeed")
	}

	// k >= n: the greedy pre-pass finishes immediately
	res, err := solver.Solve(k4Graph(t), 4)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.Nodes != 4 {
		t.Errorf("k=n greedy path: success=%v nodes=%d; want true 4", res.Success, res.Nodes)
	}
}

// TestSolve_SerialIdempotent: running twice yields bitwise-identical
// results modulo Seconds.
func TestSolve_SerialIdempotent(t *testing.T) {
	g := k4Graph(t)
	first, err := solver.Solve(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := solver.Solve(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Color, second.Color) ||
		first.Success != second.Success ||
		first.Nodes != second.Nodes ||
		first.Backtracks != second.Backtracks {
		t.Errorf("serial solver not idempotent: %+v vs %+v", first, second)
	}
	if first.Nodes < 1 || first.Backtracks < 1 {
		t.Errorf("exhausted search must count nodes and backtracks: %+v", first)
	}
}

// TestSolve_DeadlineExpired: an already-elapsed budget reports failure
// with counters, not an error.
func TestSolve_DeadlineExpired(t *testing.T) {
	res, err := solver.Solve(k4Graph(t), 3, solver.WithTimeout(time.Nanosecond))
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Fatal("expired deadline cannot report success")
	}
	if res.Nodes < 1 {
		t.Errorf("node entry is counted before the deadline check: nodes=%d", res.Nodes)
	}
	if res.Color != nil {
		t.Errorf("deadline hit must leave the assignment empty: %v", res.Color)
	}
}

// TestSolve_ConfigurationErrors: every bad input must be rejected
// before any search begins.
func TestSolve_ConfigurationErrors(t *testing.T) {
	g := triangleGraph(t)

	if _, err := solver.Solve(nil, 3); !errors.Is(err, solver.ErrGraphNil) {
		t.Errorf("nil graph: got %v", err)
	}
	if _, err := solver.Solve(g, -1); !errors.Is(err, solver.ErrNegativeColors) {
		t.Errorf("k=-1: got %v", err)
	}
	if _, err := solver.Solve(g, 3, solver.WithThreads(0)); !errors.Is(err, solver.ErrOptionViolation) {
		t.Errorf("threads=0: got %v", err)
	}
	if _, err := solver.Solve(g, 3, solver.WithSplitDepth(-2)); !errors.Is(err, solver.ErrOptionViolation) {
		t.Errorf("split=-2: got %v", err)
	}
	if _, err := solver.Solve(g, 3, solver.WithTimeout(-time.Second)); !errors.Is(err, solver.ErrOptionViolation) {
		t.Errorf("timeout<0: got %v", err)
	}
	if _, err := solver.Solve(g, 3, solver.WithStrategy(solver.Strategy(42))); !errors.Is(err, solver.ErrUnknownStrategy) {
		t.Errorf("bad strategy: got %v", err)
	}
	if _, err := solver.Solve(g, 3, solver.WithStrategy(solver.Distributed)); !errors.Is(err, solver.ErrNoTransport) {
		t.Errorf("no transport: got %v", err)
	}
}

// TestSolve_ThreadsMatchesSerialOnRandom: the pool strategy and the
// serial solver agree on a spread of random instances.
func TestSolve_ThreadsMatchesSerialOnRandom(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.RandomGnp(12, 0.4, seed)
		if err != nil {
			t.Fatal(err)
		}
		for k := 2; k <= 5; k++ {
			serial, err := solver.Solve(g, k)
			if err != nil {
				t.Fatal(err)
			}
			threaded, err := solver.Solve(g, k,
				solver.WithStrategy(solver.Threads),
				solver.WithThreads(3),
				solver.WithSplitDepth(3))
			if err != nil {
				t.Fatal(err)
			}
			if serial.Success != threaded.Success {
				t.Errorf("seed=%d k=%d: serial=%v threads=%v", seed, k, serial.Success, threaded.Success)
			}
			if threaded.Success && !coloring.Verify(g, threaded.Color, k) {
				t.Errorf("seed=%d k=%d: bad witness %v", seed, k, threaded.Color)
			}
		}
	}
}

// TestSolve_ThreadsSplitDepthZero: a single sub-problem covering the
// whole space still works.
func TestSolve_ThreadsSplitDepthZero(t *testing.T) {
	res, err := solver.Solve(k4Graph(t), 3,
		solver.WithStrategy(solver.Threads),
		solver.WithThreads(2),
		solver.WithSplitDepth(0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Fatal("K4 is not 3-colorable")
	}
	if res.Nodes < 1 {
		t.Errorf("nodes = %d; want >= 1", res.Nodes)
	}
}

func TestStrategyString(t *testing.T) {
	if solver.Serial.String() != "serial" ||
		solver.Threads.String() != "threads" ||
		solver.Distributed.String() != "distributed" {
		t.Error("strategy names feed logs and CSV output; keep them stable")
	}
}
