package solver

import (
	"fmt"
	"time"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
)

// Solve decides whether g admits a proper k-coloring.
//
// The fast-path cascade runs first: the BFS bipartiteness test decides
// k=2 outright, and for other k a successful greedy pass returns
// without any search. Otherwise the exact search runs under the
// configured strategy. All configuration errors are returned before
// any search begins; a deadline hit is not an error but an ordinary
// Result with Success=false.
//
// Under the Distributed strategy Solve must be invoked on every rank
// of the transport; the populated Result is produced on rank 0 and
// workers return an empty one.
func Solve(g *core.Graph, k int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if k < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeColors, k)
	}

	switch o.strategy {
	case Serial:
		return solveSerial(g, k, o), nil
	case Threads:
		return solveThreads(g, k, o), nil
	case Distributed:
		if o.transport == nil {
			return Result{}, ErrNoTransport
		}
		return solveDistributed(g, k, o)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.strategy)
	}
}

// fastPath runs the k=2 and greedy short-circuits. The second return
// reports whether the result is final: always for k=2, and on greedy
// success otherwise. Greedy counters are discarded on failure so the
// exact search starts from zero.
func fastPath(g *core.Graph, k int, start time.Time) (Result, bool) {
	if k == 2 {
		a, nodes, ok := coloring.TwoColor(g)
		res := Result{Success: ok, Nodes: nodes, Seconds: time.Since(start).Seconds()}
		if ok {
			res.Color = a
		}
		return res, true
	}

	if a, nodes, ok := coloring.Greedy(g, k); ok {
		return Result{
			Success: true,
			Color:   a,
			Nodes:   nodes,
			Seconds: time.Since(start).Seconds(),
		}, true
	}
	return Result{}, false
}

// solveSerial is the single-threaded exact path: no suspension, no
// cancellation, the stop flag permanently unset.
func solveSerial(g *core.Graph, k int, o Options) Result {
	start := time.Now()
	if res, done := fastPath(g, k, start); done {
		return res
	}

	s := &search{
		g:        g,
		k:        k,
		degree:   g.Degrees(),
		color:    coloring.NewAssignment(g.VertexCount()),
		deadline: deadlineFrom(start, o.timeout),
	}
	ok := s.run()

	res := Result{
		Success:    ok,
		Nodes:      s.nodes,
		Backtracks: s.backtracks,
		Seconds:    time.Since(start).Seconds(),
	}
	if ok {
		res.Color = s.color
	}
	return res
}
