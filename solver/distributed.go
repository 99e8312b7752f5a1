package solver

import (
	"fmt"
	"time"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/internal/xlog"
)

// solveDistributed runs the master/worker exchange over o.transport.
//
// Every rank executes the fast paths locally: they are pure functions
// of (g, k), so all ranks reach the same verdict without a message and
// stay in lockstep. The two barriers bracket the parallel phase so the
// master's timer measures only the actual solve.
//
// There is no cross-worker cancellation: a worker finishes whatever
// sub-problem it accepted. The sub-problems are sized by the split
// depth to be individually bounded, and the per-solve deadline still
// applies inside each worker.
func solveDistributed(g *core.Graph, k int, o Options) (Result, error) {
	tr := o.transport

	// A lone rank degrades to the serial solver.
	if tr.Size() == 1 {
		return solveSerial(g, k, o), nil
	}

	if res, done := fastPath(g, k, time.Now()); done {
		if tr.Rank() != 0 {
			return Result{}, nil
		}
		return res, nil
	}

	if err := tr.Barrier(); err != nil {
		return Result{}, fmt.Errorf("solver: entry barrier: %w", err)
	}
	start := time.Now()

	var (
		res Result
		err error
	)
	if tr.Rank() == 0 {
		res, err = runMaster(g, k, o, start)
	} else {
		err = runWorker(g, k, o, start)
	}
	if err != nil {
		return Result{}, err
	}

	if err := tr.Barrier(); err != nil {
		return Result{}, fmt.Errorf("solver: exit barrier: %w", err)
	}
	if tr.Rank() == 0 {
		res.Seconds = time.Since(start).Seconds()
	}
	return res, nil
}

// runMaster seeds one sub-problem per worker, then feeds further work
// as results arrive. A success triggers the follow-up TagSol receive
// from the same worker; exhaustion or the deadline drains the active
// set with TagStop. The final broadcast releases workers that never
// received work.
func runMaster(g *core.Graph, k int, o Options, start time.Time) (Result, error) {
	tr := o.transport
	n := g.VertexCount()
	degree := g.Degrees()
	deadline := deadlineFrom(start, o.timeout)

	subs := GenerateSubproblems(g, k, degree, o.splitDepth)
	xlog.Infof("master: n=%d m=%d k=%d split=%d subproblems=%d workers=%d",
		n, g.EdgeCount(), k, o.splitDepth, len(subs), tr.Size()-1)

	next, active := 0, 0
	for w := 1; w < tr.Size() && next < len(subs); w++ {
		if err := tr.Send(w, TagWork, encodeColors(subs[next].Color)); err != nil {
			return Result{}, fmt.Errorf("solver: seed rank %d: %w", w, err)
		}
		next++
		active++
	}

	var (
		found      bool
		solution   coloring.Assignment
		nodesTotal int64
		backsTotal int64
	)
	for active > 0 && !found {
		msg, err := tr.Recv(AnySource, TagResult)
		if err != nil {
			return Result{}, fmt.Errorf("solver: master recv: %w", err)
		}
		status, nodes, backs, err := decodeResult(msg.Payload)
		if err != nil {
			return Result{}, err
		}
		nodesTotal += nodes
		backsTotal += backs

		if status == 1 {
			sol, err := tr.Recv(msg.From, TagSol)
			if err != nil {
				return Result{}, fmt.Errorf("solver: witness recv: %w", err)
			}
			if solution, err = decodeColors(sol.Payload, n); err != nil {
				return Result{}, err
			}
			found = true
			break
		}

		expired := !deadline.IsZero() && time.Now().After(deadline)
		if next < len(subs) && !expired {
			if err := tr.Send(msg.From, TagWork, encodeColors(subs[next].Color)); err != nil {
				return Result{}, fmt.Errorf("solver: dispatch rank %d: %w", msg.From, err)
			}
			next++
		} else {
			if err := tr.Send(msg.From, TagStop, nil); err != nil {
				return Result{}, fmt.Errorf("solver: stop rank %d: %w", msg.From, err)
			}
			active--
		}
	}

	for w := 1; w < tr.Size(); w++ {
		if err := tr.Send(w, TagStop, nil); err != nil {
			return Result{}, fmt.Errorf("solver: stop broadcast rank %d: %w", w, err)
		}
	}

	res := Result{
		Success:    found,
		Nodes:      nodesTotal,
		Backtracks: backsTotal,
	}
	if found {
		res.Color = solution
	}
	return res, nil
}

// runWorker loops on master messages: TagStop exits, TagWork runs the
// exact search from the received assignment with a local stop flag
// only. A success is reported as TagResult followed by TagSol, after
// which the worker leaves the loop.
func runWorker(g *core.Graph, k int, o Options, start time.Time) error {
	tr := o.transport
	n := g.VertexCount()
	degree := g.Degrees()
	deadline := deadlineFrom(start, o.timeout)

	for {
		msg, err := tr.Recv(0, AnyTag)
		if err != nil {
			return fmt.Errorf("solver: worker recv: %w", err)
		}
		if msg.Tag == TagStop {
			return nil
		}

		a, err := decodeColors(msg.Payload, n)
		if err != nil {
			return err
		}
		s := &search{
			g:        g,
			k:        k,
			degree:   degree,
			color:    a,
			deadline: deadline,
		}
		found := s.run()

		var status int64
		if found {
			status = 1
		}
		if err := tr.Send(0, TagResult, encodeResult(status, s.nodes, s.backtracks)); err != nil {
			return fmt.Errorf("solver: worker report: %w", err)
		}
		if found {
			if err := tr.Send(0, TagSol, encodeColors(s.color)); err != nil {
				return fmt.Errorf("solver: worker witness: %w", err)
			}
			return nil
		}
	}
}
