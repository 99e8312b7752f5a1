package cluster

import (
	"golang.org/x/sync/errgroup"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/solver"
)

// SolveLocal runs the distributed strategy with all ranks inside this
// process, racing over a fresh Local mesh. It blocks until every rank
// has returned and reports the master's result.
//
// The mesh lives exactly one solve; nothing is cached across calls.
func SolveLocal(g *core.Graph, k, size int, opts ...solver.Option) (solver.Result, error) {
	nodes, err := NewLocal(size)
	if err != nil {
		return solver.Result{}, err
	}

	results := make([]solver.Result, size)
	var eg errgroup.Group
	for rank := 0; rank < size; rank++ {
		rank := rank
		eg.Go(func() error {
			rankOpts := append(
				append([]solver.Option(nil), opts...),
				solver.WithStrategy(solver.Distributed),
				solver.WithTransport(nodes[rank]),
			)
			res, solveErr := solver.Solve(g, k, rankOpts...)
			if solveErr != nil {
				return solveErr
			}
			results[rank] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return solver.Result{}, err
	}
	return results[0], nil
}
