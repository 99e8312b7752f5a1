package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/cluster"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/coloring"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/graphio"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/solver"
)

// errVerify marks the fatal case of a witness the verifier rejects.
var errVerify = errors.New("verification failed on a claimed success")

// solveFlags is shared between the solve and bench commands.
type solveFlags struct {
	graph      string
	k          int
	oneBased   bool
	strategy   string
	threads    int
	split      int
	maxSec     float64
	localRanks int
	listen     string
	size       int
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.graph, "graph", "", "edge-list file (required)")
	cmd.Flags().IntVar(&f.k, "k", 0, "number of colors (required)")
	cmd.Flags().BoolVar(&f.oneBased, "one-based", false, "vertex ids in the file start at 1")
	cmd.Flags().StringVar(&f.strategy, "strategy", "serial", "serial|threads|dist")
	cmd.Flags().IntVar(&f.threads, "threads", 8, "worker pool size for --strategy threads")
	cmd.Flags().IntVar(&f.split, "split", 5, "sub-problem split depth")
	cmd.Flags().Float64Var(&f.maxSec, "max-sec", 0, "wall-clock budget in seconds, 0 = none")
	cmd.Flags().IntVar(&f.localRanks, "local-ranks", 0, "dist: run this many ranks in-process")
	cmd.Flags().StringVar(&f.listen, "listen", "", "dist: websocket listen address for the master")
	cmd.Flags().IntVar(&f.size, "size", 0, "dist: cluster size including the master")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("k")
}

func (f *solveFlags) timeout() time.Duration {
	return time.Duration(f.maxSec * float64(time.Second))
}

func (f *solveFlags) loadGraph() (*core.Graph, error) {
	return graphio.ReadEdgeList(f.graph, f.oneBased)
}

func (f *solveFlags) run(g *core.Graph) (solver.Result, error) {
	base := []solver.Option{
		solver.WithSplitDepth(f.split),
		solver.WithTimeout(f.timeout()),
	}
	switch f.strategy {
	case "serial":
		return solver.Solve(g, f.k, base...)
	case "threads":
		return solver.Solve(g, f.k, append(base,
			solver.WithStrategy(solver.Threads),
			solver.WithThreads(f.threads))...)
	case "dist":
		if f.localRanks > 0 {
			return cluster.SolveLocal(g, f.k, f.localRanks, base...)
		}
		if f.listen == "" || f.size < 2 {
			return solver.Result{}, fmt.Errorf("dist strategy needs --local-ranks, or --listen with --size >= 2")
		}
		master, err := cluster.Listen(f.listen, f.size)
		if err != nil {
			return solver.Result{}, err
		}
		defer master.Close()
		if err := master.Await(); err != nil {
			return solver.Result{}, err
		}
		return solver.Solve(g, f.k, append(base,
			solver.WithStrategy(solver.Distributed),
			solver.WithTransport(master))...)
	default:
		return solver.Result{}, fmt.Errorf("unknown --strategy %q", f.strategy)
	}
}

func newSolveCmd() *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "decide k-colorability of an edge-list graph",
		RunE: func(*cobra.Command, []string) error {
			g, err := flags.loadGraph()
			if err != nil {
				return err
			}
			res, err := flags.run(g)
			if err != nil {
				return err
			}

			fmt.Printf("success=%t time=%.6fs nodes=%d backtracks=%d\n",
				res.Success, res.Seconds, res.Nodes, res.Backtracks)
			if res.Success {
				if !coloring.Verify(g, res.Color, flags.k) {
					fmt.Println("verify=FAIL")
					return errVerify
				}
				fmt.Println("verify=OK")
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newWorkerCmd() *cobra.Command {
	var (
		graph    string
		k        int
		oneBased bool
		split    int
		maxSec   float64
		connect  string
		rank     int
		size     int
	)
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "join a distributed solve as one worker rank",
		RunE: func(*cobra.Command, []string) error {
			if connect == "" || rank < 1 || size < 2 {
				return fmt.Errorf("worker needs --connect, --rank >= 1 and --size >= 2")
			}
			g, err := graphio.ReadEdgeList(graph, oneBased)
			if err != nil {
				return err
			}
			w, err := cluster.NewWorker(connect, rank, size)
			if err != nil {
				return err
			}
			defer w.Close()

			_, err = solver.Solve(g, k,
				solver.WithStrategy(solver.Distributed),
				solver.WithTransport(w),
				solver.WithSplitDepth(split),
				solver.WithTimeout(time.Duration(maxSec*float64(time.Second))))
			return err
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "", "edge-list file (required)")
	cmd.Flags().IntVar(&k, "k", 0, "number of colors (required)")
	cmd.Flags().BoolVar(&oneBased, "one-based", false, "vertex ids in the file start at 1")
	cmd.Flags().IntVar(&split, "split", 5, "sub-problem split depth")
	cmd.Flags().Float64Var(&maxSec, "max-sec", 0, "wall-clock budget in seconds, 0 = none")
	cmd.Flags().StringVar(&connect, "connect", "", "master websocket URL (ws://host:port/)")
	cmd.Flags().IntVar(&rank, "rank", 0, "this worker's rank, 1..size-1")
	cmd.Flags().IntVar(&size, "size", 0, "cluster size including the master")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("k")
	return cmd
}
