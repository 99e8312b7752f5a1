// Command kcolor decides k-colorability of edge-list graphs with the
// serial, threaded, or distributed exact solver, generates synthetic
// instances, and benchmarks solver configurations.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/internal/xlog"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kcolor",
		Short:         "exact graph k-coloring: serial, threaded, and distributed",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			xlog.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", xlog.LevelInfo, "debug|info|warn|error")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newWorkerCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		xlog.Errorf("%v", err)
		os.Exit(1)
	}
}
