package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/builder"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/core"
	"github.com/Teici/Parallel-and-Distributed-Graph-Coloring/graphio"
)

func newGenCmd() *cobra.Command {
	var (
		typ         string
		out         string
		n           int
		rows, cols  int
		left, right int
		p           float64
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate a synthetic graph and write it as an edge list",
		RunE: func(*cobra.Command, []string) error {
			var (
				g   *core.Graph
				err error
			)
			switch typ {
			case "complete":
				g, err = builder.Complete(n)
			case "cycle":
				g, err = builder.Cycle(n)
			case "grid":
				g, err = builder.Grid(rows, cols)
			case "random":
				g, err = builder.RandomGnp(n, p, seed)
			case "bipartite":
				g, err = builder.RandomBipartite(left, right, p, seed)
			default:
				return fmt.Errorf("unknown --type %q", typ)
			}
			if err != nil {
				return err
			}
			if err := graphio.WriteEdgeList(out, g, false); err != nil {
				return err
			}
			fmt.Printf("wrote %s n=%d m=%d\n", out, g.VertexCount(), g.EdgeCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "complete|cycle|grid|random|bipartite (required)")
	cmd.Flags().StringVar(&out, "out", "", "output path (required)")
	cmd.Flags().IntVar(&n, "n", 0, "vertex count (complete, cycle, random)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid cols")
	cmd.Flags().IntVar(&left, "left", 0, "bipartite left side size")
	cmd.Flags().IntVar(&right, "right", 0, "bipartite right side size")
	cmd.Flags().Float64Var(&p, "p", 0, "edge probability (random, bipartite)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "rng seed (random, bipartite)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
