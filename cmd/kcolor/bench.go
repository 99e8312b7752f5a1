package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		flags solveFlags
		runs  int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "repeat a solve R times and emit per-run CSV",
		RunE: func(*cobra.Command, []string) error {
			if runs < 1 {
				runs = 1
			}
			g, err := flags.loadGraph()
			if err != nil {
				return err
			}

			w := csv.NewWriter(os.Stdout)
			if err := w.Write([]string{"run", "time", "success", "nodes", "backtracks"}); err != nil {
				return err
			}

			var sum float64
			ok := 0
			for r := 0; r < runs; r++ {
				res, err := flags.run(g)
				if err != nil {
					return err
				}
				success := "0"
				if res.Success {
					success = "1"
					ok++
				}
				sum += res.Seconds
				if err := w.Write([]string{
					strconv.Itoa(r),
					fmt.Sprintf("%.6f", res.Seconds),
					success,
					strconv.FormatInt(res.Nodes, 10),
					strconv.FormatInt(res.Backtracks, 10),
				}); err != nil {
					return err
				}
			}

			avg := []string{"avg", fmt.Sprintf("%.6f", sum/float64(runs)),
				fmt.Sprintf("ok=%d/%d", ok, runs), "", ""}
			if err := w.Write(avg); err != nil {
				return err
			}
			w.Flush()
			return w.Error()
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&runs, "runs", 5, "number of repetitions")
	return cmd
}
