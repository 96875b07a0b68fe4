package main

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/must"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

var compareCmd = &cobra.Command{
	Use:   "compare [LOCATION...]",
	Short: "Run dfs and bfs over the same selection and print both reports",
	Run: func(cmd *cobra.Command, args []string) {
		c := must.Must1(settings(cmd))
		must.Must(compare(cmd.OutOrStdout(), c, args))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

// compare runs both strategies concurrently. Each run has its own graph
// and counters; only the table is shared, read-only.
func compare(w io.Writer, c config.Config, args []string) error {
	p, err := newPlan(c, args)
	if err != nil {
		return err
	}
	algos := []tsp.Algorithm{tsp.DFS, tsp.BFS}
	reports := make([]report, len(algos))
	var g errgroup.Group
	for i, algo := range algos {
		g.Go(func() error {
			res, err := p.solve(algo)
			reports[i] = newReport(res)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := p.flush(); err != nil {
		return err
	}
	pr, err := newPrinter(w, c.Output)
	if err != nil {
		return err
	}

	return pr.Print(reports)
}
