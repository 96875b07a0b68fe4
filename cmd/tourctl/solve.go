package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/enumflag"
	"github.com/Theoszt/DAA-DFS-dan-BFS/internal/must"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

var (
	solveCmd = &cobra.Command{
		Use:   "solve [LOCATION...]",
		Short: "Find a closed tour over the selected locations",
		Long: `Find a closed tour that starts and ends at the start location and visits
every selected location once.

dfs evaluates every ordering and returns the shortest. bfs completes a single
tour in breadth-first order and is only as good as that order.`,
		Run: func(cmd *cobra.Command, args []string) {
			c := must.Must1(settings(cmd))
			if cmd.Flags().Changed("algorithm") {
				c.Algorithm = must.Must1(tsp.ParseAlgorithm(algorithmFlag.String()))
			}
			must.Must(solve(cmd.OutOrStdout(), cmd.ErrOrStderr(), c, args, *traceFlag))
		},
	}
	algorithmFlag = enumflag.New("", []string{tsp.BFS.String(), tsp.DFS.String()})
	traceFlag     *bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().VarP(algorithmFlag, "algorithm", "a", algorithmFlag.DocString("Search strategy, default dfs"))
	traceFlag = solveCmd.Flags().Bool("trace", false, "Print every completed path to stderr")
}

// solve runs c.Algorithm and prints the report to w. With trace, every
// completed path is printed to tw.
func solve(w, tw io.Writer, c config.Config, args []string, trace bool) error {
	p, err := newPlan(c, args)
	if err != nil {
		return err
	}
	var opts []tsp.Option
	if trace {
		opts = append(opts, traceTo(tw))
	}
	res, err := p.solve(c.Algorithm, opts...)
	if err != nil {
		return err
	}
	if err := p.flush(); err != nil {
		return err
	}
	pr, err := newPrinter(w, c.Output)
	if err != nil {
		return err
	}

	return pr.Print(newReport(res))
}
