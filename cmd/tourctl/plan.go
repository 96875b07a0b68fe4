package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Theoszt/DAA-DFS-dan-BFS/config"
	"github.com/Theoszt/DAA-DFS-dan-BFS/distance"
	"github.com/Theoszt/DAA-DFS-dan-BFS/metrics"
	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

var errNoTable = errors.New("no distance table: use --table or set table in the config file")

// settings returns the config file, or the defaults, overlaid by flags
// given on the command line.
func settings(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if *configPath != "" {
		var err error
		if c, err = config.Load(*configPath); err != nil {
			return c, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		c.Output = outputFlag.String()
	}
	if flags.Changed("table") {
		c.Table = *tableFlag
	}
	if flags.Changed("start") {
		c.Start = *startFlag
	}
	if flags.Changed("min") {
		c.MinLocations = *minFlag
	}
	if flags.Changed("max") {
		c.MaxLocations = *maxFlag
	}
	if flags.Changed("metrics-file") {
		c.MetricsFile = *metricsFlag
	}

	return c, c.Validate()
}

// plan is a loaded table plus the selection and start to search it with.
type plan struct {
	cfg   config.Config
	table *distance.Table
	sel   []distance.Location
	start distance.Location
	rec   *metrics.Recorder
}

// newPlan loads c.Table. Locations named in args replace c.Locations; with
// neither, every row of the table is selected.
func newPlan(c config.Config, args []string) (*plan, error) {
	if c.Table == "" {
		return nil, errNoTable
	}
	t, err := distance.LoadCSVFile(c.Table)
	if err != nil {
		return nil, err
	}
	p := &plan{cfg: c, table: t, sel: c.Locations, start: c.Start, rec: metrics.New()}
	if len(args) > 0 {
		p.sel = args
	}
	if len(p.sel) == 0 {
		p.sel = t.Rows()
	}
	if p.start == "" && len(p.sel) > 0 {
		p.start = p.sel[0]
	}
	log.V(1).Info("selection", "table", c.Table, "locations", len(p.sel), "start", p.start)

	return p, nil
}

// solve runs algo over the plan and records the result.
func (p *plan) solve(algo tsp.Algorithm, opts ...tsp.Option) (tsp.Result, error) {
	if algo == tsp.DFS {
		log.V(1).Info("exhaustive search", "tours", tsp.SearchSpace(len(p.sel)))
	}
	all := append(p.cfg.SearchOptions(), tsp.WithLogger(log.WithValues("algorithm", algo)))
	res, err := tsp.Solve(p.table, p.sel, p.start, algo, append(all, opts...)...)
	if err != nil {
		return res, err
	}
	p.rec.Observe(res)

	return res, nil
}

// flush writes the metrics textfile if one is configured.
func (p *plan) flush() error {
	if p.cfg.MetricsFile == "" {
		return nil
	}
	return p.rec.WriteTextfile(p.cfg.MetricsFile)
}

// report is the printed form of a tsp.Result.
type report struct {
	tsp.Result
	Route    []distance.Location `json:"route"`
	Complete bool                `json:"complete"`
	Elapsed  string              `json:"elapsed"`
}

func newReport(res tsp.Result) report {
	return report{
		Result:   res,
		Route:    res.Route(),
		Complete: res.Complete(),
		Elapsed:  res.Elapsed.String(),
	}
}

// traceTo returns a hook printing every completed path to w, marking the
// ones that became the best tour.
func traceTo(w io.Writer) tsp.Option {
	return tsp.WithOnCandidate(func(c tsp.Candidate) {
		mark := ""
		if c.Improved {
			mark = " *"
		}
		fmt.Fprintf(w, "%s %v%s\n", strings.Join(c.Path, " -> "), c.Cost, mark)
	})
}
