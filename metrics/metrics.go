// Package metrics exports the counters of tour search runs as Prometheus
// gauges, for scraping or for a node-exporter textfile.
//
// Each Recorder owns a private registry so several can coexist in one
// process (tests, parallel comparisons). Gauges hold the latest run per
// algorithm; tour_search_runs_total accumulates every observed run.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Theoszt/DAA-DFS-dan-BFS/tsp"
)

const (
	namespace = "tour"
	subsystem = "search"
)

// Outcome label values of tour_search_runs_total.
const (
	OutcomeComplete    = "complete"
	OutcomeUnreachable = "unreachable"
)

// Recorder records tsp.Result values. It is safe for concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	operations *prometheus.GaugeVec
	nodes      *prometheus.GaugeVec
	edges      *prometheus.GaugeVec
	memory     *prometheus.GaugeVec
	cost       *prometheus.GaugeVec
	duration   *prometheus.GaugeVec
	runs       *prometheus.CounterVec
}

// New returns a Recorder with all collectors registered.
func New() *Recorder {
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, []string{"algorithm"})
	}
	r := &Recorder{
		reg:        prometheus.NewRegistry(),
		operations: gauge("operations", "Operations counted by the last search run."),
		nodes:      gauge("nodes_visited", "Nodes visited by the last search run."),
		edges:      gauge("edges_examined", "Edges examined by the last search run."),
		memory:     gauge("memory_bytes", "Peak estimated working memory of the last search run."),
		cost:       gauge("cost_km", "Best tour cost of the last search run; +Inf when unreachable."),
		duration:   gauge("duration_seconds", "Wall time of the last search run."),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Search runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
	}
	r.reg.MustRegister(r.operations, r.nodes, r.edges, r.memory, r.cost, r.duration, r.runs)

	return r
}

// Observe records res under its algorithm label.
func (r *Recorder) Observe(res tsp.Result) {
	algo := res.Algorithm.String()
	r.operations.WithLabelValues(algo).Set(float64(res.Operations))
	r.nodes.WithLabelValues(algo).Set(float64(res.NodesVisited))
	r.edges.WithLabelValues(algo).Set(float64(res.EdgesExamined))
	r.memory.WithLabelValues(algo).Set(float64(res.MemoryBytes))
	r.cost.WithLabelValues(algo).Set(res.Cost.Km())
	r.duration.WithLabelValues(algo).Set(res.Elapsed.Seconds())

	outcome := OutcomeComplete
	if !res.Complete() {
		outcome = OutcomeUnreachable
	}
	r.runs.WithLabelValues(algo, outcome).Inc()
}

// Gatherer exposes the private registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
