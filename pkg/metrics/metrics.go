// Package metrics rolls up graph-derived structural statistics with
// monitoring figures supplied by the caller into one lineage health report.
package metrics

import "github.com/linea-labs/linea/pkg/graph"

// Feeds carries the externally sourced health figures, each in [0,1].
// The engine does not compute these itself: coverage, freshness,
// completeness, accuracy, and performance require catalog timestamps and
// monitoring data the engine does not own. A zero value means the caller
// wired no feed and the corresponding figures read 0.
type Feeds struct {
	Coverage     float64 `json:"coverage"`
	Freshness    float64 `json:"freshness"`
	Completeness float64 `json:"completeness"`
	Accuracy     float64 `json:"accuracy"`
	Performance  float64 `json:"performance"`
}

// Report is the combined rollup for one graph snapshot.
type Report struct {
	Coverage     float64     `json:"coverage"`
	Freshness    float64     `json:"freshness"`
	Completeness float64     `json:"completeness"`
	Accuracy     float64     `json:"accuracy"`
	Performance  float64     `json:"performance"`
	Structural   graph.Stats `json:"structural"`
}

// Aggregate combines the graph's build-time structural statistics with the
// caller-supplied monitoring feeds.
func Aggregate(g *graph.Graph, feeds Feeds) Report {
	return Report{
		Coverage:     feeds.Coverage,
		Freshness:    feeds.Freshness,
		Completeness: feeds.Completeness,
		Accuracy:     feeds.Accuracy,
		Performance:  feeds.Performance,
		Structural:   g.Stats(),
	}
}
