// Package validate compares a modeled lineage graph against an externally
// supplied ground-truth adjacency and scores how well they agree.
package validate

import (
	"fmt"
	"sort"

	"github.com/linea-labs/linea/pkg/graph"
)

// Connection is a single source -> target pair.
type Connection struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}

// Result reports how the graph diverges from ground truth. It is ephemeral:
// one Result per validation call.
type Result struct {
	// Accuracy is 1 - (missing+incorrect)/(totalEdges+missing), floored at 0.
	Accuracy float64 `json:"accuracy"`
	// Missing are ground-truth connections with no direct downstream edge in
	// the graph.
	Missing []Connection `json:"missing"`
	// Incorrect are graph edges whose target is not listed under their source
	// in ground truth.
	Incorrect       []Connection `json:"incorrect"`
	Recommendations []string     `json:"recommendations"`
}

// Validate checks every ground-truth connection for a direct downstream edge
// in the graph, and every graph edge for a ground-truth entry. Ground truth
// maps each source id to the target ids it actually feeds.
func Validate(g *graph.Graph, groundTruth map[string][]string) Result {
	var r Result

	for _, source := range sortedKeys(groundTruth) {
		for _, target := range groundTruth[source] {
			if !hasDirectEdge(g, source, target) {
				r.Missing = append(r.Missing, Connection{SourceID: source, TargetID: target})
			}
		}
	}

	for _, e := range g.Edges() {
		if !listed(groundTruth[e.SourceID], e.TargetID) {
			r.Incorrect = append(r.Incorrect, Connection{SourceID: e.SourceID, TargetID: e.TargetID})
		}
	}

	issues := len(r.Missing) + len(r.Incorrect)
	denom := float64(g.EdgeCount() + len(r.Missing))
	r.Accuracy = 1.0
	if denom > 0 {
		r.Accuracy = 1 - float64(issues)/denom
	}
	if r.Accuracy < 0 {
		r.Accuracy = 0
	}

	r.Recommendations = recommendations(r.Accuracy, issues)
	return r
}

func hasDirectEdge(g *graph.Graph, source, target string) bool {
	for _, e := range g.OutgoingEdges(source) {
		if e.TargetID == target {
			return true
		}
	}
	return false
}

func listed(targets []string, target string) bool {
	for _, t := range targets {
		if t == target {
			return true
		}
	}
	return false
}

// recommendations escalates by accuracy band and absolute issue count.
func recommendations(accuracy float64, issues int) []string {
	var recs []string
	if accuracy < 0.8 {
		recs = append(recs, "Run a full lineage audit: the modeled graph diverges substantially from actual connections")
	}
	if accuracy < 0.9 {
		recs = append(recs, "Increase catalog scanning frequency to keep lineage current")
	}
	if issues > 10 {
		recs = append(recs, fmt.Sprintf("Adopt automated lineage validation tooling (%d issues found)", issues))
	}
	return recs
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
