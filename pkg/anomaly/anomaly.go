// Package anomaly flags structural drift between a current lineage graph and
// historical snapshots: added and removed nodes, plus performance and quality
// degradation reported by caller-wired probes.
package anomaly

import (
	"fmt"
	"sort"
	"time"

	"github.com/linea-labs/linea/pkg/graph"
	"github.com/linea-labs/linea/pkg/lineage"
)

// Type classifies an anomaly entry.
type Type string

// Anomaly types.
const (
	TypeNodesAdded      Type = "nodes-added"
	TypeNodesRemoved    Type = "nodes-removed"
	TypePerformance     Type = "performance-degradation"
	TypeQuality         Type = "quality-degradation"
	removedNodeHighBar       = 5
)

// Entry is a single anomaly finding.
type Entry struct {
	Type        Type             `json:"type"`
	Severity    lineage.Severity `json:"severity"`
	Message     string           `json:"message"`
	AffectedIDs []string         `json:"affectedIds,omitempty"`
}

// Report aggregates the findings of one detection run.
type Report struct {
	Entries []Entry `json:"entries"`
	// Severity is the maximum severity across entries, SeverityLow when empty.
	Severity        lineage.Severity `json:"severity"`
	Recommendations []string         `json:"recommendations"`
	DetectedAt      time.Time        `json:"detectedAt"`
}

// Probe is an extension point for performance and quality anomaly detection
// backed by external metric feeds. The detector only invokes probes and
// merges their entries; a deployment with no metric feed wires no probes.
type Probe interface {
	Check(current *graph.Graph, previous *graph.Graph) []Entry
}

// Detector diffs graphs against history.
type Detector struct {
	probes []Probe
}

// NewDetector creates a detector with the given probes. Probes may be empty.
func NewDetector(probes ...Probe) *Detector {
	return &Detector{probes: probes}
}

// Detect compares current against the most recent historical snapshot (the
// last element). With no history there is nothing to compare: the report is
// empty and SeverityLow, not an error. Historical snapshots are an explicit
// parameter; the detector keeps no state of its own.
func (d *Detector) Detect(current *graph.Graph, historical []*graph.Graph) Report {
	report := Report{
		Severity:   lineage.SeverityLow,
		DetectedAt: time.Now().UTC(),
	}
	if len(historical) == 0 {
		return report
	}
	previous := historical[len(historical)-1]

	if added := diffNodeIDs(current, previous); len(added) > 0 {
		report.Entries = append(report.Entries, Entry{
			Type:        TypeNodesAdded,
			Severity:    lineage.SeverityLow,
			Message:     message(len(added), "new node", "appeared since the last snapshot"),
			AffectedIDs: added,
		})
	}
	if removed := diffNodeIDs(previous, current); len(removed) > 0 {
		sev := lineage.SeverityMedium
		if len(removed) > removedNodeHighBar {
			sev = lineage.SeverityHigh
		}
		report.Entries = append(report.Entries, Entry{
			Type:        TypeNodesRemoved,
			Severity:    sev,
			Message:     message(len(removed), "node", "disappeared since the last snapshot"),
			AffectedIDs: removed,
		})
	}

	for _, p := range d.probes {
		report.Entries = append(report.Entries, p.Check(current, previous)...)
	}

	for _, e := range report.Entries {
		report.Severity = report.Severity.Max(e.Severity)
	}
	report.Recommendations = recommendations(report.Entries)
	return report
}

// diffNodeIDs returns the ids present in a but not in b, sorted.
func diffNodeIDs(a, b *graph.Graph) []string {
	var diff []string
	for _, id := range a.NodeIDs() {
		if !b.HasNode(id) {
			diff = append(diff, id)
		}
	}
	sort.Strings(diff)
	return diff
}

func message(count int, noun, tail string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s %s", noun, tail)
	}
	return fmt.Sprintf("%d %ss %s", count, noun, tail)
}

func recommendations(entries []Entry) []string {
	var recs []string
	for _, e := range entries {
		switch e.Type {
		case TypeNodesRemoved:
			recs = append(recs, "Confirm removed assets were decommissioned intentionally and downstream consumers migrated")
		case TypePerformance:
			recs = append(recs, "Investigate pipeline runtimes against the previous snapshot baseline")
		case TypeQuality:
			recs = append(recs, "Review data quality checks on the affected assets")
		}
	}
	return dedupe(recs)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
