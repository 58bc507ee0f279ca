// Package impact computes the blast radius of a change to a lineage node:
// the affected downstream set, a severity band, critical paths, remediation
// recommendations, and an effort estimate.
package impact

import (
	"math"
	"sort"

	"github.com/linea-labs/linea/pkg/graph"
	"github.com/linea-labs/linea/pkg/lineage"
)

// Analysis is the result of analyzing a hypothetical or actual change at one
// node. It is created fresh per query and never persisted by the engine.
type Analysis struct {
	ChangedID  string             `json:"changedId"`
	ChangeType lineage.ChangeType `json:"changeType"`
	Severity   lineage.Severity   `json:"severity"`
	// ImpactedIDs is the downstream blast radius, sorted and excluding the
	// changed node itself.
	ImpactedIDs []string `json:"impactedIds"`
	// DependencyIDs is the upstream set the changed node depends on, sorted.
	DependencyIDs []string `json:"dependencyIds"`
	// Breakdown counts impacted nodes per asset type. Nodes without an asset
	// type are bucketed as "unknown".
	Breakdown map[string]int `json:"breakdown"`
	// CriticalPaths are all downstream paths from the changed node to each
	// impacted node flagged critical.
	CriticalPaths   [][]string `json:"criticalPaths"`
	Recommendations []string   `json:"recommendations"`
	Effort          Effort     `json:"effort"`
}

// Effort estimates the remediation work for a change.
type Effort struct {
	Hours      int    `json:"hours"`
	Risk       string `json:"risk"`
	Complexity string `json:"complexity"`
}

// Severity scoring tables. These are a fixed contract: the banding must be
// reproduced exactly for results to be comparable across implementations.
var (
	baseScores = map[lineage.ChangeType]float64{
		lineage.ChangeSchema:  3,
		lineage.ChangeData:    2,
		lineage.ChangeLogic:   2,
		lineage.ChangeRemoval: 4,
	}
	baseHours = map[lineage.ChangeType]float64{
		lineage.ChangeSchema:  4,
		lineage.ChangeData:    2,
		lineage.ChangeLogic:   3,
		lineage.ChangeRemoval: 1,
	}
)

// Analyze computes the impact of applying changeType at changedID.
//
// A changedID absent from the graph yields an analysis with empty sets and
// SeverityLow, not an error: the impact of a nonexistent node is defined as
// none. Callers that must distinguish "no such node" from "no relationships"
// check graph membership themselves via Graph.HasNode.
func Analyze(g *graph.Graph, changedID string, changeType lineage.ChangeType) Analysis {
	a := Analysis{
		ChangedID:  changedID,
		ChangeType: changeType,
		Severity:   lineage.SeverityLow,
		Breakdown:  map[string]int{},
	}
	if !g.HasNode(changedID) {
		return a
	}

	// Unbounded in practice: the visited set caps depth at the node count.
	impacted, _ := graph.Traverse(g, changedID, graph.DirectionDownstream, g.NodeCount())
	deps, _ := graph.Traverse(g, changedID, graph.DirectionUpstream, g.NodeCount())

	for _, n := range impacted {
		if n.ID == changedID {
			continue
		}
		a.ImpactedIDs = append(a.ImpactedIDs, n.ID)

		assetType := n.AssetType
		if assetType == "" {
			assetType = "unknown"
		}
		a.Breakdown[assetType]++

		if isCriticalNode(n) {
			paths, _ := graph.FindPaths(g, changedID, n.ID, g.NodeCount())
			a.CriticalPaths = append(a.CriticalPaths, paths...)
		}
	}
	for _, n := range deps {
		if n.ID != changedID {
			a.DependencyIDs = append(a.DependencyIDs, n.ID)
		}
	}
	sort.Strings(a.ImpactedIDs)
	sort.Strings(a.DependencyIDs)

	a.Severity = scoreSeverity(changeType, len(a.ImpactedIDs))
	a.Recommendations = recommendations(a.Severity, changeType, len(a.ImpactedIDs))
	a.Effort = estimateEffort(changeType, len(a.ImpactedIDs))

	return a
}

// isCriticalNode reports whether an impacted node pulls its paths into the
// critical-path list: at least high criticality, running in production, or
// explicitly tagged "critical".
func isCriticalNode(n lineage.Node) bool {
	return n.Criticality.AtLeast(lineage.CriticalityHigh) ||
		n.Environment == "production" ||
		n.HasTag("critical")
}

// scoreSeverity maps change type and impacted count to a severity band:
// base score per type, multiplied by a count multiplier, thresholded.
func scoreSeverity(changeType lineage.ChangeType, impactedCount int) lineage.Severity {
	score := baseScores[changeType]

	switch {
	case impactedCount > 50:
		score *= 3
	case impactedCount > 20:
		score *= 2
	case impactedCount > 5:
		score *= 1.5
	}

	switch {
	case score >= 10:
		return lineage.SeverityCritical
	case score >= 7:
		return lineage.SeverityHigh
	case score >= 4:
		return lineage.SeverityMedium
	default:
		return lineage.SeverityLow
	}
}

// recommendations builds the cumulative rule-based advice list.
func recommendations(sev lineage.Severity, changeType lineage.ChangeType, impactedCount int) []string {
	var recs []string
	if sev >= lineage.SeverityHigh {
		recs = append(recs,
			"Schedule the change in a maintenance window",
			"Notify owners of all impacted assets before rollout")
	}
	if changeType == lineage.ChangeSchema {
		recs = append(recs,
			"Review data contracts and update schema documentation for downstream consumers")
	}
	if changeType == lineage.ChangeRemoval {
		recs = append(recs,
			"Verify every downstream dependency has been migrated before removal")
	}
	if impactedCount > 20 {
		recs = append(recs,
			"Roll out in phases and validate each batch of downstream assets")
	}
	return recs
}

// estimateEffort computes hours = ceil(base + 0.5 * impactedCount) and the
// derived risk and complexity levels.
func estimateEffort(changeType lineage.ChangeType, impactedCount int) Effort {
	hours := int(math.Ceil(baseHours[changeType] + 0.5*float64(impactedCount)))

	risk := "low"
	switch {
	case hours > 20:
		risk = "high"
	case hours > 10:
		risk = "medium"
	}

	complexity := "low"
	switch {
	case impactedCount > 30:
		complexity = "high"
	case impactedCount > 10:
		complexity = "medium"
	}

	return Effort{Hours: hours, Risk: risk, Complexity: complexity}
}
