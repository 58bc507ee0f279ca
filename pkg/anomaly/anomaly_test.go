package anomaly

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linea-labs/linea/pkg/graph"
	"github.com/linea-labs/linea/pkg/lineage"
)

func buildGraph(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()
	ns := make([]lineage.Node, len(ids))
	for i, id := range ids {
		ns[i] = lineage.Node{ID: id}
	}
	g, err := graph.Build(ns, nil)
	require.NoError(t, err)
	return g
}

func TestDetect_NoHistory(t *testing.T) {
	current := buildGraph(t, "a", "b")

	report := NewDetector().Detect(current, nil)

	assert.Empty(t, report.Entries)
	assert.Equal(t, lineage.SeverityLow, report.Severity)
	assert.False(t, report.DetectedAt.IsZero())
}

func TestDetect_NewNodes(t *testing.T) {
	previous := buildGraph(t, "a")
	current := buildGraph(t, "a", "b", "c")

	report := NewDetector().Detect(current, []*graph.Graph{previous})

	require.Len(t, report.Entries, 1)
	e := report.Entries[0]
	assert.Equal(t, TypeNodesAdded, e.Type)
	assert.Equal(t, lineage.SeverityLow, e.Severity)
	assert.Equal(t, []string{"b", "c"}, e.AffectedIDs)
	assert.Equal(t, lineage.SeverityLow, report.Severity)
}

func TestDetect_RemovedNodes(t *testing.T) {
	previous := buildGraph(t, "a", "b", "c")
	current := buildGraph(t, "a")

	report := NewDetector().Detect(current, []*graph.Graph{previous})

	require.Len(t, report.Entries, 1)
	e := report.Entries[0]
	assert.Equal(t, TypeNodesRemoved, e.Type)
	assert.Equal(t, lineage.SeverityMedium, e.Severity)
	assert.Equal(t, []string{"b", "c"}, e.AffectedIDs)
	assert.Equal(t, lineage.SeverityMedium, report.Severity)
	assert.NotEmpty(t, report.Recommendations)
}

func TestDetect_ManyRemovedNodesEscalate(t *testing.T) {
	ids := []string{"keep"}
	for i := 0; i < 6; i++ {
		ids = append(ids, fmt.Sprintf("gone%d", i))
	}
	previous := buildGraph(t, ids...)
	current := buildGraph(t, "keep")

	report := NewDetector().Detect(current, []*graph.Graph{previous})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, lineage.SeverityHigh, report.Entries[0].Severity)
	assert.Equal(t, lineage.SeverityHigh, report.Severity)
}

func TestDetect_ComparesMostRecentSnapshot(t *testing.T) {
	oldest := buildGraph(t, "x")
	latest := buildGraph(t, "a")
	current := buildGraph(t, "a")

	report := NewDetector().Detect(current, []*graph.Graph{oldest, latest})

	assert.Empty(t, report.Entries, "diff must run against the last snapshot only")
}

type stubProbe struct {
	entries []Entry
}

func (p stubProbe) Check(_ *graph.Graph, _ *graph.Graph) []Entry {
	return p.entries
}

func TestDetect_ProbesMerged(t *testing.T) {
	previous := buildGraph(t, "a")
	current := buildGraph(t, "a")

	probe := stubProbe{entries: []Entry{{
		Type:     TypePerformance,
		Severity: lineage.SeverityCritical,
		Message:  "pipeline runtime doubled",
	}}}

	report := NewDetector(probe).Detect(current, []*graph.Graph{previous})

	require.Len(t, report.Entries, 1)
	assert.Equal(t, TypePerformance, report.Entries[0].Type)
	assert.Equal(t, lineage.SeverityCritical, report.Severity)
	assert.Contains(t, report.Recommendations,
		"Investigate pipeline runtimes against the previous snapshot baseline")
}

func TestDetect_SeverityIsMaxOverEntries(t *testing.T) {
	previous := buildGraph(t, "a", "gone")
	current := buildGraph(t, "a", "new")

	probe := stubProbe{entries: []Entry{{Type: TypeQuality, Severity: lineage.SeverityHigh}}}
	report := NewDetector(probe).Detect(current, []*graph.Graph{previous})

	require.Len(t, report.Entries, 3)
	assert.Equal(t, lineage.SeverityHigh, report.Severity)
}
