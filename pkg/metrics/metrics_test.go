package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linea-labs/linea/pkg/graph"
	"github.com/linea-labs/linea/pkg/lineage"
)

func TestAggregate(t *testing.T) {
	g, err := graph.Build(
		[]lineage.Node{{ID: "a"}, {ID: "b"}},
		[]lineage.Edge{{ID: "e1", SourceID: "a", TargetID: "b"}},
	)
	require.NoError(t, err)

	r := Aggregate(g, Feeds{
		Coverage:     0.9,
		Freshness:    0.8,
		Completeness: 0.95,
		Accuracy:     0.97,
		Performance:  0.7,
	})

	assert.Equal(t, 0.9, r.Coverage)
	assert.Equal(t, 0.8, r.Freshness)
	assert.Equal(t, 0.95, r.Completeness)
	assert.Equal(t, 0.97, r.Accuracy)
	assert.Equal(t, 0.7, r.Performance)
	assert.Equal(t, g.Stats(), r.Structural)
	assert.Equal(t, 2, r.Structural.NodeCount)
}

func TestAggregate_ZeroFeeds(t *testing.T) {
	g, err := graph.Build([]lineage.Node{{ID: "a"}}, nil)
	require.NoError(t, err)

	r := Aggregate(g, Feeds{})

	assert.Zero(t, r.Coverage)
	assert.Zero(t, r.Freshness)
	assert.Equal(t, 1, r.Structural.NodeCount)
}
