package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linea-labs/linea/pkg/lineage"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCatalog_YAML(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
nodes:
  - id: raw.events
    asset_type: table
    criticality: high
    environment: production
    tags: [critical]
  - id: warehouse.orders
    asset_type: table
edges:
  - id: e1
    source_id: raw.events
    target_id: warehouse.orders
    relationship: table-to-table
    weight: 1.0
`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Nodes, 2)
	require.Len(t, c.Edges, 1)

	assert.Equal(t, "raw.events", c.Nodes[0].ID)
	assert.Equal(t, lineage.CriticalityHigh, c.Nodes[0].Criticality)
	assert.Equal(t, "production", c.Nodes[0].Environment)
	assert.True(t, c.Nodes[0].HasTag("critical"))
	assert.Equal(t, lineage.RelTableToTable, c.Edges[0].Relationship)
	assert.Equal(t, "warehouse.orders", c.Edges[0].TargetID)
}

func TestLoadCatalog_JSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
  "nodes": [
    {"id": "a", "assetType": "table"},
    {"id": "b", "assetType": "dashboard"}
  ],
  "edges": [
    {"id": "e1", "sourceId": "a", "targetId": "b", "relationshipType": "transformation"}
  ]
}`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Nodes, 2)
	assert.Equal(t, "dashboard", c.Nodes[1].AssetType)
	assert.Equal(t, lineage.RelTransformation, c.Edges[0].Relationship)
}

func TestLoadCatalog_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read catalog")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", "nodes = []\n")
		_, err := LoadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported extension")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "catalog.yaml", "nodes: [unclosed\n")
		_, err := LoadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse catalog")
	})

	t.Run("node without id", func(t *testing.T) {
		path := writeFile(t, "catalog.yaml", "nodes:\n  - asset_type: table\n")
		_, err := LoadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no id")
	})

	t.Run("edge without endpoints", func(t *testing.T) {
		path := writeFile(t, "catalog.yaml", `
nodes:
  - id: a
edges:
  - id: e1
    source_id: a
`)
		_, err := LoadCatalog(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing source or target")
	})
}

func TestLoadGroundTruth(t *testing.T) {
	path := writeFile(t, "known.yaml", `
connections:
  raw.events:
    - warehouse.orders
    - warehouse.sessions
  warehouse.orders: []
`)

	gt, err := LoadGroundTruth(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"warehouse.orders", "warehouse.sessions"}, gt["raw.events"])
	assert.Empty(t, gt["warehouse.orders"])
}

func TestLoadGroundTruth_MissingConnections(t *testing.T) {
	path := writeFile(t, "known.yaml", "other: 1\n")
	_, err := LoadGroundTruth(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing connections mapping")
}
