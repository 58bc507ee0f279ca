// Package loader reads lineage catalog exports from disk: node/edge record
// files and ground-truth adjacency files, in YAML or JSON.
//
// The loader is the boundary to the external lineage record source. It only
// parses; referential checks (duplicate ids, dangling edges) belong to
// graph.Build.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linea-labs/linea/pkg/lineage"
)

// Catalog is a flat lineage export as produced by an external catalog
// service.
type Catalog struct {
	Nodes []lineage.Node `json:"nodes" yaml:"nodes"`
	Edges []lineage.Edge `json:"edges" yaml:"edges"`
}

// LoadCatalog reads a catalog export. The format is chosen by extension:
// .yaml/.yml use YAML, .json uses JSON.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := unmarshal(path, data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	for i, n := range c.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("catalog %s: node %d has no id", path, i)
		}
	}
	for i, e := range c.Edges {
		if e.SourceID == "" || e.TargetID == "" {
			return nil, fmt.Errorf("catalog %s: edge %d (%s) is missing source or target", path, i, e.ID)
		}
	}

	return &c, nil
}

// groundTruthFile is the on-disk shape of a ground-truth export.
type groundTruthFile struct {
	Connections map[string][]string `json:"connections" yaml:"connections"`
}

// LoadGroundTruth reads a manually curated or scanner-derived adjacency:
// a mapping of source id to the target ids it actually feeds.
func LoadGroundTruth(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ground truth %s: %w", path, err)
	}

	var f groundTruthFile
	if err := unmarshal(path, data, &f); err != nil {
		return nil, fmt.Errorf("parse ground truth %s: %w", path, err)
	}
	if f.Connections == nil {
		return nil, fmt.Errorf("ground truth %s: missing connections mapping", path)
	}
	return f.Connections, nil
}

func unmarshal(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal(data, v)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported extension %q (want .yaml, .yml, or .json)", filepath.Ext(path))
	}
}
