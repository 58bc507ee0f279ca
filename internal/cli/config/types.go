// Package config provides configuration management for the Linea CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	// CatalogPath is the lineage catalog export (YAML or JSON).
	CatalogPath string `koanf:"catalog"`
	// GroundTruthPath is the default ground-truth adjacency file.
	GroundTruthPath string `koanf:"ground_truth"`
	// StatePath is the snapshot database path.
	StatePath string `koanf:"state_path"`
	// MaxDepth bounds traversal and path queries. 0 uses the engine default.
	MaxDepth int `koanf:"max_depth"`
	// HistorySize bounds the snapshot history used for anomaly detection.
	HistorySize int `koanf:"history_size"`
	// OutputFormat is "text" or "json".
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	// Metrics carries the externally sourced health figures for the
	// metrics rollup, each in [0,1].
	Metrics MetricsFeeds `koanf:"metrics"`
}

// MetricsFeeds mirrors the monitoring figures the engine cannot compute
// itself.
type MetricsFeeds struct {
	Coverage     float64 `koanf:"coverage"`
	Freshness    float64 `koanf:"freshness"`
	Completeness float64 `koanf:"completeness"`
	Accuracy     float64 `koanf:"accuracy"`
	Performance  float64 `koanf:"performance"`
}

// Default configuration values.
const (
	DefaultCatalogPath = "catalog.yaml"
	DefaultStateFile   = ".linea/state.db"
	DefaultHistorySize = 5
	DefaultOutput      = "text"
)
