package config

import "fmt"

// Validate checks the configuration for values the engine would reject.
func (c *Config) Validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog path must not be empty")
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative, got %d", c.HistorySize)
	}
	if c.OutputFormat != "" && c.OutputFormat != "text" && c.OutputFormat != "json" {
		return fmt.Errorf("output must be text or json, got %q", c.OutputFormat)
	}
	for name, v := range map[string]float64{
		"coverage":     c.Metrics.Coverage,
		"freshness":    c.Metrics.Freshness,
		"completeness": c.Metrics.Completeness,
		"accuracy":     c.Metrics.Accuracy,
		"performance":  c.Metrics.Performance,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("metrics.%s must be in [0,1], got %v", name, v)
		}
	}
	return nil
}
