package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
	"github.com/linea-labs/linea/pkg/metrics"
)

// NewMetricsCommand creates the metrics command.
func NewMetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Report lineage quality and structural metrics",
		Long: `Aggregate the configured quality feeds (coverage, freshness, completeness,
accuracy, performance) together with structural statistics of the current
graph into a single report.`,
		Example: `  linea metrics
  linea metrics --output json`,
		Args: cobra.NoArgs,
		RunE: runMetrics,
	}

	return cmd
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	feeds := metrics.Feeds{
		Coverage:     cmdCtx.Cfg.Metrics.Coverage,
		Freshness:    cmdCtx.Cfg.Metrics.Freshness,
		Completeness: cmdCtx.Cfg.Metrics.Completeness,
		Accuracy:     cmdCtx.Cfg.Metrics.Accuracy,
		Performance:  cmdCtx.Cfg.Metrics.Performance,
	}
	report, err := cmdCtx.Engine.Metrics(feeds)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(report)
	}

	rows := [][]string{
		{"Coverage", fmt.Sprintf("%.2f", report.Coverage)},
		{"Freshness", fmt.Sprintf("%.2f", report.Freshness)},
		{"Completeness", fmt.Sprintf("%.2f", report.Completeness)},
		{"Accuracy", fmt.Sprintf("%.2f", report.Accuracy)},
		{"Performance", fmt.Sprintf("%.2f", report.Performance)},
		{"Nodes", fmt.Sprintf("%d", report.Structural.NodeCount)},
		{"Edges", fmt.Sprintf("%d", report.Structural.EdgeCount)},
		{"Density", fmt.Sprintf("%.4f", report.Structural.Density)},
		{"Complexity", fmt.Sprintf("%.2f", report.Structural.ComplexityScore)},
	}
	r.Table([]string{"Metric", "Value"}, rows)
	return nil
}
