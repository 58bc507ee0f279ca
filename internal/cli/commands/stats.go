package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show structural statistics for the lineage graph",
		Long: `Display the structural statistics computed when the lineage graph is
built: node and edge counts, roots and leaves, degree extremes, density,
and the complexity score.`,
		Example: `  # Show graph statistics
  linea stats

  # As JSON
  linea stats --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd)
		},
	}
}

func runStats(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}
	stats, err := cmdCtx.Engine.Stats()
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(stats)
	}

	r.Table([]string{"Metric", "Value"}, [][]string{
		{"Nodes", strconv.Itoa(stats.NodeCount)},
		{"Edges", strconv.Itoa(stats.EdgeCount)},
		{"Roots", strings.Join(stats.RootNodes, ", ")},
		{"Leaves", strings.Join(stats.LeafNodes, ", ")},
		{"Max in-degree", strconv.Itoa(stats.MaxInDegree)},
		{"Max out-degree", strconv.Itoa(stats.MaxOutDegree)},
		{"Avg in-degree", fmt.Sprintf("%.2f", stats.AvgInDegree)},
		{"Avg out-degree", fmt.Sprintf("%.2f", stats.AvgOutDegree)},
		{"Density", fmt.Sprintf("%.4f", stats.Density)},
		{"Complexity", fmt.Sprintf("%.2f", stats.ComplexityScore)},
	})
	return nil
}
