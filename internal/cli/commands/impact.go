package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
	"github.com/linea-labs/linea/pkg/lineage"
)

// ImpactOptions holds options for the impact command.
type ImpactOptions struct {
	ChangeType string
}

// NewImpactCommand creates the impact command.
func NewImpactCommand() *cobra.Command {
	opts := &ImpactOptions{}

	cmd := &cobra.Command{
		Use:   "impact <node>",
		Short: "Analyze the blast radius of a change",
		Long: `Analyze the impact of changing a node: which assets are affected, how
severe the change is, which critical paths it touches, and how much
migration effort to plan for.`,
		Example: `  # What breaks if we drop a column from the orders table
  linea impact warehouse.orders --change schema

  # Full removal analysis, as JSON
  linea impact raw.events --change removal --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImpact(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ChangeType, "change", "c", "schema", "Change type (schema|data|logic|removal)")

	return cmd
}

func runImpact(cmd *cobra.Command, changedID string, opts *ImpactOptions) error {
	changeType, ok := lineage.ParseChangeType(opts.ChangeType)
	if !ok {
		return fmt.Errorf("invalid change type: %s", opts.ChangeType)
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	analysis, err := cmdCtx.Engine.AnalyzeImpact(changedID, changeType)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(analysis)
	}

	r.Printf("Impact of %s change to %s\n\n", changeType, changedID)
	r.Printf("Severity:   %s\n", analysis.Severity)
	r.Printf("Impacted:   %d downstream asset(s)\n", len(analysis.ImpactedIDs))
	r.Printf("Depends on: %d upstream asset(s)\n", len(analysis.DependencyIDs))
	r.Printf("Effort:     %dh (risk %s, complexity %s)\n", analysis.Effort.Hours, analysis.Effort.Risk, analysis.Effort.Complexity)

	if len(analysis.Breakdown) > 0 {
		types := make([]string, 0, len(analysis.Breakdown))
		for t := range analysis.Breakdown {
			types = append(types, t)
		}
		sort.Strings(types)

		rows := make([][]string, 0, len(types))
		for _, t := range types {
			rows = append(rows, []string{t, fmt.Sprintf("%d", analysis.Breakdown[t])})
		}
		r.Println("")
		r.Table([]string{"Asset Type", "Impacted"}, rows)
	}

	if len(analysis.CriticalPaths) > 0 {
		r.Printf("\nCritical paths (%d):\n", len(analysis.CriticalPaths))
		for _, p := range analysis.CriticalPaths {
			r.Printf("  %s\n", strings.Join(p, " -> "))
		}
	}

	if len(analysis.Recommendations) > 0 {
		r.Println("\nRecommendations:")
		for _, rec := range analysis.Recommendations {
			r.Printf("  - %s\n", rec)
		}
	}
	return nil
}
