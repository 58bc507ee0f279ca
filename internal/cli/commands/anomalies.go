package commands

import (
	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
)

// AnomaliesOptions holds options for the anomalies command.
type AnomaliesOptions struct {
	History int
}

// NewAnomaliesCommand creates the anomalies command.
func NewAnomaliesCommand() *cobra.Command {
	opts := &AnomaliesOptions{}

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Detect structural anomalies against saved snapshots",
		Long: `Compare the current lineage graph against recent saved snapshots and
report unexpected changes such as added or removed assets.`,
		Example: `  # Compare against the most recent snapshot
  linea anomalies

  # Keep ten snapshots of history in scope
  linea anomalies --history 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnomalies(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.History, "history", 0, "Snapshots of history to consider (0 = configured default)")

	return cmd
}

func runAnomalies(cmd *cobra.Command, opts *AnomaliesOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	history := opts.History
	if history == 0 {
		history = cmdCtx.Cfg.HistorySize
	}
	report, err := cmdCtx.Engine.DetectAnomalies(history)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(report)
	}

	if len(report.Entries) == 0 {
		r.Println("No anomalies detected")
		return nil
	}

	r.Printf("%d anomal(ies), severity %s\n\n", len(report.Entries), report.Severity)
	rows := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		rows = append(rows, []string{string(e.Type), e.Severity.String(), e.Message})
	}
	r.Table([]string{"Type", "Severity", "Detail"}, rows)

	if len(report.Recommendations) > 0 {
		r.Println("\nRecommendations:")
		for _, rec := range report.Recommendations {
			r.Printf("  - %s\n", rec)
		}
	}
	return nil
}
