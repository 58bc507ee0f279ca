package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
	"github.com/linea-labs/linea/internal/engine"
	"github.com/linea-labs/linea/internal/loader"
	"github.com/linea-labs/linea/pkg/lineage"
	"github.com/linea-labs/linea/pkg/metrics"
)

// ReportOptions holds options for the report command.
type ReportOptions struct {
	GroundTruthPath string
	ChangedID       string
	ChangeType      string
	History         int
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Produce a combined lineage health report",
		Long: `Run metrics aggregation, anomaly detection, and optionally validation and
impact analysis over the current graph and combine the results into one
report. The sections run concurrently over a single graph snapshot.`,
		Example: `  # Metrics plus anomalies
  linea report

  # Everything, including validation and a removal impact analysis
  linea report --ground-truth known_connections.yaml --changed raw.events --change removal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.GroundTruthPath, "ground-truth", "g", "", "Path to the ground-truth connections file")
	cmd.Flags().StringVar(&opts.ChangedID, "changed", "", "Node to run impact analysis for")
	cmd.Flags().StringVarP(&opts.ChangeType, "change", "c", "schema", "Change type for impact analysis (schema|data|logic|removal)")
	cmd.Flags().IntVar(&opts.History, "history", 0, "Snapshots of history for anomaly detection (0 = configured default)")

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	engineOpts := engine.ReportOptions{
		HistorySize: opts.History,
		Feeds: metrics.Feeds{
			Coverage:     cmdCtx.Cfg.Metrics.Coverage,
			Freshness:    cmdCtx.Cfg.Metrics.Freshness,
			Completeness: cmdCtx.Cfg.Metrics.Completeness,
			Accuracy:     cmdCtx.Cfg.Metrics.Accuracy,
			Performance:  cmdCtx.Cfg.Metrics.Performance,
		},
	}
	if engineOpts.HistorySize == 0 {
		engineOpts.HistorySize = cmdCtx.Cfg.HistorySize
	}

	gtPath := opts.GroundTruthPath
	if gtPath == "" {
		gtPath = cmdCtx.Cfg.GroundTruthPath
	}
	if gtPath != "" {
		groundTruth, err := loader.LoadGroundTruth(gtPath)
		if err != nil {
			return err
		}
		engineOpts.GroundTruth = groundTruth
	}

	if opts.ChangedID != "" {
		changeType, ok := lineage.ParseChangeType(opts.ChangeType)
		if !ok {
			return fmt.Errorf("invalid change type: %s", opts.ChangeType)
		}
		engineOpts.ChangedID = opts.ChangedID
		engineOpts.ChangeType = changeType
	}

	report, err := cmdCtx.Engine.Report(cmd.Context(), engineOpts)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(report)
	}

	r.Println("Lineage health report")
	r.Println("")
	r.Table([]string{"Metric", "Value"}, [][]string{
		{"Coverage", fmt.Sprintf("%.2f", report.Metrics.Coverage)},
		{"Accuracy", fmt.Sprintf("%.2f", report.Metrics.Accuracy)},
		{"Nodes", fmt.Sprintf("%d", report.Metrics.Structural.NodeCount)},
		{"Edges", fmt.Sprintf("%d", report.Metrics.Structural.EdgeCount)},
		{"Complexity", fmt.Sprintf("%.2f", report.Metrics.Structural.ComplexityScore)},
	})

	r.Printf("\nAnomalies: %d (severity %s)\n", len(report.Anomalies.Entries), report.Anomalies.Severity)
	for _, e := range report.Anomalies.Entries {
		r.Printf("  [%s] %s\n", e.Severity, e.Message)
	}

	if report.Validation != nil {
		r.Printf("\nValidation: %.1f%% accuracy, %d missing, %d incorrect\n",
			report.Validation.Accuracy*100, len(report.Validation.Missing), len(report.Validation.Incorrect))
	}

	if report.Impact != nil {
		r.Printf("\nImpact of %s change to %s: severity %s, %d asset(s), %dh effort\n",
			report.Impact.ChangeType, report.Impact.ChangedID, report.Impact.Severity,
			len(report.Impact.ImpactedIDs), report.Impact.Effort.Hours)
	}
	return nil
}
