package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
	"github.com/linea-labs/linea/internal/loader"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	GroundTruthPath string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the graph against known-good connections",
		Long: `Compare the discovered lineage graph against a ground-truth file of known
connections and report missing edges, incorrect edges, and an accuracy
score.`,
		Example: `  linea validate --ground-truth known_connections.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.GroundTruthPath, "ground-truth", "g", "", "Path to the ground-truth connections file")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *ValidateOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	path := opts.GroundTruthPath
	if path == "" {
		path = cmdCtx.Cfg.GroundTruthPath
	}
	if path == "" {
		return fmt.Errorf("no ground-truth file: pass --ground-truth or set ground_truth in the config")
	}

	groundTruth, err := loader.LoadGroundTruth(path)
	if err != nil {
		return err
	}

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	result, err := cmdCtx.Engine.Validate(groundTruth)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(result)
	}

	r.Printf("Accuracy: %.1f%%\n", result.Accuracy*100)
	r.Printf("Missing:  %d connection(s)\n", len(result.Missing))
	for _, c := range result.Missing {
		r.Printf("  %s -> %s\n", c.SourceID, c.TargetID)
	}
	r.Printf("Incorrect: %d connection(s)\n", len(result.Incorrect))
	for _, c := range result.Incorrect {
		r.Printf("  %s -> %s\n", c.SourceID, c.TargetID)
	}
	if len(result.Recommendations) > 0 {
		r.Println("\nRecommendations:")
		for _, rec := range result.Recommendations {
			r.Printf("  - %s\n", rec)
		}
	}
	return nil
}
