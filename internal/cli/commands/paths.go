package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
)

// PathsOptions holds options for the paths command.
type PathsOptions struct {
	Shortest bool
	Depth    int
}

// NewPathsCommand creates the paths command.
func NewPathsCommand() *cobra.Command {
	opts := &PathsOptions{}

	cmd := &cobra.Command{
		Use:   "paths <source> <target>",
		Short: "Find lineage paths between two nodes",
		Long: `Find every downstream path from a source node to a target node, or just
the shortest one.`,
		Example: `  # All paths, in discovery order
  linea paths raw.events warehouse.revenue

  # Only the shortest path
  linea paths raw.events warehouse.revenue --shortest`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Shortest, "shortest", false, "Report only the shortest path")
	cmd.Flags().IntVar(&opts.Depth, "depth", 0, "Max path length in hops (0 = engine default)")

	return cmd
}

func runPaths(cmd *cobra.Command, sourceID, targetID string, opts *PathsOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	r := cmdCtx.Renderer

	if opts.Shortest {
		path, err := cmdCtx.Engine.ShortestPath(sourceID, targetID)
		if err != nil {
			return err
		}
		if r.Mode() == output.ModeJSON {
			return r.JSON(path)
		}
		if path == nil {
			r.Printf("No path from %s to %s\n", sourceID, targetID)
			return nil
		}
		r.Println(strings.Join(path, " -> "))
		return nil
	}

	depth := opts.Depth
	if depth == 0 {
		depth = cmdCtx.Cfg.MaxDepth
	}
	paths, err := cmdCtx.Engine.FindPaths(sourceID, targetID, depth)
	if err != nil {
		return err
	}

	if r.Mode() == output.ModeJSON {
		return r.JSON(paths)
	}

	if len(paths) == 0 {
		r.Printf("No path from %s to %s\n", sourceID, targetID)
		return nil
	}

	r.Printf("%d path(s) from %s to %s:\n", len(paths), sourceID, targetID)
	for _, p := range paths {
		r.Printf("  %s\n", strings.Join(p, " -> "))
	}
	return nil
}
