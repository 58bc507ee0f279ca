package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
	"github.com/linea-labs/linea/pkg/graph"
)

// TraverseOptions holds options for the traverse command.
type TraverseOptions struct {
	Direction string
	Depth     int
}

// NewTraverseCommand creates the traverse command.
func NewTraverseCommand() *cobra.Command {
	opts := &TraverseOptions{}

	cmd := &cobra.Command{
		Use:   "traverse <node>",
		Short: "Walk the lineage graph from a node",
		Long: `Walk the lineage graph from a start node and list every asset reachable
within the depth bound, upstream, downstream, or both.`,
		Example: `  # Everything downstream of a table
  linea traverse warehouse.orders

  # Ancestors only, two hops
  linea traverse warehouse.orders --direction upstream --depth 2

  # As JSON
  linea traverse warehouse.orders --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraverse(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Direction, "direction", "d", "downstream", "Traversal direction (upstream|downstream|both)")
	cmd.Flags().IntVar(&opts.Depth, "depth", 0, "Max traversal depth (0 = engine default)")

	return cmd
}

func runTraverse(cmd *cobra.Command, startID string, opts *TraverseOptions) error {
	dir, ok := graph.ParseDirection(opts.Direction)
	if !ok {
		return fmt.Errorf("invalid direction: %s", opts.Direction)
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	depth := opts.Depth
	if depth == 0 {
		depth = cmdCtx.Cfg.MaxDepth
	}
	nodes, err := cmdCtx.Engine.Traverse(startID, dir, depth)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(nodes)
	}

	if len(nodes) == 0 {
		r.Printf("No nodes reachable from %s\n", startID)
		return nil
	}

	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, []string{n.ID, n.AssetType, string(n.Criticality), n.Environment})
	}
	r.Printf("Reachable from %s (%s, %d nodes):\n", startID, dir, len(nodes))
	r.Table([]string{"Node", "Type", "Criticality", "Environment"}, rows)
	return nil
}
