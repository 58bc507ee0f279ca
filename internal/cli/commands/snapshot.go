package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linea-labs/linea/internal/cli/output"
)

// NewSnapshotCommand creates the snapshot command group.
func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage saved graph snapshots",
		Long: `Save the current lineage graph as a snapshot or list previously saved
ones. Snapshots are the history that anomaly detection compares against.`,
	}

	cmd.AddCommand(newSnapshotSaveCommand())
	cmd.AddCommand(newSnapshotListCommand())

	return cmd
}

func newSnapshotSaveCommand() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Save the current graph as a snapshot",
		Example: `  linea snapshot save --label "pre-migration"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshotSave(cmd, label)
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "Human-readable label for the snapshot")

	return cmd
}

func newSnapshotListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE:  runSnapshotList,
	}
}

func runSnapshotSave(cmd *cobra.Command, label string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cmdCtx.Engine.Load(); err != nil {
		return err
	}

	id, err := cmdCtx.Engine.SaveSnapshot(label)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(map[string]string{"id": id})
	}
	r.Printf("Saved snapshot %s\n", id)
	return nil
}

func runSnapshotList(cmd *cobra.Command, _ []string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	snapshots, err := cmdCtx.Engine.ListSnapshots()
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		return r.JSON(snapshots)
	}

	if len(snapshots) == 0 {
		r.Println("No snapshots saved")
		return nil
	}

	rows := make([][]string, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, []string{
			s.ID,
			s.Label,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", s.NodeCount),
			fmt.Sprintf("%d", s.EdgeCount),
		})
	}
	r.Table([]string{"ID", "Label", "Created", "Nodes", "Edges"}, rows)
	return nil
}
