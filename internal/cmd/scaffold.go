package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/models"
	"github.com/harrison/cstexports/internal/project"
)

// NewScaffoldCommand creates the 'cstexports scaffold' command
func NewScaffoldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold <root> <name>",
		Short: "Create an empty mock project for testing discovery",
		Long: `Create the on-disk skeleton of a project without running a simulation:
  <root>/<name>.cst         empty marker file (truncated if present)
  <root>/<name>/Export/3d/  empty export directory

Running it again is safe: directories are kept, the marker is truncated.
Use --lock when several processes may scaffold the same project.`,
		Args: cobra.ExactArgs(2),
		RunE: runScaffold,
	}

	cmd.Flags().Bool("lock", false, "Hold <root>/<name>.cst.lock while scaffolding")

	return cmd
}

func runScaffold(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	root, name := args[0], args[1]
	useLock, _ := cmd.Flags().GetBool("lock")

	if useLock {
		err = project.ScaffoldLocked(root, name)
	} else {
		err = project.Scaffold(root, name)
	}
	if err != nil {
		return err
	}

	layout := models.ScaffoldLayout{Root: root, Name: name}
	rt.log.LogInfo("scaffolded " + layout.ProjectFile())
	fmt.Fprintln(cmd.OutOrStdout(), layout.ProjectFile())
	fmt.Fprintln(cmd.OutOrStdout(), layout.ExportDir())
	return nil
}
