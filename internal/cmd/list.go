package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/display"
	"github.com/harrison/cstexports/internal/exportname"
	"github.com/harrison/cstexports/internal/fileutil"
	"github.com/harrison/cstexports/internal/models"
)

// NewListCommand creates the 'cstexports list' command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <dir>",
		Short: "List the immediate entries of a directory, sorted",
		Long: `List the files and directories directly inside <dir>, one absolute or
relative path per line, sorted lexicographically.

With --exports only canonical field exports are listed, by base name:
  e-field (f=447) [AC1].h5

--field, --frequency, --label and --index narrow the export listing to
names with those parts (case-insensitive); unset parts match anything.
Any of them implies --exports.`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().Bool("exports", false, "Only list canonical field-data exports")
	cmd.Flags().String("field", "", "Only exports of this field name")
	cmd.Flags().String("frequency", "", "Only exports at this frequency")
	cmd.Flags().String("label", "", "Only exports with this label")
	cmd.Flags().String("index", "", "Only exports with this index")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	exportsOnly, _ := cmd.Flags().GetBool("exports")
	filter, filtered := exportFilter(cmd)

	var entries []string
	if exportsOnly || filtered {
		entries, err = display.FindExportFiles(args[0])
	} else {
		entries, err = fileutil.ListDirectory(args[0])
	}
	if err != nil {
		return err
	}

	if filtered {
		entries, err = exportname.Filter(entries, filter)
		if err != nil {
			return err
		}
	}

	rt.log.LogDebug("listed " + args[0])
	display.PrintPaths(cmd.OutOrStdout(), entries)
	return nil
}

// exportFilter collects the name-part flags. ok is false when none was set.
func exportFilter(cmd *cobra.Command) (filter models.FieldExport, ok bool) {
	for _, f := range []struct {
		flag string
		dst  *string
	}{
		{"field", &filter.Field},
		{"frequency", &filter.Frequency},
		{"label", &filter.Label},
		{"index", &filter.Index},
	} {
		if cmd.Flags().Changed(f.flag) {
			*f.dst, _ = cmd.Flags().GetString(f.flag)
			ok = true
		}
	}
	return filter, ok
}
