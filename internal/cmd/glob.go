package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/display"
	"github.com/harrison/cstexports/internal/exportname"
	"github.com/harrison/cstexports/internal/fileutil"
)

// NewGlobCommand creates the 'cstexports glob' command
func NewGlobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Print every path matching a glob pattern",
		Long: `Expand a glob pattern against the filesystem. Matching is
case-insensitive, wildcards cross directory separators and match hidden
entries. Supported syntax: * ? [abc] [!abc] {a,b} and \ escapes.

Results are printed in traversal order unless a sort flag is given.
Entries that cannot be read are skipped and logged as warnings.

Examples:
  cstexports glob 'runs/coil/Export/3d/*.h5'
  cstexports glob 'runs/*/export/3d/e-field*' --sort-label AC`,
		Args: cobra.ExactArgs(1),
		RunE: runGlob,
	}

	cmd.Flags().Int("max-depth", -1, "Maximum walk depth below the literal root (0 = unlimited, default from config)")
	cmd.Flags().String("sort-label", "", "Order results by the index after this label, e.g. AC for [AC12]")
	cmd.Flags().Bool("sort-number", false, "Order results by the first number in the file name")

	return cmd
}

func runGlob(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("max-depth") {
		depth, _ := cmd.Flags().GetInt("max-depth")
		rt.cfg.MergeWithFlags(nil, &depth, nil)
		if err := rt.cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --max-depth: %w", err)
		}
	}

	sortLabel, _ := cmd.Flags().GetString("sort-label")
	sortNumber, _ := cmd.Flags().GetBool("sort-number")
	if sortLabel != "" && sortNumber {
		return fmt.Errorf("--sort-label and --sort-number are mutually exclusive")
	}

	collector := &fileutil.Collector{}
	matcher := fileutil.NewMatcher(
		fileutil.WithMaxDepth(rt.cfg.Glob.MaxDepth),
		fileutil.WithDiagnostics(teeSink{rt.log, collector}),
	)

	matches, err := matcher.Match(args[0])
	if err != nil {
		return err
	}
	rt.log.LogDiscovery(args[0], len(matches), len(collector.Errors))

	switch {
	case sortLabel != "":
		matches = exportname.SortByLabelIndex(matches, sortLabel)
	case sortNumber:
		matches = exportname.SortByFirstNumber(matches)
	}

	display.PrintPaths(cmd.OutOrStdout(), matches)
	return nil
}

// teeSink forwards skipped entries to several sinks.
type teeSink []fileutil.DiagnosticSink

func (t teeSink) EntrySkipped(err error) {
	for _, s := range t {
		s.EntrySkipped(err)
	}
}
