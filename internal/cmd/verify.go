package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/catalog"
	"github.com/harrison/cstexports/internal/display"
	"github.com/harrison/cstexports/internal/fileutil"
	"github.com/harrison/cstexports/internal/manifest"
	"github.com/harrison/cstexports/internal/project"
	"github.com/harrison/cstexports/internal/verify"
)

// NewVerifyCommand creates the 'cstexports verify' command
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <root> <name> --manifest <file>",
		Short: "Check a project's exports against a manifest",
		Long: `Compare the exports a manifest expects with the files present in
<root>/<name>/Export/3d. Names are compared case-insensitively.

Manifests are YAML (.yaml, .yml):
  project: coil
  exports:
    - {field: e-field, frequency: "447", label: AC, index: "1"}
  sweep:
    - {field: h-field, frequency: "447", label: AC, from: 1, to: 4}

or Markdown (.md, .markdown), one list item per export:
  # coil
  - e-field, 447, AC, 1

With --record (or catalog.enabled in the config) the run is stored in the
history catalog. Exit code: 0 if every expected export exists, 1 otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: runVerify,
	}

	cmd.Flags().StringP("manifest", "m", "", "Manifest file listing the expected exports (required)")
	cmd.Flags().Bool("record", false, "Record the run in the history catalog")
	cmd.Flags().String("report", "", "Also write a Markdown report to this path")
	cmd.Flags().Bool("progress", false, "Show each expected export as it is checked")
	cmd.MarkFlagRequired("manifest")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("record") {
		record, _ := cmd.Flags().GetBool("record")
		rt.cfg.MergeWithFlags(nil, nil, &record)
	}

	root, name := args[0], args[1]
	manifestPath, _ := cmd.Flags().GetString("manifest")
	out := cmd.OutOrStdout()

	m, err := manifest.ParseFile(manifestPath)
	if err != nil {
		return err
	}
	if m.Project != "" && m.Project != name {
		rt.log.LogWarn(fmt.Sprintf("manifest is for project %q, verifying %q", m.Project, name))
	}

	p, err := project.Open(root, name)
	if err != nil {
		return err
	}

	matcher := fileutil.NewMatcher(
		fileutil.WithMaxDepth(1),
		fileutil.WithDiagnostics(rt.log),
	)
	verifyOpts := []verify.Option{verify.WithExtension(rt.cfg.Verify.Extension)}

	var progress *display.ProgressIndicator
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress {
		progress = display.NewProgressIndicator(out, "Checking exports", len(m.Exports))
		progress.Start()
		verifyOpts = append(verifyOpts, verify.WithCheckFunc(progress.Step))
	}

	res, err := verify.Run(p, m, matcher, verifyOpts...)
	if err != nil {
		return err
	}
	if progress != nil {
		progress.Complete()
	}

	display.RenderReport(out, display.Report{
		Project:    res.Project,
		Found:      res.Found,
		Missing:    res.Missing,
		Unexpected: res.Unexpected,
	})
	if len(res.Missing) > 0 {
		display.WarnMissingExports(res.Project, res.Missing).Display(cmd.ErrOrStderr())
	}
	if len(res.Unexpected) > 0 {
		display.WarnUnexpectedExports(res.Project, baseNames(res.Unexpected)).Display(cmd.ErrOrStderr())
	}
	rt.log.LogVerifySummary(res.Project, len(res.Found), len(res.Missing), len(res.Unexpected))

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := res.WriteReport(reportPath); err != nil {
			return err
		}
		rt.log.LogInfo("report written to " + reportPath)
	}

	if rt.cfg.Catalog.Enabled {
		if err := recordRun(cmd.Context(), rt, res, root, m.FilePath); err != nil {
			return err
		}
	}

	if !res.Complete() {
		return fmt.Errorf("%d of %d expected exports missing", len(res.Missing), res.Expected())
	}
	return nil
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}

func recordRun(ctx context.Context, rt *runtime, res *verify.Result, root, manifestPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := rt.cfg.GetCatalogDBPath()
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}

	store, err := catalog.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	run := catalog.NewRun(res, absRoot, manifestPath)
	if err := store.RecordRun(ctx, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	rt.log.LogDebug("recorded run " + run.ID)
	return nil
}
