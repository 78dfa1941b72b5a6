package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/catalog"
)

// NewHistoryCommand creates the 'cstexports history' command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [project]",
		Short: "Show recorded verification runs, newest first",
		Long: `Display verification runs stored by 'cstexports verify --record':
  - When the run happened
  - Found, missing and unexpected export counts
  - Names of the missing exports

Without a project, runs of every project are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", catalog.DefaultRecentLimit, "Maximum number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	var projectName string
	if len(args) == 1 {
		projectName = args[0]
	}
	limit, _ := cmd.Flags().GetInt("limit")
	output := cmd.OutOrStdout()

	dbPath, err := rt.cfg.GetCatalogDBPath()
	if err != nil {
		return fmt.Errorf("resolve catalog path: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Fprintln(output, "No verification runs recorded")
			return nil
		}
	}

	store, err := catalog.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runs, err := store.RecentRuns(ctx, projectName, limit)
	if err != nil {
		return fmt.Errorf("get recent runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(output, "No verification runs recorded")
		return nil
	}

	printRunHistory(output, runs)
	return nil
}

// printRunHistory formats runs, newest first
func printRunHistory(w io.Writer, runs []*catalog.Run) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	gray := color.New(color.FgHiBlack)

	cyan.Fprintf(w, "=== Verification History (%d runs) ===\n\n", len(runs))

	for _, run := range runs {
		cyan.Fprintf(w, "%s ", run.Project)
		gray.Fprintf(w, "%s\n", run.ID)
		fmt.Fprintf(w, "  Time: %s\n", run.RecordedAt.Local().Format(time.DateTime))
		fmt.Fprintf(w, "  Status: ")
		if run.Complete() {
			green.Fprintf(w, "COMPLETE\n")
		} else {
			red.Fprintf(w, "INCOMPLETE\n")
		}
		fmt.Fprintf(w, "  Found: %d/%d, unexpected: %d\n", run.Found, run.Expected, run.Unexpected)
		for _, name := range run.MissingNames {
			fmt.Fprintf(w, "  Missing: %s\n", name)
		}
		fmt.Fprintln(w)
	}
}
