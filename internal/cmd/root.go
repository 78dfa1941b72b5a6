package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/cstexports/internal/config"
	"github.com/harrison/cstexports/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for cstexports
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cstexports",
		Short: "Discover and verify simulation field exports",
		Long: `cstexports finds the field-data exports of a simulation project,
formats canonical export filenames, and scaffolds mock projects for testing
discovery without a real simulation run.

A project named <name> under <root> is the marker file <root>/<name>.cst
next to the export tree <root>/<name>/Export/3d.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default .cstexports/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewGlobCommand())
	cmd.AddCommand(NewScaffoldCommand())
	cmd.AddCommand(NewNameCommand())
	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}

// runtime bundles the resolved configuration and logger for one command.
type runtime struct {
	cfg *config.Config
	log *logger.ConsoleLogger
}

// loadRuntime loads the config file named by --config (or the default
// location), applies --log-level, validates, and builds a logger on the
// command's stderr.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	var (
		cfg *config.Config
		err error
	)

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		cfg, err = config.LoadConfigFromDir(cwd)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		cfg.MergeWithFlags(&level, nil, nil)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &runtime{
		cfg: cfg,
		log: logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
	}, nil
}
