// Package cli provides the command-line interface for panewm.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"panewm/internal/config"
	"panewm/internal/logging"
)

// CLI holds the loaded configuration and the logger shared by commands.
type CLI struct {
	Config *config.Config
	Log    zerolog.Logger
}

// NewCLI initializes the global configuration and builds the shared logger.
func NewCLI() (*CLI, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}

	cfg := config.Get()
	log := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)

	return &CLI{Config: cfg, Log: log}, nil
}

// NewRootCmd creates the root command for panewm.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "panewm",
		Short: "A floating pane manager for the terminal",
		Long: `panewm manages draggable, resizable floating panes with minimize,
maximize and a minimized-pane dock, rendered in the terminal.

Running panewm without a subcommand starts the interactive demo.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("panewm %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewDemoCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}
