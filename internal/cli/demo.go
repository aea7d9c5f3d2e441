package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"panewm/internal/config"
	"panewm/internal/ui"
)

// NewDemoCmd creates the command that runs the interactive demo.
func NewDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive pane manager demo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context())
		},
	}
}

func runDemo(ctx context.Context) error {
	cli, err := NewCLI()
	if err != nil {
		return err
	}

	config.OnConfigChange(func(*config.Config) {
		cli.Log.Info().Str("file", config.ConfigFilePath()).Msg("configuration reloaded")
	})
	if err := config.Watch(); err != nil {
		cli.Log.Warn().Err(err).Msg("config watch unavailable")
	}

	prog := tea.NewProgram(
		ui.New(cli.Config, cli.Log),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := prog.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		prog.Quit()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("demo exited: %w", err)
	}
	return nil
}
