package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/config"
	"github.com/jahboukie/promptpro/internal/tui"
)

func newServeCommand(g *globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		Long: `Serve the PromptPro REST API.

Routes live under /api and /api/advanced. GET /health reports liveness and
GET /metrics exposes Prometheus metrics.

Examples:
  promptpro serve
  promptpro serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log, err := newLogger(cfg, true)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			s, err := NewServices(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info("starting PromptPro API",
				zap.String("addr", cfg.Server.Addr),
				zap.Strings("providers", s.Router.Families()),
				zap.Int("patterns", s.Patterns.Count()),
			)
			return s.HTTPServer().Run(ctx, cfg.Server.Addr, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")
	return cmd
}

func newTUICommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g)
		},
	}
}

func runTUI(cmd *cobra.Command, g *globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	// the UI owns the terminal, so logs only go to a configured file
	log := zap.NewNop()
	if cfg.Log.OutputPath != "" {
		if log, err = newLogger(cfg, false); err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	patternsDir := cfg.PatternsDir
	if patternsDir == "" {
		patternsDir, _ = config.DefaultPatternsDir()
	}

	app := tui.NewApp(tui.Options{
		Config:      cfg,
		NeedsSetup:  needsSetup(g, cfg),
		Factory:     engineFactory(log),
		PatternsDir: patternsDir,
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	app.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	return nil
}

// needsSetup is true on first run: no config file and no credentials for the
// default provider from the environment
func needsSetup(g *globals, cfg *config.Config) bool {
	if g.configPath != "" || config.Exists() {
		return false
	}
	return !cfg.Configured(cfg.Provider)
}
