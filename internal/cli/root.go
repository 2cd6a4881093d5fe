// Package cli provides the promptpro command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/config"
	"github.com/jahboukie/promptpro/internal/logger"
)

// globals holds the persistent flags shared by every subcommand
type globals struct {
	configPath string
	logLevel   string
	jsonOutput bool
}

// NewRootCommand builds the promptpro command tree. Without a subcommand it
// starts the terminal UI.
func NewRootCommand(version string) *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "promptpro",
		Short: "PromptPro - prompt engineering for content marketing",
		Long: `PromptPro turns content requests into optimized prompts.

It picks a pattern for the request, tailors it to the target model, scores it,
and asks a prompt engineer model to rewrite prompts that score too low.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g)
		},
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to config file (default ~/.config/promptpro/config.yaml)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&g.jsonOutput, "json", false, "Output results as JSON")

	root.AddCommand(
		newServeCommand(g),
		newTUICommand(g),
		newRecommendCommand(g),
		newStrategyCommand(g),
		newAnalyzeCommand(g),
		newPatternsCommand(g),
		newModelsCommand(g),
		newOptimalCommand(g),
		newVariantsCommand(g),
		newEnhanceCommand(g),
		newGenerateCommand(g),
	)

	return root
}

// Execute runs the command tree and reports a failure on stderr
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads --config when given, or the default config file, and applies
// environment overrides
func (g *globals) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			return nil, fmt.Errorf("config file %s not found", g.configPath)
		}
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.Resolve()
		if err != nil {
			return nil, err
		}
	}

	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	return cfg, nil
}

// newLogger builds the command logger. One-shot commands log to stderr so
// their results stay alone on stdout.
func newLogger(cfg *config.Config, stdoutOK bool) (*zap.Logger, error) {
	out := cfg.Log.OutputPath
	if out == "" && !stdoutOK {
		out = "stderr"
	}
	return logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Encoding:   cfg.Log.Encoding,
		OutputPath: out,
	})
}

// services loads the config and wires every component for a one-shot command
func (g *globals) services() (*Services, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg, false)
	if err != nil {
		return nil, err
	}
	return NewServices(cfg, log)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
