package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/analysis"
	"github.com/jahboukie/promptpro/internal/config"
	"github.com/jahboukie/promptpro/internal/httpapi"
	"github.com/jahboukie/promptpro/internal/llm"
	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/strategy"
	"github.com/jahboukie/promptpro/internal/tui"
	"github.com/jahboukie/promptpro/internal/writer"
)

// Services are the wired components every command runs against
type Services struct {
	Config       *config.Config
	Logger       *zap.Logger
	Patterns     *pattern.Library
	Profiles     *profile.Registry
	Selector     *strategy.Selector
	Scorer       *analysis.CachedAnalyzer
	Router       *llm.Router
	Orchestrator *pipeline.Orchestrator
	Writer       *writer.Writer
}

// NewServices builds the pattern library, the model registry, the analyzer and
// the provider router from cfg. Custom patterns come from cfg.PatternsDir, or
// the default patterns directory when that is unset.
func NewServices(cfg *config.Config, logger *zap.Logger) (*Services, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := cfg.PatternsDir
	if dir == "" {
		if d, err := config.DefaultPatternsDir(); err == nil {
			dir = d
		}
	}
	custom, err := pattern.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load patterns from %s: %w", dir, err)
	}
	patterns := pattern.NewLibrary(pattern.Builtin(), custom)
	logger.Debug("pattern library loaded",
		zap.Int("patterns", patterns.Count()),
		zap.Int("custom", len(custom)),
		zap.String("dir", dir),
	)

	profiles := profile.NewRegistry(prompt.RandomPicker)
	selector := strategy.NewSelector(patterns, profiles)

	scorer, err := analysis.NewCached(analysis.New(profiles), cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}

	router, err := llm.NewRouterFromConfig(cfg, logger.Named("llm"))
	if err != nil {
		return nil, fmt.Errorf("configure providers: %w", err)
	}
	logger.Debug("providers configured", zap.Strings("families", router.Families()))

	orch := pipeline.New(pipeline.Deps{
		Selector:  selector,
		Patterns:  patterns,
		Profiles:  profiles,
		Scorer:    scorer,
		Generator: router,
		Logger:    logger.Named("pipeline"),
	}, pipeline.Config{
		Threshold:        cfg.Pipeline.EnhanceThreshold,
		EngineerModel:    cfg.Pipeline.EngineerModel,
		DefaultTargetLLM: cfg.Pipeline.DefaultTargetLLM,
		DefaultUseCase:   cfg.Pipeline.DefaultUseCase,
	})

	return &Services{
		Config:       cfg,
		Logger:       logger,
		Patterns:     patterns,
		Profiles:     profiles,
		Selector:     selector,
		Scorer:       scorer,
		Router:       router,
		Orchestrator: orch,
		Writer:       writer.NewWriter(router, logger.Named("writer")),
	}, nil
}

// Engine exposes the services to the terminal UI
func (s *Services) Engine() *tui.Engine {
	return &tui.Engine{
		Patterns:     s.Patterns,
		Profiles:     s.Profiles,
		Selector:     s.Selector,
		Scorer:       s.Scorer,
		Orchestrator: s.Orchestrator,
		Families:     s.Router.Families(),
	}
}

// HTTPServer exposes the services over the REST API
func (s *Services) HTTPServer() *httpapi.Server {
	return httpapi.New(httpapi.Deps{
		Patterns:     s.Patterns,
		Profiles:     s.Profiles,
		Selector:     s.Selector,
		Scorer:       s.Scorer,
		Orchestrator: s.Orchestrator,
		Writer:       s.Writer,
		Families:     s.Router.Families(),
		Logger:       s.Logger,
	}, httpapi.Options{
		CORSOrigins:      s.Config.Server.CORSOrigins,
		DefaultVariants:  s.Config.Pipeline.DefaultVariants,
		DefaultTargetLLM: s.Config.Pipeline.DefaultTargetLLM,
		DefaultUseCase:   s.Config.Pipeline.DefaultUseCase,
	})
}

// engineFactory rebuilds the services whenever the UI changes the config
func engineFactory(logger *zap.Logger) tui.EngineFactory {
	return func(cfg *config.Config) (*tui.Engine, error) {
		s, err := NewServices(cfg, logger)
		if err != nil {
			return nil, err
		}
		return s.Engine(), nil
	}
}
