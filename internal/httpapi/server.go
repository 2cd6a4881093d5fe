package httpapi

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/strategy"
	"github.com/jahboukie/promptpro/internal/writer"
)

const shutdownTimeout = 5 * time.Second

// Deps are the services the HTTP handlers call into
type Deps struct {
	Patterns     *pattern.Library
	Profiles     *profile.Registry
	Selector     *strategy.Selector
	Scorer       pipeline.Scorer
	Orchestrator *pipeline.Orchestrator
	Writer       *writer.Writer
	// Families lists the generation provider families that have credentials
	Families []string
	Logger   *zap.Logger
}

// Options tune the router
type Options struct {
	CORSOrigins      []string
	DefaultVariants  int
	DefaultTargetLLM string
	DefaultUseCase   string
}

func (o Options) withDefaults() Options {
	if o.DefaultVariants <= 0 {
		o.DefaultVariants = pipeline.DefaultVariants
	}
	if o.DefaultTargetLLM == "" {
		o.DefaultTargetLLM = prompt.DefaultModel
	}
	if o.DefaultUseCase == "" {
		o.DefaultUseCase = pipeline.DefaultUseCase
	}
	return o
}

// Server is the PromptPro HTTP API
type Server struct {
	deps   Deps
	opts   Options
	logger *zap.Logger
	router *gin.Engine
}

var (
	metricsOnce sync.Once
	metrics     *ginprometheus.Prometheus
)

// requestMetrics returns the process-wide gin collector. Its collectors live in the
// default registry, so it is created once and attached to every engine.
func requestMetrics() *ginprometheus.Prometheus {
	metricsOnce.Do(func() {
		metrics = ginprometheus.NewPrometheus("gin")
		metrics.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			if route := c.FullPath(); route != "" {
				return route
			}
			return "unmatched"
		}
	})
	return metrics
}

// New builds the server and registers every route
func New(deps Deps, opts Options) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	setupValidator()

	s := &Server{
		deps:   deps,
		opts:   opts.withDefaults(),
		logger: deps.Logger,
	}
	s.router = s.setupRouter()
	return s
}

// Router returns the underlying gin engine
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(ZapLogger(s.logger))
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(s.opts.CORSOrigins)))

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)
	router.HEAD("/health", health)

	api := router.Group("/api")
	api.GET("/hello", s.hello)
	api.GET("/config/ai-services", s.aiServices)
	api.POST("/generate", s.generate)

	adv := api.Group("/advanced")
	adv.GET("/models", s.listModels)
	adv.POST("/optimize-prompt", s.optimizePrompt)

	adv.GET("/patterns", s.listPatterns)
	adv.GET("/patterns/:id", s.getPattern)
	adv.GET("/patterns/category/:category", s.patternsByCategory)
	adv.GET("/patterns/content-type/:contentType", s.patternsByContentType)
	adv.GET("/patterns/goal/:goal", s.patternsByGoal)
	adv.POST("/apply-pattern", s.applyPattern)

	adv.GET("/content-goals", s.listGoals)
	adv.GET("/content-goals/:id", s.getGoal)
	adv.GET("/content-types", s.listContentTypes)
	adv.GET("/content-types/:id", s.getContentType)

	adv.GET("/recommend-strategy", s.recommendStrategy)
	adv.POST("/analyze-input", s.analyzeInput)
	adv.POST("/recommend-prompt", s.recommendPrompt)
	adv.POST("/analyze-prompt", s.analyzePrompt)

	adv.POST("/optimal-prompt", s.optimalPrompt)
	adv.POST("/prompt-variants", s.promptVariants)
	adv.POST("/enhance-pattern", s.enhancePattern)

	// after the routes so /metrics is served and every route is labeled
	requestMetrics().Use(router)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"}
	cfg.ExposeHeaders = []string{"X-Request-ID"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
