package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/analysis"
	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/strategy"
)

// Stage represents a pipeline stage
type Stage int

const (
	StageSelecting Stage = iota
	StageOptimizing
	StageAnalyzing
	StageEnhancing
	StageDone
)

const totalStages = 4

func (s Stage) String() string {
	switch s {
	case StageSelecting:
		return "Selecting"
	case StageOptimizing:
		return "Optimizing"
	case StageAnalyzing:
		return "Analyzing"
	case StageEnhancing:
		return "Enhancing"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress represents pipeline progress
type Progress struct {
	Stage       Stage
	StageIndex  int
	TotalStages int
	ItemIndex   int
	TotalItems  int
	Message     string
}

var (
	ErrEmptyRequest  = errors.New("user request is required")
	ErrEmptyResponse = errors.New("prompt engineer returned an empty response")
)

// Defaults used when a request leaves them out
const (
	DefaultThreshold     = 80
	DefaultEngineerModel = "gpt-4-turbo"
	DefaultUseCase       = "content-marketing"
	DefaultVariants      = 3
)

// Generator sends one system + user prompt pair to a text generation backend
type Generator interface {
	Generate(ctx context.Context, modelHint, system, prompt string) (string, error)
}

// Scorer rates a prompt. Both the plain and the cached analyzer satisfy it.
type Scorer interface {
	Analyze(data prompt.Data) analysis.Result
}

// Config holds the orchestrator tunables
type Config struct {
	// Threshold is the quality score below which a prompt is sent for rewriting
	Threshold        int
	EngineerModel    string
	DefaultTargetLLM string
	DefaultUseCase   string
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.EngineerModel == "" {
		c.EngineerModel = DefaultEngineerModel
	}
	if c.DefaultTargetLLM == "" {
		c.DefaultTargetLLM = prompt.DefaultModel
	}
	if c.DefaultUseCase == "" {
		c.DefaultUseCase = DefaultUseCase
	}
	return c
}

// Request is a free-text prompt request
type Request struct {
	UserRequest       string
	TargetLLM         string
	UseCase           string
	AdditionalContext string
}

// Deps are the collaborators an Orchestrator drives
type Deps struct {
	Selector  *strategy.Selector
	Patterns  *pattern.Library
	Profiles  *profile.Registry
	Scorer    Scorer
	Generator Generator
	Logger    *zap.Logger
}

// Orchestrator chains selection, optimization and scoring, and calls the
// prompt engineer only when a prompt scores below the threshold
type Orchestrator struct {
	selector   *strategy.Selector
	patterns   *pattern.Library
	profiles   *profile.Registry
	scorer     Scorer
	engineer   *Engineer
	cfg        Config
	logger     *zap.Logger
	onProgress func(Progress)
}

// New creates an orchestrator
func New(deps Deps, cfg Config) *Orchestrator {
	cfg = cfg.withDefaults()
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		selector: deps.Selector,
		patterns: deps.Patterns,
		profiles: deps.Profiles,
		scorer:   deps.Scorer,
		engineer: NewEngineer(deps.Generator, cfg.EngineerModel),
		cfg:      cfg,
		logger:   logger,
	}
}

// Threshold returns the effective enhancement threshold
func (o *Orchestrator) Threshold() int {
	return o.cfg.Threshold
}

// SetProgressCallback sets the progress callback
func (o *Orchestrator) SetProgressCallback(fn func(Progress)) {
	o.onProgress = fn
}

func (o *Orchestrator) progress(stage Stage, msg string) {
	if o.onProgress != nil {
		o.onProgress(Progress{
			Stage:       stage,
			StageIndex:  int(stage),
			TotalStages: totalStages,
			Message:     msg,
		})
	}
}

func (o *Orchestrator) normalize(req Request) (Request, error) {
	req.UserRequest = strings.TrimSpace(req.UserRequest)
	if req.UserRequest == "" {
		return req, ErrEmptyRequest
	}
	if req.TargetLLM == "" {
		req.TargetLLM = o.cfg.DefaultTargetLLM
	}
	if req.UseCase == "" {
		req.UseCase = o.cfg.DefaultUseCase
	}
	return req, nil
}

// GenerateOptimal recommends, optimizes and scores a prompt for the request,
// rewriting it once through the prompt engineer when it scores below the threshold
func (o *Orchestrator) GenerateOptimal(ctx context.Context, req Request) (prompt.Data, error) {
	req, err := o.normalize(req)
	if err != nil {
		return prompt.Data{}, err
	}

	o.progress(StageSelecting, "Selecting a pattern...")
	base, err := o.selector.RecommendPrompt(req.UserRequest, req.TargetLLM)
	if err != nil {
		return prompt.Data{}, err
	}

	o.progress(StageOptimizing, fmt.Sprintf("Optimizing for %s...", req.TargetLLM))
	data := o.profiles.Optimize(base, req.TargetLLM)

	o.progress(StageAnalyzing, "Scoring prompt...")
	result := o.scorer.Analyze(data)

	if result.Score < o.cfg.Threshold {
		o.logger.Info("enhancing prompt",
			zap.Int("score", result.Score),
			zap.Int("threshold", o.cfg.Threshold),
			zap.String("target_llm", req.TargetLLM),
		)
		o.progress(StageEnhancing, fmt.Sprintf("Score %d/100, asking the prompt engineer...", result.Score))

		enhanced, err := o.engineer.Rewrite(ctx, enhancementRequest(req, data, result))
		if err != nil {
			return prompt.Data{}, fmt.Errorf("enhance prompt: %w", err)
		}
		data.Content = enhanced
		result = o.scorer.Analyze(data)
	}

	data.AppendDetails("\n\n" + qualityNote(result))

	o.progress(StageDone, fmt.Sprintf("Prompt ready (score %d/100)", result.Score))
	return data, nil
}

// ApplyAndEnhance applies a pattern, optimizes it for targetLLM and always has
// the prompt engineer refine it
func (o *Orchestrator) ApplyAndEnhance(ctx context.Context, patternID string, vars map[string]string, targetLLM, useCase string) (prompt.Data, error) {
	if targetLLM == "" {
		targetLLM = o.cfg.DefaultTargetLLM
	}
	if useCase == "" {
		useCase = o.cfg.DefaultUseCase
	}

	o.progress(StageSelecting, fmt.Sprintf("Applying pattern %s...", patternID))
	base, err := o.patterns.Apply(patternID, vars)
	if err != nil {
		return prompt.Data{}, err
	}

	o.progress(StageOptimizing, fmt.Sprintf("Optimizing for %s...", targetLLM))
	data := o.profiles.Optimize(base, targetLLM)

	o.progress(StageEnhancing, "Asking the prompt engineer...")
	enhanced, err := o.engineer.Rewrite(ctx, patternRequest(data, targetLLM, useCase))
	if err != nil {
		return prompt.Data{}, fmt.Errorf("enhance pattern %s: %w", patternID, err)
	}
	data.Content = enhanced

	o.progress(StageAnalyzing, "Scoring prompt...")
	result := o.scorer.Analyze(data)
	data.AppendDetails("\n\n" + qualityNote(result))

	o.logger.Debug("pattern enhanced",
		zap.String("pattern", patternID),
		zap.Int("score", result.Score),
	)
	o.progress(StageDone, fmt.Sprintf("Prompt ready (score %d/100)", result.Score))
	return data, nil
}

// qualityNote summarizes a score for a prompt's details
func qualityNote(r analysis.Result) string {
	return fmt.Sprintf("Prompt Quality Score: %d/100\nStrengths: %s\n", r.Score, strings.Join(r.Strengths, ", "))
}
