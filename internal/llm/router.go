package llm

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/config"
)

// Provider families
const (
	FamilyOpenAI    = "openai"
	FamilyXAI       = "xai"
	FamilyAnthropic = "anthropic"
	FamilyGemini    = "gemini"
	FamilyOllama    = "ollama"
	FamilyCustom    = "custom"
)

// FamilyFor picks the provider family for a model hint such as "GPT-4" or
// "Claude 3 Opus". Hints no family claims go to fallback.
func FamilyFor(hint, fallback string) string {
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "gpt"):
		return FamilyOpenAI
	case strings.Contains(h, "grok"):
		return FamilyXAI
	case strings.Contains(h, "claude"):
		return FamilyAnthropic
	case strings.Contains(h, "gemini"):
		return FamilyGemini
	case strings.Contains(h, "llama"), strings.Contains(h, "mistral"), strings.Contains(h, "qwen"):
		return FamilyOllama
	default:
		return fallback
	}
}

// apiModel maps a hint to a model id the family accepts, or "" to use the
// provider's configured model. Catalog display names like "Claude 3 Opus" are not API ids.
func apiModel(family, hint string) string {
	h := strings.ToLower(strings.TrimSpace(hint))
	switch family {
	case FamilyOpenAI:
		if strings.Contains(h, "gpt") {
			return strings.Join(strings.Fields(h), "-")
		}
	case FamilyOllama:
		if strings.Contains(h, ":") {
			return h
		}
	}
	return ""
}

// Router sends generation requests to the provider family a model hint names
type Router struct {
	providers   map[string]Provider
	fallback    string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

// NewRouter creates a router over providers. Hints no family claims go to fallback.
func NewRouter(fallback string, logger *zap.Logger, providers ...Provider) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{
		providers:   make(map[string]Provider, len(providers)),
		fallback:    fallback,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
		logger:      logger,
	}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// NewRouterFromConfig registers every provider family that has credentials in cfg
func NewRouterFromConfig(cfg *config.Config, logger *zap.Logger) (*Router, error) {
	var providers []Provider

	if pc := cfg.Providers.OpenAI; cfg.Configured(FamilyOpenAI) {
		providers = append(providers, NewOpenAIProvider(pc.APIKey, pc.Model))
	}
	if pc := cfg.Providers.XAI; cfg.Configured(FamilyXAI) {
		providers = append(providers, NewXAIProvider(pc.APIKey, pc.Model, pc.BaseURL))
	}
	if pc := cfg.Providers.Anthropic; cfg.Configured(FamilyAnthropic) {
		providers = append(providers, NewAnthropicProvider(pc.APIKey, pc.Model))
	}
	if pc := cfg.Providers.Gemini; cfg.Configured(FamilyGemini) {
		providers = append(providers, NewGeminiProvider(pc.APIKey, pc.Model))
	}
	if pc := cfg.Providers.Ollama; cfg.Configured(FamilyOllama) {
		p, err := NewOllamaProvider(pc.BaseURL, pc.Model)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	if pc := cfg.Providers.Custom; cfg.Configured(FamilyCustom) {
		providers = append(providers, NewCustomProvider(pc.BaseURL, pc.APIKey, pc.Model))
	}

	fallback := cfg.Provider
	if fallback == "" {
		fallback = FamilyOpenAI
	}
	return NewRouter(fallback, logger, providers...), nil
}

// Families lists the registered provider families in sorted order
func (r *Router) Families() []string {
	families := make([]string, 0, len(r.providers))
	for name := range r.providers {
		families = append(families, name)
	}
	slices.Sort(families)
	return families
}

// Provider returns the provider registered for a family
func (r *Router) Provider(family string) (Provider, bool) {
	p, ok := r.providers[family]
	return p, ok
}

// Generate sends one system + user prompt pair with the default sampling settings
func (r *Router) Generate(ctx context.Context, modelHint, system, prompt string) (string, error) {
	req := NewRequest("", system, prompt)
	req.MaxTokens = r.maxTokens
	req.Temperature = r.temperature

	resp, err := r.Complete(ctx, modelHint, req)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Complete routes req by modelHint. req.Model is filled from the hint when empty.
func (r *Router) Complete(ctx context.Context, modelHint string, req *CompletionRequest) (*CompletionResponse, error) {
	family := FamilyFor(modelHint, r.fallback)
	p, ok := r.providers[family]
	if !ok {
		r.logger.Warn("no provider configured",
			zap.String("family", family),
			zap.String("model_hint", modelHint),
		)
		return nil, fmt.Errorf("%w: %s is not configured for model %q", ErrProviderUnavailable, family, modelHint)
	}

	if req.Model == "" {
		req.Model = apiModel(family, modelHint)
	}
	label := req.Model
	if label == "" {
		label = "default"
	}

	start := time.Now()
	resp, err := p.Complete(ctx, req)
	duration := time.Since(start)

	if err != nil {
		requestsTotal.WithLabelValues(family, label, statusError).Inc()
		r.logger.Error("generation failed",
			zap.String("family", family),
			zap.String("model", label),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	requestsTotal.WithLabelValues(family, label, statusSuccess).Inc()
	requestDuration.WithLabelValues(family, label).Observe(duration.Seconds())

	usage := resp.Usage
	if usage.PromptTokens == 0 {
		for _, m := range req.Messages {
			usage.PromptTokens += CountTokens(label, m.Content)
		}
	}
	if usage.CompletionTokens == 0 {
		usage.CompletionTokens = CountTokens(label, resp.Content)
	}
	promptTokens.WithLabelValues(family, label).Observe(float64(usage.PromptTokens))
	completionTokens.WithLabelValues(family, label).Observe(float64(usage.CompletionTokens))

	r.logger.Debug("generation completed",
		zap.String("family", family),
		zap.String("model", label),
		zap.Duration("duration", duration),
		zap.Int("prompt_tokens", usage.PromptTokens),
		zap.Int("completion_tokens", usage.CompletionTokens),
	)

	return resp, nil
}
