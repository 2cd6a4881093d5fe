package llm

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-1.5-pro"
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
	}
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

// connect creates the client on first use since genai needs a context to build one
func (g *GeminiProvider) connect(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}

func (g *GeminiProvider) Ping(ctx context.Context) error {
	client, err := g.connect(ctx)
	if err != nil {
		return fmt.Errorf("cannot create Gemini client: %w", err)
	}
	if _, err := client.Models.Get(ctx, g.model, nil); err != nil {
		return fmt.Errorf("cannot connect to Gemini API: %w", err)
	}
	return nil
}

func (g *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	client, err := g.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", ErrGenerationFailed, err)
	}

	model := req.Model
	if model == "" {
		model = g.model
	}

	system, rest := split(req.Messages)
	var contents []*genai.Content
	for _, m := range rest {
		contents = append(contents, genai.Text(m.Content)...)
	}

	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: gemini: empty response", ErrGenerationFailed)
	}

	out := &CompletionResponse{
		Content: text,
		Model:   model,
	}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out, nil
}
