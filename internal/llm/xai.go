package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const xaiBaseURL = "https://api.x.ai/v1"

// XAIProvider talks to Grok through xAI's OpenAI-compatible API
type XAIProvider struct {
	client openai.Client
	model  string
}

func NewXAIProvider(apiKey, model, baseURL string) *XAIProvider {
	if model == "" {
		model = "grok-2-1212"
	}
	if baseURL == "" {
		baseURL = xaiBaseURL
	}
	return &XAIProvider{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		model: model,
	}
}

func (x *XAIProvider) Name() string {
	return "xai"
}

func (x *XAIProvider) Ping(ctx context.Context) error {
	if _, err := x.client.Models.List(ctx); err != nil {
		return fmt.Errorf("cannot connect to xAI API: %w", err)
	}
	return nil
}

func (x *XAIProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = x.model
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			messages = append(messages, openai.SystemMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := x.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: xai: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: xai: empty response", ErrGenerationFailed)
	}

	return &CompletionResponse{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		FinishReason: resp.Choices[0].FinishReason,
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}
