package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const defaultOllamaHost = "http://localhost:11434"

type OllamaProvider struct {
	host   string
	model  string
	client *api.Client
}

func NewOllamaProvider(host, model string) (*OllamaProvider, error) {
	if host == "" {
		host = defaultOllamaHost
	}
	host = strings.TrimSuffix(strings.TrimSuffix(host, "/"), "/v1")

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	return &OllamaProvider{
		host:   host,
		model:  model,
		client: api.NewClient(base, &http.Client{Timeout: 5 * time.Minute}),
	}, nil
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

func (o *OllamaProvider) Ping(ctx context.Context) error {
	if err := o.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("cannot connect to Ollama at %s: %w", o.host, err)
	}
	return nil
}

func (o *OllamaProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	messages := make([]api.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, api.Message{Role: m.Role, Content: m.Content})
	}

	stream := false
	chatReq := &api.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": req.Temperature,
			"num_predict": req.MaxTokens,
		},
	}

	var resp api.ChatResponse
	err := o.client.Chat(ctx, chatReq, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ollama: %v", ErrGenerationFailed, err)
	}
	if resp.Message.Content == "" {
		return nil, fmt.Errorf("%w: ollama: empty response", ErrGenerationFailed)
	}

	return &CompletionResponse{
		Content:      resp.Message.Content,
		Model:        resp.Model,
		FinishReason: resp.DoneReason,
		Usage: Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}
