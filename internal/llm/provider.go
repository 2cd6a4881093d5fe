package llm

import (
	"context"
	"errors"
)

var (
	// ErrProviderUnavailable means no credentials are configured for the provider family a model resolves to
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrGenerationFailed wraps every transport or API failure, including empty replies
	ErrGenerationFailed = errors.New("generation failed")
)

// Provider is the interface all LLM providers must implement
type Provider interface {
	// Name returns the provider family id
	Name() string

	// Complete sends a completion request and returns the full response
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the LLM
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a chat message
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Default sampling settings of the prompt engineer
const (
	DefaultMaxTokens   = 2048
	DefaultTemperature = 0.7
)

// NewRequest creates a simple completion request. An empty system prompt is left out.
func NewRequest(model string, systemPrompt, userPrompt string) *CompletionRequest {
	var messages []Message
	if systemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, Message{Role: RoleUser, Content: userPrompt})

	return &CompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// split returns the joined system messages and the remaining conversation
func split(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
