package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahboukie/promptpro/internal/config"
)

type fakeProvider struct {
	name string
	resp *CompletionResponse
	err  error
	got  *CompletionRequest
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Ping(context.Context) error { return nil }

func (f *fakeProvider) Complete(_ context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func okResponse(content string) *CompletionResponse {
	return &CompletionResponse{Content: content, Usage: Usage{PromptTokens: 12, CompletionTokens: 4, TotalTokens: 16}}
}

func TestFamilyFor(t *testing.T) {
	tests := []struct {
		hint string
		want string
	}{
		{"GPT-4", FamilyOpenAI},
		{"gpt-3.5 turbo", FamilyOpenAI},
		{"Grok", FamilyXAI},
		{"Claude 3 Opus", FamilyAnthropic},
		{"Gemini Pro", FamilyGemini},
		{"llama3.1:8b", FamilyOllama},
		{"Mistral Large", FamilyOllama},
		{"qwen2.5:7b", FamilyOllama},
		{"Jasper", "fallback"},
		{"", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			assert.Equal(t, tt.want, FamilyFor(tt.hint, "fallback"))
		})
	}
}

func TestAPIModel(t *testing.T) {
	assert.Equal(t, "gpt-4", apiModel(FamilyOpenAI, "GPT-4"))
	assert.Equal(t, "gpt-3.5-turbo", apiModel(FamilyOpenAI, "GPT-3.5 Turbo"))
	assert.Equal(t, "", apiModel(FamilyOpenAI, "Jasper"))
	assert.Equal(t, "", apiModel(FamilyAnthropic, "Claude 3 Opus"))
	assert.Equal(t, "llama3.1:8b", apiModel(FamilyOllama, "llama3.1:8b"))
	assert.Equal(t, "", apiModel(FamilyOllama, "Llama"))
}

func TestRouterGenerate(t *testing.T) {
	claude := &fakeProvider{name: FamilyAnthropic, resp: okResponse("from claude")}
	gpt := &fakeProvider{name: FamilyOpenAI, resp: okResponse("from gpt")}
	r := NewRouter(FamilyOpenAI, nil, claude, gpt)

	out, err := r.Generate(context.Background(), "Claude 3 Opus", "be brief", "hello")
	require.NoError(t, err)
	assert.Equal(t, "from claude", out)

	require.NotNil(t, claude.got)
	assert.Equal(t, "", claude.got.Model)
	assert.Equal(t, DefaultMaxTokens, claude.got.MaxTokens)
	assert.InDelta(t, DefaultTemperature, claude.got.Temperature, 1e-9)
	assert.Equal(t, []Message{{Role: RoleSystem, Content: "be brief"}, {Role: RoleUser, Content: "hello"}}, claude.got.Messages)

	out, err = r.Generate(context.Background(), "CopyAI", "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "from gpt", out)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "hello"}}, gpt.got.Messages)

	out, err = r.Generate(context.Background(), "GPT-4", "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "from gpt", out)
	assert.Equal(t, "gpt-4", gpt.got.Model)

	assert.Equal(t, []string{FamilyAnthropic, FamilyOpenAI}, r.Families())
}

func TestRouterProviderUnavailable(t *testing.T) {
	r := NewRouter(FamilyOpenAI, nil, &fakeProvider{name: FamilyOpenAI, resp: okResponse("x")})

	_, err := r.Generate(context.Background(), "Gemini Pro", "", "hello")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
	assert.Contains(t, err.Error(), "gemini")
}

func TestRouterPropagatesGenerationFailure(t *testing.T) {
	failing := &fakeProvider{name: FamilyXAI, err: fmt.Errorf("%w: xai: boom", ErrGenerationFailed)}
	r := NewRouter(FamilyOpenAI, nil, failing)

	_, err := r.Generate(context.Background(), "Grok", "", "hello")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestNewRouterFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Provider = FamilyAnthropic
	cfg.Providers.OpenAI.APIKey = "sk-test"
	cfg.Providers.Anthropic.APIKey = "sk-ant-test"
	cfg.Providers.Gemini.APIKey = "g-test"

	r, err := NewRouterFromConfig(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{FamilyAnthropic, FamilyGemini, FamilyOllama, FamilyOpenAI}, r.Families())
	p, ok := r.Provider(FamilyAnthropic)
	require.True(t, ok)
	assert.Equal(t, FamilyAnthropic, p.Name())

	_, ok = r.Provider(FamilyXAI)
	assert.False(t, ok)
}

func TestNewRequest(t *testing.T) {
	req := NewRequest("gpt-4", "system", "user")
	assert.Len(t, req.Messages, 2)
	assert.Equal(t, DefaultMaxTokens, req.MaxTokens)

	system, rest := split(append(req.Messages, Message{Role: RoleSystem, Content: "more"}))
	assert.Equal(t, "system\n\nmore", system)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "user"}}, rest)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("hi"))
	assert.Equal(t, 9, EstimateTokens("This is a test string with some words."))
	assert.Equal(t, 0, CountTokens("gpt-4", ""))
}

// chatCompletionServer answers OpenAI-style chat completion calls and records the last request body
func chatCompletionServer(t *testing.T, content string, got *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, got)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "test-model",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 3, "total_tokens": 10}
		}`, content)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCustomProviderComplete(t *testing.T) {
	var got map[string]any
	srv := chatCompletionServer(t, "compatible answer", &got)

	p := NewCustomProvider(srv.URL+"/v1", "key", "local-model")
	resp, err := p.Complete(context.Background(), NewRequest("", "sys", "hello"))
	require.NoError(t, err)

	assert.Equal(t, "custom", p.Name())
	assert.Equal(t, "compatible answer", resp.Content)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, Usage{PromptTokens: 7, CompletionTokens: 3, TotalTokens: 10}, resp.Usage)
	assert.Equal(t, "local-model", got["model"])
}

func TestXAIProviderComplete(t *testing.T) {
	var got map[string]any
	srv := chatCompletionServer(t, "grok answer", &got)

	p := NewXAIProvider("key", "", srv.URL+"/v1")
	resp, err := p.Complete(context.Background(), NewRequest("", "sys", "hello"))
	require.NoError(t, err)

	assert.Equal(t, "grok answer", resp.Content)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
	assert.Equal(t, "grok-2-1212", got["model"])
	assert.Len(t, got["messages"], 2)
}

func TestCustomProviderEmptyResponse(t *testing.T) {
	var got map[string]any
	srv := chatCompletionServer(t, "", &got)

	_, err := NewCustomProvider(srv.URL+"/v1", "key", "m").Complete(context.Background(), NewRequest("", "", "hello"))
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}

func TestOllamaProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"model":"llama3.1:8b","created_at":"2024-01-01T00:00:00Z","message":{"role":"assistant","content":"local answer"},"done":true,"done_reason":"stop","prompt_eval_count":5,"eval_count":2}`)
	}))
	t.Cleanup(srv.Close)

	p, err := NewOllamaProvider(srv.URL+"/", "llama3.1:8b")
	require.NoError(t, err)

	resp, err := p.Complete(context.Background(), NewRequest("", "sys", "hello"))
	require.NoError(t, err)
	assert.Equal(t, "local answer", resp.Content)
	assert.Equal(t, Usage{PromptTokens: 5, CompletionTokens: 2, TotalTokens: 7}, resp.Usage)
}
