package writer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahboukie/promptpro/internal/prompt"
)

type fakeGenerator struct {
	model, system, prompt string
	resp                  string
	err                   error
}

func (f *fakeGenerator) Generate(_ context.Context, modelHint, system, p string) (string, error) {
	f.model, f.system, f.prompt = modelHint, system, p
	return f.resp, f.err
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		data prompt.Data
		want string
	}{
		{
			name: "content only",
			data: prompt.Data{Content: "Write a haiku."},
			want: "Write a haiku.",
		},
		{
			name: "full prompt",
			data: prompt.Data{
				Title:           "Guide about remote work",
				Content:         "Write about {{topic}} for {{audience}} citing {{unknownVar}}.",
				OutputFormat:    "bullet-points",
				Style:           "professional",
				Tone:            "friendly",
				SpecificDetails: "Keep it short.",
				UseRolePlaying:  true,
				Role:            "Content Strategist",
			},
			want: "You are a Content Strategist. Write about remote work for content creators and marketers citing [unknownVar]." +
				"\n\nAdditional details: Keep it short." +
				"\n\nPlease format your response as bullet-points." +
				"\n\nUse a professional style with a friendly tone.",
		},
		{
			name: "role ignored without role playing",
			data: prompt.Data{Content: "Draft an email.", Role: "Editor", Tone: "warm"},
			want: "Draft an email.\n\nUse a casual style with a warm tone.",
		},
		{
			name: "style without tone",
			data: prompt.Data{Content: "Draft an email.", Style: "formal"},
			want: "Draft an email.\n\nUse a formal style with a informative tone.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.data))
		})
	}
}

func TestGenerate(t *testing.T) {
	gen := &fakeGenerator{resp: "Here is your post."}
	w := NewWriter(gen, nil)

	out, err := w.Generate(context.Background(), prompt.Data{Content: "Write a post.", Model: "Claude 3 Opus"})
	require.NoError(t, err)

	assert.Equal(t, "Here is your post.", out)
	assert.Equal(t, "Claude 3 Opus", gen.model)
	assert.Empty(t, gen.system)
	assert.Equal(t, "Write a post.", gen.prompt)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		data prompt.Data
	}{
		{"missing content", prompt.Data{Model: "GPT-4"}},
		{"blank content", prompt.Data{Content: "  ", Model: "GPT-4"}},
		{"missing model", prompt.Data{Content: "Write a post."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			_, err := NewWriter(gen, nil).Generate(context.Background(), tt.data)
			assert.ErrorIs(t, err, ErrInvalidPrompt)
			assert.Empty(t, gen.prompt)
		})
	}
}

func TestGenerateWrapsProviderError(t *testing.T) {
	boom := errors.New("quota exceeded")
	w := NewWriter(&fakeGenerator{err: boom}, nil)

	_, err := w.Generate(context.Background(), prompt.Data{Content: "Write a post.", Model: "gpt-4"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "gpt-4")
}
