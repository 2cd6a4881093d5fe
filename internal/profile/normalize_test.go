package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GPT-4", "gpt-4"},
		{"gpt4", "gpt-4"},
		{"gpt 4", "gpt-4"},
		{"GPT-4 Turbo", "gpt-4"},
		{"gpt-3.5", "gpt-3.5-turbo"},
		{"GPT 3.5", "gpt-3.5-turbo"},
		{"Claude 3 Opus", "claude-3-opus"},
		{"claude opus", "claude-3-opus"},
		{"Claude 3 Sonnet", "claude-3-sonnet"},
		{"Grok", "grok-1"},
		{"xAI Grok 2", "grok-1"},
		{"Gemini", "gemini-pro"},
		{"Jasper AI", "jasper"},
		{"Copy.ai", "copyai"},
		{"gpt\t4", "gpt-4"},
		{"  Mistral Large  ", "mistral-large"},
		{"Llama 3 (70B)!", "llama-3-70b"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"GPT-4", "gpt_4", "Claude  3   Opus", "copy.ai", "Mistral Large",
		"Llama 3 (70B)!", "Ünïcödé model", "   ", "grok-1", "palm 2",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestAliasesResolveToTheirKey(t *testing.T) {
	for _, key := range builtinKeys {
		names := Aliases(key)
		assert.NotEmpty(t, names, "no aliases for %s", key)
		for _, name := range names {
			assert.Equal(t, key, Normalize(name), "alias %q", name)
		}
	}
}
