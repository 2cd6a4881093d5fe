package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPromptEngineering(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"How do I engineer better prompts for Claude and GPT-4?", true},
		{"Create a prompt for GPT-4 about sustainable fashion for content marketers", false},
		{"Write a prompt that works across LLMs", true},
		{"Prompt ideas for a large language model", true},
		{"Prompting tips for Gemini", true},
		{"Best prompts for ChatGPT", true},
		{"Write a blog post about GPT-4", false},
		{"prompt me for a landing page", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPromptEngineering(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	in := New("Prompt engineering for Claude")
	assert.Equal(t, "Prompt engineering for Claude", in.Raw)
	assert.True(t, in.PromptEngineering)
	assert.NotNil(t, in.Variables)
}
