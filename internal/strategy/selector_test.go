package strategy

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/profile"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func newTestSelector() *Selector {
	return NewSelector(pattern.NewLibrary(pattern.Builtin()), profile.NewRegistry(firstPicker{}))
}

func patternIDs(patterns []pattern.Pattern) []string {
	ids := []string{}
	for _, p := range patterns {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRecommendIntersection(t *testing.T) {
	s := newTestSelector()

	rec, err := s.Recommend("seo", "blog-post")
	require.NoError(t, err)

	assert.Equal(t, []string{"seo-article", "blog-outline"}, patternIDs(rec.Patterns))
	assert.Equal(t, []string{"GPT-4", "Claude 3 Opus"}, rec.Models)
	assert.Equal(t, []string{"paragraph"}, rec.OutputFormats)
	assert.Equal(t, []string{"informative"}, rec.Tones)
	assert.Equal(t, []string{"informative", "professional"}, rec.Styles)
	assert.Equal(t, []string{
		"For Blog Post content with a SEO goal, aim for approximately 1,000-2,000 words.",
		"Blog Post content typically performs best with a informative tone.",
		"Consider using the SEO-Optimized Article pattern as a starting point.",
		"SEO content often benefits from including specific calls-to-action.",
	}, rec.Tips)
}

func TestRecommendFallsBackToUnion(t *testing.T) {
	s := newTestSelector()

	rec, err := s.Recommend("conversion", "whitepaper")
	require.NoError(t, err)

	assert.Equal(t, []string{"product-description", "email-sequence", "seo-article"}, patternIDs(rec.Patterns))
	assert.Equal(t, []string{"persuasive", "enthusiastic", "urgent", "authoritative", "professional", "informative"}, rec.Tones)
	assert.Equal(t, []string{"persuasive", "professional"}, rec.Styles)
}

func TestRecommendInvalidSelection(t *testing.T) {
	s := newTestSelector()

	_, err := s.Recommend("world-domination", "blog-post")
	assert.True(t, errors.Is(err, ErrInvalidSelection))

	_, err = s.Recommend("seo", "haiku")
	assert.True(t, errors.Is(err, ErrInvalidSelection))
}

func TestRecommendListsNeverEmpty(t *testing.T) {
	s := newTestSelector()

	for _, g := range s.Goals() {
		for _, ct := range s.ContentTypes() {
			t.Run(g.ID+"/"+ct.ID, func(t *testing.T) {
				rec, err := s.Recommend(g.ID, ct.ID)
				require.NoError(t, err)
				assert.NotEmpty(t, rec.Patterns)
				assert.NotEmpty(t, rec.Models)
				assert.NotEmpty(t, rec.OutputFormats)
				assert.NotEmpty(t, rec.Tones)
				assert.NotEmpty(t, rec.Styles)
				assert.Len(t, rec.Tips, 4)
			})
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantGoal string
		wantType string
	}{
		{
			name:     "content request mentioning a model",
			input:    "Create a prompt for GPT-4 about sustainable fashion for content marketers",
			wantGoal: "brand-awareness",
			wantType: "blog-post",
		},
		{
			name:     "prompt engineering",
			input:    "How do I engineer better prompts for Claude and GPT-4?",
			wantGoal: "thought-leadership",
			wantType: "prompt-engineering",
		},
		{
			name:     "names matched case-insensitively",
			input:    "An Email that drives Lead Generation",
			wantGoal: "lead-generation",
			wantType: "email",
		},
		{
			name:     "ids matched",
			input:    "landing-page copy focused on conversion",
			wantGoal: "conversion",
			wantType: "landing-page",
		},
		{
			name:     "first type in catalog order wins",
			input:    "a whitepaper and a blog post",
			wantGoal: "brand-awareness",
			wantType: "blog-post",
		},
	}

	s := newTestSelector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal, ct := s.Classify(tt.input)
			assert.Equal(t, tt.wantGoal, goal)
			assert.Equal(t, tt.wantType, ct)
		})
	}
}

func TestAnalyzeInputContentRequest(t *testing.T) {
	s := newTestSelector()

	rec, err := s.AnalyzeInput("Create a prompt for GPT-4 about sustainable fashion for content marketers")
	require.NoError(t, err)
	assert.Equal(t, []string{"blog-outline"}, patternIDs(rec.Patterns))
	assert.NotEmpty(t, rec.Models)
	assert.NotEmpty(t, rec.Tones)
}

func TestRecommendPromptEngineering(t *testing.T) {
	s := newTestSelector()

	input := "How do I engineer better prompts for Claude and GPT-4?"
	data, err := s.RecommendPrompt(input, "GPT-4")
	require.NoError(t, err)

	assert.Equal(t, "LLM-Specific Prompt Engineering for "+input, data.Title)
	assert.Equal(t, "GPT-4", data.Model)
	assert.Equal(t, "paragraph", data.OutputFormat)
	assert.Equal(t, "professional", data.Tone)
	assert.Equal(t, "technical", data.Style)
	assert.Equal(t, "generate-content", data.Goal)
	assert.Equal(t, "Expert Prompt Engineer", data.Role)
	assert.True(t, data.UseRolePlaying)
	assert.Contains(t, data.Content, "Claude")
	assert.NotContains(t, data.Content, "{{")
	assert.True(t, strings.HasPrefix(data.SpecificDetails, "For prompt engineering content, focus on specific model capabilities and limitations.\n\n"))
	assert.Contains(t, data.SpecificDetails, "\n\nOptimized for GPT-4:\n")
}

func TestRecommendPromptModelChoice(t *testing.T) {
	s := newTestSelector()
	input := "Create a prompt for GPT-4 about sustainable fashion for content marketers"

	data, err := s.RecommendPrompt(input, "Claude 3 Opus")
	require.NoError(t, err)
	assert.Equal(t, "Claude 3 Opus", data.Model)
	assert.Equal(t, "Blog Post Outline for "+input, data.Title)
	assert.NotContains(t, data.Content, "{{")
	assert.Contains(t, data.SpecificDetails, "Optimized for Claude 3 Opus:")

	data, err = s.RecommendPrompt(input, "Llama 3")
	require.NoError(t, err)
	assert.Equal(t, "GPT-4", data.Model)

	data, err = s.RecommendPrompt(input, "")
	require.NoError(t, err)
	assert.Equal(t, "GPT-4", data.Model)
}

func TestRecommendPromptWithoutPatterns(t *testing.T) {
	s := NewSelector(pattern.NewLibrary(), profile.NewRegistry(firstPicker{}))

	_, err := s.RecommendPrompt("Write a blog post about tea", "GPT-4")
	assert.True(t, errors.Is(err, ErrNoSuitablePattern))

	_, err = s.RecommendPrompt("Prompt engineering for LLMs", "GPT-4")
	assert.True(t, errors.Is(err, ErrNoSuitablePattern))
}
