package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

func newTestAnalyzer() *Analyzer {
	return New(profile.NewRegistry(firstPicker{}))
}

func TestAnalyzeShortContent(t *testing.T) {
	a := newTestAnalyzer()

	for _, content := range []string{"", "hi", "123456789"} {
		r := a.Analyze(prompt.Data{
			Title:           "A perfectly good title",
			Content:         content,
			Model:           "GPT-4",
			Tone:            "persuasive",
			SpecificDetails: strings.Repeat("detail ", 20),
		})

		assert.Equal(t, 10, r.Score)
		assert.Equal(t, []string{"Prompt content is too short or empty"}, r.Weaknesses)
		assert.Equal(t, []string{"Add detailed content to your prompt"}, r.Improvements)
		assert.Empty(t, r.Strengths)
		assert.Empty(t, r.ModelRecommendations)
		assert.Zero(t, r.Clarity)
	}
}

func TestAnalyzeWorkedExample(t *testing.T) {
	a := newTestAnalyzer()

	r := a.Analyze(prompt.Data{
		Title:        "Launch email",
		Content:      "Write a short email announcing our new app. You should mention the free trial and include a sign up link.",
		Model:        "GPT-4",
		Goal:         "generate-content",
		OutputFormat: "paragraph",
		Style:        "professional",
		Tone:         "persuasive",
	})

	assert.Equal(t, 8, r.Clarity)
	assert.Equal(t, 6, r.Specificity)
	assert.Equal(t, 6, r.Engagement)
	assert.Equal(t, 8, r.Persuasiveness)
	assert.Equal(t, 10, r.Completeness)
	assert.InDelta(t, 90.935, r.ReadabilityScore, 0.001)
	assert.Equal(t, 86, r.Score)

	assert.Equal(t, []string{
		"Prompt has a title",
		"Prompt is comprehensive and complete",
		"Prompt has good readability",
	}, r.Strengths)
	assert.Empty(t, r.Weaknesses)
	assert.Equal(t, []string{
		"Consider leveraging GPT-4's strengths: Complex reasoning, Nuanced understanding, Following detailed instructions, Code generation, Creative writing",
		"GPT-4 works best with these formats: Detailed instructions, Step-by-step guidance, JSON structured output, Markdown formatting",
		"Break your prompt into clear sections with blank lines between them",
		"Include specific examples to illustrate what you want",
	}, r.Improvements)
	assert.Empty(t, r.SEORecommendations)
	assert.NotNil(t, r.SEORecommendations)
}

func TestAnalyzeWeakPrompt(t *testing.T) {
	a := newTestAnalyzer()

	r := a.Analyze(prompt.Data{Content: "Utilize synergy to optimize the paradigm."})

	assert.Contains(t, r.Weaknesses, "Prompt content is very short")
	assert.Contains(t, r.Weaknesses, "Missing or very short title")
	assert.Contains(t, r.Weaknesses, "Prompt is missing important elements")
	assert.Contains(t, r.Improvements, "Expand your prompt with more details and context")
	assert.Contains(t, r.Improvements, "Add a descriptive title that summarizes the prompt purpose")
	assert.Equal(t, 3, r.Completeness)
	assert.Contains(t, r.ContentRecommendations, "Specify the desired output format (paragraph, bullet points, etc.)")
	assert.Contains(t, r.ContentRecommendations, "Specify the desired tone for the response")
}

func TestAnalyzeAffirmingFallbacks(t *testing.T) {
	a := newTestAnalyzer()

	content := "TASK: write product copy\n\n" +
		"1. You should give one example, such as a customer quote.\n" +
		"2. Keep each line short."
	r := a.Analyze(prompt.Data{
		Title:        "Copy brief",
		Content:      content,
		Model:        "GPT-4",
		OutputFormat: "paragraph",
		Tone:         "friendly",
	})

	assert.Equal(t, []string{"Your prompt structure looks good"}, r.StructureRecommendations)
	assert.Equal(t, []string{"Your prompt content looks comprehensive"}, r.ContentRecommendations)
	assert.Contains(t, r.Improvements, "Your prompt structure looks good")
}

func TestAnalyzeSEOAdvice(t *testing.T) {
	a := newTestAnalyzer()

	r := a.Analyze(prompt.Data{
		Title:   "SEO post",
		Content: "Write an SEO article about home composting for beginners.",
	})
	assert.Equal(t, []string{
		"Specify primary and secondary keywords for SEO content",
		"Clarify the search intent (informational, transactional, etc.)",
		"Include guidance on heading structure (H1, H2, H3) for SEO content",
		"Request a meta description to be included with SEO content",
		"Specify a target word count for SEO content",
	}, r.SEORecommendations)

	r = a.Analyze(prompt.Data{
		Title:   "SEO post",
		Content: "Target keyword composting, informational intent, H2 headings, a meta description and 1500 words.",
	})
	assert.Empty(t, r.SEORecommendations)
}

func TestAnalyzeScoresStayInRange(t *testing.T) {
	a := newTestAnalyzer()

	inputs := []prompt.Data{
		{Content: strings.Repeat("?", 400)},
		{Content: "!!!!!!!!!!!!!!!!"},
		{Content: "          \n\n          "},
		{Content: "日本語のプロンプトです。テスト用の文章です。"},
		{Content: strings.Repeat("Supercalifragilistic antidisestablishmentarianism. ", 200), Title: "x"},
		{
			Title:           "Everything",
			Content:         strings.Repeat("Imagine you must click proven results with expert reviews? 1. * - • example ", 30),
			Model:           "Claude",
			Goal:            "seo",
			OutputFormat:    "Long-form content",
			Style:           "bold",
			Tone:            "persuasive",
			UseRolePlaying:  true,
			Role:            "Editor",
			SpecificDetails: strings.Repeat("more detail ", 20),
		},
	}

	for _, in := range inputs {
		r := a.Analyze(in)
		for _, v := range []int{r.Clarity, r.Specificity, r.Engagement, r.Persuasiveness, r.Completeness} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 10)
		}
		assert.GreaterOrEqual(t, r.ReadabilityScore, 0.0)
		assert.LessOrEqual(t, r.ReadabilityScore, 100.0)
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
}

func TestAnalyzeAppliedPatternsAreComplete(t *testing.T) {
	lib := pattern.NewLibrary(pattern.Builtin())
	a := newTestAnalyzer()

	for _, p := range lib.All() {
		t.Run(p.ID, func(t *testing.T) {
			data, err := lib.Apply(p.ID, nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, a.Analyze(data).Completeness, 7)
		})
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"table", 2},
		{"running", 2},
		{"makes", 1},
		{"created", 1},
		{"yellow", 2},
		{"rhythm", 1},
		{"beautiful", 4},
		{"zzzz", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word))
		})
	}
}

func TestReadability(t *testing.T) {
	assert.Equal(t, 100.0, Readability("The cat sat. The dog ran."))
	assert.Equal(t, 0.0, Readability("...!!!???"))
	assert.Equal(t, 0.0, Readability(""))
}
