package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRules(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		template string
		want     map[string]string
	}{
		{
			name:     "title after about",
			input:    "Write about Open Banking.",
			template: "{{title}}",
			want:     map[string]string{"title": "Open Banking"},
		},
		{
			name:     "title falls back to input",
			input:    "Quarterly newsletter",
			template: "{{title}}",
			want:     map[string]string{"title": "Quarterly newsletter"},
		},
		{
			name:     "topic mirrors title",
			input:    "Write about Open Banking.",
			template: "{{title}} {{topic}} {{primaryKeyword}}",
			want:     map[string]string{"title": "Open Banking", "topic": "Open Banking", "primaryKeyword": "Open Banking"},
		},
		{
			name:     "topic without title uses input",
			input:    "Write about Open Banking.",
			template: "{{topic}}",
			want:     map[string]string{"topic": "Write about Open Banking."},
		},
		{
			name:     "audience kept",
			input:    "Tips for small business owners",
			template: "{{audience}}",
			want:     map[string]string{"audience": "small business owners"},
		},
		{
			name:     "audience suffix stripped",
			input:    "Guide for marketing people",
			template: "{{audience}}",
			want:     map[string]string{"audience": "marketing"},
		},
		{
			name:     "audience default",
			input:    "Quarterly newsletter",
			template: "{{audience}}",
			want:     map[string]string{"audience": "content creators and marketers"},
		},
		{
			name:     "named model",
			input:    "Prompts for Llama",
			template: "{{targetLLM}}",
			want:     map[string]string{"targetLLM": "Llama"},
		},
		{
			name:     "generic model phrase",
			input:    "Prompts using Falcon 40B models",
			template: "{{targetLLM}}",
			want:     map[string]string{"targetLLM": "Falcon 40B"},
		},
		{
			name:     "different LLMs means no specific model",
			input:    "Compare prompting for different LLMs",
			template: "{{targetLLM}}",
			want:     map[string]string{"targetLLM": "GPT-4"},
		},
		{
			name:     "model default",
			input:    "Write something nice",
			template: "{{targetLLM}}",
			want:     map[string]string{"targetLLM": "GPT-4"},
		},
		{
			name:     "purpose kept",
			input:    "Prompts to boost engagement",
			template: "{{purpose}}",
			want:     map[string]string{"purpose": "boost engagement"},
		},
		{
			name:     "purpose suffix stripped",
			input:    "Copy for marketing purposes",
			template: "{{purpose}}",
			want:     map[string]string{"purpose": "marketing"},
		},
		{
			name:     "industry suffix stripped",
			input:    "Trends in renewable energy sector",
			template: "{{industry}}",
			want:     map[string]string{"industry": "renewable energy"},
		},
		{
			name:     "context free defaults",
			input:    "Anything",
			template: "{{hook}} {{mainSection4}} {{secondaryKeywords}}",
			want: map[string]string{
				"hook":              "a compelling statistic or question",
				"mainSection4":      "Future Trends and Developments",
				"secondaryKeywords": "related industry terms",
			},
		},
		{
			name:     "uncovered placeholders are left out",
			input:    "Anything",
			template: "{{productName}} {{feature1}}",
			want:     map[string]string{},
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.input, tt.template)
			assert.Equal(t, tt.want, got.Variables)
		})
	}
}

func TestParseStripsRequestLeadInForModelAnalysis(t *testing.T) {
	p := NewParser()

	got := p.Parse("Create a prompt for GPT-4 about sustainable fashion", "PART 1: LLM ANALYSIS\n{{topic}}")
	assert.Equal(t, "sustainable fashion", got.Variables["topic"])

	got = p.Parse("Create a prompt for GPT-4 about sustainable fashion", "{{topic}}")
	assert.Equal(t, "Create a prompt for GPT-4 about sustainable fashion", got.Variables["topic"])
}

func TestParseRuleOrderIsPrecedence(t *testing.T) {
	p := NewParser(
		Rule{Name: "slot", Extract: constant("first")},
		Rule{Name: "slot", Extract: constant("second")},
		Rule{Name: "echo", Extract: func(_ string, found map[string]string) string { return found["slot"] + "!" }},
	)

	got := p.Parse("ignored", "{{slot}} {{echo}}")
	assert.Equal(t, map[string]string{"slot": "first", "echo": "first!"}, got.Variables)
}

func TestGenerationDefaults(t *testing.T) {
	d := GenerationDefaults("Blog Post Outline for remote work")
	assert.Equal(t, "remote work", d["topic"])
	assert.Equal(t, "remote work", d["title"])
	assert.Equal(t, "remote work", d["primaryKeyword"])
	assert.Equal(t, "GPT-4", d["targetLLM"])
	assert.Equal(t, "our AI content platform", d["product/service"])
	assert.Equal(t, "Measuring success and ROI", d["point3_3"])

	d = GenerationDefaults("Guide for different LLMs using Claude now")
	assert.Equal(t, "Claude", d["targetLLM"])
	assert.Equal(t, "Claude", d["modelName"])
}
