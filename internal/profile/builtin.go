package profile

// DefaultKey is the profile used when a model name does not resolve
const DefaultKey = "gpt-4"

// builtinKeys fixes the catalog order
var builtinKeys = []string{
	"gpt-4",
	"gpt-3.5-turbo",
	"claude-3-opus",
	"claude-3-sonnet",
	"grok-1",
	"gemini-pro",
	"jasper",
	"copyai",
}

func builtin() map[string]Profile {
	return map[string]Profile{
		"gpt-4": {
			Name:          "GPT-4",
			Provider:      ProviderOpenAI,
			ContextWindow: 8192,
			Strengths: []string{
				"Complex reasoning",
				"Nuanced understanding",
				"Following detailed instructions",
				"Code generation",
				"Creative writing",
			},
			Weaknesses: []string{
				"Hallucinations in factual content",
				"Verbose responses",
				"Knowledge cutoff limitations",
			},
			PreferredFormats: []string{
				"Detailed instructions",
				"Step-by-step guidance",
				"JSON structured output",
				"Markdown formatting",
			},
			SpecialInstructions: []string{
				`Use "Let's think step by step" for reasoning tasks`,
				"Specify output format explicitly",
				"Use system messages for persistent instructions",
			},
			CompatibleTools: []string{"Jasper AI", "Copy AI", "WordAI", "Frase"},
			OptimizationTips: []string{
				"Break complex tasks into smaller steps",
				"Use explicit formatting instructions",
				"Provide examples for desired output format",
				"Use role prompting for specialized knowledge",
			},
		},
		"gpt-3.5-turbo": {
			Name:          "GPT-3.5 Turbo",
			Provider:      ProviderOpenAI,
			ContextWindow: 4096,
			Strengths: []string{
				"Fast responses",
				"Good general knowledge",
				"Creative content generation",
				"Cost-effective",
			},
			Weaknesses: []string{
				"Less nuanced than GPT-4",
				"Struggles with complex reasoning",
				"More prone to hallucinations",
			},
			PreferredFormats: []string{
				"Clear, concise instructions",
				"Bullet points",
				"Simple formatting",
			},
			SpecialInstructions: []string{
				"Keep instructions clear and direct",
				"Use examples for complex tasks",
				"Break down multi-step processes",
			},
			CompatibleTools: []string{"Jasper AI", "Copy AI", "Rytr", "Simplified"},
			OptimizationTips: []string{
				"Keep prompts concise and focused",
				"Use simpler language than with GPT-4",
				"Provide more explicit instructions",
				"Include examples for complex outputs",
			},
		},
		"claude-3-opus": {
			Name:          "Claude 3 Opus",
			Provider:      ProviderAnthropic,
			ContextWindow: 100000,
			Strengths: []string{
				"Extremely long context window",
				"Strong reasoning capabilities",
				"Excellent at following instructions",
				"Reduced hallucinations",
			},
			Weaknesses: []string{
				"Less creative than some models",
				"More expensive than smaller models",
				"Sometimes overly cautious",
			},
			PreferredFormats: []string{
				"Detailed instructions",
				"Long-form content",
				"Academic writing",
				"Document analysis",
			},
			SpecialInstructions: []string{
				"Leverage the large context window for document analysis",
				`Use "I need a thoughtful, nuanced response" for complex topics`,
				"Specify when creativity is desired",
			},
			CompatibleTools: []string{"Copy AI", "Jasper AI", "Frase", "Clearscope"},
			OptimizationTips: []string{
				"Provide comprehensive context for best results",
				"Use explicit formatting instructions",
				"Specify tone and style clearly",
				"Leverage its ability to analyze long documents",
			},
		},
		"claude-3-sonnet": {
			Name:          "Claude 3 Sonnet",
			Provider:      ProviderAnthropic,
			ContextWindow: 200000,
			Strengths: []string{
				"Massive context window",
				"Balanced performance",
				"Good at following instructions",
				"Reduced hallucinations",
			},
			Weaknesses: []string{
				"Less powerful than Opus",
				"Sometimes overly cautious",
			},
			PreferredFormats: []string{
				"Clear instructions",
				"Long-form content",
				"Document analysis",
			},
			SpecialInstructions: []string{
				"Leverage the large context window",
				"Be explicit about desired creativity level",
				"Use clear formatting instructions",
			},
			CompatibleTools: []string{"Copy AI", "Jasper AI", "Frase", "Clearscope"},
			OptimizationTips: []string{
				"Provide comprehensive context",
				"Be explicit about tone and style",
				"Use examples for complex outputs",
			},
		},
		"grok-1": {
			Name:          "Grok-1",
			Provider:      ProviderXAI,
			ContextWindow: 8192,
			Strengths: []string{
				"Creative responses",
				"Conversational style",
				"Up-to-date knowledge",
				"Humor and personality",
			},
			Weaknesses: []string{
				"Less formal than some models",
				"May be too casual for business content",
				"Newer with less established patterns",
			},
			PreferredFormats: []string{
				"Conversational prompts",
				"Creative writing tasks",
				"Informal content",
			},
			SpecialInstructions: []string{
				"Specify when a more formal tone is needed",
				"Be clear about factual accuracy requirements",
				"Use examples for specific formats",
			},
			CompatibleTools: []string{"Jasper AI", "Copy AI", "Rytr"},
			OptimizationTips: []string{
				"Embrace conversational style for engagement",
				"Specify tone explicitly for business content",
				"Use examples when specific formats are needed",
				"Leverage its personality for creative content",
			},
		},
		"gemini-pro": {
			Name:          "Gemini Pro",
			Provider:      ProviderGoogle,
			ContextWindow: 32768,
			Strengths: []string{
				"Strong factual knowledge",
				"Multimodal capabilities",
				"Good at structured data tasks",
				"Long context window",
			},
			Weaknesses: []string{
				"Less creative than some models",
				"More formal in tone",
				"Newer with less established patterns",
			},
			PreferredFormats: []string{
				"Structured data requests",
				"Factual content",
				"Technical writing",
			},
			SpecialInstructions: []string{
				"Be explicit when creativity is desired",
				"Use structured format for best results",
				"Specify tone clearly",
			},
			CompatibleTools: []string{"Jasper AI", "Copy AI", "Frase", "Clearscope"},
			OptimizationTips: []string{
				"Leverage for factual, research-based content",
				"Provide clear structure in prompts",
				"Use examples for creative tasks",
				"Be explicit about desired tone",
			},
		},
		"jasper": {
			Name:          "Jasper AI",
			Provider:      ProviderJasper,
			ContextWindow: 4000,
			Strengths: []string{
				"Marketing-focused content",
				"SEO optimization",
				"Brand voice consistency",
				"Content templates",
			},
			Weaknesses: []string{
				"Less versatile than general models",
				"Marketing-specific focus",
				"Limited technical content capabilities",
			},
			PreferredFormats: []string{
				"Marketing briefs",
				"SEO-focused instructions",
				"Brand guidelines inclusion",
			},
			SpecialInstructions: []string{
				"Include target keywords",
				"Specify target audience clearly",
				"Include brand voice guidelines",
				"Mention desired content length",
			},
			CompatibleTools: []string{"Jasper AI"},
			OptimizationTips: []string{
				"Include SEO keywords prominently",
				"Specify target audience demographics",
				"Include brand voice characteristics",
				"Mention competitors for positioning",
			},
		},
		"copyai": {
			Name:          "Copy AI",
			Provider:      ProviderCopyAI,
			ContextWindow: 4000,
			Strengths: []string{
				"Marketing copy generation",
				"Multiple variations",
				"Social media content",
				"Email marketing",
			},
			Weaknesses: []string{
				"Less versatile than general models",
				"Marketing-specific focus",
				"Limited technical content capabilities",
			},
			PreferredFormats: []string{
				"Marketing briefs",
				"Variation requests",
				"Short-form content instructions",
			},
			SpecialInstructions: []string{
				"Request multiple variations",
				"Specify character limits",
				"Include target audience details",
				"Mention content goals",
			},
			CompatibleTools: []string{"Copy AI"},
			OptimizationTips: []string{
				"Be specific about desired tone and style",
				"Include examples of successful content",
				"Specify engagement goals",
				"Include call-to-action requirements",
			},
		},
	}
}
