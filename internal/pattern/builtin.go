package pattern

import (
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/prompts"
)

// Builtin returns the content marketing patterns shipped with the binary, in catalog order
func Builtin() []Pattern {
	return []Pattern{
		{
			ID:          "blog-outline",
			Name:        "Blog Post Outline",
			Description: "Creates a structured outline for a blog post with sections and key points",
			Category:    "blog",
			Template:    prompts.Template("blog-outline"),
			Defaults: prompt.Data{
				Title:          "Blog Post Outline",
				Model:          "GPT-4",
				Goal:           "generate-content",
				OutputFormat:   "bullet-points",
				Style:          "professional",
				Tone:           "informative",
				ActionVerb:     "Create",
				UseRolePlaying: true,
				Role:           "Expert Content Strategist",
			},
			ExampleUses: []string{
				"Planning a series of blog posts for a content calendar",
				"Breaking down complex topics into digestible sections",
				"Ensuring comprehensive coverage of a subject",
			},
			BestPractices: []string{
				"Be specific about your target audience",
				"Include clear goals for the blog post",
				"Specify SEO keywords for better optimization",
				"Mention the desired tone and style",
			},
			CompatibleModels: []string{"GPT-4", "GPT-3.5 Turbo", "Claude 3 Opus", "Claude 3 Sonnet"},
			ContentTypes:     []string{"Blog Post", "Article", "Guide"},
			MarketingGoals:   []string{"Brand Awareness", "Education", "SEO", "Thought Leadership"},
			Difficulty:       Beginner,
			Effectiveness:    9,
			Tags:             []string{"blog", "outline", "content planning", "SEO"},
		},
		{
			ID:          "social-media-campaign",
			Name:        "Social Media Campaign",
			Description: "Generates a multi-platform social media campaign with tailored content for each platform",
			Category:    "social-media",
			Template:    prompts.Template("social-media-campaign"),
			Defaults: prompt.Data{
				Title:          "Social Media Campaign",
				Model:          "GPT-4",
				Goal:           "generate-content",
				OutputFormat:   "bullet-points",
				Style:          "creative",
				Tone:           "engaging",
				ActionVerb:     "Create",
				UseRolePlaying: true,
				Role:           "Social Media Marketing Strategist",
			},
			ExampleUses: []string{
				"Launching a new product across multiple platforms",
				"Creating a cohesive brand message adapted to different channels",
				"Planning a month of social media content",
			},
			BestPractices: []string{
				"Specify your target audience demographics",
				"Include your brand voice characteristics",
				"Mention specific campaign goals",
				"Provide relevant hashtags for each platform",
			},
			CompatibleModels: []string{"GPT-4", "GPT-3.5 Turbo", "Claude 3 Opus", "Jasper", "CopyAI"},
			ContentTypes:     []string{"Social Media", "Campaign", "Multi-platform"},
			MarketingGoals:   []string{"Brand Awareness", "Engagement", "Lead Generation", "Product Launch"},
			Difficulty:       Intermediate,
			Effectiveness:    8,
			Tags:             []string{"social media", "campaign", "multi-platform", "content calendar"},
		},
		{
			ID:          "email-sequence",
			Name:        "Email Marketing Sequence",
			Description: "Creates a sequence of emails for a nurture campaign or sales funnel",
			Category:    "email",
			Template:    prompts.Template("email-sequence"),
			Defaults: prompt.Data{
				Title:          "Email Marketing Sequence",
				Model:          "GPT-4",
				Goal:           "generate-content",
				OutputFormat:   "paragraph",
				Style:          "persuasive",
				Tone:           "conversational",
				ActionVerb:     "Create",
				UseRolePlaying: true,
				Role:           "Email Marketing Specialist",
			},
			ExampleUses: []string{
				"Creating a welcome sequence for new subscribers",
				"Developing a sales funnel for a product launch",
				"Building a re-engagement campaign for inactive customers",
			},
			BestPractices: []string{
				"Clearly define your audience and their pain points",
				"Include specific conversion goals",
				"Mention personalization elements",
				"Specify the desired tone and length",
			},
			CompatibleModels: []string{"GPT-4", "Claude 3 Opus", "Claude 3 Sonnet", "Jasper", "CopyAI"},
			ContentTypes:     []string{"Email", "Sequence", "Nurture Campaign"},
			MarketingGoals:   []string{"Lead Nurturing", "Conversion", "Customer Retention", "Sales"},
			Difficulty:       Advanced,
			Effectiveness:    9,
			Tags:             []string{"email", "sequence", "funnel", "nurture"},
		},
		{
			ID:          "product-description",
			Name:        "E-commerce Product Description",
			Description: "Creates compelling product descriptions for online stores",
			Category:    "e-commerce",
			Template:    prompts.Template("product-description"),
			Defaults: prompt.Data{
				Title:          "E-commerce Product Description",
				Model:          "GPT-4",
				Goal:           "generate-content",
				OutputFormat:   "paragraph",
				Style:          "persuasive",
				Tone:           "enthusiastic",
				ActionVerb:     "Create",
				UseRolePlaying: true,
				Role:           "E-commerce Copywriter",
			},
			ExampleUses: []string{
				"Creating descriptions for new products",
				"Refreshing existing product listings",
				"Developing variant descriptions for A/B testing",
			},
			BestPractices: []string{
				"Focus on benefits, not just features",
				"Include specific technical specifications",
				"Use sensory language to help customers imagine using the product",
				"Incorporate SEO keywords naturally",
			},
			CompatibleModels: []string{"GPT-4", "GPT-3.5 Turbo", "Claude 3 Opus", "Jasper", "CopyAI"},
			ContentTypes:     []string{"Product Description", "E-commerce Copy", "Sales Copy"},
			MarketingGoals:   []string{"Conversion", "Sales", "SEO"},
			Difficulty:       Intermediate,
			Effectiveness:    8,
			Tags:             []string{"e-commerce", "product description", "sales copy", "conversion"},
		},
		{
			ID:          "seo-article",
			Name:        "SEO-Optimized Article",
			Description: "Creates in-depth, SEO-friendly articles designed to rank for specific keywords",
			Category:    "seo",
			Template:    prompts.Template("seo-article"),
			Defaults: prompt.Data{
				Title:          "SEO-Optimized Article",
				Model:          "GPT-4",
				Goal:           "generate-content",
				OutputFormat:   "paragraph",
				Style:          "informative",
				Tone:           "authoritative",
				ActionVerb:     "Create",
				UseRolePlaying: true,
				Role:           "SEO Content Strategist",
			},
			ExampleUses: []string{
				"Creating cornerstone content for important keywords",
				"Developing comprehensive guides on industry topics",
				"Building authoritative resource pages",
			},
			BestPractices: []string{
				"Research keywords thoroughly before creating the prompt",
				"Include specific questions to target featured snippets",
				"Specify word count based on competing articles",
				"Include current date for freshness",
			},
			CompatibleModels: []string{"GPT-4", "Claude 3 Opus", "Claude 3 Sonnet", "Jasper"},
			ContentTypes:     []string{"Article", "Blog Post", "Guide", "Resource"},
			MarketingGoals:   []string{"SEO", "Thought Leadership", "Traffic Generation", "Lead Generation"},
			Difficulty:       Advanced,
			Effectiveness:    9,
			Tags:             []string{"seo", "article", "long-form", "keyword optimization"},
		},
		{
			ID:          "llm-prompt-engineering",
			Name:        "LLM-Specific Prompt Engineering",
			Description: "Creates optimized prompts tailored for specific LLM architectures",
			Category:    "ai",
			Template:    prompts.Template("llm-prompt-engineering"),
			Defaults: prompt.Data{
				Title:          "LLM-Specific Prompt Engineering",
				Model:          "GPT-4",
				Goal:           "generate-content",
				OutputFormat:   "paragraph",
				Style:          "technical",
				Tone:           "professional",
				ActionVerb:     "Create",
				UseRolePlaying: true,
				Role:           "Expert Prompt Engineer",
			},
			ExampleUses: []string{
				"Creating optimized prompts for different AI models",
				"Improving response quality for specific LLMs",
				"Developing model-specific prompt strategies",
			},
			BestPractices: []string{
				"Specify the exact LLM you're targeting (GPT-4, Claude, Gemini, etc.)",
				"Include the specific purpose or goal of the prompt",
				"Consider the unique strengths and limitations of each model",
				"Test prompts across different parameter settings",
			},
			CompatibleModels: []string{"GPT-4", "Claude 3 Opus", "Claude 3 Sonnet", "Gemini Pro"},
			ContentTypes:     []string{"AI Prompt", "Technical Content", "Instruction Design"},
			MarketingGoals:   []string{"Content Creation", "Technical Documentation", "AI Optimization"},
			Difficulty:       Advanced,
			Effectiveness:    9,
			Tags:             []string{"ai", "prompt engineering", "llm optimization", "technical writing"},
		},
	}
}
