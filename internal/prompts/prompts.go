package prompts

import (
	_ "embed"
	"strings"
)

//go:embed engineer.md
var engineer string

//go:embed patterns/blog-outline.md
var blogOutline string

//go:embed patterns/social-media-campaign.md
var socialMediaCampaign string

//go:embed patterns/email-sequence.md
var emailSequence string

//go:embed patterns/product-description.md
var productDescription string

//go:embed patterns/seo-article.md
var seoArticle string

//go:embed patterns/llm-prompt-engineering.md
var llmPromptEngineering string

var templates = map[string]string{
	"blog-outline":           blogOutline,
	"social-media-campaign":  socialMediaCampaign,
	"email-sequence":         emailSequence,
	"product-description":    productDescription,
	"seo-article":            seoArticle,
	"llm-prompt-engineering": llmPromptEngineering,
}

// EngineerSystem returns the system prompt of the PromptEngineer-GPT persona
func EngineerSystem() string {
	return strings.TrimSpace(engineer)
}

// Template returns the built-in template for a pattern id, or "" if there is none
func Template(id string) string {
	return strings.TrimSpace(templates[id])
}
