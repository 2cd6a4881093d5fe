package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jahboukie/promptpro/internal/prompt"
)

var (
	headingRe   = regexp.MustCompile(`^#+\s|^[A-Z][A-Z\s]+:`)
	wordCountRe = regexp.MustCompile(`\d+\s*words`)
)

func structureAdvice(content string) []string {
	var recs []string

	if !strings.Contains(content, "\n\n") {
		recs = append(recs, "Break your prompt into clear sections with blank lines between them")
	}
	if !listRe.MatchString(content) {
		recs = append(recs, "Use numbered lists or bullet points to structure information")
	}
	if !headingRe.MatchString(content) {
		recs = append(recs, "Consider adding headings to organize your prompt")
	}
	for _, p := range strings.Split(content, "\n\n") {
		if utf8.RuneCountInString(p) > 200 {
			recs = append(recs, "Break long paragraphs into smaller, more digestible chunks")
			break
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Your prompt structure looks good")
	}
	return recs
}

func contentAdvice(data prompt.Data) []string {
	var recs []string
	lower := strings.ToLower(data.Content)

	if !containsAny(lower, examples...) {
		recs = append(recs, "Include specific examples to illustrate what you want")
	}
	if utf8.RuneCountInString(data.Content) < 100 {
		recs = append(recs, "Add more context to help the AI understand your requirements")
	}
	if !containsAny(lower, "should", "must", "need") {
		recs = append(recs, "Include specific instructions about what the AI should do")
	}
	if data.OutputFormat == "" {
		recs = append(recs, "Specify the desired output format (paragraph, bullet points, etc.)")
	}
	if data.Tone == "" {
		recs = append(recs, "Specify the desired tone for the response")
	}

	if len(recs) == 0 {
		recs = append(recs, "Your prompt content looks comprehensive")
	}
	return recs
}

func mentionsSEO(content string) bool {
	return containsAny(strings.ToLower(content), "seo", "search engine", "keyword")
}

func seoAdvice(content string) []string {
	recs := []string{}
	lower := strings.ToLower(content)

	if !strings.Contains(lower, "keyword") {
		recs = append(recs, "Specify primary and secondary keywords for SEO content")
	}
	if !containsAny(lower, "intent", "searching for") {
		recs = append(recs, "Clarify the search intent (informational, transactional, etc.)")
	}
	if !containsAny(lower, "heading", "h1", "h2") {
		recs = append(recs, "Include guidance on heading structure (H1, H2, H3) for SEO content")
	}
	if !strings.Contains(lower, "meta description") {
		recs = append(recs, "Request a meta description to be included with SEO content")
	}
	if !wordCountRe.MatchString(content) {
		recs = append(recs, "Specify a target word count for SEO content")
	}
	return recs
}
