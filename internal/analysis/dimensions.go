package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jahboukie/promptpro/internal/prompt"
)

var (
	digitRe     = regexp.MustCompile(`\d`)
	listRe      = regexp.MustCompile(`\d+\.|\*|-|•`)
	pronounRe   = regexp.MustCompile(`(?i)\byou\b|\byour\b|\bwe\b|\bour\b`)
	ctaRe       = regexp.MustCompile(`(?i)\bclick\b|\bsign up\b|\bregister\b|\bdownload\b`)
	jargon      = []string{"paradigm", "leverage", "synergy", "optimize", "utilize"}
	emotional   = []string{"exciting", "amazing", "wonderful", "terrible", "challenging", "inspiring"}
	persuasive  = []string{"proven", "results", "benefit", "advantage", "value", "improve"}
	examples    = []string{"example", "instance", "such as"}
	constraints = []string{"must", "should", "require"}
)

// neutral is the starting point of the open-ended dimensions
const neutral = 5

func scoreSpecificity(data prompt.Data) int {
	score := neutral
	content := strings.ToLower(data.Content)

	if utf8.RuneCountInString(data.SpecificDetails) > 50 {
		score += 2
	}
	if digitRe.MatchString(content) {
		score++
	}
	if containsAny(content, examples...) {
		score++
	}
	if containsAny(content, constraints...) {
		score++
	}
	return clamp(score, 0, 10)
}

func scoreClarity(content string) int {
	score := neutral

	if listRe.MatchString(content) {
		score += 2
	}

	paragraphs := strings.Split(content, "\n\n")
	total := 0
	for _, p := range paragraphs {
		total += utf8.RuneCountInString(p)
	}
	if float64(total)/float64(len(paragraphs)) < 100 {
		score++
	}

	words := strings.Fields(content)
	long := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > 6 {
			long++
		}
	}
	if len(words) == 0 || float64(long)/float64(len(words)) < 0.2 {
		score++
	}

	if !containsAny(strings.ToLower(content), jargon...) {
		score++
	}
	return clamp(score, 0, 10)
}

func scoreEngagement(content string) int {
	score := neutral
	lower := strings.ToLower(content)

	score += min(2, strings.Count(content, "?"))
	if containsAny(lower, "scenario", "imagine", "story") {
		score++
	}
	if containsAny(lower, emotional...) {
		score++
	}
	if pronounRe.MatchString(content) {
		score++
	}
	return clamp(score, 0, 10)
}

func scorePersuasiveness(data prompt.Data) int {
	score := neutral
	lower := strings.ToLower(data.Content)

	if data.Tone == "persuasive" {
		score += 2
	}

	hits := 0
	for _, w := range persuasive {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	score += min(2, hits)

	if containsAny(lower, "testimonial", "review", "expert") {
		score++
	}
	if containsAny(lower, "call to action", "cta") || ctaRe.MatchString(data.Content) {
		score++
	}
	return clamp(score, 0, 10)
}

func scoreCompleteness(data prompt.Data) int {
	score := 3

	for _, present := range []bool{
		data.Title != "",
		utf8.RuneCountInString(data.Content) > 100,
		data.Model != "",
		data.Goal != "",
		data.OutputFormat != "",
		data.Style != "",
		data.Tone != "",
		data.UseRolePlaying && data.Role != "",
		utf8.RuneCountInString(data.SpecificDetails) > 50,
	} {
		if present {
			score++
		}
	}
	return clamp(score, 0, 10)
}
