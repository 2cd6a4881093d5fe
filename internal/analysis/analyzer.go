package analysis

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
)

// Result is the quality report for one prompt
type Result struct {
	Score                    int      `json:"score"`
	Strengths                []string `json:"strengths"`
	Weaknesses               []string `json:"weaknesses"`
	Improvements             []string `json:"improvements"`
	ModelRecommendations     []string `json:"modelRecommendations"`
	ContentRecommendations   []string `json:"contentRecommendations"`
	StructureRecommendations []string `json:"structureRecommendations"`
	SEORecommendations       []string `json:"seoRecommendations"`
	ReadabilityScore         float64  `json:"readabilityScore"`
	Clarity                  int      `json:"clarity"`
	Specificity              int      `json:"specificity"`
	Engagement               int      `json:"engagement"`
	Persuasiveness           int      `json:"persuasiveness"`
	Completeness             int      `json:"completeness"`
}

func newResult() Result {
	return Result{
		Strengths:                []string{},
		Weaknesses:               []string{},
		Improvements:             []string{},
		ModelRecommendations:     []string{},
		ContentRecommendations:   []string{},
		StructureRecommendations: []string{},
		SEORecommendations:       []string{},
	}
}

// clone returns a copy that shares no slices with r
func (r Result) clone() Result {
	r.Strengths = slices.Clone(r.Strengths)
	r.Weaknesses = slices.Clone(r.Weaknesses)
	r.Improvements = slices.Clone(r.Improvements)
	r.ModelRecommendations = slices.Clone(r.ModelRecommendations)
	r.ContentRecommendations = slices.Clone(r.ContentRecommendations)
	r.StructureRecommendations = slices.Clone(r.StructureRecommendations)
	r.SEORecommendations = slices.Clone(r.SEORecommendations)
	return r
}

// MinContentLength is the shortest content that gets a full analysis
const MinContentLength = 10

// ShortContentScore is the fixed score for content under MinContentLength
const ShortContentScore = 10

// Analyzer scores prompts with fixed heuristics. It is safe for concurrent use.
type Analyzer struct {
	profiles *profile.Registry
}

// New creates an analyzer that draws model advice from profiles
func New(profiles *profile.Registry) *Analyzer {
	return &Analyzer{profiles: profiles}
}

// Analyze scores data across six dimensions and collects advice. It never fails.
func (a *Analyzer) Analyze(data prompt.Data) Result {
	result := newResult()

	length := utf8.RuneCountInString(data.Content)
	if length < MinContentLength {
		result.Weaknesses = append(result.Weaknesses, "Prompt content is too short or empty")
		result.Improvements = append(result.Improvements, "Add detailed content to your prompt")
		result.Score = ShortContentScore
		return result
	}

	clarity, specificity := 0, 0

	switch {
	case length < 50:
		result.weakness("Prompt content is very short", "Expand your prompt with more details and context")
		specificity -= 2
	case length > 500:
		result.Strengths = append(result.Strengths, "Prompt has substantial content")
		specificity += 2
	}

	if utf8.RuneCountInString(data.Title) < 3 {
		result.weakness("Missing or very short title", "Add a descriptive title that summarizes the prompt purpose")
		clarity--
	} else {
		result.Strengths = append(result.Strengths, "Prompt has a title")
		clarity++
	}

	s := scoreSpecificity(data)
	specificity += s
	result.grade(s, "Prompt is highly specific and detailed",
		"Prompt lacks specificity", "Add more specific details, examples, or constraints")

	c := scoreClarity(data.Content)
	clarity += c
	result.grade(c, "Prompt is clear and well-structured",
		"Prompt could be clearer", "Use simpler language and more structured formatting")

	result.Engagement = scoreEngagement(data.Content)
	result.grade(result.Engagement, "Prompt is engaging and interesting",
		"Prompt could be more engaging", "Add more engaging elements like questions or scenarios")

	result.Persuasiveness = scorePersuasiveness(data)

	result.Completeness = scoreCompleteness(data)
	result.grade(result.Completeness, "Prompt is comprehensive and complete",
		"Prompt is missing important elements", "Consider adding more context, constraints, or examples")

	result.ReadabilityScore = Readability(data.Content)
	switch {
	case result.ReadabilityScore > 70:
		result.Strengths = append(result.Strengths, "Prompt has good readability")
	case result.ReadabilityScore < 40:
		result.weakness("Prompt readability could be improved", "Use shorter sentences and simpler language")
	}

	result.Clarity = clamp(clarity, 0, 10)
	result.Specificity = clamp(specificity, 0, 10)

	if a.profiles != nil {
		result.ModelRecommendations = a.profiles.Recommendations(data)
	}
	result.StructureRecommendations = structureAdvice(data.Content)
	result.ContentRecommendations = contentAdvice(data)
	if mentionsSEO(data.Content) {
		result.SEORecommendations = seoAdvice(data.Content)
	}

	for _, rec := range head(result.ModelRecommendations, 2) {
		result.improve(rec)
	}
	for _, rec := range head(result.StructureRecommendations, 1) {
		result.improve(rec)
	}
	for _, rec := range head(result.ContentRecommendations, 1) {
		result.improve(rec)
	}

	result.Score = overall(result)
	return result
}

// grade records a strength above 7 or a weakness with its fix below 4
func (r *Result) grade(score int, strength, weakness, improvement string) {
	switch {
	case score > 7:
		r.Strengths = append(r.Strengths, strength)
	case score < 4:
		r.weakness(weakness, improvement)
	}
}

func (r *Result) weakness(weakness, improvement string) {
	r.Weaknesses = append(r.Weaknesses, weakness)
	r.Improvements = append(r.Improvements, improvement)
}

// improve adds an improvement unless it is already listed
func (r *Result) improve(s string) {
	if !slices.Contains(r.Improvements, s) {
		r.Improvements = append(r.Improvements, s)
	}
}

// Weights of the overall score; readability is on a 0-100 scale
const (
	clarityWeight        = 2.0
	specificityWeight    = 2.0
	engagementWeight     = 1.5
	persuasivenessWeight = 1.5
	completenessWeight   = 2.0
	readabilityWeight    = 0.1
)

func overall(r Result) int {
	sum := float64(r.Clarity)*clarityWeight +
		float64(r.Specificity)*specificityWeight +
		float64(r.Engagement)*engagementWeight +
		float64(r.Persuasiveness)*persuasivenessWeight +
		float64(r.Completeness)*completenessWeight +
		r.ReadabilityScore*readabilityWeight
	total := clarityWeight + specificityWeight + engagementWeight +
		persuasivenessWeight + completenessWeight + readabilityWeight

	return clamp(int(math.Round(sum/total*10)), 0, 100)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
