package strategy

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jahboukie/promptpro/internal/intent"
	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
)

var (
	// ErrInvalidSelection is returned for an unknown content goal or type id
	ErrInvalidSelection = errors.New("invalid content goal or type")

	// ErrNoSuitablePattern is returned when a strategy resolves no pattern
	ErrNoSuitablePattern = errors.New("no suitable prompt pattern found")
)

// Recommendation bundles the patterns, settings and tips for a request
type Recommendation struct {
	Patterns      []pattern.Pattern `json:"recommendedPatterns"`
	Models        []string          `json:"recommendedModels"`
	OutputFormats []string          `json:"recommendedOutputFormats"`
	Tones         []string          `json:"recommendedTones"`
	Styles        []string          `json:"recommendedStyles"`
	Tips          []string          `json:"additionalTips"`
}

// Selector maps goals, content types and free text to prompt strategies
type Selector struct {
	patterns *pattern.Library
	profiles *profile.Registry
	parser   *intent.Parser
	goals    []Goal
	types    []ContentType
}

// NewSelector creates a selector over the built-in goals and content types
func NewSelector(patterns *pattern.Library, profiles *profile.Registry) *Selector {
	return &Selector{
		patterns: patterns,
		profiles: profiles,
		parser:   intent.NewParser(),
		goals:    Goals(),
		types:    ContentTypes(),
	}
}

// Goals returns every content goal in catalog order
func (s *Selector) Goals() []Goal {
	return append([]Goal(nil), s.goals...)
}

// Goal returns the content goal with the given id
func (s *Selector) Goal(id string) (Goal, bool) {
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// ContentTypes returns every content type in catalog order
func (s *Selector) ContentTypes() []ContentType {
	return append([]ContentType(nil), s.types...)
}

// ContentType returns the content type with the given id
func (s *Selector) ContentType(id string) (ContentType, bool) {
	for _, t := range s.types {
		if t.ID == id {
			return t, true
		}
	}
	return ContentType{}, false
}

// Recommend builds the strategy for an explicit goal and content type.
// Every list is the intersection of the goal's and type's picks, or their union when they share nothing.
func (s *Selector) Recommend(goalID, typeID string) (Recommendation, error) {
	goal, ok := s.Goal(goalID)
	if !ok {
		return Recommendation{}, fmt.Errorf("%w: unknown goal %q", ErrInvalidSelection, goalID)
	}
	ct, ok := s.ContentType(typeID)
	if !ok {
		return Recommendation{}, fmt.Errorf("%w: unknown content type %q", ErrInvalidSelection, typeID)
	}

	rec := Recommendation{
		Patterns:      []pattern.Pattern{},
		Models:        commonOrUnion(goal.RecommendedModels, ct.RecommendedModels),
		OutputFormats: commonOrUnion(goal.OutputFormats, ct.OutputFormats),
		Tones:         commonOrUnion(goal.Tones, ct.Tones),
		Styles:        commonOrUnion(goal.Styles, ct.Styles),
	}
	for _, id := range commonOrUnion(goal.RecommendedPatterns, ct.RecommendedPatterns) {
		if p, ok := s.patterns.Get(id); ok {
			rec.Patterns = append(rec.Patterns, p)
		}
	}

	tone := "conversational"
	if len(rec.Tones) > 0 {
		tone = rec.Tones[0]
	}
	patternName := "Blog Post Outline"
	if len(rec.Patterns) > 0 {
		patternName = rec.Patterns[0].Name
	}

	rec.Tips = []string{
		fmt.Sprintf("For %s content with a %s goal, aim for approximately %s.", ct.Name, goal.Name, ct.AverageLength),
		fmt.Sprintf("%s content typically performs best with a %s tone.", ct.Name, tone),
		fmt.Sprintf("Consider using the %s pattern as a starting point.", patternName),
		fmt.Sprintf("%s content often benefits from including specific calls-to-action.", goal.Name),
	}

	return rec, nil
}

// AnalyzeInput picks a goal and content type from free text and recommends a strategy
func (s *Selector) AnalyzeInput(input string) (Recommendation, error) {
	goalID, typeID := s.Classify(input)
	return s.Recommend(goalID, typeID)
}

// Classify resolves the goal and content type ids a free-text request asks for.
// The first catalog entry whose id or name occurs in the input wins.
func (s *Selector) Classify(input string) (goalID, typeID string) {
	if intent.IsPromptEngineering(input) {
		return PromptEngineeringGoalID, PromptEngineeringTypeID
	}

	lower := strings.ToLower(input)

	typeID = DefaultTypeID
	for _, t := range s.types {
		if strings.Contains(lower, t.ID) || strings.Contains(lower, strings.ToLower(t.Name)) {
			typeID = t.ID
			break
		}
	}

	goalID = DefaultGoalID
	for _, g := range s.goals {
		if strings.Contains(lower, g.ID) || strings.Contains(lower, strings.ToLower(g.Name)) {
			goalID = g.ID
			break
		}
	}

	return goalID, typeID
}

// promptEngineeringStrategy is used when a request is about writing prompts for models
func promptEngineeringStrategy(p pattern.Pattern) Recommendation {
	return Recommendation{
		Patterns:      []pattern.Pattern{p},
		Models:        []string{"GPT-4", "Claude 3 Opus"},
		OutputFormats: []string{"paragraph"},
		Tones:         []string{"professional", "technical"},
		Styles:        []string{"technical", "professional"},
		Tips: []string{
			"For prompt engineering content, focus on specific model capabilities and limitations.",
			"Include examples of effective prompts for different use cases.",
			"Consider the unique characteristics of each LLM architecture.",
			"Provide clear guidance on how to test and iterate on prompts.",
		},
	}
}

// RecommendPrompt turns a free-text request into a rendered, model-optimized prompt
func (s *Selector) RecommendPrompt(input, model string) (prompt.Data, error) {
	if model == "" {
		model = prompt.DefaultModel
	}

	var (
		selected pattern.Pattern
		rec      Recommendation
	)
	if intent.IsPromptEngineering(input) {
		p, ok := s.patterns.Get(PromptEngineeringPatternID)
		if !ok {
			return prompt.Data{}, ErrNoSuitablePattern
		}
		selected, rec = p, promptEngineeringStrategy(p)
	} else {
		var err error
		rec, err = s.AnalyzeInput(input)
		if err != nil {
			return prompt.Data{}, err
		}
		if len(rec.Patterns) == 0 {
			return prompt.Data{}, ErrNoSuitablePattern
		}
		selected = rec.Patterns[0]
	}

	parsed := s.parser.Parse(input, selected.Template)

	chosenModel := first(rec.Models)
	if slices.Contains(rec.Models, model) {
		chosenModel = model
	}

	actionVerb := selected.Defaults.ActionVerb
	if actionVerb == "" {
		actionVerb = prompt.DefaultActionVerb
	}

	data := prompt.Data{
		Title:           fmt.Sprintf("%s for %s", selected.Name, input),
		Content:         prompt.Render(selected.Template, parsed.Variables),
		Model:           chosenModel,
		Goal:            prompt.DefaultGoal,
		OutputFormat:    first(rec.OutputFormats),
		Style:           first(rec.Styles),
		Tone:            first(rec.Tones),
		ActionVerb:      actionVerb,
		SpecificDetails: strings.Join(rec.Tips, "\n\n"),
		UseRolePlaying:  selected.Defaults.UseRolePlaying,
		Role:            selected.Defaults.Role,
	}

	return s.profiles.Optimize(data, ""), nil
}

// commonOrUnion returns the items of a also in b, or the deduplicated union when there are none
func commonOrUnion(a, b []string) []string {
	common := []string{}
	for _, item := range a {
		if slices.Contains(b, item) {
			common = append(common, item)
		}
	}
	if len(common) > 0 {
		return common
	}

	union := []string{}
	for _, item := range slices.Concat(a, b) {
		if !slices.Contains(union, item) {
			union = append(union, item)
		}
	}
	return union
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
