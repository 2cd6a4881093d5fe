package pattern

import (
	"errors"
	"slices"

	"github.com/jahboukie/promptpro/internal/prompt"
)

// ErrNotFound is returned when a pattern id is not in the library
var ErrNotFound = errors.New("pattern not found")

// Difficulty grades how much prompt-writing experience a pattern assumes
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Pattern is a reusable prompt template with matching metadata.
// Patterns are shared by reference and must not be modified after the library is built.
type Pattern struct {
	ID               string      `json:"id" yaml:"id"`
	Name             string      `json:"name" yaml:"name"`
	Description      string      `json:"description" yaml:"description"`
	Category         string      `json:"category" yaml:"category"`
	Template         string      `json:"template" yaml:"-"`
	Defaults         prompt.Data `json:"defaultParams" yaml:"defaults"`
	ExampleUses      []string    `json:"exampleUses" yaml:"example_uses"`
	BestPractices    []string    `json:"bestPractices" yaml:"best_practices"`
	CompatibleModels []string    `json:"compatibleModels" yaml:"compatible_models"`
	ContentTypes     []string    `json:"contentTypes" yaml:"content_types"`
	MarketingGoals   []string    `json:"marketingGoals" yaml:"marketing_goals"`
	Difficulty       Difficulty  `json:"difficulty" yaml:"difficulty"`
	Effectiveness    int         `json:"effectiveness" yaml:"effectiveness"`
	Tags             []string    `json:"tags" yaml:"tags"`
}

// HasContentType reports whether the pattern lists the content type
func (p *Pattern) HasContentType(contentType string) bool {
	return slices.Contains(p.ContentTypes, contentType)
}

// HasGoal reports whether the pattern lists the marketing goal
func (p *Pattern) HasGoal(goal string) bool {
	return slices.Contains(p.MarketingGoals, goal)
}
