package pattern

import (
	"fmt"
	"strings"

	"github.com/jahboukie/promptpro/internal/prompt"
)

// Library is an immutable, ordered pattern catalog
type Library struct {
	patterns []Pattern
	byID     map[string]int
}

// NewLibrary builds a library from patterns in the given order.
// A pattern whose id is empty or already present is skipped.
func NewLibrary(patterns ...[]Pattern) *Library {
	lib := &Library{byID: make(map[string]int)}
	for _, group := range patterns {
		for _, p := range group {
			if p.ID == "" {
				continue
			}
			if _, dup := lib.byID[p.ID]; dup {
				continue
			}
			lib.byID[p.ID] = len(lib.patterns)
			lib.patterns = append(lib.patterns, p)
		}
	}
	return lib
}

// All returns every pattern in catalog order
func (l *Library) All() []Pattern {
	if l == nil {
		return nil
	}
	return append([]Pattern(nil), l.patterns...)
}

// Count returns the number of patterns
func (l *Library) Count() int {
	if l == nil {
		return 0
	}
	return len(l.patterns)
}

// Get returns the pattern with the given id
func (l *Library) Get(id string) (Pattern, bool) {
	if l == nil {
		return Pattern{}, false
	}
	i, ok := l.byID[id]
	if !ok {
		return Pattern{}, false
	}
	return l.patterns[i], true
}

// ByCategory returns patterns whose category equals category
func (l *Library) ByCategory(category string) []Pattern {
	return l.filter(func(p *Pattern) bool { return p.Category == category })
}

// ByContentType returns patterns listing the content type
func (l *Library) ByContentType(contentType string) []Pattern {
	return l.filter(func(p *Pattern) bool { return p.HasContentType(contentType) })
}

// ByGoal returns patterns listing the marketing goal
func (l *Library) ByGoal(goal string) []Pattern {
	return l.filter(func(p *Pattern) bool { return p.HasGoal(goal) })
}

func (l *Library) filter(keep func(*Pattern) bool) []Pattern {
	result := []Pattern{}
	if l == nil {
		return result
	}
	for i := range l.patterns {
		if keep(&l.patterns[i]) {
			result = append(result, l.patterns[i])
		}
	}
	return result
}

// Apply renders a pattern with vars into a new prompt seeded from the pattern defaults.
// SpecificDetails is set to the pattern's best practices.
func (l *Library) Apply(id string, vars map[string]string) (prompt.Data, error) {
	p, ok := l.Get(id)
	if !ok {
		return prompt.Data{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	data := prompt.Data{
		Model:          p.Defaults.Model,
		Goal:           p.Defaults.Goal,
		OutputFormat:   p.Defaults.OutputFormat,
		Style:          p.Defaults.Style,
		Tone:           p.Defaults.Tone,
		ActionVerb:     p.Defaults.ActionVerb,
		UseRolePlaying: p.Defaults.UseRolePlaying,
		Role:           p.Defaults.Role,
	}.WithDefaults()

	data.Title = p.Name
	data.Content = prompt.Render(p.Template, vars)
	data.SpecificDetails = BestPracticesNote(p.BestPractices)

	return data, nil
}

// BestPracticesNote renders best practices as the bulleted details block
func BestPracticesNote(practices []string) string {
	var b strings.Builder
	b.WriteString("Best practices for this pattern:\n")
	for i, practice := range practices {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(practice)
	}
	return b.String()
}
