package profile

import (
	"fmt"
	"strings"

	"github.com/jahboukie/promptpro/internal/prompt"
)

// Registry is a read-only catalog of model profiles keyed by normalized name
type Registry struct {
	profiles map[string]Profile
	keys     []string
	picker   prompt.Picker
}

// NewRegistry returns the built-in catalog. A nil picker selects uniformly at random.
func NewRegistry(picker prompt.Picker) *Registry {
	if picker == nil {
		picker = prompt.RandomPicker
	}
	return &Registry{
		profiles: builtin(),
		keys:     builtinKeys,
		picker:   picker,
	}
}

// Keys returns the profile keys in catalog order
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Has reports whether key names a profile in the catalog
func (r *Registry) Has(key string) bool {
	_, ok := r.profiles[key]
	return ok
}

// Lookup normalizes a model name and returns its profile, or the default profile
func (r *Registry) Lookup(model string) Profile {
	if p, ok := r.profiles[Normalize(model)]; ok {
		return p
	}
	return r.profiles[DefaultKey]
}

// PublicProfiles returns every profile without its special instructions
func (r *Registry) PublicProfiles() map[string]Public {
	out := make(map[string]Public, len(r.profiles))
	for key, p := range r.profiles {
		out[key] = p.Public()
	}
	return out
}

// Optimize appends model-specific guidance to SpecificDetails.
// targetModel overrides data.Model when non-empty.
func (r *Registry) Optimize(data prompt.Data, targetModel string) prompt.Data {
	model := targetModel
	if model == "" {
		model = data.Model
	}
	p := r.Lookup(model)

	var note strings.Builder
	fmt.Fprintf(&note, "\n\nOptimized for %s:\n", p.Name)
	if data.Goal != "" {
		fmt.Fprintf(&note, "- For %s tasks, %s\n", data.Goal, r.relevantTip(p.OptimizationTips, data.Goal))
	}
	if data.OutputFormat != "" {
		fmt.Fprintf(&note, "- When creating %s content, %s\n", data.OutputFormat, r.relevantTip(p.OptimizationTips, data.OutputFormat))
	}
	fmt.Fprintf(&note, "- %s\n", prompt.Pick(r.picker, p.SpecialInstructions))
	fmt.Fprintf(&note, "- This prompt is optimized for use with: %s\n", strings.Join(p.CompatibleTools, ", "))

	data.AppendDetails(note.String())
	return data
}

// relevantTip returns the first tip mentioning keyword, else a random tip
func (r *Registry) relevantTip(tips []string, keyword string) string {
	keyword = strings.ToLower(keyword)
	for _, tip := range tips {
		if strings.Contains(strings.ToLower(tip), keyword) {
			return tip
		}
	}
	return prompt.Pick(r.picker, tips)
}

// Recommendations returns advisory lines for writing data against its model
func (r *Registry) Recommendations(data prompt.Data) []string {
	p := r.Lookup(data.Model)

	content := strings.ToLower(data.Content)
	details := strings.ToLower(data.SpecificDetails)

	var recs []string

	usesStrengths := false
	for _, s := range p.Strengths {
		s = strings.ToLower(s)
		if strings.Contains(content, s) || strings.Contains(details, s) {
			usesStrengths = true
			break
		}
	}
	if !usesStrengths {
		recs = append(recs, fmt.Sprintf("Consider leveraging %s's strengths: %s", p.Name, strings.Join(p.Strengths, ", ")))
	}

	if data.OutputFormat != "" {
		format := strings.ToLower(data.OutputFormat)
		preferred := false
		for _, f := range p.PreferredFormats {
			if strings.Contains(format, strings.ToLower(f)) {
				preferred = true
				break
			}
		}
		if !preferred {
			recs = append(recs, fmt.Sprintf("%s works best with these formats: %s", p.Name, strings.Join(p.PreferredFormats, ", ")))
		}
	}

	for _, tip := range p.OptimizationTips {
		recs = append(recs, fmt.Sprintf("For %s: %s", p.Name, tip))
	}

	recs = append(recs, fmt.Sprintf("This prompt works best with: %s", strings.Join(p.CompatibleTools, ", ")))

	top := p.Strengths
	if len(top) > 3 {
		top = top[:3]
	}
	recs = append(recs, fmt.Sprintf("%s excels at: %s", p.Name, strings.Join(top, ", ")))
	recs = append(recs, fmt.Sprintf("For %s, consider using %s format", p.Name, prompt.Pick(r.picker, p.PreferredFormats)))

	return recs
}
