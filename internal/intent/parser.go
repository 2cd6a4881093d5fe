package intent

import (
	"strings"

	"github.com/jahboukie/promptpro/internal/prompt"
)

// Parser fills template variables from free text with an ordered rule chain
type Parser struct {
	rules []Rule
}

// NewParser creates a parser. With no rules it uses DefaultRules.
func NewParser(rules ...Rule) *Parser {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Parser{rules: rules}
}

// Parse builds an intent for input, extracting only the variables template uses.
// Variables no rule covers are left for the renderer's bracket fallback.
func (p *Parser) Parse(input, template string) *Intent {
	in := New(input)

	wanted := make(map[string]bool)
	for _, name := range prompt.Placeholders(template) {
		wanted[name] = true
	}

	for _, rule := range p.rules {
		if !wanted[rule.Name] {
			continue
		}
		if _, done := in.Variables[rule.Name]; done {
			continue
		}
		in.Variables[rule.Name] = rule.Extract(input, in.Variables)
	}

	// The model-analysis template wants the bare subject, not the request sentence
	if topic, ok := in.Variables["topic"]; ok && strings.Contains(template, analysisBlock) {
		in.Variables["topic"] = strings.TrimSpace(topicLeadIn.ReplaceAllString(topic, ""))
	}

	return in
}
