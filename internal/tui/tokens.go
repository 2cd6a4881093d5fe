package tui

import (
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/writer"
)

// measure updates the token gauge for the current prompt against its target model
func (a *App) measure(data prompt.Data) {
	text := writer.Compose(data)
	a.state.tokens = a.countTokens(data.Model, text)
	a.state.contextLimit = 0
	if a.state.engine != nil && a.state.engine.Profiles != nil {
		a.state.contextLimit = a.state.engine.Profiles.Lookup(data.Model).ContextWindow
	}
}

// contextUsage returns the gauge as a fraction of the context window
func (a *App) contextUsage() float64 {
	if a.state.contextLimit <= 0 {
		return 0
	}
	return float64(a.state.tokens) / float64(a.state.contextLimit)
}
