package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderPatterns() string {
	var b strings.Builder
	boxWidth := min(70, a.width-4)

	title := styleLogo.Render("Prompt Patterns")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	desc := styleSubtitle.Render("Templates the recommender picks from")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	if a.state.engine == nil || a.state.engine.Patterns.Count() == 0 {
		empty := styleBox.
			Width(boxWidth).
			Foreground(colorMuted).
			Render("No patterns loaded.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
	} else {
		patterns := a.state.engine.Patterns.All()
		visible := max((a.height-12)/3, 3)
		start := min(a.state.listOffset, len(patterns)-1)
		end := min(start+visible, len(patterns))

		var list strings.Builder
		for _, p := range patterns[start:end] {
			name := lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(p.ID)
			fmt.Fprintf(&list, "%s  %s  [%s, %s]\n", name, p.Name, p.Category, p.Difficulty)
			if p.Description != "" {
				fmt.Fprintf(&list, "  %s\n", truncate(p.Description, boxWidth-6))
			}
			list.WriteString("\n")
		}

		listBox := styleBox.
			Width(boxWidth).
			BorderForeground(colorPrimary).
			Render(strings.TrimSpace(list.String()))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
		b.WriteString("\n")

		pos := styleSubtitle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(patterns)))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, pos))
	}
	b.WriteString("\n\n")

	usage := styleSubtitle.Render("Save your own with /save <id> after a recommendation")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, usage))
	b.WriteString("\n\n")

	statusBar := styleStatusBar.Render("[j/k] Scroll  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

func (a *App) renderModels() string {
	var b strings.Builder
	boxWidth := min(70, a.width-4)

	title := styleLogo.Render("Target Models")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	if a.state.engine != nil {
		for _, key := range a.state.engine.Profiles.Keys() {
			p := a.state.engine.Profiles.Lookup(key)
			name := lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(fmt.Sprintf("%-16s", p.Name))
			lines = append(lines, fmt.Sprintf("%s %-9s %7d ctx", name, p.Provider, p.ContextWindow))
			if len(p.Strengths) > 0 {
				lines = append(lines, styleSubtitle.Render("  "+truncate(strings.Join(p.Strengths, ", "), boxWidth-6)))
			}
		}
	}

	modelsBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, modelsBox))
	b.WriteString("\n\n")

	statusBar := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
