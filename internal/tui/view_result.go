package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder
	boxWidth := min(76, a.width-4)
	data := a.state.current
	r := a.state.analysis

	title := styleTitle.Render(truncate(data.Title, boxWidth))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	meta := styleSubtitle.Render(fmt.Sprintf("%s  |  %s  |  %s tone, %s style", data.Model, data.OutputFormat, data.Tone, data.Style))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	// Prompt body, cut to fit the screen
	maxLines := max(a.height-24, 5)
	lines := strings.Split(wrapText(data.Content, boxWidth-4), "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines-1], styleSubtitle.Render(fmt.Sprintf("... %d more lines", len(lines)-maxLines+1)))
	}
	promptBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, promptBox))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderScore(boxWidth)))
	b.WriteString("\n\n")

	a.state.input.Placeholder = "New request, /enhance, /save <id>..."
	inputBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n")

	if a.state.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(a.state.notice)))
		b.WriteString("\n")
	}

	status := styleStatusBar.Render(fmt.Sprintf("score %d/100  [Enter] Submit  [Ctrl+E] Enhance  /save  [Esc] Back", r.Score))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// renderScore shows the overall score, the five dimensions and the token gauge
func (a *App) renderScore(width int) string {
	r := a.state.analysis

	dims := []struct {
		name  string
		value int
	}{
		{"Clarity", r.Clarity},
		{"Specificity", r.Specificity},
		{"Engagement", r.Engagement},
		{"Persuasion", r.Persuasiveness},
		{"Completeness", r.Completeness},
	}

	var lines []string
	overall := lipgloss.NewStyle().Foreground(scoreColor(r.Score)).Bold(true).
		Render(fmt.Sprintf("Quality %d/100", r.Score))
	lines = append(lines, fmt.Sprintf("%s   readability %.0f", overall, r.ReadabilityScore))

	for _, d := range dims {
		lines = append(lines, fmt.Sprintf("%-13s %s %3d", d.name, bar(float64(d.value)/100, 24, scoreColor(d.value)), d.value))
	}

	if a.state.contextLimit > 0 {
		lines = append(lines, fmt.Sprintf("%-13s %s %d/%d tokens", "Context", bar(a.contextUsage(), 24, colorSecondary), a.state.tokens, a.state.contextLimit))
	}

	if len(r.Improvements) > 0 {
		lines = append(lines, "", "Try: "+truncate(r.Improvements[0], width-10))
	}

	return styleBox.Width(width).Render(strings.Join(lines, "\n"))
}
