package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahboukie/promptpro/internal/pipeline"
)

var processingStages = []pipeline.Stage{
	pipeline.StageSelecting,
	pipeline.StageOptimizing,
	pipeline.StageAnalyzing,
	pipeline.StageEnhancing,
}

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := styleTitle.Render("Engineering your prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if a.state.request != "" {
		asked := styleSubtitle.Render("> " + truncate(a.state.request, 55))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
		b.WriteString("\n\n")
	}

	current := pipeline.StageSelecting
	if a.state.progress != nil {
		current = a.state.progress.Stage
	}

	var stageLines []string
	for _, stage := range processingStages {
		var icon string
		var style lipgloss.Style

		switch {
		case stage < current:
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		case stage == current:
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		default:
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		stageLines = append(stageLines, style.Render(fmt.Sprintf("  %s  %-12s", icon, stage)))
	}

	stagesBox := styleBox.
		Width(min(60, a.width-4)).
		Render(strings.Join(stageLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, stagesBox))
	b.WriteString("\n\n")

	if a.state.progress != nil && a.state.progress.Message != "" {
		msg := styleSubtitle.Render(truncate(a.state.progress.Message, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
	}

	return a.centerVertically(b.String())
}
