package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /enhance, /e    Rewrite the current request with the prompt engineer",
		"  /save <id>      Save the current prompt as a custom pattern",
		"  /patterns, /p   Browse prompt patterns",
		"  /models, /m     Show target model profiles",
		"  /settings, /s   Providers, models and API keys",
		"  /new, /n        Start over",
		"  /help, /h       Show this help",
		"  /quit, /q       Quit",
		"",
		"  Anything else is a content request, e.g.",
		"  \"Write a blog post about remote work for lead generation\"",
	}

	commandsBox := styleBox.
		Width(min(72, a.width-4)).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Esc            Go back, quit from the top",
		"  Ctrl+C         Quit",
		"  Enter          Submit input",
		"  Ctrl+E         Enhance the current prompt",
		"  ?              This help (empty input)",
		"  j/k            Scroll lists",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.
		Width(min(72, a.width-4)).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
