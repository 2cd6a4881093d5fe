package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahboukie/promptpro/internal/llm"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	err := a.state.processingError
	if err == nil {
		err = a.state.engineError
	}
	errMsg := "Unknown error"
	if err != nil {
		errMsg = err.Error()
	}

	errBox := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(wrapText(errMsg, min(56, a.width-8)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(err); len(suggestions) > 0 {
		suggBox := styleBox.
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[r] Retry  [s] Settings  [n] New  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor returns hints for recovering from err
func suggestionsFor(err error) []string {
	if err == nil {
		return nil
	}
	if errors.Is(err, llm.ErrProviderUnavailable) {
		return []string{
			"The prompt engineer model has no API key configured",
			"Press [s] to add a key, or set OPENAI_API_KEY",
		}
	}

	errLower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "401") || strings.Contains(errLower, "unauthorized"):
		return []string{
			"Check your API key in ~/.config/promptpro/config.yaml",
			"Or press [s] to open settings",
		}
	case strings.Contains(errLower, "ollama"):
		return []string{
			"Make sure Ollama is running: ollama serve",
			"Or switch to a cloud provider in settings",
		}
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") || strings.Contains(errLower, "timeout") || strings.Contains(errLower, "deadline"):
		return []string{
			"Check your internet connection",
			"Or try Ollama for offline mode",
		}
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429"):
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and press [r] to retry",
		}
	}
	return nil
}
