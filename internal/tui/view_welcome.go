package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
 ___                   _   ___
| _ \_ _ ___ _ __  _ __| |_| _ \_ _ ___
|  _/ '_/ _ \ '  \| '_ \  _|  _/ '_/ _ \
|_| |_| \___/_|_|_| .__/\__|_| |_| \___/
                  |_|
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)
	subtitle := styleSubtitle.Render("Prompt engineering for content marketing")

	var status string
	switch {
	case a.state.engineError != nil:
		status = lipgloss.NewStyle().Foreground(colorError).Render("Engine unavailable: " + a.state.engineError.Error())
	case a.state.engine == nil:
		status = styleSubtitle.Render("Loading...")
	case len(a.state.engine.Families) == 0:
		status = lipgloss.NewStyle().Foreground(colorWarning).Render("No provider configured, /enhance is disabled. See /settings")
	default:
		status = styleSubtitle.Render("Providers: " + strings.Join(a.state.engine.Families, ", "))
	}

	boxWidth := min(70, a.width-4)
	a.state.input.Placeholder = "Describe the content you need, or /help..."
	inputBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())

	parts := []string{logoRendered, subtitle, "", status, "", inputBox}
	if a.state.notice != "" {
		parts = append(parts, styleSubtitle.Render(a.state.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusBar := styleStatusBar.Render("[Enter] Recommend  [Esc] Quit  /help")
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
