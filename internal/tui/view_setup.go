package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahboukie/promptpro/internal/config"
)

func (a *App) renderSetup() string {
	switch a.state.setupStep {
	case 0:
		return a.renderProviderSelection()
	case 1:
		return a.renderSecretEntry("Enter your %s API key:", a.state.apiKeyInput.View())
	case 2:
		return a.renderSecretEntry("Enter the %s base URL:", a.state.baseURLInput.View())
	default:
		return ""
	}
}

func (a *App) renderProviderSelection() string {
	var b strings.Builder

	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render("Welcome! Choose the provider for generation and prompt rewriting:")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var providerLines []string
	for i, p := range config.Providers {
		if i == a.state.selectedProvider {
			providerLines = append(providerLines, lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("> [x] %-10s %s", p.Name, p.Description)))
		} else {
			providerLines = append(providerLines, lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("  [ ] %-10s %s", p.Name, p.Description)))
		}
	}

	providerBox := styleBox.
		Width(min(72, a.width-4)).
		Render(strings.Join(providerLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, providerBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSecretEntry(prompt, field string) string {
	var b strings.Builder

	provider := config.GetProvider(a.state.config.Provider)
	name := a.state.config.Provider
	if provider != nil {
		name = provider.Name
	}

	header := styleLogo.Render(logo)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(fmt.Sprintf(prompt, name))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if provider != nil && provider.SignupURL != "" && a.state.setupStep == 1 {
		link := styleSubtitle.Render(fmt.Sprintf("Get one at: %s", provider.SignupURL))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, link))
		b.WriteString("\n\n")
	}

	inputBox := styleBox.
		Width(60).
		BorderForeground(colorSecondary).
		Render(field)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Enter] Continue  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
