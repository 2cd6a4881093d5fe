package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jahboukie/promptpro/internal/config"
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	cfg := a.state.config

	switch a.state.settingsMode {
	case "":
		switch msg.String() {
		case "p":
			a.state.settingsMode = "provider"
			a.state.settingsSelected = 0
		case "m":
			if config.GetProvider(cfg.Provider) != nil {
				a.state.settingsMode = "model"
				a.state.settingsSelected = 0
			}
		case "k":
			if info := config.GetProvider(cfg.Provider); info != nil && info.NeedsAPIKey {
				a.state.settingsMode = "apikey"
				a.state.apiKeyInput.Reset()
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			}
		case "r":
			a.state.needsSetup = true
			a.state.setupStep = 0
			a.view = viewSetup
		}

	case "provider":
		switch msg.String() {
		case "up", "k":
			if a.state.settingsSelected > 0 {
				a.state.settingsSelected--
			}
		case "down", "j":
			if a.state.settingsSelected < len(config.Providers)-1 {
				a.state.settingsSelected++
			}
		case "enter":
			cfg.Provider = config.Providers[a.state.settingsSelected].ID
			a.state.settingsMode = ""
			return a.saveSettings()
		}

	case "model":
		info := config.GetProvider(cfg.Provider)
		switch msg.String() {
		case "up", "k":
			if a.state.settingsSelected > 0 {
				a.state.settingsSelected--
			}
		case "down", "j":
			if a.state.settingsSelected < len(info.Models)-1 {
				a.state.settingsSelected++
			}
		case "enter":
			pc := cfg.ProviderSettings(info.ID)
			pc.Model = info.Models[a.state.settingsSelected]
			_ = cfg.SetProvider(info.ID, pc)
			a.state.settingsMode = ""
			return a.saveSettings()
		}

	case "apikey":
		if msg.String() == "enter" {
			pc := cfg.ProviderSettings(cfg.Provider)
			pc.APIKey = a.state.apiKeyInput.Value()
			_ = cfg.SetProvider(cfg.Provider, pc)
			a.state.apiKeyInput.Reset()
			a.state.apiKeyInput.Blur()
			a.state.settingsMode = ""
			return a.saveSettings()
		}
	}

	return nil
}

// saveSettings writes the config and rebuilds the engine so new providers take effect
func (a *App) saveSettings() tea.Cmd {
	cfg := a.state.config
	save := func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return nil
	}
	return tea.Sequence(save, a.buildEngine())
}

func (a *App) renderSettings() string {
	switch a.state.settingsMode {
	case "provider":
		return a.renderSettingsProvider()
	case "model":
		return a.renderSettingsModel()
	case "apikey":
		return a.renderSettingsAPIKey()
	default:
		return a.renderSettingsMain()
	}
}

// maskKey hides all but the ends of an API key
func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}

func (a *App) renderSettingsMain() string {
	var b strings.Builder
	cfg := a.state.config

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	providerName := cfg.Provider
	if info := config.GetProvider(cfg.Provider); info != nil {
		providerName = info.Name
	}
	pc := cfg.ProviderSettings(cfg.Provider)

	configLines := []string{
		fmt.Sprintf("  Default provider: %s", providerName),
		fmt.Sprintf("  Model:            %s", pc.Model),
		fmt.Sprintf("  API Key:          %s", maskKey(pc.APIKey)),
		"",
		fmt.Sprintf("  Engineer model:   %s", cfg.Pipeline.EngineerModel),
		fmt.Sprintf("  Enhance below:    %d/100", cfg.Pipeline.EnhanceThreshold),
		fmt.Sprintf("  Target LLM:       %s", cfg.Pipeline.DefaultTargetLLM),
		"",
		"  Configured providers:",
	}
	for _, p := range config.Providers {
		mark := "[ ]"
		if cfg.Configured(p.ID) {
			mark = "[x]"
		}
		configLines = append(configLines, fmt.Sprintf("    %s %s", mark, p.Name))
	}

	configBox := styleBox.
		Width(56).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	actions := []string{
		"  [p] Change default provider",
		"  [m] Change model",
		"  [k] Update API key",
		"  [r] Rerun setup",
	}
	actionsBox := styleBox.
		Width(56).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsProvider() string {
	var b strings.Builder

	title := styleTitle.Render("Select Provider")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string
	for i, p := range config.Providers {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, p.Name)
		if i == a.state.settingsSelected {
			line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}

	listBox := styleBox.
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsModel() string {
	var b strings.Builder

	title := styleTitle.Render("Select Model")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	provider := config.GetProvider(a.state.config.Provider)
	if provider == nil {
		desc := styleSubtitle.Render("No provider selected")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
		return a.centerVertically(b.String())
	}

	providerDesc := styleSubtitle.Render(fmt.Sprintf("Provider: %s", provider.Name))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, providerDesc))
	b.WriteString("\n\n")

	currentModel := a.state.config.ProviderSettings(provider.ID).Model
	var lines []string
	for i, model := range provider.Models {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		current := ""
		if model == currentModel {
			current = " (current)"
		}
		line := fmt.Sprintf("%s%s%s", cursor, model, current)
		if i == a.state.settingsSelected {
			line = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}

	listBox := styleBox.
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsAPIKey() string {
	var b strings.Builder

	title := styleTitle.Render("Update API Key")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	desc := styleSubtitle.Render("Enter your new API key")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	inputBox := styleBox.
		Width(50).
		BorderForeground(colorPrimary).
		Render(a.state.apiKeyInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Enter] Save  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
