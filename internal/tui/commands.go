package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
)

var (
	errNoEngine  = errors.New("no engine configured")
	errNoPrompt  = errors.New("no prompt yet: describe the content you need first")
	errNoSaveDir = errors.New("no patterns directory configured")
)

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()
	a.state.notice = ""

	if strings.HasPrefix(input, "/") {
		return a.handleCommand(input)
	}

	return a.recommend(input)
}

// handleCommand runs a slash command
func (a *App) handleCommand(input string) tea.Cmd {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "/help", "/h":
		a.view = viewHelp
	case "/settings", "/s":
		a.state.settingsMode = ""
		a.view = viewSettings
	case "/patterns", "/p":
		a.state.listOffset = 0
		a.view = viewPatterns
	case "/models", "/m":
		a.view = viewModels
	case "/enhance", "/e":
		if a.state.request == "" {
			a.state.notice = errNoPrompt.Error()
			return nil
		}
		return a.startEnhance()
	case "/save":
		a.savePattern(arg)
	case "/new", "/n":
		a.state.hasPrompt = false
		a.state.request = ""
		a.view = viewWelcome
	case "/quit", "/q":
		a.quitting = true
		return tea.Quit
	default:
		a.state.notice = fmt.Sprintf("unknown command %s, try /help", name)
	}
	return nil
}

// recommend turns a request into a recommended prompt and shows it with its score
func (a *App) recommend(input string) tea.Cmd {
	data, err := a.state.engine.Selector.RecommendPrompt(input, "")
	if err != nil {
		a.state.processingError = err
		a.view = viewError
		return nil
	}

	a.state.request = input
	a.setPrompt(data)
	a.view = viewResult
	return nil
}

func (a *App) startEnhance() tea.Cmd {
	a.state.processing = true
	a.state.processingError = nil
	a.state.progress = nil
	a.view = viewProcessing

	return a.enhance(pipeline.Request{
		UserRequest: a.state.request,
		TargetLLM:   a.state.config.Pipeline.DefaultTargetLLM,
		UseCase:     a.state.config.Pipeline.DefaultUseCase,
	})
}

// savePattern stores the current prompt as a custom pattern
func (a *App) savePattern(id string) {
	if !a.state.hasPrompt {
		a.state.notice = errNoPrompt.Error()
		return
	}
	if a.patternsDir == "" {
		a.state.notice = errNoSaveDir.Error()
		return
	}

	data := a.state.current
	if id == "" {
		id = data.Title
	}

	p := pattern.Pattern{
		ID:               id,
		Name:             data.Title,
		Description:      "Saved from request: " + truncate(a.state.request, 80),
		Category:         "custom",
		Template:         data.Content,
		Defaults:         data,
		Difficulty:       pattern.Intermediate,
		Effectiveness:    a.state.analysis.Score,
		CompatibleModels: []string{data.Model},
	}
	p.Defaults.Content = ""
	p.Defaults.SpecificDetails = ""

	path, err := pattern.Save(a.patternsDir, p)
	if err != nil {
		a.state.notice = "save failed: " + err.Error()
		return
	}
	a.state.notice = "saved " + path
}
