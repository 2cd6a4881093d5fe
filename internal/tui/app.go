package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahboukie/promptpro/internal/config"
	"github.com/jahboukie/promptpro/internal/llm"
	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/strategy"
)

const enhanceTimeout = 3 * time.Minute

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewProcessing
	viewResult
	viewPatterns
	viewModels
	viewSettings
	viewHelp
	viewError
)

// Engine is the set of services the UI drives
type Engine struct {
	Patterns     *pattern.Library
	Profiles     *profile.Registry
	Selector     *strategy.Selector
	Scorer       pipeline.Scorer
	Orchestrator *pipeline.Orchestrator
	// Families lists the generation providers that have credentials
	Families []string
}

// EngineFactory builds an engine from a config. It is called again after setup
// or settings change the providers.
type EngineFactory func(cfg *config.Config) (*Engine, error)

// Options configure the App
type Options struct {
	Config *config.Config
	// NeedsSetup starts the provider wizard
	NeedsSetup  bool
	Factory     EngineFactory
	PatternsDir string
	// CountTokens defaults to llm.CountTokens
	CountTokens func(model, text string) int
}

type App struct {
	width       int
	height      int
	view        view
	state       *state
	quitting    bool
	program     *tea.Program
	factory     EngineFactory
	patternsDir string
	countTokens func(model, text string) int
}

func NewApp(opts Options) *App {
	s := newState()
	s.config = opts.Config
	if s.config == nil {
		s.config = config.DefaultConfig()
	}
	s.needsSetup = opts.NeedsSetup

	count := opts.CountTokens
	if count == nil {
		count = llm.CountTokens
	}

	return &App{
		view:        viewWelcome,
		state:       s,
		factory:     opts.Factory,
		patternsDir: opts.PatternsDir,
		countTokens: count,
	}
}

// SetProgram lets pipeline progress reach the running program
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.buildEngine(),
	)
}

func (a *App) buildEngine() tea.Cmd {
	factory := a.factory
	cfg := a.state.config
	return func() tea.Msg {
		if factory == nil {
			return engineErrorMsg{errNoEngine}
		}
		engine, err := factory(cfg)
		if err != nil {
			return engineErrorMsg{err}
		}
		return engineReadyMsg{engine}
	}
}

// enhance runs the orchestrator for the current request off the UI goroutine
func (a *App) enhance(req pipeline.Request) tea.Cmd {
	orch := a.state.engine.Orchestrator
	program := a.program
	orch.SetProgressCallback(func(p pipeline.Progress) {
		if program != nil {
			program.Send(progressMsg{p})
		}
	})

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), enhanceTimeout)
		defer cancel()

		data, err := orch.GenerateOptimal(ctx, req)
		if err != nil {
			return enhanceErrorMsg{err}
		}
		return enhanceDoneMsg{data}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if a.quitting {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.setupStep = 0
		a.view = viewWelcome
		return a, a.buildEngine()

	case setupErrorMsg:
		a.state.processingError = msg.error
		a.view = viewError
		return a, nil

	case engineReadyMsg:
		a.state.engine = msg.engine
		a.state.engineError = nil
		a.state.input.Focus()
		return a, textinput.Blink

	case engineErrorMsg:
		a.state.engineError = msg.error
		a.state.processingError = msg.error
		a.view = viewError
		return a, nil

	case progressMsg:
		p := msg.progress
		a.state.progress = &p
		return a, nil

	case enhanceDoneMsg:
		a.state.processing = false
		a.setPrompt(msg.data)
		a.view = viewResult
		a.state.input.Focus()
		return a, textinput.Blink

	case enhanceErrorMsg:
		a.state.processing = false
		a.state.processingError = msg.error
		a.view = viewError
		return a, nil
	}

	// Update text inputs based on view
	switch {
	case a.view == viewSetup && a.state.setupStep == 1:
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewSetup && a.state.setupStep == 2:
		var cmd tea.Cmd
		a.state.baseURLInput, cmd = a.state.baseURLInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewSettings && a.state.settingsMode == "apikey":
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewWelcome || a.view == viewResult:
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// setPrompt makes data the current prompt and refreshes its score and token gauge
func (a *App) setPrompt(data prompt.Data) {
	a.state.current = data
	a.state.hasPrompt = true
	if a.state.engine != nil && a.state.engine.Scorer != nil {
		a.state.analysis = a.state.engine.Scorer.Analyze(data)
	}
	a.measure(data)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Back):
		return a.back()

	case key.Matches(msg, keys.Enhance):
		if a.view == viewResult && a.state.request != "" && !a.state.processing {
			return a.startEnhance()
		}

	case key.Matches(msg, keys.Help):
		if a.view == viewWelcome && a.state.input.Value() == "" {
			a.view = viewHelp
			return nil
		}

	case key.Matches(msg, keys.Enter):
		if (a.view == viewWelcome || a.view == viewResult) && a.state.engine != nil && !a.state.processing {
			return a.handleInput()
		}
	}

	// View-specific handling
	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewPatterns:
		a.handleListKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	}

	return nil
}

// back leaves the current view, or quits from the top level
func (a *App) back() tea.Cmd {
	switch a.view {
	case viewSettings:
		if a.state.settingsMode != "" {
			a.state.settingsMode = ""
			a.state.settingsSelected = 0
			a.state.apiKeyInput.Reset()
			return nil
		}
		a.view = a.home()
		return nil
	case viewHelp, viewPatterns, viewModels, viewError:
		a.view = a.home()
		return nil
	case viewSetup:
		if a.state.setupStep > 0 {
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			a.state.baseURLInput.Reset()
			return nil
		}
	case viewResult:
		a.view = viewWelcome
		return nil
	}
	a.quitting = true
	return tea.Quit
}

// home is the view secondary screens return to
func (a *App) home() view {
	if a.state.needsSetup {
		return viewSetup
	}
	if a.state.hasPrompt {
		return viewResult
	}
	return viewWelcome
}

func (a *App) handleListKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.listOffset > 0 {
			a.state.listOffset--
		}
	case key.Matches(msg, keys.Down):
		if a.state.engine != nil && a.state.listOffset < a.state.engine.Patterns.Count()-1 {
			a.state.listOffset++
		}
	}
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "s":
		a.state.settingsMode = ""
		a.view = viewSettings
	case "r":
		if a.state.engine == nil {
			a.view = viewWelcome
			return a.buildEngine()
		}
		if a.state.request != "" {
			return a.startEnhance()
		}
	case "n":
		a.state.hasPrompt = false
		a.view = viewWelcome
	}
	return nil
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID

			switch {
			case provider.NeedsAPIKey:
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			case provider.NeedsBaseURL:
				a.state.setupStep = 2
				a.state.baseURLInput.Focus()
				return textinput.Blink
			default:
				return a.finishSetup()
			}
		}

	case 1: // API key entry
		if msg.String() == "enter" {
			id := a.state.config.Provider
			pc := a.state.config.ProviderSettings(id)
			pc.APIKey = a.state.apiKeyInput.Value()
			if pc.Model == "" {
				pc.Model = config.GetProvider(id).DefaultModel
			}
			if err := a.state.config.SetProvider(id, pc); err != nil {
				return func() tea.Msg { return setupErrorMsg{err} }
			}
			if config.GetProvider(id).NeedsBaseURL {
				a.state.setupStep = 2
				a.state.apiKeyInput.Blur()
				a.state.baseURLInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 2: // Base URL entry
		if msg.String() == "enter" {
			id := a.state.config.Provider
			pc := a.state.config.ProviderSettings(id)
			pc.BaseURL = a.state.baseURLInput.Value()
			if err := a.state.config.SetProvider(id, pc); err != nil {
				return func() tea.Msg { return setupErrorMsg{err} }
			}
			return a.finishSetup()
		}
	}

	return nil
}

func (a *App) finishSetup() tea.Cmd {
	cfg := a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type engineReadyMsg struct{ engine *Engine }
type engineErrorMsg struct{ error }
type progressMsg struct{ progress pipeline.Progress }
type enhanceDoneMsg struct{ data prompt.Data }
type enhanceErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewPatterns:
		return a.renderPatterns()
	case viewModels:
		return a.renderModels()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
