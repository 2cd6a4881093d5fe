package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jahboukie/promptpro/internal/analysis"
	"github.com/jahboukie/promptpro/internal/config"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/prompt"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model
	baseURLInput     textinput.Model

	// Engine built from config
	engine      *Engine
	engineError error

	// Current request and prompt
	request   string
	current   prompt.Data
	analysis  analysis.Result
	hasPrompt bool

	// Processing
	processing      bool
	progress        *pipeline.Progress
	processingError error

	// Token gauge for the current prompt
	tokens       int
	contextLimit int

	// Settings
	settingsMode     string
	settingsSelected int

	// Pattern list scroll
	listOffset int

	// One-line feedback below the input
	notice string

	// Input
	input textinput.Model
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Describe the content you need, or /help..."
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	baseURL := textinput.New()
	baseURL.Placeholder = "https://my-endpoint.example.com/v1"
	baseURL.CharLimit = 200
	baseURL.Width = 50

	return &state{
		input:        input,
		apiKeyInput:  apiKey,
		baseURLInput: baseURL,
	}
}
