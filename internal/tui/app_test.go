package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahboukie/promptpro/internal/analysis"
	"github.com/jahboukie/promptpro/internal/config"
	"github.com/jahboukie/promptpro/internal/llm"
	"github.com/jahboukie/promptpro/internal/pattern"
	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/profile"
	"github.com/jahboukie/promptpro/internal/strategy"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

type cannedGenerator struct {
	resp string
	err  error
}

func (g cannedGenerator) Generate(context.Context, string, string, string) (string, error) {
	return g.resp, g.err
}

func testFactory(gen pipeline.Generator) EngineFactory {
	return func(*config.Config) (*Engine, error) {
		lib := pattern.NewLibrary(pattern.Builtin())
		profiles := profile.NewRegistry(firstPicker{})
		selector := strategy.NewSelector(lib, profiles)
		scorer := analysis.New(profiles)
		return &Engine{
			Patterns: lib,
			Profiles: profiles,
			Selector: selector,
			Scorer:   scorer,
			Orchestrator: pipeline.New(pipeline.Deps{
				Selector:  selector,
				Patterns:  lib,
				Profiles:  profiles,
				Scorer:    scorer,
				Generator: gen,
			}, pipeline.Config{Threshold: 101}),
			Families: []string{"openai"},
		}, nil
	}
}

// newReadyApp returns an app whose engine is already built
func newReadyApp(t *testing.T, gen pipeline.Generator) *App {
	t.Helper()

	factory := testFactory(gen)
	a := NewApp(Options{
		Factory:     factory,
		PatternsDir: t.TempDir(),
		CountTokens: func(_, text string) int { return llm.EstimateTokens(text) },
	})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	engine, err := factory(a.state.config)
	require.NoError(t, err)
	a.Update(engineReadyMsg{engine})
	return a
}

func submit(a *App, text string) tea.Cmd {
	a.state.input.SetValue(text)
	return a.handleInput()
}

func TestRecommendShowsScoredPrompt(t *testing.T) {
	a := newReadyApp(t, cannedGenerator{})

	submit(a, "Write a blog post about remote work")

	assert.Equal(t, viewResult, a.view)
	assert.True(t, a.state.hasPrompt)
	assert.Equal(t, "Write a blog post about remote work", a.state.request)
	assert.Equal(t, "Blog Post Outline for Write a blog post about remote work", a.state.current.Title)
	assert.Positive(t, a.state.analysis.Score)
	assert.Positive(t, a.state.tokens)
	assert.Positive(t, a.state.contextLimit)
	assert.Empty(t, a.state.input.Value())

	out := a.View()
	assert.Contains(t, out, "Quality")
	assert.Contains(t, out, "Specificity")
}

func TestSlashCommandsSwitchViews(t *testing.T) {
	tests := []struct {
		input string
		want  view
	}{
		{"/help", viewHelp},
		{"/h", viewHelp},
		{"/patterns", viewPatterns},
		{"/models", viewModels},
		{"/settings", viewSettings},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a := newReadyApp(t, cannedGenerator{})
			assert.Nil(t, submit(a, tt.input))
			assert.Equal(t, tt.want, a.view)
			assert.NotEmpty(t, a.View())

			a.Update(tea.KeyMsg{Type: tea.KeyEsc})
			assert.Equal(t, viewWelcome, a.view)
		})
	}
}

func TestUnknownCommandLeavesNotice(t *testing.T) {
	a := newReadyApp(t, cannedGenerator{})

	submit(a, "/frobnicate")
	assert.Equal(t, viewWelcome, a.view)
	assert.Contains(t, a.state.notice, "unknown command /frobnicate")
}

func TestEnhanceRunsOrchestrator(t *testing.T) {
	a := newReadyApp(t, cannedGenerator{resp: "Rewritten by the engineer"})

	assert.Nil(t, submit(a, "/enhance"))
	assert.Contains(t, a.state.notice, "no prompt yet")

	submit(a, "Write a blog post about remote work")
	cmd := submit(a, "/enhance")
	require.NotNil(t, cmd)
	assert.Equal(t, viewProcessing, a.view)
	assert.True(t, a.state.processing)

	a.Update(progressMsg{pipeline.Progress{Stage: pipeline.StageEnhancing, Message: "Asking..."}})
	assert.Contains(t, a.View(), "Asking...")

	msg := cmd()
	require.IsType(t, enhanceDoneMsg{}, msg)
	a.Update(msg)

	assert.Equal(t, viewResult, a.view)
	assert.False(t, a.state.processing)
	assert.Equal(t, "Rewritten by the engineer", a.state.current.Content)
	assert.Contains(t, a.state.current.SpecificDetails, "Prompt Quality Score:")
}

func TestEnhanceFailureShowsError(t *testing.T) {
	unavailable := fmt.Errorf("%w: no openai key", llm.ErrProviderUnavailable)
	a := newReadyApp(t, cannedGenerator{err: unavailable})

	submit(a, "Write a blog post about remote work")
	cmd := submit(a, "/e")
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.Equal(t, viewError, a.view)
	assert.ErrorIs(t, a.state.processingError, llm.ErrProviderUnavailable)
	assert.Contains(t, a.View(), "no API key configured")
}

func TestSaveWritesCustomPattern(t *testing.T) {
	a := newReadyApp(t, cannedGenerator{})

	submit(a, "/save")
	assert.Contains(t, a.state.notice, "no prompt yet")

	submit(a, "Write a blog post about remote work")
	submit(a, "/save Remote Work Outline")
	require.True(t, strings.HasPrefix(a.state.notice, "saved "), a.state.notice)

	path := filepath.Join(a.patternsDir, "remote-work-outline", pattern.FileName)
	require.FileExists(t, path)

	saved, err := pattern.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "remote-work-outline", saved.ID)
	assert.Equal(t, a.state.current.Title, saved.Name)
	assert.Equal(t, strings.TrimSpace(a.state.current.Content), saved.Template)
	assert.Equal(t, "custom", saved.Category)
}

func TestEngineErrorShowsErrorView(t *testing.T) {
	a := NewApp(Options{Factory: func(*config.Config) (*Engine, error) {
		return nil, errors.New("ollama: connection refused")
	}})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	a.Update(a.buildEngine()())
	assert.Equal(t, viewError, a.view)
	assert.Contains(t, a.View(), "ollama serve")
}

func TestSetupWizard(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	a := NewApp(Options{NeedsSetup: true, Factory: testFactory(cannedGenerator{})})
	a.Init()
	require.Equal(t, viewSetup, a.view)

	// move to xAI
	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, a.state.selectedProvider)

	cmd := a.handleSetupKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, a.state.setupStep)
	assert.Equal(t, "xai", a.state.config.Provider)

	a.state.apiKeyInput.SetValue("xai-secret")
	cmd = a.handleSetupKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, setupCompleteMsg{}, cmd())

	a.Update(setupCompleteMsg{})
	assert.False(t, a.state.needsSetup)
	assert.Equal(t, viewWelcome, a.view)

	saved, err := config.LoadFile(filepath.Join(home, ".config", "promptpro", "config.yaml"))
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "xai", saved.Provider)
	assert.Equal(t, "xai-secret", saved.Providers.XAI.APIKey)
	assert.Equal(t, "grok-2-1212", saved.Providers.XAI.Model)

	info, err := os.Stat(filepath.Join(home, ".config", "promptpro", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSetupEscReturnsToProviderList(t *testing.T) {
	a := NewApp(Options{NeedsSetup: true})
	a.Init()

	a.handleSetupKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, a.state.setupStep)

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0, a.state.setupStep)
	assert.False(t, a.quitting)

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, a.quitting)
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short", "hello world", 20, "hello world"},
		{"wraps words", "one two three four", 9, "one two\nthree\nfour"},
		{"keeps paragraphs", "a b\n\nc d", 3, "a b\n\nc d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.in, tt.width))
		})
	}
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "Not set", maskKey(""))
	assert.Equal(t, "****", maskKey("short"))
	assert.Equal(t, "sk-1****cdef", maskKey("sk-1234567890abcdef"))
}

func TestShortcutKeys(t *testing.T) {
	a := newReadyApp(t, cannedGenerator{resp: "Rewritten"})

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, viewHelp, a.view)
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewWelcome, a.view)

	submit(a, "Write a blog post about remote work")
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, cmd)
	assert.Equal(t, viewProcessing, a.view)

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, a.quitting)
	assert.Empty(t, a.View())
}
