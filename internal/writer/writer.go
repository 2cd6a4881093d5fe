package writer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/intent"
	"github.com/jahboukie/promptpro/internal/prompt"
)

// ErrInvalidPrompt is returned when a prompt lacks content or a model
var ErrInvalidPrompt = errors.New("content and model are required")

// Generator sends one system + user prompt pair to a text generation backend
type Generator interface {
	Generate(ctx context.Context, modelHint, system, prompt string) (string, error)
}

// Writer sends finished prompts to the provider named by their model
type Writer struct {
	gen    Generator
	logger *zap.Logger
}

// NewWriter creates a new writer
func NewWriter(gen Generator, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		gen:    gen,
		logger: logger,
	}
}

// Generate composes data into the outgoing prompt and returns the provider's answer
func (w *Writer) Generate(ctx context.Context, data prompt.Data) (string, error) {
	if strings.TrimSpace(data.Content) == "" || strings.TrimSpace(data.Model) == "" {
		return "", ErrInvalidPrompt
	}

	composed := Compose(data)
	w.logger.Debug("generating response",
		zap.String("model", data.Model),
		zap.Int("prompt_chars", len(composed)),
	)

	resp, err := w.gen.Generate(ctx, data.Model, "", composed)
	if err != nil {
		return "", fmt.Errorf("generate with %s: %w", data.Model, err)
	}
	return resp, nil
}

// Compose builds the text sent to the provider. Leftover placeholders are filled
// from the generation defaults before the role, details, format and voice
// instructions are added.
func Compose(data prompt.Data) string {
	var b strings.Builder

	content := prompt.Render(data.Content, intent.GenerationDefaults(data.Title))

	// Role
	if data.UseRolePlaying && data.Role != "" {
		fmt.Fprintf(&b, "You are a %s. ", data.Role)
	}
	b.WriteString(content)

	if data.SpecificDetails != "" {
		fmt.Fprintf(&b, "\n\nAdditional details: %s", data.SpecificDetails)
	}

	// Format
	if data.OutputFormat != "" {
		fmt.Fprintf(&b, "\n\nPlease format your response as %s.", data.OutputFormat)
	}

	// Voice
	if data.Style != "" || data.Tone != "" {
		style, tone := data.Style, data.Tone
		if style == "" {
			style = "casual"
		}
		if tone == "" {
			tone = "informative"
		}
		fmt.Fprintf(&b, "\n\nUse a %s style with a %s tone.", style, tone)
	}

	return b.String()
}
