package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jahboukie/promptpro/internal/analysis"
	"github.com/jahboukie/promptpro/internal/prompt"
	"github.com/jahboukie/promptpro/internal/prompts"
)

const engineerTimeout = 2 * time.Minute

// Engineer rewrites prompts through the PromptEngineer-GPT persona
type Engineer struct {
	gen   Generator
	model string
}

func NewEngineer(gen Generator, model string) *Engineer {
	return &Engineer{
		gen:   gen,
		model: model,
	}
}

// Rewrite sends input to the prompt engineer and returns its answer without a wrapping code fence
func (e *Engineer) Rewrite(ctx context.Context, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, engineerTimeout)
	defer cancel()

	resp, err := e.gen.Generate(ctx, e.model, prompts.EngineerSystem(), input)
	if err != nil {
		return "", err
	}

	content := unwrapFence(strings.TrimSpace(resp))
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// unwrapFence strips a markdown code fence that wraps the whole response
func unwrapFence(content string) string {
	if !strings.HasPrefix(content, "```") || !strings.HasSuffix(content, "```") || strings.Count(content, "```") != 2 {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}
	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}

func enhancementRequest(req Request, data prompt.Data, r analysis.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "USER REQUEST: %s\n\n", req.UserRequest)
	fmt.Fprintf(&b, "TARGET LLM: %s\n\n", req.TargetLLM)
	fmt.Fprintf(&b, "USE CASE: %s\n\n", req.UseCase)
	fmt.Fprintf(&b, "ADDITIONAL CONTEXT: %s\n\n", req.AdditionalContext)
	fmt.Fprintf(&b, "CURRENT PROMPT: %s\n\n", data.Content)
	b.WriteString("ANALYSIS FEEDBACK:\n")
	fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(r.Strengths, ", "))
	fmt.Fprintf(&b, "Weaknesses: %s\n", strings.Join(r.Weaknesses, ", "))
	fmt.Fprintf(&b, "Improvement Suggestions: %s\n\n", strings.Join(r.Improvements, ", "))
	b.WriteString("Please enhance this prompt to address the weaknesses and implement the improvement suggestions.\n")
	fmt.Fprintf(&b, "The prompt should be engineered to work effectively with %s and for %s.", req.TargetLLM, req.UseCase)
	return b.String()
}

func variantsRequest(req Request, base prompt.Data, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "USER REQUEST: %s\n\n", req.UserRequest)
	fmt.Fprintf(&b, "TARGET LLM: %s\n\n", req.TargetLLM)
	fmt.Fprintf(&b, "USE CASE: %s\n\n", req.UseCase)
	fmt.Fprintf(&b, "BASE PROMPT: %s\n\n", base.Content)
	fmt.Fprintf(&b, "Please generate %d alternative versions of this prompt, each using a different approach or structure.\n\n", count)
	b.WriteString(`IMPORTANT FORMATTING INSTRUCTIONS:
1. Each variant MUST be clearly labeled as "VARIANT 1:", "VARIANT 2:", etc.
2. Include a blank line before and after each variant label
3. Each variant should be a complete, standalone prompt
4. All variants should be designed to accomplish the same goal but using different prompt engineering techniques
5. Make each variant distinctly different in approach, not just minor wording changes

Example format:

VARIANT 1:
[First complete variant prompt here]

VARIANT 2:
[Second complete variant prompt here]`)
	return b.String()
}

func patternRequest(data prompt.Data, targetLLM, useCase string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PATTERN PROMPT: %s\n\n", data.Content)
	fmt.Fprintf(&b, "TARGET LLM: %s\n\n", targetLLM)
	fmt.Fprintf(&b, "USE CASE: %s\n\n", useCase)
	b.WriteString("Please enhance this pattern-based prompt to make it more effective.\n")
	b.WriteString("Maintain the structure and purpose of the original pattern, but add any elements\n")
	fmt.Fprintf(&b, "that would make it work better with %s for %s use cases.", targetLLM, useCase)
	return b.String()
}
