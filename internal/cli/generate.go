package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jahboukie/promptpro/internal/pipeline"
	"github.com/jahboukie/promptpro/internal/prompt"
)

// generationTimeout bounds one command's provider calls
const generationTimeout = 3 * time.Minute

// requestFlags are the knobs shared by the pipeline commands
type requestFlags struct {
	target  string
	useCase string
	context string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.target, "target", "m", "", "Target model (default pipeline.default_target_llm)")
	cmd.Flags().StringVarP(&f.useCase, "use-case", "u", "", "Use case (default pipeline.default_use_case)")
	cmd.Flags().StringVar(&f.context, "context", "", "Additional context for the prompt engineer")
}

func (f *requestFlags) request(userRequest string) pipeline.Request {
	return pipeline.Request{
		UserRequest:       userRequest,
		TargetLLM:         f.target,
		UseCase:           f.useCase,
		AdditionalContext: f.context,
	}
}

// progressPrinter reports pipeline stages on stderr
func progressPrinter(cmd *cobra.Command) func(pipeline.Progress) {
	return func(p pipeline.Progress) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", p.Stage, p.Message)
	}
}

func newOptimalCommand(g *globals) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "optimal <request>",
		Short: "Build the best prompt for a request",
		Long: `Recommend a prompt for the request, tailor it to the target model and
score it. Prompts scoring below pipeline.enhance_threshold are rewritten by
the prompt engineer model.

Examples:
  promptpro optimal "Write a blog post about remote work"
  promptpro optimal --target "Claude 3 Opus" --use-case newsletter "Weekly product digest"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}
			s.Orchestrator.SetProgressCallback(progressPrinter(cmd))

			ctx, cancel := context.WithTimeout(cmd.Context(), generationTimeout)
			defer cancel()

			data, err := s.Orchestrator.GenerateOptimal(ctx, flags.request(strings.Join(args, " ")))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, scoredPrompt{Prompt: data})
			}
			printPrompt(out, data)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newVariantsCommand(g *globals) *cobra.Command {
	var (
		flags requestFlags
		n     int
	)

	cmd := &cobra.Command{
		Use:   "variants <request>",
		Short: "Build alternative prompts for a request",
		Long: `Build the recommended prompt plus alternatives written by the prompt
engineer model. The first result is always the recommended prompt.

Examples:
  promptpro variants "Launch email for our mobile app"
  promptpro variants -n 5 "Instagram captions for a coffee brand"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 || n > 10 {
				return errors.New("--number must be between 1 and 10")
			}

			s, err := g.services()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), generationTimeout)
			defer cancel()

			variants, err := s.Orchestrator.GenerateVariants(ctx, flags.request(strings.Join(args, " ")), n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, variants)
			}
			for i, v := range variants {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printPrompt(out, v)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&n, "number", "n", pipeline.DefaultVariants, "Number of prompts to return")
	return cmd
}

func newEnhanceCommand(g *globals) *cobra.Command {
	var (
		flags requestFlags
		vars  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "enhance <pattern-id>",
		Short: "Fill a pattern and have the prompt engineer refine it",
		Long: `Fill a pattern with --var values, rewrite it with the prompt engineer
model, tailor it to the target model and score it.

Examples:
  promptpro enhance blog-outline --var topic="remote work" --var audience="HR managers"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}
			s.Orchestrator.SetProgressCallback(progressPrinter(cmd))

			ctx, cancel := context.WithTimeout(cmd.Context(), generationTimeout)
			defer cancel()

			data, err := s.Orchestrator.ApplyAndEnhance(ctx, args[0], vars, flags.target, flags.useCase)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, scoredPrompt{Prompt: data})
			}
			printPrompt(out, data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.target, "target", "m", "", "Target model (default pipeline.default_target_llm)")
	cmd.Flags().StringVarP(&flags.useCase, "use-case", "u", "", "Use case (default pipeline.default_use_case)")
	cmd.Flags().StringToStringVar(&vars, "var", nil, "Template variable as key=value (repeatable)")
	return cmd
}

func newGenerateCommand(g *globals) *cobra.Command {
	var (
		file  string
		model string
	)

	cmd := &cobra.Command{
		Use:   "generate [request]",
		Short: "Send a prompt to its model and print the content",
		Long: `Send a prompt to the provider its model belongs to and print the generated
content. The prompt comes from --file, or is recommended for the request.

Examples:
  promptpro generate --file prompt.yaml
  promptpro generate --model "Claude 3 Sonnet" "Product description for a standing desk"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if file == "" && input == "" {
				return errors.New("give a request or --file")
			}

			s, err := g.services()
			if err != nil {
				return err
			}

			var data prompt.Data
			if file != "" {
				if data, err = readPromptFile(file); err != nil {
					return err
				}
			} else if data, err = s.Selector.RecommendPrompt(input, model); err != nil {
				return err
			}
			if model != "" {
				data.Model = model
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), generationTimeout)
			defer cancel()

			content, err := s.Writer.Generate(ctx, data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, map[string]string{"content": content, "model": data.Model})
			}
			fmt.Fprintln(out, content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Prompt file (YAML, or JSON with a .json extension)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model that writes the content")
	return cmd
}
