package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jahboukie/promptpro/internal/prompt"
)

func newRecommendCommand(g *globals) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "recommend <request>",
		Short: "Recommend a prompt for a content request",
		Long: `Classify a free-text request, pick the best pattern for it and fill the
pattern from the request. The prompt is tailored to --model when that model
suits the request.

Examples:
  promptpro recommend "Write a blog post about remote work for HR managers"
  promptpro recommend --model "Claude 3 Opus" "Draft a product launch email"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}

			data, err := s.Selector.RecommendPrompt(strings.Join(args, " "), model)
			if err != nil {
				return err
			}
			result := s.Scorer.Analyze(data)

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, scoredPrompt{Prompt: data, Analysis: &result})
			}
			printPrompt(out, data)
			fmt.Fprintln(out)
			printAnalysis(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Preferred target model")
	return cmd
}

func newStrategyCommand(g *globals) *cobra.Command {
	var goal, contentType string

	cmd := &cobra.Command{
		Use:   "strategy [request]",
		Short: "Recommend patterns, models and tones",
		Long: `Recommend a prompt strategy for a marketing goal and content type, or for
a free-text request.

Examples:
  promptpro strategy --goal lead-generation --type email
  promptpro strategy "Write a case study about our onboarding"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if input == "" && (goal == "" || contentType == "") {
				return errors.New("give a request, or both --goal and --type")
			}

			s, err := g.services()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if input != "" {
				goal, contentType = s.Selector.Classify(input)
				if !g.jsonOutput {
					fmt.Fprintf(out, "Goal: %s  Content type: %s\n\n", goal, contentType)
				}
			}

			rec, err := s.Selector.Recommend(goal, contentType)
			if err != nil {
				return err
			}
			if g.jsonOutput {
				return writeJSON(out, rec)
			}

			fmt.Fprintln(out, "Patterns:")
			for _, p := range rec.Patterns {
				fmt.Fprintf(out, "  - %-28s %s\n", p.ID, p.Name)
			}
			printList(out, "Models", rec.Models)
			printList(out, "Output formats", rec.OutputFormats)
			printList(out, "Tones", rec.Tones)
			printList(out, "Styles", rec.Styles)
			printList(out, "Tips", rec.Tips)
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Marketing goal id")
	cmd.Flags().StringVarP(&contentType, "type", "t", "", "Content type id")
	return cmd
}

func newAnalyzeCommand(g *globals) *cobra.Command {
	var (
		file    string
		content string
		model   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a prompt",
		Long: `Score a prompt for clarity, specificity, engagement, persuasiveness and
completeness, and list concrete improvements.

The prompt comes from a YAML or JSON prompt file, or from --content.

Examples:
  promptpro analyze --file prompt.yaml
  promptpro analyze --content "Write about dogs" --model GPT-4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data prompt.Data
			switch {
			case file != "":
				var err error
				if data, err = readPromptFile(file); err != nil {
					return err
				}
			case content != "":
				data = prompt.Data{Content: content}
			default:
				return errors.New("give --file or --content")
			}
			if model != "" {
				data.Model = model
			}
			if data.Model == "" {
				data.Model = prompt.DefaultModel
			}

			s, err := g.services()
			if err != nil {
				return err
			}
			result := s.Scorer.Analyze(data)

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, result)
			}
			printAnalysis(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Prompt file (YAML, or JSON with a .json extension)")
	cmd.Flags().StringVar(&content, "content", "", "Prompt text to score")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Target model (default GPT-4)")
	return cmd
}
