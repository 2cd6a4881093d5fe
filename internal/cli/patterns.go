package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jahboukie/promptpro/internal/pattern"
)

func newPatternsCommand(g *globals) *cobra.Command {
	var category, goal, contentType string

	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "List prompt patterns",
		Long: `List the built-in and custom prompt patterns. Custom patterns are loaded
from <patterns_dir>/<id>/PATTERN.md.

Examples:
  promptpro patterns
  promptpro patterns --category email
  promptpro patterns --goal SEO
  promptpro patterns show blog-outline
  promptpro patterns apply blog-outline --var topic="remote work"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}

			var list []pattern.Pattern
			switch {
			case category != "":
				list = s.Patterns.ByCategory(category)
			case goal != "":
				list = s.Patterns.ByGoal(goal)
			case contentType != "":
				list = s.Patterns.ByContentType(contentType)
			default:
				list = s.Patterns.All()
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "No patterns found")
				return nil
			}
			for _, p := range list {
				fmt.Fprintf(out, "%-28s %-14s %-12s %3d  %s\n", p.ID, p.Category, p.Difficulty, p.Effectiveness, p.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "Filter by marketing goal")
	cmd.Flags().StringVarP(&contentType, "type", "t", "", "Filter by content type")

	cmd.AddCommand(newPatternShowCommand(g), newPatternApplyCommand(g))
	return cmd
}

func newPatternShowCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a pattern and its template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}

			p, ok := s.Patterns.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", pattern.ErrNotFound, args[0])
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, p)
			}
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
			fmt.Fprintln(out, p.Description)
			fmt.Fprintf(out, "Category: %s  Difficulty: %s  Effectiveness: %d\n", p.Category, p.Difficulty, p.Effectiveness)
			printList(out, "Content types", p.ContentTypes)
			printList(out, "Marketing goals", p.MarketingGoals)
			printList(out, "Compatible models", p.CompatibleModels)
			printList(out, "Best practices", p.BestPractices)
			fmt.Fprintln(out, rule)
			fmt.Fprintln(out, p.Template)
			return nil
		},
	}
}

func newPatternApplyCommand(g *globals) *cobra.Command {
	var vars map[string]string

	cmd := &cobra.Command{
		Use:   "apply <id>",
		Short: "Fill a pattern with variables",
		Long: `Fill a pattern's placeholders with --var values. Placeholders left unset
stay in the prompt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}

			data, err := s.Patterns.Apply(args[0], vars)
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

	cmd.Flags().StringToStringVar(&vars, "var", nil, "Template variable as key=value (repeatable)")
	return cmd
}

func newModelsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the target model profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.services()
			if err != nil {
				return err
			}

			profiles := s.Profiles.PublicProfiles()
			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return writeJSON(out, profiles)
			}

			keys := make([]string, 0, len(profiles))
			for k := range profiles {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			configured := s.Router.Families()
			fmt.Fprintf(out, "Configured providers: %v\n\n", configured)
			for _, k := range keys {
				p := profiles[k]
				fmt.Fprintf(out, "%-18s %-18s %-10s %7d tokens\n", k, p.Name, p.Provider, p.ContextWindow)
			}
			return nil
		},
	}
}
