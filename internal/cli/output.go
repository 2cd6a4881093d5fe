package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jahboukie/promptpro/internal/analysis"
	"github.com/jahboukie/promptpro/internal/prompt"
)

const rule = "------------------------------------------------------------"

// scoredPrompt is the JSON shape of a prompt and its analysis
type scoredPrompt struct {
	Prompt   prompt.Data      `json:"promptData"`
	Analysis *analysis.Result `json:"analysis,omitempty"`
}

func printPrompt(w io.Writer, data prompt.Data) {
	fmt.Fprintf(w, "%s\n", data.Title)
	fmt.Fprintf(w, "Model: %s  Goal: %s\n", data.Model, data.Goal)
	fmt.Fprintf(w, "Format: %s  Style: %s  Tone: %s\n", data.OutputFormat, data.Style, data.Tone)
	if data.UseRolePlaying && data.Role != "" {
		fmt.Fprintf(w, "Role: %s\n", data.Role)
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, strings.TrimSpace(data.Content))
	if details := strings.TrimSpace(data.SpecificDetails); details != "" {
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, details)
	}
}

func printAnalysis(w io.Writer, r analysis.Result) {
	fmt.Fprintf(w, "Quality score: %d/100\n", r.Score)
	fmt.Fprintf(w, "  Clarity %d  Specificity %d  Engagement %d  Persuasiveness %d  Completeness %d\n",
		r.Clarity, r.Specificity, r.Engagement, r.Persuasiveness, r.Completeness)
	fmt.Fprintf(w, "  Readability %.1f\n", r.ReadabilityScore)

	printList(w, "Strengths", r.Strengths)
	printList(w, "Weaknesses", r.Weaknesses)
	printList(w, "Improvements", r.Improvements)
	printList(w, "Model recommendations", r.ModelRecommendations)
	printList(w, "Content recommendations", r.ContentRecommendations)
	printList(w, "Structure recommendations", r.StructureRecommendations)
	printList(w, "SEO recommendations", r.SEORecommendations)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// readPromptFile loads prompt data from YAML, or JSON when the file ends in .json
func readPromptFile(path string) (prompt.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return prompt.Data{}, err
	}

	var data prompt.Data
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(raw, &data)
	} else {
		err = yaml.Unmarshal(raw, &data)
	}
	if err != nil {
		return prompt.Data{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}
