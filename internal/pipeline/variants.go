package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jahboukie/promptpro/internal/prompt"
)

const alternativeNote = "\n\n[This is an alternative approach to the same request.]"

var (
	variantHeader = regexp.MustCompile(`VARIANT \d+:`)
	sectionBreak  = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// ParseVariants splits a prompt engineer response into at most want variant prompts.
// Labeled "VARIANT n:" blocks are preferred, then sections separated by two blank
// lines, then the whole response. Empty variants are dropped.
func ParseVariants(response string, want int) []string {
	if want <= 0 || strings.TrimSpace(response) == "" {
		return nil
	}

	var sections []string
	if locs := variantHeader.FindAllStringIndex(response, -1); len(locs) > 0 {
		for i, loc := range locs {
			end := len(response)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			sections = append(sections, response[loc[1]:end])
		}
	} else if split := sectionBreak.Split(response, -1); len(split) > 1 {
		sections = split[:min(len(split), want)]
	} else {
		sections = []string{response}
	}

	variants := make([]string, 0, want)
	for _, s := range sections {
		if len(variants) == want {
			break
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		variants = append(variants, s)
	}
	return variants
}

// GenerateVariants returns the optimal prompt followed by up to n-1 alternative prompts.
// Provider failures while generating alternatives never fail the call.
func (o *Orchestrator) GenerateVariants(ctx context.Context, req Request, n int) ([]prompt.Data, error) {
	req, err := o.normalize(req)
	if err != nil {
		return nil, err
	}

	base, err := o.GenerateOptimal(ctx, req)
	if err != nil {
		return nil, err
	}

	variants := []prompt.Data{base}
	if n <= 1 {
		return variants, nil
	}

	o.progress(StageEnhancing, fmt.Sprintf("Generating %d variants...", n-1))
	resp, err := o.engineer.Rewrite(ctx, variantsRequest(req, base, n-1))
	if err != nil && !errors.Is(err, ErrEmptyResponse) {
		o.logger.Warn("variant generation failed, using fallback", zap.Error(err))

		alt := base
		alt.Title = base.Title + " (Alternative)"
		alt.Content = base.Content + alternativeNote
		o.progress(StageDone, "Variants ready")
		return append(variants, alt), nil
	}

	contents := ParseVariants(resp, n-1)
	if len(contents) == 0 {
		contents = []string{base.Content + alternativeNote}
	}

	for i, content := range contents {
		v := base
		v.Title = fmt.Sprintf("%s (Variant %d)", base.Title, i+1)
		v.Content = content

		result := o.scorer.Analyze(v)
		v.SpecificDetails = qualityNote(result)
		variants = append(variants, v)
	}

	o.logger.Debug("variants generated", zap.Int("requested", n-1), zap.Int("parsed", len(contents)))
	o.progress(StageDone, "Variants ready")
	return variants, nil
}
