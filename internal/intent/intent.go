package intent

import "strings"

// Intent is what the parser could infer from a free-text request
type Intent struct {
	// The raw request from the user
	Raw string

	// PromptEngineering is set when the request is about writing prompts for models
	PromptEngineering bool

	// Variables holds extracted or defaulted template values, keyed by placeholder name
	Variables map[string]string
}

// New creates an intent for a raw request
func New(raw string) *Intent {
	return &Intent{
		Raw:               raw,
		PromptEngineering: IsPromptEngineering(raw),
		Variables:         make(map[string]string),
	}
}

var (
	engineeringKeywords = []string{"engineer", "llm", "ai model", "language model"}
	modelNames          = []string{"gpt", "claude", "gemini"}
	promptingForms      = []string{"prompts", "prompting"}
)

// IsPromptEngineering reports whether input is about writing prompts for models.
// A bare model name only counts when prompts are discussed in general, so
// "a prompt for GPT-4 about fashion" stays a content request.
func IsPromptEngineering(input string) bool {
	lower := strings.ToLower(input)
	if !strings.Contains(lower, "prompt") {
		return false
	}
	if containsAny(lower, engineeringKeywords) {
		return true
	}
	return containsAny(lower, modelNames) && containsAny(lower, promptingForms)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
