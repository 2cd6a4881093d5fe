package profile

import (
	"regexp"
	"strings"
)

type alias struct {
	name string
	key  string
}

// aliases is scanned in order for substring matches, so earlier entries win
var aliases = []alias{
	{"gpt-4", "gpt-4"},
	{"gpt4", "gpt-4"},
	{"gpt 4", "gpt-4"},
	{"gpt-3.5-turbo", "gpt-3.5-turbo"},
	{"gpt-3.5", "gpt-3.5-turbo"},
	{"gpt3.5", "gpt-3.5-turbo"},
	{"gpt 3.5", "gpt-3.5-turbo"},
	{"claude-3-opus", "claude-3-opus"},
	{"claude 3 opus", "claude-3-opus"},
	{"claude opus", "claude-3-opus"},
	{"claude3 opus", "claude-3-opus"},
	{"claude-3-sonnet", "claude-3-sonnet"},
	{"claude 3 sonnet", "claude-3-sonnet"},
	{"claude sonnet", "claude-3-sonnet"},
	{"claude3 sonnet", "claude-3-sonnet"},
	{"grok-1", "grok-1"},
	{"grok1", "grok-1"},
	{"grok 1", "grok-1"},
	{"grok", "grok-1"},
	{"gemini-pro", "gemini-pro"},
	{"gemini pro", "gemini-pro"},
	{"gemini", "gemini-pro"},
	{"jasper", "jasper"},
	{"jasper ai", "jasper"},
	{"copyai", "copyai"},
	{"copy ai", "copyai"},
	{"copy.ai", "copyai"},
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
)

// Normalize maps a free-form model name to a profile key.
// Exact aliases win over substring matches; anything else becomes a slug,
// which usually misses the catalog and resolves to the default profile.
func Normalize(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if key, ok := resolveAlias(name); ok {
		return key
	}

	slug := nonSlugChars.ReplaceAllString(whitespaceRun.ReplaceAllString(name, "-"), "")
	if key, ok := resolveAlias(slug); ok {
		return key
	}
	return slug
}

func resolveAlias(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, a := range aliases {
		if a.name == name {
			return a.key, true
		}
	}
	for _, a := range aliases {
		if strings.Contains(name, a.name) {
			return a.key, true
		}
	}
	return "", false
}

// Aliases returns the alias names that resolve to key, in table order
func Aliases(key string) []string {
	var names []string
	for _, a := range aliases {
		if a.key == key {
			names = append(names, a.name)
		}
	}
	return names
}
