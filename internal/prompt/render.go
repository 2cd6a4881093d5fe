package prompt

import "regexp"

var placeholderRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Render substitutes every {{name}} in template with vars[name].
// Names without a value are rendered as [name] so the output stays readable.
func Render(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := vars[name]; ok {
			return v
		}
		return "[" + name + "]"
	})
}

// Placeholders lists the distinct placeholder names in order of first appearance
func Placeholders(template string) []string {
	matches := placeholderRe.FindAllStringSubmatch(template, -1)
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// HasPlaceholders reports whether any {{name}} token is left in s
func HasPlaceholders(s string) bool {
	return placeholderRe.MatchString(s)
}
