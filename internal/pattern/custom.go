package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the pattern file expected inside each custom pattern directory
const FileName = "PATTERN.md"

var (
	invalidIDChars = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedDashes = regexp.MustCompile(`-+`)
)

// LoadFile reads a pattern file: YAML frontmatter with metadata, markdown body as template
func LoadFile(path string) (Pattern, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, err
	}

	// parts[0] is empty (before the first ---), parts[1] is frontmatter, parts[2] is the template
	parts := strings.SplitN(string(content), "---", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return Pattern{}, fmt.Errorf("%s: missing frontmatter", path)
	}

	var p Pattern
	if err := yaml.Unmarshal([]byte(parts[1]), &p); err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	p.Template = strings.TrimSpace(parts[2])

	if p.ID == "" {
		p.ID = SanitizeID(filepath.Base(filepath.Dir(path)))
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if p.Template == "" {
		return Pattern{}, fmt.Errorf("%s: empty template", path)
	}

	return p, nil
}

// LoadDir loads every <dir>/<id>/PATTERN.md in directory order.
// A missing directory yields no patterns; unreadable or invalid files are skipped.
func LoadDir(dir string) ([]Pattern, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var patterns []Pattern
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name(), FileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		p, err := LoadFile(path)
		if err != nil {
			continue
		}
		patterns = append(patterns, p)
	}

	return patterns, nil
}

// Save writes p as <dir>/<id>/PATTERN.md and returns the file path
func Save(dir string, p Pattern) (string, error) {
	p.ID = SanitizeID(p.ID)
	if p.ID == "" {
		p.ID = SanitizeID(p.Name)
	}
	if p.ID == "" {
		return "", fmt.Errorf("pattern needs an id or a name")
	}
	if strings.TrimSpace(p.Template) == "" {
		return "", fmt.Errorf("pattern %s has an empty template", p.ID)
	}

	frontmatter, err := yaml.Marshal(p)
	if err != nil {
		return "", err
	}

	patternDir := filepath.Join(dir, p.ID)
	if err := os.MkdirAll(patternDir, 0755); err != nil {
		return "", err
	}

	content := fmt.Sprintf("---\n%s---\n\n%s\n", frontmatter, strings.TrimSpace(p.Template))
	path := filepath.Join(patternDir, FileName)

	return path, os.WriteFile(path, []byte(content), 0644)
}

// SanitizeID turns a free-form name into a lowercase, hyphenated pattern id
func SanitizeID(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")
	name = invalidIDChars.ReplaceAllString(name, "")
	name = repeatedDashes.ReplaceAllString(name, "-")
	return strings.Trim(name, "-")
}
