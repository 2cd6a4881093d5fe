package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// wrapText wraps each paragraph of text to maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if len(line) <= maxWidth {
			continue
		}
		var b strings.Builder
		lineLen := 0
		for j, word := range strings.Fields(line) {
			if j > 0 {
				if lineLen+1+len(word) > maxWidth {
					b.WriteString("\n")
					lineLen = 0
				} else {
					b.WriteString(" ")
					lineLen++
				}
			}
			b.WriteString(word)
			lineLen += len(word)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// scoreColor grades a 0-100 score
func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return colorSuccess
	case score >= 60:
		return colorSecondary
	case score >= 40:
		return colorWarning
	default:
		return colorError
	}
}

// bar renders a fixed-width gauge for a fraction between 0 and 1
func bar(frac float64, width int, color lipgloss.Color) string {
	frac = min(max(frac, 0), 1)
	filled := int(frac * float64(width))
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("=", filled)) +
		lipgloss.NewStyle().Foreground(colorMuted).Render(strings.Repeat("-", width-filled))
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)
