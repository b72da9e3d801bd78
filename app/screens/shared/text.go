package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WrapText wraps s at word boundaries to width cells. Existing newlines are kept.
func WrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// TruncateLines keeps at most max lines of s, marking the cut with an ellipsis.
func TruncateLines(s string, max int) string {
	if max <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(append(lines[:max-1], "…"), "\n")
}
