package shared

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ComputeLeftPanelWidth returns the list column width for a terminal width:
// about 45% of it, clamped to [36, 72], leaving at least 32 columns on the right.
func ComputeLeftPanelWidth(termWidth int) int {
	const (
		defaultLeft = 48
		minLeft     = 36
		maxLeft     = 72
		rightMin    = 33 // 32 columns plus the gap
	)
	if termWidth <= 0 {
		return defaultLeft
	}
	left := min(max(termWidth*9/20, minLeft), maxLeft)
	if left+rightMin > termWidth {
		left = max(termWidth-rightMin, 20)
	}
	return left
}

// ComputeRightPanelWidth returns the remaining width after the left panel and a gap.
func ComputeRightPanelWidth(termWidth, left, gap int) int {
	return max(termWidth-left-gap, 0)
}

// ProjectHeader renders "dir/file" of the output path in gray.
func ProjectHeader(outputPath string) string {
	if outputPath == "" {
		return ""
	}
	short := filepath.Join(filepath.Base(filepath.Dir(outputPath)), filepath.Base(outputPath))
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render("📦 " + short)
}
