package screens

import (
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
)

// summarizeProjectStats returns the output path and the detected signals.
func summarizeProjectStats(m app.Model) string {
	result := app.PathStyle.Render(m.OutputPath) + "\n"
	var signals []string
	if m.Platform != "" {
		signals = append(signals, m.Platform)
	}
	signals = append(signals, m.RecognizedPkgs...)
	if len(signals) == 0 {
		result += "    • No platform or tooling recognized\n"
	} else {
		result += renderPackagesHorizontally(signals, 6)
	}
	return result
}

func renderPackagesHorizontally(items []string, columns int) string {
	var lines []string
	var currentLine []string

	for i, pkg := range items {
		currentLine = append(currentLine, pkg)
		if (i+1)%columns == 0 {
			lines = append(lines, strings.Join(currentLine, " | "))
			currentLine = nil
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " | "))
	}

	return strings.Join(lines, "\n") + "\n"
}

// filteredIndices returns the positions in m.Entries matching the filter text.
func filteredIndices(m app.Model) []int {
	query := strings.ToLower(strings.TrimSpace(m.Filter.Value()))
	indices := make([]int, 0, len(m.Entries))
	for i, e := range m.Entries {
		if query == "" || strings.Contains(strings.ToLower(e.Name), query) {
			indices = append(indices, i)
		}
	}
	return indices
}

// pickedNames lists the picked entries in catalog order.
func pickedNames(m app.Model) []string {
	var names []string
	for _, e := range m.Entries {
		if e.Picked {
			names = append(names, e.Name)
		}
	}
	return names
}
