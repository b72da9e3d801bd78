package screens

import (
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/screens/shared"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UpdateScreenMode handles input on the mode screen. It reports true once a
// mode is chosen and the catalog should load.
func UpdateScreenMode(m app.Model, msg tea.KeyMsg) (app.Model, bool) {
	numOptions := len(app.Modes)

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.Aborted = true

	case "up", "k":
		m.ModeIndex = (m.ModeIndex + numOptions - 1) % numOptions

	case "down", "j":
		m.ModeIndex = (m.ModeIndex + 1) % numOptions

	case "enter":
		mode := app.Modes[m.ModeIndex]
		m.KeepCurrent = mode.KeepCurrent
		m.Override = mode.Override
		m.CurrentScreen = app.ScreenLoading
		return m, true
	}
	return m, false
}

// ViewScreenMode renders the choice between updating and regenerating.
func ViewScreenMode(m app.Model) string {
	title := app.TitleStyle.Render("Existing ignore file found")

	var b strings.Builder
	b.WriteString(summarizeProjectStats(m) + "\n")
	for i, mode := range app.Modes {
		if i == m.ModeIndex {
			b.WriteString(app.HighlightStyle.Render("> "+mode.Label) + "\n")
		} else {
			b.WriteString(app.ChoiceStyle.Render("  "+mode.Label) + "\n")
		}
	}

	width := shared.ComputeRightPanelWidth(m.TerminalWidth, shared.ComputeLeftPanelWidth(m.TerminalWidth), 1)
	detail := shared.WrapText(app.Modes[m.ModeIndex].Description, width)

	footer := shared.Footer("↑/↓ move", "Enter choose", "q quit")
	return app.DocStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", b.String(), app.HelpStyle.Render(detail), "", footer))
}
