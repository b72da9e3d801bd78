package screens

import (
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/screens/shared"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// UpdateScreenPick handles input on the template picker.
func UpdateScreenPick(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	if m.Filtering {
		return updateFilter(m, msg)
	}

	visible := filteredIndices(m)
	total := len(visible)

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.Aborted = true
		return m, tea.Quit

	case "up", "k":
		if total > 0 {
			m.Cursor = (m.Cursor + total - 1) % total
		}

	case "down", "j":
		if total > 0 {
			m.Cursor = (m.Cursor + 1) % total
		}

	case "left", "h":
		if m.Cursor-pickerPageSize >= 0 {
			m.Cursor -= pickerPageSize
		} else {
			m.Cursor = 0
		}

	case "right", "l":
		if m.Cursor+pickerPageSize < total {
			m.Cursor += pickerPageSize
		} else if total > 0 {
			m.Cursor = total - 1
		}

	case " ", "space", "x":
		if m.Cursor < total {
			idx := visible[m.Cursor]
			m.Entries[idx].Picked = !m.Entries[idx].Picked
		}

	case "/":
		m.Filtering = true
		m.Filter.Focus()
		return m, cursor.Blink

	case "enter":
		chosen := pickedNames(m)
		if len(chosen) == 0 {
			m.Err = fmt.Errorf("pick at least one template (space to toggle)")
			return m, nil
		}
		m.Err = nil
		m.Chosen = chosen
		m.CurrentScreen = app.ScreenDone
		return m, tea.Quit
	}

	m = syncPage(m, total)
	return m, nil
}

// updateFilter routes keys to the filter input until Enter or Esc.
func updateFilter(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Aborted = true
		return m, tea.Quit
	case "enter":
		m.Filtering = false
		m.Filter.Blur()
		return syncPage(m, len(filteredIndices(m))), nil
	case "esc":
		m.Filtering = false
		m.Filter.Blur()
		m.Filter.SetValue("")
		return syncPage(m, len(filteredIndices(m))), nil
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	m.Cursor = 0
	return syncPage(m, len(filteredIndices(m))), cmd
}

// syncPage keeps the cursor in range and the paginator on the cursor's page.
func syncPage(m app.Model, total int) app.Model {
	if m.Cursor >= total {
		m.Cursor = total - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.Paginator.SetTotalPages(total)
	m.Paginator.Page = m.Cursor / m.Paginator.PerPage
	return m
}

// ViewScreenPick renders the template list on the left and the picked set on the right.
func ViewScreenPick(m app.Model) string {
	header := app.TitleStyle.Render("Choose templates") + "  " + shared.ProjectHeader(m.OutputPath)

	visible := filteredIndices(m)
	start, end := m.Paginator.GetSliceBounds(len(visible))

	var list strings.Builder
	if m.Filtering || m.Filter.Value() != "" {
		list.WriteString(m.Filter.View() + "\n\n")
	}
	if len(visible) == 0 {
		list.WriteString(app.ChoiceStyle.Render("  (No templates match)") + "\n")
	}
	for i := start; i < end; i++ {
		entry := m.Entries[visible[i]]
		box := "[ ]"
		if entry.Picked {
			box = "[x]"
		}
		line := box + " " + entry.Name
		switch {
		case i == m.Cursor:
			list.WriteString(app.HighlightStyle.Render("> "+line) + "\n")
		case entry.Picked:
			list.WriteString(app.PickedStyle.Render("  "+line) + "\n")
		default:
			list.WriteString(app.ChoiceStyle.Render("  "+line) + "\n")
		}
	}

	leftWidth := shared.ComputeLeftPanelWidth(m.TerminalWidth)
	leftPanel := lipgloss.NewStyle().
		Width(leftWidth).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Render(list.String())

	chosen := pickedNames(m)
	rightWidth := shared.ComputeRightPanelWidth(m.TerminalWidth, leftWidth, 2) - 4
	preview := app.SubtitleStyle.Render(fmt.Sprintf("Picked (%d)", len(chosen))) + "\n\n"
	if len(chosen) == 0 {
		preview += app.HelpStyle.Render("Nothing picked yet.")
	} else {
		preview += shared.TruncateLines(shared.WrapText(strings.Join(chosen, ", "), rightWidth), leftPanelLines(leftPanel))
	}
	if m.Err != nil {
		preview += "\n\n" + app.ErrorStyle.Render(m.Err.Error())
	}
	rightPanel := lipgloss.NewStyle().Padding(1, 2).Render(preview)

	pager := ""
	if len(visible) > m.Paginator.PerPage {
		pager = m.Paginator.View()
	}

	footer := shared.Footer("↑/↓ move", "←/→ page", "space toggle", "/ filter", "Enter generate", "q quit")
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, "  ", rightPanel)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", panes, pager, "", footer)
}

// leftPanelLines is the number of lines the preview may use.
func leftPanelLines(panel string) int {
	if h := lipgloss.Height(panel) - 2; h > 0 {
		return h
	}
	return 1
}
