package screens

import (
	"context"
	"fmt"

	"github.com/Guerrilla-Interactive/nextgen-ignore/app"
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/ignore"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerPageSize is how many templates the picker shows per page.
const pickerPageSize = 12

// Program wraps app.Model so we can hold Update logic in one place.
type Program struct {
	M       app.Model
	Service *ignore.Service
	Spinner spinner.Model
	ctx     context.Context
}

// NewModel builds the initial state. When the output file exists and no mode
// was forced, the mode screen comes first; otherwise the catalog loads straight away.
func NewModel(outputPath string, fileExists, askMode bool) app.Model {
	filter := textinput.New()
	filter.Placeholder = "filter templates"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = pickerPageSize
	pager.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3600")).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	m := app.Model{
		CurrentScreen:  app.ScreenLoading,
		OutputPath:     outputPath,
		FileExists:     fileExists,
		Filter:         filter,
		Paginator:      pager,
		TerminalWidth:  80,
		TerminalHeight: 24,
	}
	if fileExists && askMode {
		m.CurrentScreen = app.ScreenMode
	}
	return m
}

// NewProgram returns the root tea.Model for a chooser session.
func NewProgram(ctx context.Context, svc *ignore.Service, m app.Model) Program {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = app.HighlightStyle
	return Program{M: m, Service: svc, Spinner: s, ctx: ctx}
}

// CatalogLoadedMsg carries the result of LoadCatalogCmd.
type CatalogLoadedMsg struct {
	Entries []ignore.Entry
	Err     error
}

// LoadCatalogCmd fetches and splits the catalog in the background.
func LoadCatalogCmd(ctx context.Context, svc *ignore.Service, path string, keepCurrent bool) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.List(ctx, path, keepCurrent)
		return CatalogLoadedMsg{Entries: entries, Err: err}
	}
}

// Init starts loading unless the user has to pick a mode first.
func (p Program) Init() tea.Cmd {
	if p.M.CurrentScreen == app.ScreenLoading {
		return tea.Batch(p.Spinner.Tick, LoadCatalogCmd(p.ctx, p.Service, p.M.OutputPath, p.M.KeepCurrent))
	}
	return nil
}

// Update handles incoming Msgs (both from commands and user interaction).
func (p Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		p.M.TerminalWidth = typedMsg.Width
		p.M.TerminalHeight = typedMsg.Height
		return p, nil

	case spinner.TickMsg:
		if p.M.CurrentScreen != app.ScreenLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.Spinner, cmd = p.Spinner.Update(typedMsg)
		return p, cmd

	case CatalogLoadedMsg:
		if typedMsg.Err != nil {
			p.M.Err = typedMsg.Err
			p.M.CurrentScreen = app.ScreenDone
			return p, tea.Quit
		}
		p.M.Entries = typedMsg.Entries
		p.M.Cursor = 0
		p.M.Paginator.SetTotalPages(len(p.M.Entries))
		p.M.CurrentScreen = app.ScreenPick
		return p, nil

	case tea.KeyMsg:
		switch p.M.CurrentScreen {
		case app.ScreenMode:
			updated, start := UpdateScreenMode(p.M, typedMsg)
			p.M = updated
			if start {
				return p, tea.Batch(p.Spinner.Tick, LoadCatalogCmd(p.ctx, p.Service, p.M.OutputPath, p.M.KeepCurrent))
			}
			if p.M.Aborted {
				return p, tea.Quit
			}
			return p, nil
		case app.ScreenLoading:
			if typedMsg.String() == "ctrl+c" || typedMsg.String() == "q" {
				p.M.Aborted = true
				return p, tea.Quit
			}
			return p, nil
		case app.ScreenPick:
			updated, cmd := UpdateScreenPick(p.M, typedMsg)
			p.M = updated
			return p, cmd
		}
	}

	// Filter input needs non-key messages too (cursor blink).
	if p.M.CurrentScreen == app.ScreenPick && p.M.Filtering {
		var cmd tea.Cmd
		p.M.Filter, cmd = p.M.Filter.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View selects which screen's View function to call based on p.M.CurrentScreen.
func (p Program) View() string {
	switch p.M.CurrentScreen {
	case app.ScreenMode:
		return ViewScreenMode(p.M)
	case app.ScreenLoading:
		return ViewScreenLoading(p.M, p.Spinner.View())
	case app.ScreenPick:
		return ViewScreenPick(p.M)
	}
	return ""
}

// Run shows the chooser and returns its final state. The caller checks
// Aborted, Err and Chosen on the returned model.
func Run(ctx context.Context, svc *ignore.Service, m app.Model) (app.Model, error) {
	final, err := tea.NewProgram(NewProgram(ctx, svc, m), tea.WithAltScreen()).Run()
	if err != nil {
		return m, fmt.Errorf("error running chooser: %w", err)
	}
	result, ok := final.(Program)
	if !ok {
		return m, fmt.Errorf("unexpected chooser model %T", final)
	}
	return result.M, nil
}
