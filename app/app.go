package app

import (
	"github.com/Guerrilla-Interactive/nextgen-ignore/app/ignore"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenMode Screen = iota
	ScreenLoading
	ScreenPick
	ScreenDone
)

// Mode is one way of regenerating an existing ignore file.
type Mode struct {
	Label       string
	Description string
	KeepCurrent bool // Pre-select from the existing file instead of detecting
	Override    bool // Drop the custom rules block
}

// Modes offered when the output file already exists.
var Modes = []Mode{
	{
		Label:       "Update",
		Description: "Start from the templates recorded in the file and keep your custom rules.",
		KeepCurrent: true,
	},
	{
		Label:       "Regenerate",
		Description: "Detect templates again from this machine and project, keep your custom rules.",
	},
	{
		Label:       "Override",
		Description: "Detect templates again and drop everything, custom rules included.",
		Override:    true,
	},
}

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen Screen

	// Output file and what we know about it.
	OutputPath     string
	FileExists     bool
	Platform       string
	RecognizedPkgs []string

	// Mode screen.
	ModeIndex   int
	KeepCurrent bool
	Override    bool

	// Picker screen.
	Entries   []ignore.Entry
	Cursor    int // Index into the filtered list
	Filter    textinput.Model
	Paginator paginator.Model
	Filtering bool // Whether keystrokes go to the filter input

	// Result.
	Chosen  []string
	Aborted bool
	Err     error

	TerminalWidth  int
	TerminalHeight int
}

// Styles shared by the TUI and the plain CLI output.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5f00d7")).Padding(0, 1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	PickedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2).Margin(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
)
