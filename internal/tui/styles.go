package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent   = lipgloss.Color("99")
	colorSelected = lipgloss.Color("57")
	colorBright   = lipgloss.Color("229")
	colorMuted    = lipgloss.Color("241")
	colorDisabled = lipgloss.Color("238")
	colorError    = lipgloss.Color("203")
	colorValue    = lipgloss.Color("252")
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared by all views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	InfoStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	ValueStyle  = lipgloss.NewStyle().Foreground(colorValue).Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(colorError)
	SubtleStyle = lipgloss.NewStyle().Faint(true)

	// Page bar.
	PageStyle        = lipgloss.NewStyle().Padding(0, 1)
	ActivePageStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorBright).Background(colorSelected)
	NavControlStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(colorAccent)
	DisabledNavStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDisabled)
	PageBarStyle     = lipgloss.NewStyle().MarginTop(1)
	SelectedRowStyle = lipgloss.NewStyle().Foreground(colorBright).Background(colorSelected)
	GotoPromptStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
