package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

// Output modes, from richest to simplest.
const (
	// OutputModePlain writes unstyled text, suitable for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without taking over the terminal.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea pager.
	OutputModeInteractive
)

// String returns the mode name used in logs.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	case OutputModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// terminalProbe reports whether stdin and stdout are terminals.
type terminalProbe func() (stdin, stdout bool)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func probeStdio() (bool, bool) {
	return isTerminal(os.Stdin), isTerminal(os.Stdout)
}

// DetectOutputMode picks the output mode for the current process.
//
// plain forces OutputModePlain. noColor, NO_COLOR and TERM=dumb disable
// styling. forceColor selects OutputModeStyled even when stdout is not a
// terminal. The interactive pager needs both stdin and stdout on a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, os.LookupEnv, probeStdio)
}

func detectOutputMode(
	forceColor, noColor, plain bool,
	lookupEnv func(string) (string, bool),
	probe terminalProbe,
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}

	stdinTTY, stdoutTTY := probe()
	switch {
	case stdinTTY && stdoutTTY:
		return OutputModeInteractive
	case stdoutTTY, forceColor:
		return OutputModeStyled
	default:
		return OutputModePlain
	}
}

// TerminalWidth returns the width of stdout, or fallback when it is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
