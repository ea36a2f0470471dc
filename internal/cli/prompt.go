package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user typed "y" or "yes".
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// isInteractive reports whether cmd reads from and writes to a terminal.
func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(out.Fd()))
}

// ConfirmOverwrite asks whether the existing file at path may be replaced.
// Without a terminal it declines without prompting. The prompt defaults to
// "No" when the user presses Enter.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, path string, interactive bool) PromptResult {
	if !interactive {
		return PromptResult{Accepted: false}
	}

	_, _ = fmt.Fprintf(writer, "? %s already exists. Overwrite it? [y/N] ", path)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error (Ctrl+D) declines.
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
