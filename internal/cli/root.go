package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagekit CLI.
// It wires up logging and tracing and registers the browse, pages and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "pagekit",
		Short:   "Paginate lists in the terminal",
		Long:    "pagekit: page through lists of items interactively or print page metadata",
		Version: ver,
		Example: rootCmdExample,
		// main reports the returned error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewBrowseCmd(), NewPagesCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Page through a file, 20 items per page
  pagekit browse items.txt

  # Page through a JSON array, starting on page 3
  pagekit browse --page 3 --page-size 50 items.json

  # Read items from stdin, sorted by length
  ls -1 | pagekit browse --sort length:desc

  # Show metadata for page 5 of 95 items
  pagekit pages --total 95 --page 5 --page-size 10 -o json

  # Initialize configuration
  pagekit config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
