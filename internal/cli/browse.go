package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/ingest"
	"github.com/rshade/pagekit/internal/logging"
	"github.com/rshade/pagekit/internal/observable"
	"github.com/rshade/pagekit/internal/tui"
)

// fallbackTerminalWidth is used for styled output when stdout has no size.
const fallbackTerminalWidth = 80

type browseOptions struct {
	params  *pagination.Params
	format  string
	title   string
	plain   bool
	noColor bool
}

// NewBrowseCmd creates the browse command, which pages through items read
// from files or stdin.
func NewBrowseCmd() *cobra.Command {
	opts := &browseOptions{
		params: pagination.NewParams(config.GetPaginationDefaults()),
	}

	cmd := &cobra.Command{
		Use:   "browse [files...]",
		Short: "Page through items from files or stdin",
		Long: `Loads items from the given files (or stdin when none are given, or for "-")
and shows them one page at a time.

Text files contribute one item per line. JSON files must hold an array and
YAML files a sequence; non-string elements are shown as compact JSON.

On a terminal an interactive pager opens. Otherwise the selected page is
printed with its page bar and a status line.`,
		Example: `  # Browse a text file
  pagekit browse items.txt

  # Browse several files, forcing JSON decoding
  pagekit browse --format json a.txt b.txt

  # Print page 2 without the interactive pager
  pagekit browse --plain --page 2 items.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args, opts)
		},
	}

	pagination.AddFlags(cmd, opts.params)
	cmd.Flags().StringVar(&opts.format, "format", string(ingest.FormatAuto), "input format: auto, lines, json or yaml")
	cmd.Flags().StringVar(&opts.title, "title", "", "title shown above the pager (default: the first file name)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print plain text instead of opening the pager")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string, opts *browseOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := opts.params.Validate(); err != nil {
		return err
	}

	format, err := ingest.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	items, err := ingest.Loader{Format: format, Stdin: cmd.InOrStdin()}.Load(ctx, args)
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}

	items, err = pagination.ApplySort(pagination.NewLineSorter(), items, opts.params.Sort)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(false, opts.noColor, opts.plain)
	if cmd.OutOrStdout() != io.Writer(os.Stdout) {
		mode = tui.OutputModePlain
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "browse").
		Int("items", len(items)).
		Stringer("output_mode", mode).
		Msg("items loaded")

	if mode == tui.OutputModeInteractive {
		return runInteractiveBrowse(ctx, browseTitle(opts.title, args), items, opts.params)
	}
	return renderBrowsePage(ctx, cmd.OutOrStdout(), mode, items, opts.params)
}

func browseTitle(title string, args []string) string {
	switch {
	case title != "":
		return title
	case len(args) == 0 || args[0] == ingest.StdinPath:
		return "stdin"
	case len(args) == 1:
		return args[0]
	default:
		return fmt.Sprintf("%s (+%d more)", args[0], len(args)-1)
	}
}

// runInteractiveBrowse runs the pager until the user quits.
func runInteractiveBrowse(ctx context.Context, title string, items []string, params *pagination.Params) error {
	model, err := tui.NewPagerModel(ctx, title, items, tui.PagerOptions{
		FullMode:          params.Full,
		ItemsPerPage:      params.PageSize,
		MaxDisplayedPages: params.MaxPages,
		StartPage:         params.Page,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// renderBrowsePage prints the selected page once. A page past the end is
// moved to the last page.
func renderBrowsePage(
	ctx context.Context,
	w io.Writer,
	mode tui.OutputMode,
	items []string,
	params *pagination.Params,
) error {
	selected := observable.NewCell(0)
	total := observable.NewCell(len(items))

	model, err := params.NewModel(selected, total, nil)
	if err != nil {
		return err
	}
	if model.Clamp() {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "cli").
			Int("requested_page", params.Page).
			Int("page", model.SelectedPage()).
			Msg("requested page out of range, showing last page")
	}

	if mode == tui.OutputModeStyled {
		return tui.RenderStyled(w, model, items, tui.TerminalWidth(fallbackTerminalWidth))
	}
	return tui.RenderPlain(w, model, items)
}
