package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagekit/internal/cli/pagination"
	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/logging"
	"github.com/rshade/pagekit/internal/observable"
	"github.com/rshade/pagekit/internal/tui"
)

// tabPadding is the column gap of table output.
const tabPadding = 2

// ErrNegativeTotal is returned when --total is below zero.
var ErrNegativeTotal = errors.New("total must be >= 0")

// NewPagesCmd creates the pages command, which prints the page metadata for
// a given item count without loading any items.
func NewPagesCmd() *cobra.Command {
	var (
		total        int
		outputFormat string
	)
	params := pagination.NewParams(config.GetPaginationDefaults())

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Print page metadata for a number of items",
		Long: `Computes the pages needed for --total items and prints the metadata of the
selected page: page count, item range, neighbours and the visible page numbers.`,
		Example: `  # Metadata for page 5 of 95 items, 10 per page
  pagekit pages --total 95 --page 5 --page-size 10

  # Same, as JSON
  pagekit pages --total 95 --page 5 --page-size 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if total < 0 {
				return fmt.Errorf("%w: got %d", ErrNegativeTotal, total)
			}
			return runPages(cmd, params, total, config.GetOutputFormat(outputFormat))
		},
	}

	pagination.AddFlags(cmd, params)
	cmd.Flags().IntVar(&total, "total", 0, "number of items to paginate")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml (default from config)")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func runPages(cmd *cobra.Command, params *pagination.Params, total int, outputFormat string) error {
	ctx := cmd.Context()

	model, err := params.NewModel(observable.NewCell(0), observable.NewCell(total), nil)
	if err != nil {
		return err
	}
	if model.Clamp() {
		logging.FromContext(ctx).Warn().
			Ctx(ctx).
			Str("component", "cli").
			Int("requested_page", params.Page).
			Int("page", model.SelectedPage()).
			Msg("requested page out of range, reporting last page")
	}
	state := model.Snapshot()
	meta := pagination.NewPageMeta(state)

	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "pages").
		Int("total", total).
		Int("pages", meta.TotalPages).
		Str("output", outputFormat).
		Msg("page metadata computed")

	w := cmd.OutOrStdout()
	switch outputFormat {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Two-space YAML indentation.
		if err = enc.Encode(meta); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case config.OutputTable:
		return renderPageMetaTable(w, meta, tui.PageBarText(state))
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", outputFormat)
	}
}

func renderPageMetaTable(w io.Writer, meta pagination.PageMeta, bar string) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	itemRange := "-"
	if meta.FirstItem > 0 {
		itemRange = p.Sprintf("%d-%d", meta.FirstItem, meta.LastItem)
	}
	visible := make([]string, 0, len(meta.VisiblePages))
	for _, page := range meta.VisiblePages {
		visible = append(visible, p.Sprintf("%d", page))
	}

	rows := [][2]string{
		{"Page", p.Sprintf("%d of %d", meta.CurrentPage, meta.TotalPages)},
		{"Page size", p.Sprintf("%d", meta.PageSize)},
		{"Total items", p.Sprintf("%d", meta.TotalItems)},
		{"Items", itemRange},
		{"Has previous", yesNo(meta.HasPrevious)},
		{"Has next", yesNo(meta.HasNext)},
		{"Visible pages", strings.Join(visible, " ")},
	}
	if bar != "" {
		rows = append(rows, [2]string{"Page bar", bar})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
