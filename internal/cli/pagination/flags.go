package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/pagekit/internal/config"
	"github.com/rshade/pagekit/internal/observable"
	core "github.com/rshade/pagekit/internal/pagination"
)

// Validation limits and sort defaults.
const (
	MinPage          = 1
	MinPageSize      = 1
	MaxPageSize      = 10000
	MinMaxPages      = 1
	MaxMaxPages      = 99
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 10000")
	ErrInvalidMaxPages   = errors.New("max-pages must be between 1 and 99")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'length:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the pagination flags shared by pagekit commands.
type Params struct {
	// Page is the 1-based page to start on.
	Page int

	// PageSize is the number of items per page.
	PageSize int

	// MaxPages is how many page numbers the page bar shows at most.
	MaxPages int

	// Full enables the first/last controls.
	Full bool

	// Sort is an optional "field" or "field:order" expression.
	Sort string
}

// NewParams creates Params seeded from the configured defaults.
func NewParams(defaults config.PaginationConfig) *Params {
	return &Params{
		Page:     MinPage,
		PageSize: defaults.ItemsPerPage,
		MaxPages: defaults.MaxDisplayedPages,
		Full:     defaults.FullMode,
		Sort:     DefaultSortField,
	}
}

// AddFlags registers the pagination flags on cmd, bound to p. Call after p
// has been seeded so the help text shows the configured defaults.
func AddFlags(cmd *cobra.Command, p *Params) {
	cmd.Flags().IntVar(&p.Page, "page", p.Page, "page to start on (1-based)")
	cmd.Flags().IntVar(&p.PageSize, "page-size", p.PageSize, "items per page")
	cmd.Flags().IntVar(&p.MaxPages, "max-pages", p.MaxPages, "maximum page numbers shown in the page bar")
	cmd.Flags().BoolVar(&p.Full, "full", p.Full, "show first/last page controls")
	cmd.Flags().StringVar(&p.Sort, "sort", p.Sort, "sort items before paging: text or length, optionally :asc or :desc")
}

// Validate checks that the parameters are in range (value receiver).
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.MaxPages < MinMaxPages || p.MaxPages > MaxMaxPages {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxPages, p.MaxPages)
	}
	if p.Sort != "" {
		if _, _, err := ParseSort(p.Sort); err != nil {
			return err
		}
	}
	return nil
}

// NewModel builds a pagination model for these parameters over the given
// cells. The selected cell is set to Page before the model is returned.
func (p Params) NewModel(
	selected, total *observable.Cell[int],
	onPageClick func(),
) (*core.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if selected != nil {
		selected.Set(p.Page)
	}
	return core.New(core.Params{
		FullMode:           p.Full,
		ItemsPerPage:       p.PageSize,
		MaxDisplayedPages:  p.MaxPages,
		OnPageClick:        onPageClick,
		SelectedPageNumber: selected,
		TotalCount:         total,
	})
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "text", "length:desc".
// Returns the field name and order, or an error if invalid.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
