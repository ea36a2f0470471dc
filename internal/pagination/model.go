package pagination

import (
	"errors"

	"github.com/rshade/pagekit/internal/observable"
)

// FirstPageNumber is the number of the first page; pages are 1-indexed.
const FirstPageNumber = 1

// Construction errors.
var (
	ErrInvalidItemsPerPage      = errors.New("items per page must be greater than 0")
	ErrInvalidMaxDisplayedPages = errors.New("max displayed pages must be greater than 0")
	ErrNilCell                  = errors.New("selected page and total count cells are required")
)

// Params holds the construction parameters of a Model.
type Params struct {
	// FullMode determines whether to display the first/last controls.
	FullMode bool

	// ItemsPerPage is the number of items displayed on each page.
	ItemsPerPage int

	// MaxDisplayedPages is how many page numbers may be visible while navigating.
	MaxDisplayedPages int

	// OnPageClick is called after every navigation action. Nil means no-op.
	OnPageClick func()

	// SelectedPageNumber is the 1-based selected page, owned by the caller.
	SelectedPageNumber *observable.Cell[int]

	// TotalCount is the number of items being paginated, owned by the caller.
	TotalCount *observable.Cell[int]
}

// Validate checks that the parameters describe a usable model.
func (p Params) Validate() error {
	if p.ItemsPerPage <= 0 {
		return ErrInvalidItemsPerPage
	}
	if p.MaxDisplayedPages <= 0 {
		return ErrInvalidMaxDisplayedPages
	}
	if p.SelectedPageNumber == nil || p.TotalCount == nil {
		return ErrNilCell
	}
	return nil
}

// Model is a pagination control bound to a selected-page cell and a
// total-count cell.
type Model struct {
	fullMode          bool
	itemsPerPage      int
	maxDisplayedPages int
	onPageClick       func()
	selected          *observable.Cell[int]
	total             *observable.Cell[int]
}

// New creates a Model from params. The cells are stored as-is, not copied.
func New(params Params) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	onPageClick := params.OnPageClick
	if onPageClick == nil {
		onPageClick = func() {}
	}

	return &Model{
		fullMode:          params.FullMode,
		itemsPerPage:      params.ItemsPerPage,
		maxDisplayedPages: params.MaxDisplayedPages,
		onPageClick:       onPageClick,
		selected:          params.SelectedPageNumber,
		total:             params.TotalCount,
	}, nil
}

// FullMode reports whether first/last controls should be displayed.
func (m *Model) FullMode() bool {
	return m.fullMode
}

// ItemsPerPage returns the configured page size.
func (m *Model) ItemsPerPage() int {
	return m.itemsPerPage
}

// MaxDisplayedPages returns the configured width of the page-number window.
func (m *Model) MaxDisplayedPages() int {
	return m.maxDisplayedPages
}

// SelectedPage returns the current value of the selected-page cell.
func (m *Model) SelectedPage() int {
	return m.selected.Get()
}

// TotalCount returns the current value of the total-count cell.
func (m *Model) TotalCount() int {
	return m.total.Get()
}

// Any reports whether there is at least one item.
func (m *Model) Any() bool {
	return m.total.Get() > 0
}

// PagesCount returns the number of pages needed for the total count.
func (m *Model) PagesCount() int {
	total := m.total.Get()
	if total < 0 {
		return floorDiv(total+m.itemsPerPage-1, m.itemsPerPage)
	}
	pages := total / m.itemsPerPage
	if total%m.itemsPerPage != 0 {
		pages++
	}
	return pages
}

// HasNext reports whether the selected page is before the last page.
func (m *Model) HasNext() bool {
	return m.selected.Get() < m.PagesCount()
}

// HasPrevious reports whether the selected page is after the first page.
func (m *Model) HasPrevious() bool {
	return m.selected.Get() > FirstPageNumber
}

// IsActive reports whether pageNumber is the selected page.
func (m *Model) IsActive(pageNumber int) bool {
	return m.selected.Get() == pageNumber
}

// IsVisible reports whether pageNumber lies strictly inside the window of
// MaxDisplayedPages/2 pages on either side of the selected page. The half
// width is exact, so an odd MaxDisplayedPages shows that many pages and an
// even one shows one fewer.
func (m *Model) IsVisible(pageNumber int) bool {
	// |p - sel| < max/2 holds exactly when |p - sel| <= (max-1)/2.
	return distance(pageNumber, m.selected.Get()) <= uint(m.halfWindow())
}

// halfWindow is the largest distance from the selected page that is visible.
func (m *Model) halfWindow() int {
	return (m.maxDisplayedPages - 1) / 2 //nolint:mnd // Half of the window.
}

// VisiblePages returns, in ascending order, the existing pages for which
// IsVisible holds.
func (m *Model) VisiblePages() []int {
	pages := m.PagesCount()
	selected := m.selected.Get()
	half := m.halfWindow()

	from, to := FirstPageNumber, pages
	if selected > from+half {
		from = selected - half
	}
	if selected < to-half {
		to = selected + half
	}
	if to < from {
		return []int{}
	}

	visible := make([]int, 0, to-from+1)
	for i := 0; i <= to-from; i++ {
		visible = append(visible, from+i)
	}
	return visible
}

// Bounds returns the zero-based, half-open item range [start, end) shown on
// the selected page, clipped to the total count.
//
//nolint:nonamedreturns // Named returns document the range ends.
func (m *Model) Bounds() (start, end int) {
	total := max(0, m.total.Get())
	selected := max(FirstPageNumber, m.selected.Get())

	if selected-1 > total/m.itemsPerPage {
		return total, total
	}
	start = (selected - 1) * m.itemsPerPage
	end = start + min(m.itemsPerPage, total-start)
	return start, end
}

// ChangePage selects pageNumber and then invokes OnPageClick.
func (m *Model) ChangePage(pageNumber int) {
	m.selected.Set(pageNumber)
	m.onPageClick()
}

// NextPage advances the selected page by one and then invokes OnPageClick.
func (m *Model) NextPage() {
	m.selected.Set(m.selected.Get() + 1)
	m.onPageClick()
}

// PreviousPage moves the selected page back by one and then invokes OnPageClick.
func (m *Model) PreviousPage() {
	m.selected.Set(m.selected.Get() - 1)
	m.onPageClick()
}

// FirstPage navigates to page 1.
func (m *Model) FirstPage() {
	m.ChangePage(FirstPageNumber)
}

// LastPage navigates to the last page, or page 1 when there are no items.
func (m *Model) LastPage() {
	m.ChangePage(max(FirstPageNumber, m.PagesCount()))
}

// Clamp moves the selected page into [1, max(1, PagesCount())] and reports
// whether it changed. It does not invoke OnPageClick.
func (m *Model) Clamp() bool {
	selected := m.selected.Get()
	clamped := min(max(selected, FirstPageNumber), max(FirstPageNumber, m.PagesCount()))
	if clamped == selected {
		return false
	}
	m.selected.Set(clamped)
	return true
}

// distance returns |a - b| without overflowing.
func distance(a, b int) uint {
	if a >= b {
		return uint(a) - uint(b)
	}
	return uint(b) - uint(a)
}

// floorDiv divides rounding toward negative infinity. d must be positive.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
