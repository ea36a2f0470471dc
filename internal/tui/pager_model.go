package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagekit/internal/logging"
	"github.com/rshade/pagekit/internal/observable"
	"github.com/rshade/pagekit/internal/pagination"
	"github.com/rshade/pagekit/internal/tui/detail"
	"github.com/rshade/pagekit/internal/tui/list"
)

// Layout defaults used until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// chromeLines is the number of rows used by everything except the list:
	// title, blank line, page bar (with margin), status and help.
	chromeLines = 6

	gotoCharLimit = 9
	gotoWidth     = 10
)

// ErrInvalidPageNumber is shown when the go-to prompt gets a page that does not exist.
var ErrInvalidPageNumber = errors.New("no such page")

// PagerOptions configures a PagerModel.
type PagerOptions struct {
	FullMode          bool
	ItemsPerPage      int
	MaxDisplayedPages int

	// StartPage is the page selected when the pager opens. Values outside
	// the available pages are clamped.
	StartPage int
}

// PagerModel is the Bubble Tea model of the interactive pager. It owns the
// selected-page and total-count cells behind its pagination.Model.
type PagerModel struct {
	ctx   context.Context
	title string
	items []string

	selected *observable.Cell[int]
	total    *observable.Cell[int]
	pager    *pagination.Model
	list     *list.PageListModel[string]

	keys      KeyMap
	help      help.Model
	gotoInput textinput.Model
	showGoto  bool
	gotoErr   error

	// detail is non-nil while a single item is open.
	detail *detail.Model

	printer     *message.Printer
	unsubscribe func()

	width    int
	height   int
	quitting bool
}

// NewPagerModel creates a pager over items.
func NewPagerModel(ctx context.Context, title string, items []string, opts PagerOptions) (*PagerModel, error) {
	m := &PagerModel{
		ctx:       ctx,
		title:     title,
		items:     items,
		selected:  observable.NewCell(max(opts.StartPage, pagination.FirstPageNumber)),
		total:     observable.NewCell(len(items)),
		keys:      DefaultKeyMap(opts.FullMode),
		help:      help.New(),
		gotoInput: newGotoInput(),
		printer:   message.NewPrinter(language.English),
		width:     defaultWidth,
		height:    defaultHeight,
	}

	pager, err := pagination.New(pagination.Params{
		FullMode:           opts.FullMode,
		ItemsPerPage:       opts.ItemsPerPage,
		MaxDisplayedPages:  opts.MaxDisplayedPages,
		OnPageClick:        m.onPageClick,
		SelectedPageNumber: m.selected,
		TotalCount:         m.total,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pager: %w", err)
	}
	m.pager = pager
	m.pager.Clamp()

	m.list = list.NewPageListModel(pagination.Slice(m.pager, m.items), m.listHeight(), m.width, m.renderRow)
	m.unsubscribe = m.total.Subscribe(func(_, _ int) {
		m.pager.Clamp()
		m.refresh()
	})

	return m, nil
}

func newGotoInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "Go to page: "
	ti.Placeholder = "number"
	ti.CharLimit = gotoCharLimit
	ti.Width = gotoWidth
	return ti
}

// onPageClick runs after every navigation action.
func (m *PagerModel) onPageClick() {
	m.refresh()
	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "page_change").
		Int("page", m.pager.SelectedPage()).
		Int("pages", m.pager.PagesCount()).
		Msg("page changed")
}

// refresh re-slices the list to the selected page.
func (m *PagerModel) refresh() {
	m.list.SetItems(pagination.Slice(m.pager, m.items))
}

func (m *PagerModel) listHeight() int {
	return max(m.height-chromeLines, 1)
}

func (m *PagerModel) renderRow(index int, item string, selected bool) string {
	start, _ := m.pager.Bounds()
	row := fmt.Sprintf("%*d  %s", len(strconv.Itoa(m.pager.TotalCount())), start+index+1, item)
	if selected {
		return SelectedRowStyle.Render(row)
	}
	return row
}

// SetItems replaces the paginated items. The total-count cell is updated,
// which clamps the selected page when the new items need fewer pages.
func (m *PagerModel) SetItems(items []string) {
	m.items = items
	m.total.Set(len(items))
	m.refresh()
}

// Pagination returns the underlying pagination model.
func (m *PagerModel) Pagination() *pagination.Model {
	return m.pager
}

// List returns the list showing the selected page.
func (m *PagerModel) List() *list.PageListModel[string] {
	return m.list
}

// Close releases the pager's subscription to its total-count cell.
func (m *PagerModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (m *PagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.help.Width = winMsg.Width
		m.list.SetSize(m.width, m.listHeight())
		if m.detail != nil {
			m.detail.SetWidth(m.width)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.showGoto {
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case m.showGoto:
		return m.handleGotoInput(keyMsg)
	case m.detail != nil:
		return m.handleDetailKey(keyMsg)
	default:
		return m.handleKey(keyMsg)
	}
}

func (m *PagerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		if m.pager.HasNext() {
			m.pager.NextPage()
		}
	case key.Matches(msg, m.keys.Prev):
		if m.pager.HasPrevious() {
			m.pager.PreviousPage()
		}
	case key.Matches(msg, m.keys.First):
		if m.pager.HasPrevious() {
			m.pager.FirstPage()
		}
	case key.Matches(msg, m.keys.Last):
		if m.pager.HasNext() {
			m.pager.LastPage()
		}
	case key.Matches(msg, m.keys.Goto):
		if m.pager.Any() {
			m.showGoto = true
			m.gotoErr = nil
			m.gotoInput.Reset()
			return m, m.gotoInput.Focus()
		}
	case key.Matches(msg, m.keys.Open):
		m.openDetail()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		_, cmd := m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *PagerModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.detail = nil
	}
	return m, nil
}

// openDetail shows the item under the cursor in full.
func (m *PagerModel) openDetail() {
	item := m.list.SelectedItem()
	if item == nil {
		return
	}
	start, _ := m.pager.Bounds()
	view := detail.New(*item, start+m.list.Cursor()+1, m.pager.TotalCount(), m.width, HeaderStyle, SubtleStyle)
	m.detail = &view
}

func (m *PagerModel) handleGotoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // Other keys are typed into the prompt.
	case tea.KeyEsc:
		m.closeGoto()
		return m, nil
	case tea.KeyEnter:
		page, err := m.parseGotoPage(m.gotoInput.Value())
		m.closeGoto()
		if err != nil {
			m.gotoErr = err
			return m, nil
		}
		m.pager.ChangePage(page)
		return m, nil
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *PagerModel) closeGoto() {
	m.showGoto = false
	m.gotoInput.Blur()
}

func (m *PagerModel) parseGotoPage(value string) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPageNumber, value)
	}
	if page < pagination.FirstPageNumber || page > m.pager.PagesCount() {
		return 0, fmt.Errorf("%w: %d (1-%d)", ErrInvalidPageNumber, page, m.pager.PagesCount())
	}
	return page, nil
}

// View implements tea.Model.
func (m *PagerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.detail != nil {
		return m.detail.View()
	}

	state := m.pager.Snapshot()

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(m.title))
	sb.WriteString("\n\n")

	if state.Any {
		sb.WriteString(m.list.View())
		sb.WriteString("\n")
		sb.WriteString(PageBarStyle.Render(RenderPageBar(state, m.width)))
		sb.WriteString("\n")
	}
	sb.WriteString(InfoStyle.Render(StatusLine(m.printer, state)))
	sb.WriteString("\n")

	switch {
	case m.showGoto:
		sb.WriteString(GotoPromptStyle.Render(m.gotoInput.View()))
		sb.WriteString("\n")
	case m.gotoErr != nil:
		sb.WriteString(ErrorStyle.Render(m.gotoErr.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
