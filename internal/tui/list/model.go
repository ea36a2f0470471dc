package list

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to centre the cursor in the viewport.
const halfViewportDivisor = 2

// RenderFunc renders one item. index is the item's position on the page;
// selected is true for the row under the cursor.
type RenderFunc[T any] func(index int, item T, selected bool) string

// KeyMap holds the cursor bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns the cursor bindings, including vim keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom: key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
	}
}

// PageListModel shows the items of the selected page with a cursor.
type PageListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	// cursor is the selected row on the page (0-based).
	cursor int

	// visibleFrom and visibleTo bound the rendered rows, visibleTo exclusive.
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// NewPageListModel creates a list showing items in a viewport of height rows.
func NewPageListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *PageListModel[T] {
	m := &PageListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		height:     height,
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *PageListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles cursor keys and resizes.
func (m *PageListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *PageListModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Top):
		m.SetCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.SetCursor(len(m.items) - 1)
	}
}

// updateVisibleRange keeps the cursor inside the viewport, centred where
// the page allows it.
func (m *PageListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 || m.height <= 0 {
		m.visibleFrom = 0
		m.visibleTo = min(len(m.items), max(m.height, 0))
		return
	}

	from := m.cursor - m.height/halfViewportDivisor
	from = min(from, len(m.items)-m.height)
	from = max(from, 0)

	m.visibleFrom = from
	m.visibleTo = min(from+m.height, len(m.items))
}

// View renders the rows inside the viewport.
func (m *PageListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(i, m.items[i], i == m.cursor))
	}
	return sb.String()
}

// SetItems replaces the page's items and moves the cursor to the first row.
func (m *PageListModel[T]) SetItems(items []T) {
	m.items = items
	m.cursor = 0
	m.updateVisibleRange()
}

// SetSize changes the viewport dimensions.
func (m *PageListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// SetCursor moves the cursor, capping it to the page's rows.
func (m *PageListModel[T]) SetCursor(index int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(index, 0), len(m.items)-1)
	m.updateVisibleRange()
}

// Cursor returns the selected row on the page.
func (m *PageListModel[T]) Cursor() int {
	return m.cursor
}

// ItemCount returns the number of items on the page.
func (m *PageListModel[T]) ItemCount() int {
	return len(m.items)
}

// VisibleFrom returns the first rendered row (inclusive).
func (m *PageListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last rendered row (exclusive).
func (m *PageListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *PageListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *PageListModel[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or nil for an empty page.
func (m *PageListModel[T]) SelectedItem() *T {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}
