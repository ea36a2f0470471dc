package detail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// minWrapWidth keeps wrapping readable on very narrow terminals.
const minWrapWidth = 20

// Model renders one item with its position.
type Model struct {
	item     string
	position int
	total    int
	width    int

	headerStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// New creates a view of item, which is number position (1-based) of total.
func New(item string, position, total, width int, headerStyle, hintStyle lipgloss.Style) Model {
	return Model{
		item:        item,
		position:    position,
		total:       total,
		width:       width,
		headerStyle: headerStyle,
		hintStyle:   hintStyle,
	}
}

// SetWidth changes the wrap width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Item returns the raw item.
func (m Model) Item() string {
	return m.item
}

// Body returns the item as shown: indented JSON when the item is a JSON
// object or array, otherwise the item itself.
func (m Model) Body() string {
	return formatItem(m.item)
}

// View renders the header, the wrapped body and the key hint.
func (m Model) View() string {
	body := lipgloss.NewStyle().Width(max(m.width, minWrapWidth)).Render(m.Body())

	var sb strings.Builder
	sb.WriteString(m.headerStyle.Render(fmt.Sprintf("Item %d of %d", m.position, m.total)))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(m.hintStyle.Render("esc: back"))
	return sb.String()
}

func formatItem(item string) string {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') || !json.Valid([]byte(trimmed)) {
		return item
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return item
	}
	return buf.String()
}
