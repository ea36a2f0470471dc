package detail_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/pagekit/internal/tui/detail"
)

func newView(item string, width int) detail.Model {
	return detail.New(item, 3, 10, width, lipgloss.NewStyle(), lipgloss.NewStyle())
}

func TestBody(t *testing.T) {
	tests := []struct {
		name string
		item string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"json object", `{"a":1,"b":[true]}`, "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}"},
		{"json array", `[1,2]`, "[\n  1,\n  2\n]"},
		{"invalid json kept", `{not json`, `{not json`},
		{"json scalar kept", `42`, `42`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newView(tt.item, 80).Body())
		})
	}
}

func TestView(t *testing.T) {
	m := newView("alpha", 80)

	view := m.View()

	assert.Contains(t, view, "Item 3 of 10")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "esc: back")
	assert.Equal(t, "alpha", m.Item())
}

func TestView_WrapsLongItems(t *testing.T) {
	m := newView(strings.Repeat("word ", 20), 80)
	m.SetWidth(25)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 25)
	}
}
