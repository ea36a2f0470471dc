package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagekit/internal/observable"
	"github.com/rshade/pagekit/internal/pagination"
)

func snapshot(t *testing.T, selected, total, perPage, maxPages int, full bool) pagination.State {
	t.Helper()
	m, err := pagination.New(pagination.Params{
		FullMode:           full,
		ItemsPerPage:       perPage,
		MaxDisplayedPages:  maxPages,
		SelectedPageNumber: observable.NewCell(selected),
		TotalCount:         observable.NewCell(total),
	})
	require.NoError(t, err)
	return m.Snapshot()
}

func TestPageBarText(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		full     bool
		want     string
	}{
		{"full mode middle", 5, 95, true, "« ‹ 3 4 [5] 6 7 › »"},
		{"compact mode middle", 5, 95, false, "‹ 3 4 [5] 6 7 ›"},
		{"first page", 1, 95, true, "« ‹ [1] 2 3 › »"},
		{"last page", 10, 95, false, "‹ 8 9 [10] ›"},
		{"single page", 1, 4, true, "« ‹ [1] › »"},
		{"no items", 1, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageBarText(snapshot(t, tt.selected, tt.total, 10, 5, tt.full)))
		})
	}
}

func TestPageBarSegments_DisabledControls(t *testing.T) {
	segments := pageBarSegments(snapshot(t, 1, 30, 10, 5, true))
	require.NotEmpty(t, segments)

	assert.Equal(t, segmentNavDisabled, segments[0].kind, "first is disabled on page 1")
	assert.Equal(t, segmentNavDisabled, segments[1].kind, "prev is disabled on page 1")
	assert.Equal(t, segmentActivePage, segments[2].kind)
	assert.Equal(t, segmentNav, segments[len(segments)-1].kind, "last is enabled")
}

func TestRenderPageBar(t *testing.T) {
	s := snapshot(t, 5, 95, 10, 5, true)

	wide := RenderPageBar(s, 200)
	assert.Contains(t, wide, "«")
	assert.Contains(t, wide, "7")
	assert.NotContains(t, wide, "5/10")

	narrow := RenderPageBar(s, 6)
	assert.Contains(t, narrow, "5/10")
	assert.NotContains(t, narrow, "«")

	assert.Empty(t, RenderPageBar(snapshot(t, 1, 0, 10, 5, true), 80))
}

func TestDefaultKeyMap(t *testing.T) {
	full := DefaultKeyMap(true)
	assert.True(t, full.First.Enabled())
	assert.True(t, full.Last.Enabled())

	compact := DefaultKeyMap(false)
	assert.False(t, compact.First.Enabled())
	assert.False(t, compact.Last.Enabled())
	assert.True(t, compact.Next.Enabled())

	assert.Len(t, compact.ShortHelp(), 5)
	assert.Len(t, compact.FullHelp(), 2)
}
