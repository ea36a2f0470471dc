package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagekit/internal/pagination"
)

// Page bar control labels.
const (
	labelFirst = "«"
	labelPrev  = "‹"
	labelNext  = "›"
	labelLast  = "»"
)

type segmentKind int

const (
	segmentNav segmentKind = iota
	segmentNavDisabled
	segmentPage
	segmentActivePage
)

type pageBarSegment struct {
	label string
	kind  segmentKind
}

// pageBarSegments lays out the page bar for s. It returns nil when there is
// nothing to paginate.
func pageBarSegments(s pagination.State) []pageBarSegment {
	if !s.Any {
		return nil
	}

	nav := func(label string, enabled bool) pageBarSegment {
		if enabled {
			return pageBarSegment{label: label, kind: segmentNav}
		}
		return pageBarSegment{label: label, kind: segmentNavDisabled}
	}

	segments := make([]pageBarSegment, 0, len(s.VisiblePages)+4) //nolint:mnd // Four navigation controls.
	if s.FullMode {
		segments = append(segments, nav(labelFirst, s.HasPrevious))
	}
	segments = append(segments, nav(labelPrev, s.HasPrevious))
	for _, p := range s.VisiblePages {
		kind := segmentPage
		if p == s.SelectedPage {
			kind = segmentActivePage
		}
		segments = append(segments, pageBarSegment{label: strconv.Itoa(p), kind: kind})
	}
	segments = append(segments, nav(labelNext, s.HasNext))
	if s.FullMode {
		segments = append(segments, nav(labelLast, s.HasNext))
	}
	return segments
}

// PageBarText renders the page bar without styling, for example
// "« ‹ 3 4 [5] 6 7 › »". It returns "" when there are no items.
func PageBarText(s pagination.State) string {
	segments := pageBarSegments(s)
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.kind == segmentActivePage {
			parts = append(parts, "["+seg.label+"]")
			continue
		}
		parts = append(parts, seg.label)
	}
	return strings.Join(parts, " ")
}

// RenderPageBar renders the styled page bar. When the bar does not fit in
// width columns it falls back to a compact "5/10" indicator. A width of 0
// disables the check.
func RenderPageBar(s pagination.State, width int) string {
	segments := pageBarSegments(s)
	if len(segments) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(segments))
	for _, seg := range segments {
		rendered = append(rendered, segmentStyle(seg.kind).Render(seg.label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)

	if width > 0 && lipgloss.Width(bar) > width {
		return compactIndicator(s)
	}
	return bar
}

func segmentStyle(kind segmentKind) lipgloss.Style {
	switch kind {
	case segmentActivePage:
		return ActivePageStyle
	case segmentNavDisabled:
		return DisabledNavStyle
	case segmentNav:
		return NavControlStyle
	default:
		return PageStyle
	}
}

// compactIndicator renders the selected page as "page/pages" with the
// bubbles paginator.
func compactIndicator(s pagination.State) string {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = s.ItemsPerPage
	p.SetTotalPages(s.TotalCount)
	p.Page = min(max(s.SelectedPage-1, 0), max(p.TotalPages-1, 0))
	return InfoStyle.Render(p.View())
}
