package tui

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagekit/internal/pagination"
)

// StatusLine summarizes the selected page, for example
// "Items 41–50 of 95 · Page 5/10". Counts are grouped by p.
func StatusLine(p *message.Printer, s pagination.State) string {
	if !s.Any {
		return "No items"
	}
	if s.ItemStart >= s.ItemEnd {
		return p.Sprintf("No items on page %d · %d pages", s.SelectedPage, s.PagesCount)
	}
	return p.Sprintf("Items %d–%d of %d · Page %d/%d",
		s.ItemStart+1, s.ItemEnd, s.TotalCount, s.SelectedPage, s.PagesCount)
}

// RenderPlain writes the selected page's items, the page bar and the status
// line without styling. Each item is prefixed with its 1-based position.
func RenderPlain(w io.Writer, m *pagination.Model, items []string) error {
	state := m.Snapshot()
	page := pagination.Slice(m, items)
	width := len(strconv.Itoa(state.TotalCount))

	for i, item := range page {
		if _, err := fmt.Fprintf(w, "%*d  %s\n", width, state.ItemStart+i+1, item); err != nil {
			return fmt.Errorf("writing item: %w", err)
		}
	}

	if bar := PageBarText(state); bar != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", bar); err != nil {
			return fmt.Errorf("writing page bar: %w", err)
		}
	}

	printer := message.NewPrinter(language.English)
	if _, err := fmt.Fprintln(w, StatusLine(printer, state)); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return nil
}

// RenderStyled writes the same content as RenderPlain with lipgloss styling,
// for terminals that should not be taken over by the interactive pager.
func RenderStyled(w io.Writer, m *pagination.Model, items []string, width int) error {
	state := m.Snapshot()
	page := pagination.Slice(m, items)
	numWidth := len(strconv.Itoa(state.TotalCount))

	for i, item := range page {
		num := LabelStyle.Render(fmt.Sprintf("%*d", numWidth, state.ItemStart+i+1))
		if _, err := fmt.Fprintf(w, "%s  %s\n", num, ValueStyle.Render(item)); err != nil {
			return fmt.Errorf("writing item: %w", err)
		}
	}

	if bar := RenderPageBar(state, width); bar != "" {
		if _, err := fmt.Fprintln(w, PageBarStyle.Render(bar)); err != nil {
			return fmt.Errorf("writing page bar: %w", err)
		}
	}

	printer := message.NewPrinter(language.English)
	if _, err := fmt.Fprintln(w, InfoStyle.Render(StatusLine(printer, state))); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return nil
}
