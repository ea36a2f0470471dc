package pagination

// State is a point-in-time copy of every value a page bar renders.
type State struct {
	FullMode          bool  `json:"full_mode"           yaml:"full_mode"`
	ItemsPerPage      int   `json:"items_per_page"      yaml:"items_per_page"`
	MaxDisplayedPages int   `json:"max_displayed_pages" yaml:"max_displayed_pages"`
	SelectedPage      int   `json:"selected_page"       yaml:"selected_page"`
	TotalCount        int   `json:"total_count"         yaml:"total_count"`
	PagesCount        int   `json:"pages_count"         yaml:"pages_count"`
	Any               bool  `json:"any"                 yaml:"any"`
	HasPrevious       bool  `json:"has_previous"        yaml:"has_previous"`
	HasNext           bool  `json:"has_next"            yaml:"has_next"`
	VisiblePages      []int `json:"visible_pages"       yaml:"visible_pages"`
	ItemStart         int   `json:"item_start"          yaml:"item_start"`
	ItemEnd           int   `json:"item_end"            yaml:"item_end"`
}

// Snapshot captures the model's current derived values.
func (m *Model) Snapshot() State {
	start, end := m.Bounds()
	return State{
		FullMode:          m.fullMode,
		ItemsPerPage:      m.itemsPerPage,
		MaxDisplayedPages: m.maxDisplayedPages,
		SelectedPage:      m.selected.Get(),
		TotalCount:        m.total.Get(),
		PagesCount:        m.PagesCount(),
		Any:               m.Any(),
		HasPrevious:       m.HasPrevious(),
		HasNext:           m.HasNext(),
		VisiblePages:      m.VisiblePages(),
		ItemStart:         start,
		ItemEnd:           end,
	}
}

// Slice returns the portion of items shown on the model's selected page.
// The model's total count is expected to equal len(items).
func Slice[T any](m *Model, items []T) []T {
	start, end := m.Bounds()
	start = min(start, len(items))
	end = min(end, len(items))
	return items[start:end]
}
