package pagination

import (
	core "github.com/rshade/pagekit/internal/pagination"
)

// PageMeta contains metadata about the selected page of a paginated result.
// FirstItem and LastItem are 1-based and both zero when the page is empty.
type PageMeta struct {
	CurrentPage  int   `json:"current_page"  yaml:"current_page"`
	PageSize     int   `json:"page_size"     yaml:"page_size"`
	TotalPages   int   `json:"total_pages"   yaml:"total_pages"`
	TotalItems   int   `json:"total_items"   yaml:"total_items"`
	HasPrevious  bool  `json:"has_previous"  yaml:"has_previous"`
	HasNext      bool  `json:"has_next"      yaml:"has_next"`
	FirstItem    int   `json:"first_item"    yaml:"first_item"`
	LastItem     int   `json:"last_item"     yaml:"last_item"`
	VisiblePages []int `json:"visible_pages" yaml:"visible_pages"`
	FullMode     bool  `json:"full_mode"     yaml:"full_mode"`
}

// NewPageMeta creates page metadata from a model snapshot.
func NewPageMeta(s core.State) PageMeta {
	meta := PageMeta{
		CurrentPage:  s.SelectedPage,
		PageSize:     s.ItemsPerPage,
		TotalPages:   s.PagesCount,
		TotalItems:   s.TotalCount,
		HasPrevious:  s.HasPrevious,
		HasNext:      s.HasNext,
		VisiblePages: s.VisiblePages,
		FullMode:     s.FullMode,
	}
	if s.ItemEnd > s.ItemStart {
		meta.FirstItem = s.ItemStart + 1
		meta.LastItem = s.ItemEnd
	}
	return meta
}
