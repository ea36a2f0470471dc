package pagination

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Sort fields understood by LineSorter.
const (
	SortFieldText   = "text"
	SortFieldLength = "length"
)

// Sorter defines the interface for sorting loaded items.
type Sorter interface {
	// Sort returns a sorted copy of items by the specified field and order.
	Sort(items []string, field, order string) []string
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// LineSorter implements Sorter for plain string items.
type LineSorter struct {
	validFields map[string]bool
}

// NewLineSorter creates a new LineSorter with valid sort fields.
func NewLineSorter() *LineSorter {
	return &LineSorter{
		validFields: map[string]bool{
			SortFieldText:   true,
			SortFieldLength: true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *LineSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *LineSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts items by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *LineSorter) Sort(items []string, field, order string) []string {
	if !s.IsValidField(field) {
		return items
	}

	sorted := make([]string, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case SortFieldText:
			return sorted[i] < sorted[j]
		case SortFieldLength:
			return utf8.RuneCountInString(sorted[i]) < utf8.RuneCountInString(sorted[j])
		default:
			return false
		}
	})

	return sorted
}

// ApplySort parses expr and sorts items with sorter. An empty expression
// returns items unchanged.
func ApplySort(sorter Sorter, items []string, expr string) ([]string, error) {
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	if field == "" {
		return items, nil
	}
	if !sorter.IsValidField(field) {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, sorter.GetValidFields())
	}
	return sorter.Sort(items, field, order), nil
}
