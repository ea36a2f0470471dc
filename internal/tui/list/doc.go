// Package list renders one page of items as a scrollable list with a row
// cursor for Bubble Tea programs.
//
// The model only renders the rows that fit in its viewport, so a page of
// several thousand items stays responsive. Navigation keys:
//   - up/down and k/j move the cursor by one row
//   - home/end jump to the first and last row of the page
//
// Paging between pages is the job of the enclosing pager; the list is handed
// a new slice with SetItems whenever the selected page changes.
package list
