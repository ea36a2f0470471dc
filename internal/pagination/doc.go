// Package pagination implements the page-navigation view-model behind pagekit's
// pagination control.
//
// A Model reads two observable cells owned by its caller, the selected page
// number and the total item count, and derives everything a page bar needs:
//   - Any, PagesCount, HasNext, HasPrevious: display queries
//   - IsActive, IsVisible, VisiblePages: per-page-number queries
//   - ChangePage, NextPage, PreviousPage, FirstPage, LastPage: navigation
//
// Every navigation action writes the selected-page cell and then invokes the
// OnPageClick callback. Navigation does not clamp; views guard the actions
// with HasNext and HasPrevious and call Clamp after the total count changes.
package pagination
