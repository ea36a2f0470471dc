// Package detail shows a single item in full, outside the page list.
//
// Items that hold JSON are indented for reading; everything else is wrapped
// to the view width. The enclosing pager opens the view for the row under
// the cursor and closes it on esc.
package detail
