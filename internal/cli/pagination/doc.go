// Package pagination provides the CLI side of pagekit's pagination control:
// flag parsing and validation, sorting of loaded items, and the page metadata
// printed by non-interactive commands.
//
//   - Params: --page, --page-size, --max-pages, --full and --sort flags
//   - PageMeta: serializable page metadata built from a pagination.Model
//   - LineSorter: stable text/length sorting of items before paging
package pagination
