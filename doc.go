// Package datatable implements the state of a sortable, selectable data table
// independent of how the table is rendered.
//
// A Table holds rows of any type implementing Row together with Column
// definitions for that row type. It owns two pieces of state:
//
//   - the SortState: which column (if any) orders the rows and in which direction
//   - the Selection: the ordered IDs of the selected rows
//
// Sorting cycles per column from unsorted to ascending to descending and back
// to unsorted. Selection follows the configured SelectionMode and every change
// is reported to an OnSelectionChanged handler with the complete new selection.
//
// The Table implements View, SortableView and SelectableView so it can be
// written by the renderers in the subpackages htmltable, csvtable and tviewtable.
//
// Example usage:
//
//	table := datatable.NewTable(operators, columns).
//	    WithSelectionMode(datatable.SelectionMultiple).
//	    WithOnSelectionChanged(func(ids []string) { fmt.Println(ids) })
//
//	table.ToggleSort("USER_COUNT") // ascending
//	table.ToggleRow("10002")       // prints [10002]
//
//	for _, r := range table.DisplayRows() {
//	    fmt.Println(r.Row.RowID(), r.Selected)
//	}
package datatable
