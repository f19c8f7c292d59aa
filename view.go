package datatable

// View is a read only tabular view of string columns and cell values.
// Cell returns nil for out of bounds row or col indices.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	Cell(row, col int) any
}

// SortableView is a View whose columns carry a sort state.
type SortableView interface {
	View

	// ColumnID returns the identifier of the column at index col.
	ColumnID(col int) string

	// ColumnSortable indicates if the column at index col
	// has a sort toggle in its header.
	ColumnSortable(col int) bool

	// ColumnSortIndicator returns the sort direction
	// to display in the header of the column at index col.
	ColumnSortIndicator(col int) SortDirection
}

// SelectableView is a View whose rows can be selected.
type SelectableView interface {
	View

	// SelectionMode returns the selection mode of the view.
	SelectionMode() SelectionMode

	// RowID returns the identifier of the row at index row.
	RowID(row int) string

	// RowSelected indicates if the row at index row is selected.
	RowSelected(row int) bool
}
