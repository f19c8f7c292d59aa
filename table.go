package datatable

import (
	"log/slog"
	"slices"
)

var (
	_ SortableView   = new(Table[Row])
	_ SelectableView = new(Table[Row])
)

// DisplayRow is a row in display order together with its selection flag.
type DisplayRow[T any] struct {
	Row      T
	Selected bool
}

// Table is the state of a data table widget:
// the input rows and column definitions, the sort state
// and the row selection.
//
// A Table is owned by a single event loop and is not safe
// for concurrent use. The sort state and selection start empty
// and can only be changed by ToggleSort and ToggleRow.
//
// Table is configured with With* methods that return a modified copy,
// so configuration should happen before the first toggle.
type Table[T Row] struct {
	title              string
	rows               []T
	columns            []Column[T]
	selectionMode      SelectionMode
	onSelectionChanged func(ids []string)
	logger             *slog.Logger

	sortState SortState
	selection Selection

	// display caches DisplayOrder(rows, columns, sortState)
	display      []T
	displayValid bool
}

// NewTable returns a Table for rows and columns
// without row selection and without an active sort column.
func NewTable[T Row](rows []T, columns []Column[T]) *Table[T] {
	return &Table[T]{
		rows:          rows,
		columns:       columns,
		selectionMode: SelectionNone,
	}
}

func (t *Table[T]) clone() *Table[T] {
	c := new(Table[T])
	*c = *t
	c.selection = slices.Clone(t.selection)
	return c
}

// WithTitle returns a copy of the table with the passed title.
func (t *Table[T]) WithTitle(title string) *Table[T] {
	mod := t.clone()
	mod.title = title
	return mod
}

// WithSelectionMode returns a copy of the table with the passed selection mode.
// The copy starts without selected rows if mode differs
// from the selection mode of t.
func (t *Table[T]) WithSelectionMode(mode SelectionMode) *Table[T] {
	mod := t.clone()
	if mode != t.selectionMode {
		mod.selection = nil
	}
	mod.selectionMode = mode
	return mod
}

// WithOnSelectionChanged returns a copy of the table
// that calls handler with the complete new selection
// after every change of the selection.
// The handler is called synchronously from ToggleRow
// and may keep the passed slice.
func (t *Table[T]) WithOnSelectionChanged(handler func(ids []string)) *Table[T] {
	mod := t.clone()
	mod.onSelectionChanged = handler
	return mod
}

// WithLogger returns a copy of the table logging to logger
// instead of DefaultLogger.
func (t *Table[T]) WithLogger(logger *slog.Logger) *Table[T] {
	mod := t.clone()
	mod.logger = logger
	return mod
}

func (t *Table[T]) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return DefaultLogger
}

// Title returns the title of the table.
func (t *Table[T]) Title() string { return t.title }

// SelectionMode returns the selection mode of the table.
func (t *Table[T]) SelectionMode() SelectionMode { return t.selectionMode }

// Rows returns the rows in input order.
func (t *Table[T]) Rows() []T { return t.rows }

// ColumnDefs returns the column definitions of the table.
func (t *Table[T]) ColumnDefs() []Column[T] { return t.columns }

// SetRows replaces the rows of the table.
// The selection is kept as is, even if it contains
// IDs of rows that are no longer part of the table.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.displayValid = false
}

// SetColumns replaces the column definitions of the table.
// The sort state is kept as is.
func (t *Table[T]) SetColumns(columns []Column[T]) {
	t.columns = columns
	t.displayValid = false
}

// SortState returns the current sort state.
func (t *Table[T]) SortState() SortState { return t.sortState }

// ToggleSort advances the sort state for the column with columnID,
// see SortState.Toggle.
//
// The caller is responsible to only offer the toggle for sortable columns.
// Toggling an unknown or not comparable column is logged as warning
// when the display order is derived and leaves the input order unchanged.
func (t *Table[T]) ToggleSort(columnID string) {
	t.sortState = t.sortState.Toggle(columnID)
	t.displayValid = false
	t.log().Debug("table sort toggled",
		slog.String("column", columnID),
		slog.String("direction", t.sortState.Direction.String()),
	)
}

// SortIndicator returns the sort direction to display
// in the header of the column with columnID.
func (t *Table[T]) SortIndicator(columnID string) SortDirection {
	return t.sortState.Indicator(columnID)
}

// ToggleRow changes the selection for the row with rowID
// according to the selection mode, see Selection.Toggle.
//
// If the selection changed, the OnSelectionChanged handler
// is called once with the complete new selection.
// With SelectionNone this is a no-op and the handler is not called.
// The rowID is not validated against the rows of the table.
func (t *Table[T]) ToggleRow(rowID string) {
	selection, changed := t.selection.Toggle(t.selectionMode, rowID)
	if !changed {
		return
	}
	t.selection = selection
	t.log().Debug("table selection changed",
		slog.String("row", rowID),
		slog.Any("selection", []string(selection)),
	)
	if t.onSelectionChanged != nil {
		t.onSelectionChanged(slices.Clone([]string(selection)))
	}
}

// IsSelected indicates if the row with rowID is selected.
func (t *Table[T]) IsSelected(rowID string) bool {
	return t.selection.Contains(rowID)
}

// SelectedIDs returns a copy of the selected row IDs in selection order.
func (t *Table[T]) SelectedIDs() []string {
	return slices.Clone([]string(t.selection))
}

// DisplayOrder returns the rows in display order.
// The result is cached until the rows, columns or sort state change
// and must not be modified.
func (t *Table[T]) DisplayOrder() []T {
	if !t.displayValid {
		t.display = DisplayOrder(t.rows, t.columns, t.sortState, t.log())
		t.displayValid = true
	}
	return t.display
}

// DisplayRows returns the rows in display order
// together with their selection flag.
func (t *Table[T]) DisplayRows() []DisplayRow[T] {
	display := t.DisplayOrder()
	rows := make([]DisplayRow[T], len(display))
	for i, row := range display {
		rows[i] = DisplayRow[T]{Row: row, Selected: t.selection.Contains(row.RowID())}
	}
	return rows
}

// RowAt returns the row at index row of the display order.
func (t *Table[T]) RowAt(row int) (r T, ok bool) {
	display := t.DisplayOrder()
	if row < 0 || row >= len(display) {
		return r, false
	}
	return display[row], true
}

// Columns implements View by returning the column headers.
func (t *Table[T]) Columns() []string {
	return ColumnHeaders(t.columns)
}

// NumRows implements View.
func (t *Table[T]) NumRows() int {
	return len(t.rows)
}

// Cell implements View by returning the cell text
// of the row at index row of the display order.
func (t *Table[T]) Cell(row, col int) any {
	r, ok := t.RowAt(row)
	if !ok || col < 0 || col >= len(t.columns) {
		return nil
	}
	return t.columns[col].CellString(r)
}

// ColumnID implements SortableView.
func (t *Table[T]) ColumnID(col int) string {
	if col < 0 || col >= len(t.columns) {
		return ""
	}
	return t.columns[col].ID
}

// ColumnSortable implements SortableView.
func (t *Table[T]) ColumnSortable(col int) bool {
	if col < 0 || col >= len(t.columns) {
		return false
	}
	return t.columns[col].Sortable
}

// ColumnSortIndicator implements SortableView.
func (t *Table[T]) ColumnSortIndicator(col int) SortDirection {
	return t.SortIndicator(t.ColumnID(col))
}

// RowID implements SelectableView.
func (t *Table[T]) RowID(row int) string {
	r, ok := t.RowAt(row)
	if !ok {
		return ""
	}
	return r.RowID()
}

// RowSelected implements SelectableView.
func (t *Table[T]) RowSelected(row int) bool {
	r, ok := t.RowAt(row)
	return ok && t.selection.Contains(r.RowID())
}
