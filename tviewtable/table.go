// Package tviewtable renders a datatable.Table as terminal widget
// using github.com/derailed/tview.
//
// The first row shows the column headers and stays fixed while scrolling.
// Activating a sortable header cell toggles the sort of its column,
// activating a body cell toggles the selection of its row.
package tviewtable

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/domonda/go-datatable"
)

const (
	// SelectedMark prefixes the first cell of selected rows.
	SelectedMark = "✓ "
	// UnselectedMark keeps the first cells of unselected rows aligned.
	UnselectedMark = "  "
)

// Table is a tview.Table showing the rows of a datatable.Table
// in display order.
//
// Like every tview primitive it must only be used
// from the goroutine of the tview application.
type Table[T datatable.Row] struct {
	*tview.Table

	model      *datatable.Table[T]
	indicators datatable.SortIndicators
}

// NewTable returns a widget for model with the header cells
// marked by datatable.DefaultSortIndicators.
func NewTable[T datatable.Row](model *datatable.Table[T]) *Table[T] {
	t := &Table[T]{
		Table:      tview.NewTable(),
		model:      model,
		indicators: datatable.DefaultSortIndicators,
	}
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, true)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetSelectedFunc(t.Activate)
	if title := model.Title(); title != "" {
		t.SetTitle(" " + title + " ")
	}
	t.Refresh()
	if model.NumRows() > 0 {
		t.Select(1, 0)
	}
	return t
}

// SetSortIndicators changes the glyphs shown in sortable header cells.
func (t *Table[T]) SetSortIndicators(indicators datatable.SortIndicators) *Table[T] {
	t.indicators = indicators
	t.Refresh()
	return t
}

// Model returns the datatable.Table shown by the widget.
func (t *Table[T]) Model() *datatable.Table[T] {
	return t.model
}

// Activate handles the activation of the cell at row and col
// of the widget, where row 0 is the header row.
// A sortable header cell toggles the sort of its column,
// any body cell toggles the selection of its row.
func (t *Table[T]) Activate(row, col int) {
	if row == 0 {
		if !t.model.ColumnSortable(col) {
			return
		}
		t.model.ToggleSort(t.model.ColumnID(col))
		t.Refresh()
		return
	}
	r, ok := t.model.RowAt(row - 1)
	if !ok {
		return
	}
	t.model.ToggleRow(r.RowID())
	t.Refresh()
}

// Refresh rebuilds all cells from the current state of the model.
func (t *Table[T]) Refresh() {
	t.Clear()
	t.buildHeader()
	for i, r := range t.model.DisplayRows() {
		t.buildRow(i+1, r)
	}
}

func (t *Table[T]) buildHeader() {
	for col, header := range t.model.Columns() {
		cell := tview.NewTableCell(header)
		cell.SetTextColor(tcell.ColorYellow)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetExpansion(1)
		cell.SetSelectable(t.model.ColumnSortable(col))

		if t.model.ColumnSortable(col) {
			direction := t.model.ColumnSortIndicator(col)
			if indicator := t.indicators.For(direction); indicator != "" {
				cell.SetText(header + " " + indicator)
			}
			if direction != datatable.SortNone {
				cell.SetAttributes(tcell.AttrBold)
			}
		}

		t.SetCell(0, col, cell)
	}
}

func (t *Table[T]) buildRow(row int, r datatable.DisplayRow[T]) {
	color := tcell.ColorWhite
	if r.Selected {
		color = tcell.ColorGreen
	}
	marked := t.model.SelectionMode() != datatable.SelectionNone
	for col, column := range t.model.ColumnDefs() {
		text := column.CellString(r.Row)
		if col == 0 && marked {
			if r.Selected {
				text = SelectedMark + text
			} else {
				text = UnselectedMark + text
			}
		}

		cell := tview.NewTableCell(text)
		cell.SetTextColor(color)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetExpansion(1)
		if col == 0 {
			cell.SetReference(r.Row.RowID())
		}

		t.SetCell(row, col, cell)
	}
}
