package csvtable

import (
	"github.com/domonda/go-datatable"
)

var _ datatable.SelectableView = new(selectionColumnView)

// selectionColumnView prepends a column to a SelectableView
// holding mark for selected rows and an empty string otherwise.
// All other cells are passed through with the column index shifted by one.
type selectionColumnView struct {
	datatable.SelectableView
	title string
	mark  string
}

func (v *selectionColumnView) Columns() []string {
	return append([]string{v.title}, v.SelectableView.Columns()...)
}

func (v *selectionColumnView) Cell(row, col int) any {
	if col == 0 {
		if row < 0 || row >= v.NumRows() {
			return nil
		}
		if v.RowSelected(row) {
			return v.mark
		}
		return ""
	}
	return v.SelectableView.Cell(row, col-1)
}
