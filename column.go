package datatable

// Row is implemented by the row types of a Table.
// RowID must be unique within the rows of a table,
// this is assumed but not enforced.
type Row interface {
	RowID() string
}

// Column describes how a table column is labeled,
// how a row is rendered into the cell of the column,
// and optionally how rows are ordered by the column.
type Column[T any] struct {
	// ID must be unique among the columns of a table.
	ID string

	// Header is the label displayed for the column.
	Header string

	// Cell renders the cell text of a row for this column.
	Cell func(row T) string

	// Sortable marks the column header as a sort toggle.
	Sortable bool

	// Compare returns a negative number if a orders before b,
	// zero if a and b are equal, and a positive number
	// if a orders after b.
	// A sortable column without Compare falls back to the input order.
	Compare func(a, b T) int
}

// CellString returns the cell text of row
// or an empty string if the column has no Cell function.
func (c *Column[T]) CellString(row T) string {
	if c.Cell == nil {
		return ""
	}
	return c.Cell(row)
}

// ColumnByID returns a pointer to the first column with the passed id
// or nil if there is no such column.
func ColumnByID[T any](columns []Column[T], id string) *Column[T] {
	for i := range columns {
		if columns[i].ID == id {
			return &columns[i]
		}
	}
	return nil
}

// ColumnHeaders returns the Header of every column.
func ColumnHeaders[T any](columns []Column[T]) []string {
	headers := make([]string, len(columns))
	for i := range columns {
		headers[i] = columns[i].Header
	}
	return headers
}
