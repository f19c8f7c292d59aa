package datatable

import (
	"context"
	"fmt"
	"reflect"
	"unicode/utf8"
)

// ViewStrings returns the cells of view formatted as strings.
// If addHeaderRow is true, the first returned row holds the column titles.
func ViewStrings(ctx context.Context, view View, addHeaderRow bool) (rows [][]string, err error) {
	if addHeaderRow {
		rows = append(rows, ViewRowStrings(NewHeaderViewFrom(view), 0))
	}

	for row := 0; row < view.NumRows(); row++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		rows = append(rows, ViewRowStrings(view, row))
	}

	return rows, nil
}

// ViewRowStrings returns the cells of a row of view formatted as strings.
func ViewRowStrings(view View, row int) []string {
	numCols := len(view.Columns())
	rowStrs := make([]string, numCols)
	for col := range numCols {
		rowStrs[col] = CellString(view.Cell(row, col))
	}
	return rowStrs
}

// CellString formats a cell value as string.
// Nil values result in an empty string,
// non nil pointers are dereferenced.
func CellString(value any) string {
	switch x := value.(type) {
	case string:
		return x
	case fmt.Stringer:
		if ValueIsNil(reflect.ValueOf(x)) {
			return ""
		}
		return x.String()
	}
	v := reflect.ValueOf(value)
	if ValueIsNil(v) {
		return ""
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface())
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// A negative numCols uses the maximum number of cells of any row.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			numRunes := utf8.RuneCountInString(rows[row][col])
			if numRunes > colWidths[col] {
				colWidths[col] = numRunes
			}
		}
	}
	return colWidths
}
