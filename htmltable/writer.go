// Package htmltable writes data tables as HTML.
//
// Header cells of a datatable.SortableView carry the column ID and,
// for sortable columns, the current sort direction as data attributes
// together with a sort indicator glyph. Body rows of a
// datatable.SelectableView carry the row ID and a CSS class
// when they are selected. The host page wires the header indicators
// to Table.ToggleSort and the rows to Table.ToggleRow.
//
// All cell text is HTML-escaped unless a column formatter
// returns raw HTML.
//
// Example usage:
//
//	table := datatable.NewTable(rows, columns).
//	    WithSelectionMode(datatable.SelectionMultiple)
//
//	writer := htmltable.NewWriter[Operator]().
//	    WithTableClass("operators").
//	    WithColumnFormatter("OPERATOR", htmltable.SpanClassCellFormatter("name"))
//
//	err := writer.WriteTable(ctx, os.Stdout, table)
package htmltable

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"maps"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

// Writer writes data tables as HTML table elements.
// It is generic over the row type T of the tables it writes.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer[T datatable.Row] struct {
	tableClass       string
	selectedClass    string
	indicators       datatable.SortIndicators
	columnFormatters map[string]CellFormatter
	headerRow        bool
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	footerTemplate   *template.Template
}

// NewWriter creates a new HTML table writer for row type T.
//
// Default configuration:
//   - No table class
//   - "selected" as class of selected rows
//   - datatable.DefaultSortIndicators
//   - Header row enabled
//   - Standard HTML table templates
func NewWriter[T datatable.Row]() *Writer[T] {
	return &Writer[T]{
		selectedClass:    "selected",
		indicators:       datatable.DefaultSortIndicators,
		columnFormatters: make(map[string]CellFormatter),
		headerRow:        true,
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// WriteTable writes table in its current display order
// with its sort indicators and row selection.
func (w *Writer[T]) WriteTable(ctx context.Context, dest io.Writer, table *datatable.Table[T]) error {
	return w.WriteView(ctx, dest, table)
}

// WriteFile writes table to file, replacing any existing content.
func (w *Writer[T]) WriteFile(ctx context.Context, file fs.File, table *datatable.Table[T]) error {
	var buf bytes.Buffer
	err := w.WriteTable(ctx, &buf, table)
	if err != nil {
		return err
	}
	err = file.WriteAll(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing HTML table to %s: %w", file, err)
	}
	return nil
}

// WriteView writes any datatable.View as HTML.
// Sort indicators are only written for a datatable.SortableView,
// row IDs and selection classes only for a datatable.SelectableView.
//
// The context is checked for cancellation before every row.
func (w *Writer[T]) WriteView(ctx context.Context, dest io.Writer, view datatable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns          = view.Columns()
		numCols          = len(columns)
		sortable, _      = view.(datatable.SortableView)
		selectable, _    = view.(datatable.SelectableView)
		columnFormatters = make([]CellFormatter, numCols)
		templData        = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			SelectedClass: w.selectedClass,
			RawCells:      make([]template.HTML, numCols),
		}
	)
	if selectable != nil && selectable.SelectionMode() != datatable.SelectionNone {
		templData.Selection = selectable.SelectionMode().String()
	}
	for col := range numCols {
		columnID := columns[col]
		if sortable != nil {
			columnID = sortable.ColumnID(col)
		}
		columnFormatters[col] = w.columnFormatters[columnID]
	}

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		templData.HeaderCells = make([]HeaderCell, numCols)
		for col, header := range columns {
			cell := HeaderCell{ColumnID: columns[col], Header: header}
			if sortable != nil {
				cell.ColumnID = sortable.ColumnID(col)
				cell.Sortable = sortable.ColumnSortable(col)
				cell.Sort = sortable.ColumnSortIndicator(col)
				cell.Indicator = w.indicators.For(cell.Sort)
			}
			templData.HeaderCells[col] = cell
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.HeaderCells = nil
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if selectable != nil {
			templData.RowID = selectable.RowID(row)
			templData.Selected = selectable.RowSelected(row)
		}
		for col := range numCols {
			text := datatable.CellString(view.Cell(row, col))
			if formatter := columnFormatters[col]; formatter != nil {
				html, err := formatter.FormatCell(ctx, text)
				if err != nil {
					return fmt.Errorf("formatting cell of column %q: %w", columns[col], err)
				}
				templData.RawCells[col] = html
				continue
			}
			templData.RawCells[col] = template.HTML(template.HTMLEscapeString(text)) //#nosec G203
		}

		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}

		templData.RowIndex++
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WithHeaderRow returns a new writer with header row configuration.
func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
func (w *Writer[T]) WithTableClass(tableClass string) *Writer[T] {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithSelectedClass returns a new writer using selectedClass
// as CSS class of selected rows.
func (w *Writer[T]) WithSelectedClass(selectedClass string) *Writer[T] {
	mod := w.clone()
	mod.selectedClass = selectedClass
	return mod
}

// WithSortIndicators returns a new writer with the passed
// header glyphs for sortable columns.
func (w *Writer[T]) WithSortIndicators(indicators datatable.SortIndicators) *Writer[T] {
	mod := w.clone()
	mod.indicators = indicators
	return mod
}

// WithColumnFormatter returns a new writer with the formatter
// registered for the column with columnID.
// If nil is passed as formatter, any previously registered
// formatter for this column is removed.
func (w *Writer[T]) WithColumnFormatter(columnID string, formatter CellFormatter) *Writer[T] {
	mod := w.clone()
	mod.columnFormatters = maps.Clone(w.columnFormatters)
	if formatter != nil {
		mod.columnFormatters[columnID] = formatter
	} else {
		delete(mod.columnFormatters, columnID)
	}
	return mod
}

// WithTemplate returns a new writer with custom templates.
// The templates receive TemplateContext and RowTemplateContext respectively.
func (w *Writer[T]) WithTemplate(tableTemplate, rowTemplate, footerTemplate *template.Template) *Writer[T] {
	mod := w.clone()
	mod.headerTemplate = tableTemplate
	mod.rowTemplate = rowTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer[T]) TableClass() string {
	return w.tableClass
}

// SelectedClass returns the CSS class of selected rows.
func (w *Writer[T]) SelectedClass() string {
	return w.selectedClass
}
