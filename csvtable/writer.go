package csvtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes data tables as CSV.
//
// Writer is immutable after creation, all With* methods return
// a new Writer instance with the modified configuration.
type Writer[T datatable.Row] struct {
	padding          Padding
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
	delimiter        rune
	newLine          string
	encoder          Encoder
	selectionTitle   string
	selectionMark    string
}

func NewWriter[T datatable.Row]() *Writer[T] {
	return &Writer[T]{
		padding:          NoPadding,
		headerRow:        false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		nilValue:         "",
		delimiter:        ';',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer[T]) clone() *Writer[T] {
	c := new(Writer[T])
	*c = *w
	return c
}

// WriteTable writes the rows of table in display order.
// If a selection column is configured and the table
// allows row selection, then the selection column
// is written as first column.
func (w *Writer[T]) WriteTable(ctx context.Context, dest io.Writer, table *datatable.Table[T]) error {
	var view datatable.View = table
	if w.selectionMark != "" && table.SelectionMode() != datatable.SelectionNone {
		view = &selectionColumnView{
			SelectableView: table,
			title:          w.selectionTitle,
			mark:           w.selectionMark,
		}
	}
	return w.WriteView(ctx, dest, view)
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
		return fmt.Errorf("writing CSV table to %s: %w", file, err)
	}
	return nil
}

// WriteView writes the view to dest as formatted as CSV.
func (w *Writer[T]) WriteView(ctx context.Context, dest io.Writer, view datatable.View) error {
	if w.padding != NoPadding {
		return w.writeViewPadded(ctx, dest, view)
	}

	if w.headerRow {
		err := w.writeView(ctx, dest, datatable.NewHeaderViewFrom(view))
		if err != nil {
			return err
		}
	}
	return w.writeView(ctx, dest, view)
}

func (w *Writer[T]) writeView(ctx context.Context, dest io.Writer, view datatable.View) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		rowStrs, err := w.rowStrings(ctx, view, row)
		if err != nil {
			return err
		}
		err = w.writeRow(rowBuf, rowStrs, nil)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

func (w *Writer[T]) writeViewPadded(ctx context.Context, dest io.Writer, view datatable.View) error {
	rows, err := w.ViewStrings(ctx, view)
	if err != nil {
		return err
	}

	colRuneCount := datatable.StringColumnWidths(rows, len(view.Columns()))

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, rowStrs := range rows {
		err = w.writeRow(rowBuf, rowStrs, colRuneCount)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// writeRow writes the already escaped rowStrs to rowBuf.
// If colWidths is not nil, then the fields are padded
// to the column widths according to the writer's padding.
func (w *Writer[T]) writeRow(rowBuf *bytes.Buffer, rowStrs []string, colWidths []int) error {
	for col, str := range rowStrs {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		var padLeft, padRight int
		if colWidths != nil {
			padTotal := colWidths[col] - utf8.RuneCountInString(str)
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
		}
		rowBuf.WriteString(strings.Repeat(" ", max(padLeft, 0)))
		rowBuf.WriteString(str)
		rowBuf.WriteString(strings.Repeat(" ", max(padRight, 0)))
	}
	rowBuf.WriteString(w.newLine)

	if w.encoder == nil {
		return nil
	}

	// Read, encode, and write back the buffered row
	encoded, err := w.encoder.Bytes(rowBuf.Bytes())
	if err != nil {
		return err
	}
	rowBuf.Reset()
	_, err = rowBuf.Write(encoded)
	return err
}

// ViewStrings returns the view formatted as a slice of escaped string slices.
func (w *Writer[T]) ViewStrings(ctx context.Context, view datatable.View) ([][]string, error) {
	var (
		numRows = view.NumRows()
		rows    = make([][]string, 0, numRows+1)
	)
	if w.headerRow {
		rowStrs, err := w.rowStrings(ctx, datatable.NewHeaderViewFrom(view), 0)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowStrs)
	}
	for row := 0; row < numRows; row++ {
		rowStrs, err := w.rowStrings(ctx, view, row)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowStrs)
	}
	return rows, nil
}

func (w *Writer[T]) rowStrings(ctx context.Context, view datatable.View, row int) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	columns := view.Columns()
	rowStrs := make([]string, len(columns))
	for col := range columns {
		value := view.Cell(row, col)
		if value == nil {
			rowStrs[col] = w.escapeString(w.nilValue)
			continue
		}
		rowStrs[col] = w.escapeString(datatable.CellString(value))
	}
	return rowStrs, nil
}

func (w *Writer[T]) escapeString(str string) string {
	// Just in case remove all \r,
	// \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}

func (w *Writer[T]) WithHeaderRow(headerRow bool) *Writer[T] {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithSelectionColumn returns a new writer that writes
// an additional first column with the passed title
// for tables with row selection.
// Selected rows have mark as cell value.
// An empty mark disables the selection column.
func (w *Writer[T]) WithSelectionColumn(title, mark string) *Writer[T] {
	mod := w.clone()
	mod.selectionTitle = title
	mod.selectionMark = mark
	return mod
}

func (w *Writer[T]) WithPadding(padding Padding) *Writer[T] {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer[T]) WithQuoteAllFields(quoteAllFields bool) *Writer[T] {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer[T]) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer[T] {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer[T]) WithNilValue(nilValue string) *Writer[T] {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

func (w *Writer[T]) WithEscapeQuotes(escapeQuotes string) *Writer[T] {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer[T]) WithDelimiter(delimiter rune) *Writer[T] {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer[T]) WithNewLine(newLine string) *Writer[T] {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

func (w *Writer[T]) WithEncoder(encoder Encoder) *Writer[T] {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

// WithEncoding returns a new writer encoding its output
// with the named character set, see CharsetEncoder.
func (w *Writer[T]) WithEncoding(encoding string) (*Writer[T], error) {
	encoder, err := CharsetEncoder(encoding)
	if err != nil {
		return nil, err
	}
	return w.WithEncoder(encoder), nil
}

// WithFormat returns a new writer using the separator,
// newline and encoding of format.
func (w *Writer[T]) WithFormat(format *Format) (*Writer[T], error) {
	err := format.Validate()
	if err != nil {
		return nil, err
	}
	mod, err := w.WithEncoding(format.Encoding)
	if err != nil {
		return nil, err
	}
	mod.delimiter = format.separatorRune()
	mod.newLine = format.Newline
	return mod, nil
}

func (w *Writer[T]) Padding() Padding {
	return w.padding
}

func (w *Writer[T]) QuoteAllFields() bool {
	return w.quoteAllFields
}

func (w *Writer[T]) QuoteEmptyFields() bool {
	return w.quoteEmptyFields
}

func (w *Writer[T]) Delimiter() rune {
	return w.delimiter
}

func (w *Writer[T]) EscapeQuotes() string {
	return w.escapeQuotes
}

func (w *Writer[T]) NilValue() string {
	return w.nilValue
}

func (w *Writer[T]) NewLine() string {
	return w.newLine
}

func (w *Writer[T]) Encoder() Encoder {
	return w.encoder
}
