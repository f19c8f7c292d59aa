package htmltable

import (
	"context"
	"fmt"
	"html/template"
)

var (
	_ CellFormatter = CellFormatterFunc(nil)
	_ CellFormatter = SpanClassCellFormatter("")
)

// CellFormatter formats the text of a table cell as HTML.
// The result is not escaped any further.
type CellFormatter interface {
	FormatCell(ctx context.Context, text string) (template.HTML, error)
}

// CellFormatterFunc implements CellFormatter with a function.
type CellFormatterFunc func(ctx context.Context, text string) (template.HTML, error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, text string) (template.HTML, error) {
	return f(ctx, text)
}

var (
	PreCellFormatter CellFormatterFunc = func(ctx context.Context, text string) (template.HTML, error) {
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>"), nil //#nosec G203
	}

	CodeCellFormatter CellFormatterFunc = func(ctx context.Context, text string) (template.HTML, error) {
		return template.HTML("<code>" + template.HTMLEscapeString(text) + "</code>"), nil //#nosec G203
	}

	// RawCellFormatter uses the cell text as HTML without escaping.
	// Only use it for trusted content.
	RawCellFormatter CellFormatterFunc = func(ctx context.Context, text string) (template.HTML, error) {
		return template.HTML(text), nil //#nosec G203
	}
)

// SpanClassCellFormatter formats the cell text within an HTML span element
// with the class of the underlying string value.
type SpanClassCellFormatter string

func (class SpanClassCellFormatter) FormatCell(ctx context.Context, text string) (template.HTML, error) {
	return template.HTML(fmt.Sprintf("<span class='%s'>%s</span>", //#nosec G203
		template.HTMLEscapeString(string(class)),
		template.HTMLEscapeString(text),
	)), nil
}
