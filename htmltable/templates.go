package htmltable

import (
	"html/template"

	"github.com/domonda/go-datatable"
)

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}{{if .Selection}} data-selection='{{.Selection}}'{{end}}>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"{{if .IsHeaderRow}}" +
		"  <tr>{{range $cell := .HeaderCells}}<th data-column='{{$cell.ColumnID}}'" +
		"{{if $cell.Sortable}} data-sort='{{$cell.Sort}}'{{end}}>{{$cell.Header}}" +
		"{{if $cell.Sortable}} <span class='sort-indicator'>{{$cell.Indicator}}</span>{{end}}</th>{{end}}</tr>\n" +
		"{{else}}" +
		"  <tr{{if .RowID}} data-row-id='{{.RowID}}'{{end}}{{if .Selected}} class='{{.SelectedClass}}'{{end}}>" +
		"{{range $cell := .RawCells}}<td>{{$cell}}</td>{{end}}</tr>\n" +
		"{{end}}",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"</table>",
	))
)

type TemplateContext struct {
	TableClass string
	Caption    string
	// Selection is the selection mode of a selectable table
	// or empty if rows can't be selected.
	Selection string
}

type HeaderCell struct {
	ColumnID  string
	Header    string
	Sortable  bool
	Sort      datatable.SortDirection
	Indicator string
}

type RowTemplateContext struct {
	TemplateContext

	IsHeaderRow   bool
	HeaderCells   []HeaderCell
	RowIndex      int
	RowID         string
	Selected      bool
	SelectedClass string
	RawCells      []template.HTML
}
