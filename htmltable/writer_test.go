package htmltable

import (
	"context"
	"errors"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

type operator struct {
	ID        string
	Operator  string
	Headset   string
	UserCount int
}

func (o operator) RowID() string { return o.ID }

func operatorTable() *datatable.Table[operator] {
	rows := []operator{
		{ID: "10001", Operator: "Celcom Axiata (LTE)", Headset: "Celcom / My Celcom", UserCount: 5000000},
		{ID: "10002", Operator: "DiGi Telecom (LTE)", Headset: "DiGi 1800 / DiGi", UserCount: 4000000},
		{ID: "10003", Operator: "Maxis", Headset: "U Mobile / MY 18", UserCount: 6000000},
	}
	columns := []datatable.Column[operator]{
		{ID: "OPERATOR", Header: "Operator", Cell: func(o operator) string { return o.Operator }},
		{ID: "HEADSET", Header: "Headset", Cell: func(o operator) string { return o.Headset }},
		{
			ID:       "USER_COUNT",
			Header:   "Users",
			Cell:     func(o operator) string { return strconv.Itoa(o.UserCount) },
			Sortable: true,
			Compare:  func(a, b operator) int { return a.UserCount - b.UserCount },
		},
	}
	return datatable.NewTable(rows, columns).WithTitle("Operators")
}

func ExampleWriter() {
	table := operatorTable().WithSelectionMode(datatable.SelectionMultiple)
	table.ToggleSort("USER_COUNT")
	table.ToggleRow("10001")

	NewWriter[operator]().
		WithTableClass("operators").
		WriteTable(context.Background(), os.Stdout, table)

	// Output:
	// <table class='operators' data-selection='multiple'>
	//   <caption>Operators</caption>
	//   <tr><th data-column='OPERATOR'>Operator</th><th data-column='HEADSET'>Headset</th><th data-column='USER_COUNT' data-sort='ascending'>Users <span class='sort-indicator'>▲</span></th></tr>
	//   <tr data-row-id='10002'><td>DiGi Telecom (LTE)</td><td>DiGi 1800 / DiGi</td><td>4000000</td></tr>
	//   <tr data-row-id='10001' class='selected'><td>Celcom Axiata (LTE)</td><td>Celcom / My Celcom</td><td>5000000</td></tr>
	//   <tr data-row-id='10003'><td>Maxis</td><td>U Mobile / MY 18</td><td>6000000</td></tr>
	// </table>
}

func TestWriter_WriteTable(t *testing.T) {
	tests := []struct {
		name   string
		writer *Writer[operator]
		setup  func(*datatable.Table[operator]) *datatable.Table[operator]
		want   []string
		absent []string
	}{
		{
			name:   "unsorted without selection",
			writer: NewWriter[operator](),
			setup:  func(tbl *datatable.Table[operator]) *datatable.Table[operator] { return tbl },
			want: []string{
				"<table>\n",
				"<th data-column='USER_COUNT' data-sort='none'>Users <span class='sort-indicator'>↕</span></th>",
				"<tr data-row-id='10001'><td>Celcom Axiata (LTE)</td>",
			},
			absent: []string{"data-selection", "class='selected'"},
		},
		{
			name:   "descending with custom indicators",
			writer: NewWriter[operator]().WithSortIndicators(datatable.SortIndicators{Ascending: "asc", Descending: "desc"}),
			setup: func(tbl *datatable.Table[operator]) *datatable.Table[operator] {
				tbl.ToggleSort("USER_COUNT")
				tbl.ToggleSort("USER_COUNT")
				return tbl
			},
			want: []string{
				"data-sort='descending'>Users <span class='sort-indicator'>desc</span>",
				"</tr>\n  <tr data-row-id='10003'>",
			},
		},
		{
			name:   "single selection with custom class",
			writer: NewWriter[operator]().WithSelectedClass("active"),
			setup: func(tbl *datatable.Table[operator]) *datatable.Table[operator] {
				tbl = tbl.WithSelectionMode(datatable.SelectionSingle)
				tbl.ToggleRow("10002")
				return tbl
			},
			want: []string{
				"<table data-selection='single'>",
				"<tr data-row-id='10002' class='active'>",
			},
			absent: []string{"class='selected'"},
		},
		{
			name:   "without header row",
			writer: NewWriter[operator]().WithHeaderRow(false),
			setup:  func(tbl *datatable.Table[operator]) *datatable.Table[operator] { return tbl },
			want:   []string{"<caption>Operators</caption>\n  <tr data-row-id='10001'>"},
			absent: []string{"<th"},
		},
		{
			name:   "column formatter",
			writer: NewWriter[operator]().WithColumnFormatter("OPERATOR", SpanClassCellFormatter("name")),
			setup:  func(tbl *datatable.Table[operator]) *datatable.Table[operator] { return tbl },
			want:   []string{"<td><span class='name'>Maxis</span></td><td>U Mobile / MY 18</td>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			err := tt.writer.WriteTable(context.Background(), &buf, tt.setup(operatorTable()))
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			for _, absent := range tt.absent {
				assert.NotContains(t, buf.String(), absent)
			}
			assert.True(t, strings.HasSuffix(buf.String(), "</table>"))
		})
	}
}

func TestWriter_Escaping(t *testing.T) {
	view := datatable.NewStringsView("<b>Title</b>", [][]string{{"<script>alert(1)</script>", "a & b"}}, "Col <1>", "Col 2")

	var buf strings.Builder
	err := NewWriter[operator]().WriteView(context.Background(), &buf, view)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<caption>&lt;b&gt;Title&lt;/b&gt;</caption>")
	assert.Contains(t, buf.String(), "<th data-column='Col &lt;1&gt;'>Col &lt;1&gt;</th>")
	assert.Contains(t, buf.String(), "<td>&lt;script&gt;alert(1)&lt;/script&gt;</td><td>a &amp; b</td>")
	assert.NotContains(t, buf.String(), "sort-indicator", "plain views are not sortable")
	assert.NotContains(t, buf.String(), "data-row-id", "plain views are not selectable")
}

func TestWriter_FormatterError(t *testing.T) {
	failing := CellFormatterFunc(func(context.Context, string) (template.HTML, error) {
		return "", errors.New("broken")
	})
	writer := NewWriter[operator]().WithColumnFormatter("HEADSET", failing)

	var buf strings.Builder
	err := writer.WriteTable(context.Background(), &buf, operatorTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Headset")

	// Removing the formatter restores plain cells
	err = writer.WithColumnFormatter("HEADSET", nil).WriteTable(context.Background(), &buf, operatorTable())
	assert.NoError(t, err)
}

func TestWriter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	err := NewWriter[operator]().WriteTable(ctx, &buf, operatorTable())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWriter_Immutable(t *testing.T) {
	base := NewWriter[operator]()
	mod := base.WithTableClass("x").WithSelectedClass("y").WithColumnFormatter("OPERATOR", PreCellFormatter)

	assert.Equal(t, "", base.TableClass())
	assert.Equal(t, "selected", base.SelectedClass())
	assert.Empty(t, base.columnFormatters)
	assert.Equal(t, "x", mod.TableClass())
	assert.Equal(t, "y", mod.SelectedClass())
	assert.Len(t, mod.columnFormatters, 1)
}

func TestWriter_WriteFile(t *testing.T) {
	file := fs.File(filepath.Join(t.TempDir(), "operators.html"))

	err := NewWriter[operator]().WriteFile(context.Background(), file, operatorTable())
	require.NoError(t, err)

	data, err := file.ReadAll()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<table>\n  <caption>Operators</caption>"))
}
