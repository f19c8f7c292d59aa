// Package tablefile loads table definitions with rows from YAML files.
//
// Example file:
//
//	title: Operators
//	selection: multiple
//	columns:
//	  - id: OPERATOR
//	    header: Operator
//	    field: operator
//	  - id: USER_COUNT
//	    header: Users
//	    field: userCount
//	    sortable: true
//	    compare: number
//	rows:
//	  - id: "10001"
//	    operator: Celcom Axiata (LTE)
//	    userCount: 5000000
package tablefile

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"

	"github.com/domonda/go-datatable"
)

// CompareKind names how a sortable column orders its cells.
type CompareKind string

const (
	// CompareNatural orders cell texts so that "item 2" is before "item 10".
	CompareNatural CompareKind = "natural"
	// CompareNumber orders cells as floating point numbers,
	// cells that are not numbers are ordered first.
	CompareNumber CompareKind = "number"
	// CompareText orders cell texts byte-wise.
	CompareText CompareKind = "text"
)

// Valid indicates if k is a known CompareKind
// or empty for the default CompareNatural.
func (k CompareKind) Valid() bool {
	switch k {
	case "", CompareNatural, CompareNumber, CompareText:
		return true
	}
	return false
}

// File is the content of a table file.
type File struct {
	Title     string                  `yaml:"title"`
	Selection datatable.SelectionMode `yaml:"selection"`
	Columns   []ColumnDef             `yaml:"columns"`
	Rows      []Record                `yaml:"rows"`
}

// ColumnDef defines a column of a table file.
// Header and Field, the name of the shown record field,
// default to ID.
type ColumnDef struct {
	ID       string      `yaml:"id"`
	Header   string      `yaml:"header"`
	Field    string      `yaml:"field"`
	Sortable bool        `yaml:"sortable"`
	Compare  CompareKind `yaml:"compare"`
}

// Record is a row of a table file.
// Every key of the YAML mapping except "id"
// is a field with its scalar value as text.
type Record struct {
	ID     string
	Fields map[string]string
}

// RowID implements datatable.Row
func (r Record) RowID() string { return r.ID }

// Field returns the text of the field with name
// or an empty string if the record has no such field.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// UnmarshalYAML implements yaml.Unmarshaler
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: row must be a mapping", node.Line)
	}
	*r = Record{Fields: make(map[string]string, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of row field %q must be a scalar", value.Line, key.Value)
		}
		text := value.Value
		if value.Tag == "!!null" {
			text = ""
		}
		if key.Value == "id" {
			r.ID = text
			continue
		}
		r.Fields[key.Value] = text
	}
	return nil
}

// Load reads and parses the table file.
func Load(file fs.File) (*File, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", file, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse table file %s: %w", file, err)
	}
	return f, nil
}

// Parse parses YAML data as table file
// and checks that every row has a unique ID
// and that the column definitions are valid.
func Parse(data []byte) (*File, error) {
	f := new(File)
	err := yaml.Unmarshal(data, f)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(f.Rows))
	for i, r := range f.Rows {
		if r.ID == "" {
			return nil, fmt.Errorf("row %d has no id", i)
		}
		if prev, exists := ids[r.ID]; exists {
			return nil, fmt.Errorf("row %d has the same id %q as row %d", i, r.ID, prev)
		}
		ids[r.ID] = i
	}
	err = f.validateColumns()
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) validateColumns() error {
	if len(f.Columns) == 0 {
		return errors.New("no columns defined")
	}
	ids := make(map[string]struct{}, len(f.Columns))
	for i, def := range f.Columns {
		switch {
		case def.ID == "":
			return fmt.Errorf("column %d has no id", i)
		case !def.Compare.Valid():
			return fmt.Errorf("column %q has invalid compare %q", def.ID, def.Compare)
		}
		if _, exists := ids[def.ID]; exists {
			return fmt.Errorf("duplicate column id %q", def.ID)
		}
		ids[def.ID] = struct{}{}
	}
	return nil
}

// TableColumns returns the datatable columns
// defined by the file.
func (f *File) TableColumns() ([]datatable.Column[Record], error) {
	err := f.validateColumns()
	if err != nil {
		return nil, err
	}
	columns := make([]datatable.Column[Record], len(f.Columns))
	for i, def := range f.Columns {
		columns[i] = def.Column()
	}
	return columns, nil
}

// Column returns the datatable column for the definition.
func (def *ColumnDef) Column() datatable.Column[Record] {
	field := cmp.Or(def.Field, def.ID)
	cell := func(r Record) string { return r.Field(field) }
	column := datatable.Column[Record]{
		ID:       def.ID,
		Header:   cmp.Or(def.Header, def.ID),
		Cell:     cell,
		Sortable: def.Sortable,
	}
	if !def.Sortable {
		return column
	}
	switch def.Compare {
	case CompareNumber:
		column.Compare = compareNumbers(cell)
	case CompareText:
		column.Compare = datatable.CompareOrdered(cell)
	default:
		column.Compare = datatable.CompareNatural(cell)
	}
	return column
}

func compareNumbers(cell func(Record) string) func(a, b Record) int {
	parse := func(r Record) (float64, bool) {
		f, err := strconv.ParseFloat(strings.TrimSpace(cell(r)), 64)
		return f, err == nil
	}
	return func(a, b Record) int {
		fa, okA := parse(a)
		fb, okB := parse(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		return cmp.Compare(fa, fb)
	}
}

// Table returns a new datatable.Table with the rows,
// columns, title and selection mode of the file.
func (f *File) Table() (*datatable.Table[Record], error) {
	columns, err := f.TableColumns()
	if err != nil {
		return nil, err
	}
	return datatable.NewTable(f.Rows, columns).
		WithTitle(f.Title).
		WithSelectionMode(f.Selection), nil
}
