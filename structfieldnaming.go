package datatable

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// StructFieldNaming defines how struct fields
// are mapped to column headers by StructColumns.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column header.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column header.
	// Options can follow the header separated by commas,
	// the option "sortable" marks the column as sortable.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is a header that excludes a struct field from the columns.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a header in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (header string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldHeader returns the column header for a struct field
// and if the tag of the field has the "sortable" option.
func (n *StructFieldNaming) StructFieldHeader(structField reflect.StructField) (header string, sortable bool) {
	if n == nil {
		return structField.Name, false
	}
	if n.Tag != "" {
		if tag, ok := structField.Tag.Lookup(n.Tag); ok {
			header, options, _ := strings.Cut(tag, ",")
			sortable = slices.Contains(strings.Split(options, ","), "sortable")
			if header != "" {
				return header, sortable
			}
		}
	}
	if n.Untagged == nil {
		return structField.Name, sortable
	}
	return n.Untagged(structField.Name), sortable
}

// IsIgnored indicates if a column with the passed header
// should not be created.
func (n *StructFieldNaming) IsIgnored(header string) bool {
	return n != nil && n.Ignore != "" && header == n.Ignore
}
