package datatable

import (
	"cmp"
	"fmt"
	"go/token"
	"reflect"
)

// StructColumns returns a Column for every exported field of the struct
// type T (or the struct type T points to) including the inlined fields
// of anonymously embedded structs.
//
// The column ID is the Go field name, the header is derived by naming
// (DefaultStructFieldNaming if nil). Sortable columns compare
// numbers, strings and booleans by value, types with a
// method Compare(T) int (like time.Time) with that method,
// and all other types by natural order of the cell text.
func StructColumns[T any](naming *StructFieldNaming) ([]Column[T], error) {
	if naming == nil {
		naming = &DefaultStructFieldNaming
	}
	structType := reflect.TypeFor[T]()
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("row type must be a struct but is %s", structType)
	}

	var columns []Column[T]
	for _, field := range structFields(structType, nil, naming) {
		header, sortable := naming.StructFieldHeader(field)
		if naming.IsIgnored(header) {
			continue
		}
		column := Column[T]{
			ID:       field.Name,
			Header:   header,
			Cell:     structFieldCell[T](field.Index),
			Sortable: sortable,
		}
		if sortable {
			column.Compare = structFieldCompare[T](field.Index)
		}
		columns = append(columns, column)
	}
	return columns, nil
}

// structFields returns the exported fields of structType
// with Index being the full index path from structType.
// Embedded structs with an ignored header are skipped.
func structFields(structType reflect.Type, parentIndex []int, naming *StructFieldNaming) (fields []reflect.StructField) {
	for i := range structType.NumField() {
		field := structType.Field(i)
		field.Index = append(append([]int(nil), parentIndex...), i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			if header, _ := naming.StructFieldHeader(field); naming.IsIgnored(header) {
				continue
			}
			fields = append(fields, structFields(field.Type, field.Index, naming)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

func structFieldValue[T any](row T, index []int) reflect.Value {
	v := reflect.ValueOf(row)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v.FieldByIndex(index)
}

func structFieldCell[T any](index []int) func(T) string {
	return func(row T) string {
		v := structFieldValue(row, index)
		if ValueIsNil(v) {
			return ""
		}
		return CellString(v.Interface())
	}
}

func structFieldCompare[T any](index []int) func(a, b T) int {
	cell := structFieldCell[T](index)
	natural := CompareNatural(cell)
	return func(a, b T) int {
		va, vb := structFieldValue(a, index), structFieldValue(b, index)
		nilA, nilB := ValueIsNil(va), ValueIsNil(vb)
		switch {
		case nilA && nilB:
			return 0
		case nilA:
			return -1
		case nilB:
			return 1
		}
		if va.Kind() == reflect.Pointer {
			va, vb = va.Elem(), vb.Elem()
		}
		if c, ok := compareValues(va, vb); ok {
			return c
		}
		return natural(a, b)
	}
}

func compareValues(a, b reflect.Value) (int, bool) {
	if m := a.MethodByName("Compare"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.In(0) == b.Type() && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Int {
			return int(m.Call([]reflect.Value{b})[0].Int()), true
		}
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), true
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), true
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0, true
		case b.Bool():
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}
