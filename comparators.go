package datatable

import (
	"cmp"
	"strings"

	"github.com/fvbommel/sortorder"
)

// CompareNatural returns a Column.Compare function ordering rows
// by the strings returned from key using natural sort order,
// so that "item 2" orders before "item 10".
func CompareNatural[T any](key func(T) string) func(a, b T) int {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka == kb:
			return 0
		case sortorder.NaturalLess(ka, kb):
			return -1
		default:
			return 1
		}
	}
}

// CompareFoldNatural is like CompareNatural but ignores case.
func CompareFoldNatural[T any](key func(T) string) func(a, b T) int {
	return CompareNatural(func(row T) string { return strings.ToLower(key(row)) })
}

// CompareOrdered returns a Column.Compare function ordering rows
// by the values returned from key using cmp.Compare.
func CompareOrdered[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// CompareCell returns a Column.Compare function ordering rows
// by the rendered cell text of column using natural sort order.
func CompareCell[T any](column *Column[T]) func(a, b T) int {
	return CompareNatural(column.CellString)
}
