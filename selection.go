package datatable

import (
	"fmt"
	"slices"
	"strings"
)

// SelectionMode defines how many rows of a table can be selected.
type SelectionMode int

const (
	// SelectionNone disables row selection.
	SelectionNone SelectionMode = iota
	// SelectionSingle allows at most one selected row,
	// selecting a row deselects the previously selected one.
	SelectionSingle
	// SelectionMultiple allows any number of selected rows.
	SelectionMultiple
)

// ParseSelectionMode parses "none", "single" or "multiple"
// case insensitive. An empty string results in SelectionNone.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SelectionNone, nil
	case "single":
		return SelectionSingle, nil
	case "multiple":
		return SelectionMultiple, nil
	}
	return SelectionNone, fmt.Errorf("invalid selection mode %q", s)
}

func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "none"
	case SelectionSingle:
		return "single"
	case SelectionMultiple:
		return "multiple"
	}
	return fmt.Sprintf("SelectionMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler
func (m SelectionMode) MarshalText() ([]byte, error) {
	if m < SelectionNone || m > SelectionMultiple {
		return nil, fmt.Errorf("invalid %s", m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *SelectionMode) UnmarshalText(text []byte) error {
	mode, err := ParseSelectionMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Selection is the ordered set of selected row IDs.
// The order is the order in which the rows were selected.
type Selection []string

// Contains indicates if rowID is selected.
func (s Selection) Contains(rowID string) bool {
	return slices.Contains(s, rowID)
}

// Toggle returns the selection following s after the row
// with rowID was activated, and whether the selection changed.
//
// With SelectionNone (or an undefined mode) nothing changes.
// A selected rowID gets deselected in every mode.
// An unselected rowID replaces the selection with SelectionSingle
// and is appended to it with SelectionMultiple.
//
// The backing array of s is never modified.
// It is not checked whether rowID belongs to any row.
func (s Selection) Toggle(mode SelectionMode, rowID string) (Selection, bool) {
	switch {
	case mode != SelectionSingle && mode != SelectionMultiple:
		return s, false
	case s.Contains(rowID):
		return slices.DeleteFunc(slices.Clone(s), func(id string) bool { return id == rowID }), true
	case mode == SelectionSingle:
		return Selection{rowID}, true
	default:
		return append(slices.Clip(s), rowID), true
	}
}
