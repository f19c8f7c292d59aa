package datatable

import (
	"fmt"
	"log/slog"
	"slices"
)

// SortDirection is the direction a table is sorted by its active sort column.
type SortDirection int

const (
	// SortNone keeps the input order of the rows.
	SortNone SortDirection = iota
	// SortAscending orders rows by the column comparator.
	SortAscending
	// SortDescending reverses the ascending order.
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}

// Valid indicates if d is one of the defined directions.
func (d SortDirection) Valid() bool {
	return d >= SortNone && d <= SortDescending
}

// MarshalText implements encoding.TextMarshaler
func (d SortDirection) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid %s", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *SortDirection) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*d = SortNone
	case "ascending", "asc":
		*d = SortAscending
	case "descending", "desc":
		*d = SortDescending
	default:
		return fmt.Errorf("invalid sort direction %q", text)
	}
	return nil
}

// SortState is the active sort column and its direction.
// The zero value means no active sort column.
type SortState struct {
	ColumnID  string
	Direction SortDirection
}

// IsActive indicates if a column is sorting the table.
func (s SortState) IsActive() bool {
	return s.Direction != SortNone
}

// Toggle returns the state following s after the sort toggle
// of the column with columnID was activated.
//
// Per column the toggle cycles through ascending, descending and unsorted:
//   - no or a different active column: columnID becomes active ascending
//   - columnID active ascending: columnID stays active descending
//   - columnID active descending: no column is active anymore
//
// It is not checked whether columnID belongs to a sortable column.
func (s SortState) Toggle(columnID string) SortState {
	if s.ColumnID == columnID {
		switch s.Direction {
		case SortAscending:
			return SortState{ColumnID: columnID, Direction: SortDescending}
		case SortDescending:
			return SortState{}
		}
	}
	return SortState{ColumnID: columnID, Direction: SortAscending}
}

// Indicator returns the direction to display for the header
// of the column with columnID: the active direction for the
// active column and SortNone for all other columns.
func (s SortState) Indicator(columnID string) SortDirection {
	if !s.IsActive() || s.ColumnID != columnID {
		return SortNone
	}
	return s.Direction
}

func (s SortState) String() string {
	if !s.IsActive() {
		return "unsorted"
	}
	return s.ColumnID + " " + s.Direction.String()
}

// DisplayOrder returns rows in the order defined by state.
//
// Without an active sort column rows is returned unchanged.
// If the active column can't be found or has no Compare function
// a warning is logged and rows is returned unchanged as well.
// Otherwise a new slice is returned that is stably sorted by the
// column's Compare function and reversed for SortDescending,
// so rows comparing equal keep their relative input order
// in ascending order and the reverse of it in descending order.
//
// A nil logger logs to DefaultLogger.
func DisplayOrder[T any](rows []T, columns []Column[T], state SortState, logger *slog.Logger) []T {
	if !state.IsActive() {
		return rows
	}
	if logger == nil {
		logger = DefaultLogger
	}
	column := ColumnByID(columns, state.ColumnID)
	if column == nil || column.Compare == nil {
		logger.Warn("missing comparator function for sort column", slog.String("column", state.ColumnID))
		return rows
	}
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, column.Compare)
	if state.Direction == SortDescending {
		slices.Reverse(sorted)
	}
	return sorted
}
