package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortState_Toggle(t *testing.T) {
	tests := []struct {
		name     string
		state    SortState
		columnID string
		want     SortState
	}{
		{name: "unsorted", state: SortState{}, columnID: "A", want: SortState{"A", SortAscending}},
		{name: "same ascending", state: SortState{"A", SortAscending}, columnID: "A", want: SortState{"A", SortDescending}},
		{name: "same descending", state: SortState{"A", SortDescending}, columnID: "A", want: SortState{}},
		{name: "other ascending", state: SortState{"B", SortAscending}, columnID: "A", want: SortState{"A", SortAscending}},
		{name: "other descending", state: SortState{"B", SortDescending}, columnID: "A", want: SortState{"A", SortAscending}},
		{name: "same column without direction", state: SortState{"A", SortNone}, columnID: "A", want: SortState{"A", SortAscending}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Toggle(tt.columnID))
		})
	}
}

func TestSortState_ToggleCycle(t *testing.T) {
	var states []SortState
	state := SortState{}
	for range 7 {
		state = state.Toggle("C")
		states = append(states, state)
	}
	require.Equal(t, SortState{}, states[2], "three toggles reset")
	for i := 3; i < len(states); i++ {
		assert.Equal(t, states[i-3], states[i], "cycle of length 3 at toggle %d", i+1)
	}
}

type tiedRow struct {
	id  string
	key int
}

func (r tiedRow) RowID() string { return r.id }

func TestDisplayOrder_StableTies(t *testing.T) {
	rows := []tiedRow{{"a", 2}, {"b", 1}, {"c", 2}, {"d", 3}, {"e", 2}}
	columns := []Column[tiedRow]{{
		ID:       "KEY",
		Sortable: true,
		Compare:  CompareOrdered(func(r tiedRow) int { return r.key }),
	}}

	asc := DisplayOrder(rows, columns, SortState{"KEY", SortAscending}, nil)
	assert.Equal(t, []string{"b", "a", "c", "e", "d"}, displayIDs(asc), "ties keep input order")

	desc := DisplayOrder(rows, columns, SortState{"KEY", SortDescending}, nil)
	assert.Equal(t, []string{"d", "e", "c", "a", "b"}, displayIDs(desc), "reverse of the stable ascending order")

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, displayIDs(rows), "input not modified")
}

func TestDisplayOrder_Unsorted(t *testing.T) {
	rows := []tiedRow{{"x", 2}, {"y", 1}}
	got := DisplayOrder(rows, nil, SortState{}, nil)
	require.Len(t, got, 2)
	assert.Same(t, &rows[0], &got[0], "input returned unchanged")
}

func TestSortDirection_Text(t *testing.T) {
	for _, d := range []SortDirection{SortNone, SortAscending, SortDescending} {
		text, err := d.MarshalText()
		require.NoError(t, err)
		var parsed SortDirection
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, d, parsed)
	}
	_, err := SortDirection(9).MarshalText()
	assert.Error(t, err)
	assert.Error(t, new(SortDirection).UnmarshalText([]byte("sideways")))
	assert.Equal(t, "SortDirection(9)", SortDirection(9).String())
}
