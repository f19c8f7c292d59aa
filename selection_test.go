package datatable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Toggle(t *testing.T) {
	tests := []struct {
		name        string
		selection   Selection
		mode        SelectionMode
		rowID       string
		want        Selection
		wantChanged bool
	}{
		{name: "none mode", selection: nil, mode: SelectionNone, rowID: "1", want: nil, wantChanged: false},
		{name: "invalid mode", selection: Selection{"1"}, mode: SelectionMode(7), rowID: "1", want: Selection{"1"}, wantChanged: false},
		{name: "single select", selection: nil, mode: SelectionSingle, rowID: "1", want: Selection{"1"}, wantChanged: true},
		{name: "single replace", selection: Selection{"1"}, mode: SelectionSingle, rowID: "2", want: Selection{"2"}, wantChanged: true},
		{name: "single deselect", selection: Selection{"1"}, mode: SelectionSingle, rowID: "1", want: Selection{}, wantChanged: true},
		{name: "multiple append", selection: Selection{"1"}, mode: SelectionMultiple, rowID: "2", want: Selection{"1", "2"}, wantChanged: true},
		{name: "multiple deselect keeps order", selection: Selection{"1", "2", "3"}, mode: SelectionMultiple, rowID: "2", want: Selection{"1", "3"}, wantChanged: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.selection.Toggle(tt.mode, tt.rowID)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelection_ToggleKeepsReceiver(t *testing.T) {
	backing := make(Selection, 2, 10)
	backing[0], backing[1] = "1", "2"

	appended, _ := backing.Toggle(SelectionMultiple, "3")
	removed, _ := backing.Toggle(SelectionMultiple, "1")

	assert.Equal(t, Selection{"1", "2"}, backing)
	assert.Equal(t, Selection{"1", "2", "3"}, appended)
	assert.Equal(t, Selection{"2"}, removed)
}

func TestSelection_SingleInvariant(t *testing.T) {
	toggles := []string{"a", "b", "b", "c", "a", "a", "d", "d", "e"}
	var s Selection
	for _, id := range toggles {
		s, _ = s.Toggle(SelectionSingle, id)
		require.LessOrEqual(t, len(s), 1, "after toggling %s", id)
	}
}

func TestSelection_MultipleDistinct(t *testing.T) {
	var (
		s    Selection
		want Selection
	)
	for i := range 20 {
		id := fmt.Sprintf("row-%d", i)
		s, _ = s.Toggle(SelectionMultiple, id)
		want = append(want, id)
	}
	assert.Equal(t, want, s)
}

func TestSelection_DoubleToggleRestores(t *testing.T) {
	for _, mode := range []SelectionMode{SelectionSingle, SelectionMultiple} {
		for _, start := range []Selection{nil, {"x"}, {"y"}, {"x", "y"}} {
			if mode == SelectionSingle && len(start) > 1 {
				continue
			}
			once, _ := start.Toggle(mode, "y")
			twice, _ := once.Toggle(mode, "y")
			if len(start) == 0 {
				assert.Empty(t, twice, "%s %v", mode, start)
				continue
			}
			if mode == SelectionSingle && !start.Contains("y") {
				// Selecting y replaced the previous single selection
				assert.Empty(t, twice, "%s %v", mode, start)
				continue
			}
			assert.Equal(t, start, twice, "%s %v", mode, start)
		}
	}
}

func TestParseSelectionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SelectionMode
		wantErr bool
	}{
		{in: "", want: SelectionNone},
		{in: "none", want: SelectionNone},
		{in: "Single", want: SelectionSingle},
		{in: " multiple ", want: SelectionMultiple},
		{in: "many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelectionMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
