package datatable

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructFieldNaming_StructFieldHeader(t *testing.T) {
	type row struct {
		Plain       string
		UserCount   int    `col:"Users,sortable"`
		SortOnly    string `col:",sortable"`
		Hidden      string `col:"-"`
		OtherOption string `col:"Other,wide"`
	}
	field := func(name string) reflect.StructField {
		f, _ := reflect.TypeFor[row]().FieldByName(name)
		return f
	}

	tests := []struct {
		name         string
		naming       *StructFieldNaming
		field        string
		wantHeader   string
		wantSortable bool
	}{
		{name: "nil naming", naming: nil, field: "UserCount", wantHeader: "UserCount"},
		{name: "untagged", naming: &DefaultStructFieldNaming, field: "Plain", wantHeader: "Plain"},
		{name: "tagged sortable", naming: &DefaultStructFieldNaming, field: "UserCount", wantHeader: "Users", wantSortable: true},
		{name: "only sortable option", naming: &DefaultStructFieldNaming, field: "SortOnly", wantHeader: "Sort Only", wantSortable: true},
		{name: "ignored", naming: &DefaultStructFieldNaming, field: "Hidden", wantHeader: "-"},
		{name: "other option", naming: &DefaultStructFieldNaming, field: "OtherOption", wantHeader: "Other"},
		{name: "no tag configured", naming: &StructFieldNaming{Untagged: SpacePascalCase}, field: "UserCount", wantHeader: "User Count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, sortable := tt.naming.StructFieldHeader(field(tt.field))
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantSortable, sortable)
		})
	}
}

func TestStructFieldNaming_IsIgnored(t *testing.T) {
	var naming *StructFieldNaming
	assert.False(t, naming.IsIgnored("-"))
	assert.False(t, (&StructFieldNaming{}).IsIgnored(""))
	assert.True(t, DefaultStructFieldNaming.IsIgnored("-"))
	assert.False(t, DefaultStructFieldNaming.IsIgnored("Users"))
}
