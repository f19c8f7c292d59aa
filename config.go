package datatable

import "log/slog"

var (
	// DefaultLogger is used by tables that were not configured
	// with their own logger and by DisplayOrder for a nil logger.
	DefaultLogger = slog.Default()

	// DefaultStructFieldNaming is used by StructColumns for a nil naming.
	// It uses the "col" tag as header, ignores "-" headers,
	// and uses SpacePascalCase for untagged fields.
	DefaultStructFieldNaming = StructFieldNaming{
		Tag:      "col",
		Ignore:   "-",
		Untagged: SpacePascalCase,
	}

	// DefaultSortIndicators are the header glyphs
	// used by the renderers of this module.
	DefaultSortIndicators = SortIndicators{
		None:       "↕",
		Ascending:  "▲",
		Descending: "▼",
	}
)

// SortIndicators holds the header text displayed
// for each SortDirection of a sortable column.
type SortIndicators struct {
	None       string
	Ascending  string
	Descending string
}

// For returns the indicator text for direction.
func (i SortIndicators) For(direction SortDirection) string {
	switch direction {
	case SortAscending:
		return i.Ascending
	case SortDescending:
		return i.Descending
	default:
		return i.None
	}
}
