// Package listing holds the client-side list model: rendering fetched
// articles into display items, sorting and filtering them in memory and
// reporting visible counts. Nothing here talks to the network.
package listing

type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortOldest  SortKey = "oldest"
	SortAZ      SortKey = "az"
	SortZA      SortKey = "za"
	SortPopular SortKey = "popular"
)

// FilterState is owned by the client and persisted only locally.
type FilterState struct {
	Search   string  `ini:"search"`
	Category string  `ini:"category"`
	Sort     SortKey `ini:"sort"`
}

func DefaultFilterState() FilterState {
	return FilterState{Search: "", Category: "", Sort: SortNewest}
}

// Normalize fills absent fields with the documented defaults.
func (f FilterState) Normalize() FilterState {
	switch f.Sort {
	case SortNewest, SortOldest, SortAZ, SortZA, SortPopular:
	default:
		f.Sort = SortNewest
	}
	return f
}
