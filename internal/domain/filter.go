package domain

// SortField selects the trip attribute a filtered listing is ordered by.
// The values match the JSON field names of Trip.
type SortField string

const (
	SortByStartDate SortField = "startDate"
	SortByRating    SortField = "rating"
	SortByCreatedAt SortField = "createdAt"
	SortByTitle     SortField = "title"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterState carries search/tag/sort parameters from the HTTP layer to the
// query layer. Steps apply in a fixed order: search, then tag filter, then
// sort. Empty search and empty tags are identity filters.
type FilterState struct {
	Search    string
	Tags      []string
	SortField SortField
	SortOrder SortOrder
}

// NewFilterState builds a FilterState from raw HTTP query values.
// Unknown sort fields and orders fall back to the defaults (startDate desc,
// most recent trip first). Tags are normalized the same way trip tags are.
func NewFilterState(search string, tags []string, sortField, sortOrder string) FilterState {
	f := FilterState{
		Search:    search,
		Tags:      NormalizeTags(tags),
		SortField: SortByStartDate,
		SortOrder: SortDesc,
	}
	switch SortField(sortField) {
	case SortByStartDate, SortByRating, SortByCreatedAt, SortByTitle:
		f.SortField = SortField(sortField)
	}
	switch SortOrder(sortOrder) {
	case SortAsc, SortDesc:
		f.SortOrder = SortOrder(sortOrder)
	}
	return f
}

// NewRecentLimit builds the item count for a recent-trips listing from an
// optional HTTP query param. Nil falls back to 4 (the home page row); the
// limit is capped at 20 to prevent runaway responses.
func NewRecentLimit(limit *int) int {
	n := 4
	if limit != nil && *limit >= 1 {
		n = *limit
		if n > 20 {
			n = 20
		}
	}
	return n
}
