// Package query derives filtered, sorted, and scoped read-only views of the
// canonical trip and memory collections. Every function is a pure function of
// its inputs: no hidden state, no mutation of the slices passed in, fully
// deterministic. Recomputation on every call is intentional — there is no
// memoization layer here.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// AllTripsByRecency returns all trips ordered by start date descending (most
// recent trip start first). Ties keep their canonical relative order.
func AllTripsByRecency(trips []domain.Trip) []domain.Trip {
	out := slices.Clone(trips)
	slices.SortStableFunc(out, func(a, b domain.Trip) int {
		return b.StartDate.Time.Compare(a.StartDate.Time)
	})
	return out
}

// RecentTrips returns the first n trips of AllTripsByRecency.
func RecentTrips(trips []domain.Trip, n int) []domain.Trip {
	out := AllTripsByRecency(trips)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// TripByID returns the trip with the given id, and whether it was found.
func TripByID(trips []domain.Trip, id uuid.UUID) (domain.Trip, bool) {
	for _, t := range trips {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Trip{}, false
}

// MemoriesForTrip returns all memories attached to the given trip in
// canonical (insertion) order. Always non-nil. A memory whose trip no longer
// exists is simply never selected here — exclusion is lazy, there is no
// pruning pass.
func MemoriesForTrip(memories []domain.Memory, tripID uuid.UUID) []domain.Memory {
	out := []domain.Memory{}
	for _, m := range memories {
		if m.TripID == tripID {
			out = append(out, m)
		}
	}
	return out
}

// FilteredTrips applies search, tag filtering, and sorting in that fixed
// order. With an empty search and no tags it is an identity filter: all trips
// come back, in the requested sort order.
func FilteredTrips(trips []domain.Trip, f domain.FilterState) []domain.Trip {
	out := slices.Clone(trips)

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		out = slices.DeleteFunc(out, func(t domain.Trip) bool {
			return !matchesSearch(t, q)
		})
	}

	if len(f.Tags) > 0 {
		out = slices.DeleteFunc(out, func(t domain.Trip) bool {
			return !t.HasAllTags(f.Tags)
		})
	}

	sortTrips(out, f.SortField, f.SortOrder)
	return out
}

// AllTags returns every tag appearing on any trip, deduplicated, in ascending
// lexicographic order. Always non-nil.
func AllTags(trips []domain.Trip) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, t := range trips {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return out
}

// matchesSearch reports whether the case-folded query q is a substring of the
// trip's title, destination city, destination country, notes, or any tag.
func matchesSearch(t domain.Trip, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Destination.City), q) ||
		strings.Contains(strings.ToLower(t.Destination.Country), q) ||
		strings.Contains(strings.ToLower(t.Notes), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortTrips orders trips in place by the given field and direction. The sort
// is stable and applies no secondary key: ties keep their pre-sort order.
// Title comparison uses locale-aware collation rather than byte order.
func sortTrips(trips []domain.Trip, field domain.SortField, order domain.SortOrder) {
	var less func(a, b domain.Trip) int
	switch field {
	case domain.SortByRating:
		less = func(a, b domain.Trip) int { return cmp.Compare(a.Rating, b.Rating) }
	case domain.SortByCreatedAt:
		less = func(a, b domain.Trip) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case domain.SortByTitle:
		coll := collate.New(language.English)
		less = func(a, b domain.Trip) int { return coll.CompareString(a.Title, b.Title) }
	default:
		less = func(a, b domain.Trip) int { return a.StartDate.Time.Compare(b.StartDate.Time) }
	}

	slices.SortStableFunc(trips, func(a, b domain.Trip) int {
		c := less(a, b)
		if order == domain.SortDesc {
			return -c
		}
		return c
	})
}
