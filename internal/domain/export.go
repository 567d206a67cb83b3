package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per memory, with trip fields
// repeated for every memory on that trip. Trips with no memories yield one
// row with zero values for all memory fields.
//
// Tags holds the trip's tags; callers that need a joined string (e.g. CSV)
// should pick their own separator.
type ExportRow struct {
	// Trip fields — repeated for every memory on the trip.
	TripID        string
	TripTitle     string
	City          string
	Country       string
	TripStartDate string // "2006-01-02" formatted date
	TripEndDate   string // "2006-01-02" formatted date
	Rating        int
	Tags          []string

	// Memory fields — zero values when the trip has no memories.
	MemoryType      string
	PhotoURL        string
	Caption         string
	Note            string
	MemoryCreatedAt *time.Time
}
