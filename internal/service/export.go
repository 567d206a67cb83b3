package service

import (
	"context"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/internal/query"
)

// ExportStore defines the store operations the export service depends on.
type ExportStore interface {
	Trips() []domain.Trip
	Memories() []domain.Memory
}

// ExportService assembles a full flat export of all trips and their memories.
type ExportService struct {
	store ExportStore
}

// NewExportService constructs an ExportService backed by the provided store.
func NewExportService(store ExportStore) *ExportService {
	return &ExportService{store: store}
}

// Export returns one row per memory across all trips, trips ordered by
// recency and memories in canonical order. Trips with no memories contribute
// one row with empty memory fields, so every trip appears at least once.
func (s *ExportService) Export(ctx context.Context) []domain.ExportRow {
	trips := query.AllTripsByRecency(s.store.Trips())
	memories := s.store.Memories()

	rows := []domain.ExportRow{}
	for _, t := range trips {
		attached := query.MemoriesForTrip(memories, t.ID)
		if len(attached) == 0 {
			rows = append(rows, tripRow(t))
			continue
		}
		for _, m := range attached {
			row := tripRow(t)
			createdAt := m.CreatedAt
			row.MemoryType = string(m.Type)
			row.PhotoURL = m.PhotoURL
			row.Caption = m.Caption
			row.Note = m.Note
			row.MemoryCreatedAt = &createdAt
			rows = append(rows, row)
		}
	}
	return rows
}

// tripRow fills the trip-side columns of an export row.
func tripRow(t domain.Trip) domain.ExportRow {
	return domain.ExportRow{
		TripID:        t.ID.String(),
		TripTitle:     t.Title,
		City:          t.Destination.City,
		Country:       t.Destination.Country,
		TripStartDate: t.StartDate.Format("2006-01-02"),
		TripEndDate:   t.EndDate.Format("2006-01-02"),
		Rating:        t.Rating,
		Tags:          t.Tags,
	}
}
