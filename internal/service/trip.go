// Package service contains the business logic for the Elevated API.
// Services validate inputs, enforce business rules, and orchestrate store
// calls. The store itself accepts any well-typed input — every validation
// rule lives here, upstream of it.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/internal/query"
	"github.com/ehagen/elevated/backend/internal/stats"
)

// TripStore defines the store operations the trip service depends on.
// *store.Store satisfies it; tests inject a mock.
type TripStore interface {
	Trips() []domain.Trip
	CreateTrip(ctx context.Context, in domain.TripInput) domain.Trip
	UpdateTrip(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, bool)
	DeleteTrip(ctx context.Context, id uuid.UUID)
}

// TripService implements business logic for trip operations. Reads go through
// the pure query layer; they cannot fail and so return no error.
type TripService struct {
	store TripStore
}

// NewTripService constructs a TripService backed by the provided store.
func NewTripService(store TripStore) *TripService {
	return &TripService{store: store}
}

// Create validates and persists a new trip. Tags are normalized (lowercased,
// deduplicated) before they reach the store.
func (s *TripService) Create(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	if err := validateTrip(in); err != nil {
		return domain.Trip{}, err
	}
	in.Tags = domain.NormalizeTags(in.Tags)
	return s.store.CreateTrip(ctx, in), nil
}

// GetByID returns a single trip.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, ok := query.TripByID(s.store.Trips(), id)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// List returns trips filtered and sorted per f.
func (s *TripService) List(ctx context.Context, f domain.FilterState) []domain.Trip {
	return query.FilteredTrips(s.store.Trips(), f)
}

// Recent returns the n most recent trips by start date.
func (s *TripService) Recent(ctx context.Context, n int) []domain.Trip {
	return query.RecentTrips(s.store.Trips(), n)
}

// Update validates and replaces the mutable fields of an existing trip.
// The store treats a missing id as a silent no-op; this layer reports it as
// domain.ErrNotFound so the HTTP surface can answer 404 — the collection is
// untouched either way.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, error) {
	if err := validateTrip(in); err != nil {
		return domain.Trip{}, err
	}
	in.Tags = domain.NormalizeTags(in.Tags)

	trip, ok := s.store.UpdateTrip(ctx, id, in)
	if !ok {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// Delete removes a trip and all its memories. Deleting an unknown id is not
// an error: the operation is idempotent.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) {
	s.store.DeleteTrip(ctx, id)
}

// Tags returns every tag in use, deduplicated and sorted.
func (s *TripService) Tags(ctx context.Context) []string {
	return query.AllTags(s.store.Trips())
}

// Stats aggregates the whole collection.
func (s *TripService) Stats(ctx context.Context) domain.Stats {
	return stats.Compute(s.store.Trips())
}

// validateTrip enforces the trip business rules. The returned error wraps
// domain.ErrValidation.
func validateTrip(in domain.TripInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.EndDate.Time.Before(in.StartDate.Time) {
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if in.Rating < 0 || in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}
	return nil
}
