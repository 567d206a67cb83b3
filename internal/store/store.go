// Package store owns the canonical trip and memory collections: it is the
// single source of truth every derived view is computed from. The store
// mutates, persists, and hands out read-only copies; it performs no field
// validation — that is the service layer's job — and no access control: the
// active profile is exposed for the presentation layer to gate on.
package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/internal/persist"
	"github.com/ehagen/elevated/backend/internal/seed"
)

// Store holds the canonical collections plus the session-only active profile.
// All methods are safe for concurrent use; each mutation completes — and is
// handed to the persistence port — before any read can observe it.
type Store struct {
	port persist.Port
	log  *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID

	mu            sync.RWMutex
	trips         []domain.Trip
	memories      []domain.Memory
	viewMode      domain.ViewMode
	activeProfile domain.Profile
}

// Option customizes a Store. Used by tests to pin the clock and ID sequence.
type Option func(*Store)

// WithClock replaces the wall clock used for createdAt/updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the ID source for new trips and memories.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Store) { s.newID = newID }
}

// Open builds a Store from the persisted snapshot, falling back to the
// bundled seed dataset when no snapshot exists or the stored payload did not
// parse. Load failures are logged and swallowed — initialization never fails.
// The active profile always starts locked, whatever the previous session did.
func Open(ctx context.Context, port persist.Port, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		port:  port,
		log:   log,
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, ok, err := port.Load(ctx)
	if err != nil {
		log.Warn("loading persisted state failed, using seed data", "error", err)
		ok = false
	}
	if !ok {
		snap = domain.Snapshot{Trips: seed.Trips(), Memories: []domain.Memory{}}
	}

	s.trips = snap.Trips
	s.memories = snap.Memories
	s.viewMode = snap.ViewMode
	if !s.viewMode.Valid() {
		s.viewMode = domain.ViewModeGrid
	}
	return s
}

// Trips returns a copy of the canonical trip collection in insertion order
// (most recently created first). Callers must not mutate the returned trips.
func (s *Store) Trips() []domain.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.trips)
}

// Memories returns a copy of the canonical memory collection in insertion
// order.
func (s *Store) Memories() []domain.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.memories)
}

// CreateTrip assigns a fresh ID and timestamps, inserts the trip at the front
// of the canonical collection, and persists. Input is taken as-is: validation
// happened upstream.
func (s *Store) CreateTrip(ctx context.Context, in domain.TripInput) domain.Trip {
	s.mu.Lock()
	now := s.now().UTC()
	trip := applyInput(domain.Trip{
		ID:        s.newID(),
		CreatedAt: now,
		UpdatedAt: now,
	}, in)
	s.trips = append([]domain.Trip{trip}, s.trips...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return trip
}

// UpdateTrip replaces every caller-settable field of the matching trip and
// refreshes updatedAt. ID and createdAt are never touched. A missing id is a
// deliberate silent no-op — the collection is left untouched and nothing is
// persisted; ok is false so callers can tell.
func (s *Store) UpdateTrip(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, bool) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.trips, func(t domain.Trip) bool { return t.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return domain.Trip{}, false
	}

	trip := applyInput(s.trips[idx], in)
	trip.UpdatedAt = s.now().UTC()
	s.trips[idx] = trip
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return trip, true
}

// DeleteTrip removes the trip and, atomically with it, every memory that
// references it — no orphaned memories survive a trip deletion. Missing ids
// are a silent no-op.
func (s *Store) DeleteTrip(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	before := len(s.trips)
	s.trips = slices.DeleteFunc(s.trips, func(t domain.Trip) bool { return t.ID == id })
	if len(s.trips) == before {
		s.mu.Unlock()
		return
	}
	s.memories = slices.DeleteFunc(s.memories, func(m domain.Memory) bool { return m.TripID == id })
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
}

// CreateMemory assigns an ID and createdAt, inserts at the front of the
// canonical collection, and persists. The store does not verify that the
// referenced trip exists — that check belongs to the caller.
func (s *Store) CreateMemory(ctx context.Context, in domain.MemoryInput) domain.Memory {
	s.mu.Lock()
	memory := domain.Memory{
		ID:        s.newID(),
		TripID:    in.TripID,
		Type:      in.Type,
		PhotoURL:  in.PhotoURL,
		Caption:   in.Caption,
		Note:      in.Note,
		CreatedAt: s.now().UTC(),
	}
	s.memories = append([]domain.Memory{memory}, s.memories...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return memory
}

// DeleteMemory removes a single memory. Missing ids are a silent no-op.
func (s *Store) DeleteMemory(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	before := len(s.memories)
	s.memories = slices.DeleteFunc(s.memories, func(m domain.Memory) bool { return m.ID == id })
	if len(s.memories) == before {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
}

// ActiveProfile returns the currently unlocked profile, or ProfileNone.
func (s *Store) ActiveProfile() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeProfile
}

// SetActiveProfile records the unlocked profile for this session only.
// It triggers no persistence: restarts always come up locked.
func (s *Store) SetActiveProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeProfile = p
}

// ViewMode returns the persisted list-presentation preference.
func (s *Store) ViewMode() domain.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// SetViewMode updates the presentation preference and persists it alongside
// the trip and memory data.
func (s *Store) SetViewMode(ctx context.Context, mode domain.ViewMode) {
	s.mu.Lock()
	s.viewMode = mode
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
}

// applyInput copies every caller-settable field of in onto trip, leaving
// ID/CreatedAt/UpdatedAt alone.
func applyInput(trip domain.Trip, in domain.TripInput) domain.Trip {
	trip.Title = in.Title
	trip.Destination = in.Destination
	trip.StartDate = in.StartDate
	trip.EndDate = in.EndDate
	trip.CoverPhotoURL = in.CoverPhotoURL
	trip.Photos = in.Photos
	trip.Notes = in.Notes
	trip.Rating = in.Rating
	trip.Tags = in.Tags
	trip.ErikAttended = in.ErikAttended
	trip.MarisaAttended = in.MarisaAttended
	return trip
}

// snapshotLocked assembles the persistence payload. Callers must hold mu.
// The active profile is deliberately left out.
func (s *Store) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Trips:    slices.Clone(s.trips),
		Memories: slices.Clone(s.memories),
		ViewMode: s.viewMode,
	}
}

// persist hands the snapshot to the port. Failures are logged and swallowed:
// persistence is fire-and-forget, the in-memory state is already updated.
func (s *Store) persist(ctx context.Context, snap domain.Snapshot) {
	if err := s.port.Save(ctx, snap); err != nil {
		s.log.Warn("persisting snapshot failed", "error", err)
	}
}
