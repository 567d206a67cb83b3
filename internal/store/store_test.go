package store_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/internal/persist"
	"github.com/ehagen/elevated/backend/internal/seed"
	"github.com/ehagen/elevated/backend/internal/store"
)

// mockPort is a hand-written test double for persist.Port.
// It records every saved snapshot so tests can assert on what was persisted.
type mockPort struct {
	loadSnap domain.Snapshot
	loadOK   bool
	loadErr  error
	saveErr  error
	saved    []domain.Snapshot
}

func (m *mockPort) Load(_ context.Context) (domain.Snapshot, bool, error) {
	return m.loadSnap, m.loadOK, m.loadErr
}

func (m *mockPort) Save(_ context.Context, snap domain.Snapshot) error {
	m.saved = append(m.saved, snap)
	return m.saveErr
}

// compile-time check: mockPort must satisfy persist.Port.
var _ persist.Port = (*mockPort)(nil)

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(y int, m time.Month, d int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func tripInput() domain.TripInput {
	return domain.TripInput{
		Title: "Kyoto in Autumn",
		Destination: domain.Destination{
			City: "Kyoto", Country: "Japan", CountryCode: "JP", Continent: "Asia",
			Coordinates: domain.Coordinates{Lat: 35.0116, Lng: 135.7681},
		},
		StartDate:    day(2022, time.September, 20),
		EndDate:      day(2022, time.September, 27),
		Rating:       4,
		Tags:         []string{"culture", "food"},
		ErikAttended: true, MarisaAttended: true,
	}
}

// openEmpty returns a store with no trips or memories and the given port.
func openEmpty(t *testing.T, port *mockPort) *store.Store {
	t.Helper()
	port.loadSnap = domain.Snapshot{Trips: []domain.Trip{}, Memories: []domain.Memory{}, ViewMode: domain.ViewModeGrid}
	port.loadOK = true
	return store.Open(context.Background(), port, discardLogger())
}

// ---- Open ------------------------------------------------------------------

func TestOpen_NoSnapshot_SeedsTrips(t *testing.T) {
	s := store.Open(context.Background(), &mockPort{}, discardLogger())

	assert.Equal(t, seed.Trips(), s.Trips())
	assert.Empty(t, s.Memories())
	assert.Equal(t, domain.ViewModeGrid, s.ViewMode())
}

func TestOpen_LoadError_FallsBackToSeed(t *testing.T) {
	port := &mockPort{loadErr: errors.New("connection refused")}

	s := store.Open(context.Background(), port, discardLogger())

	assert.Equal(t, seed.Trips(), s.Trips(), "initialization must survive a broken backend")
}

func TestOpen_Snapshot_RestoresCollections(t *testing.T) {
	tripID := uuid.New()
	port := &mockPort{
		loadSnap: domain.Snapshot{
			Trips:    []domain.Trip{{ID: tripID, Title: "Restored"}},
			Memories: []domain.Memory{{ID: uuid.New(), TripID: tripID, Type: domain.MemoryTypeNote, Note: "hi"}},
			ViewMode: domain.ViewModeList,
		},
		loadOK: true,
	}

	s := store.Open(context.Background(), port, discardLogger())

	require.Len(t, s.Trips(), 1)
	assert.Equal(t, "Restored", s.Trips()[0].Title)
	assert.Len(t, s.Memories(), 1)
	assert.Equal(t, domain.ViewModeList, s.ViewMode())
}

func TestOpen_AlwaysStartsLocked(t *testing.T) {
	port := &mockPort{loadOK: true, loadSnap: domain.Snapshot{ViewMode: domain.ViewModeGrid}}

	s := store.Open(context.Background(), port, discardLogger())

	assert.Equal(t, domain.ProfileNone, s.ActiveProfile())
}

func TestOpen_UnknownViewMode_DefaultsToGrid(t *testing.T) {
	port := &mockPort{loadOK: true, loadSnap: domain.Snapshot{ViewMode: "mosaic"}}

	s := store.Open(context.Background(), port, discardLogger())

	assert.Equal(t, domain.ViewModeGrid, s.ViewMode())
}

// ---- CreateTrip ------------------------------------------------------------

func TestCreateTrip_AssignsIDAndTimestamps(t *testing.T) {
	now := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	port := &mockPort{}
	s := store.Open(context.Background(), port, discardLogger(),
		store.WithClock(func() time.Time { return now }))

	got := s.CreateTrip(context.Background(), tripInput())

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt, "createdAt and updatedAt must match on creation")
}

func TestCreateTrip_UniqueIDs(t *testing.T) {
	s := openEmpty(t, &mockPort{})

	seen := map[uuid.UUID]bool{}
	for i := 0; i < 50; i++ {
		got := s.CreateTrip(context.Background(), tripInput())
		assert.False(t, seen[got.ID], "duplicate trip id %s", got.ID)
		seen[got.ID] = true
	}
}

func TestCreateTrip_InsertsAtFront(t *testing.T) {
	s := openEmpty(t, &mockPort{})

	first := s.CreateTrip(context.Background(), tripInput())
	second := s.CreateTrip(context.Background(), tripInput())

	trips := s.Trips()
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID, "most recently created trip comes first")
	assert.Equal(t, first.ID, trips[1].ID)
}

func TestCreateTrip_PersistsSnapshot(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)

	got := s.CreateTrip(context.Background(), tripInput())

	require.Len(t, port.saved, 1)
	require.Len(t, port.saved[0].Trips, 1)
	assert.Equal(t, got.ID, port.saved[0].Trips[0].ID)
}

// ---- UpdateTrip ------------------------------------------------------------

func TestUpdateTrip_ReplacesFieldsAndRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	clock := created
	port := &mockPort{}
	s := store.Open(context.Background(), port, discardLogger(),
		store.WithClock(func() time.Time { return clock }))

	trip := s.CreateTrip(context.Background(), tripInput())

	clock = updated
	in := tripInput()
	in.Title = "Kyoto, Revisited"
	in.Rating = 5

	got, ok := s.UpdateTrip(context.Background(), trip.ID, in)

	require.True(t, ok)
	assert.Equal(t, "Kyoto, Revisited", got.Title)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, trip.ID, got.ID, "id is immutable")
	assert.Equal(t, created, got.CreatedAt, "createdAt is immutable")
	assert.Equal(t, updated, got.UpdatedAt)
}

func TestUpdateTrip_MissingID_SilentNoOp(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)
	s.CreateTrip(context.Background(), tripInput())
	before := s.Trips()
	savesBefore := len(port.saved)

	_, ok := s.UpdateTrip(context.Background(), uuid.New(), tripInput())

	assert.False(t, ok)
	assert.Equal(t, before, s.Trips(), "collection must be left untouched")
	assert.Len(t, port.saved, savesBefore, "a no-op must not persist")
}

// ---- DeleteTrip ------------------------------------------------------------

func TestDeleteTrip_CascadesMemories(t *testing.T) {
	s := openEmpty(t, &mockPort{})
	ctx := context.Background()

	trip := s.CreateTrip(ctx, tripInput())
	other := s.CreateTrip(ctx, tripInput())
	s.CreateMemory(ctx, domain.MemoryInput{TripID: trip.ID, Type: domain.MemoryTypeNote, Note: "gone"})
	s.CreateMemory(ctx, domain.MemoryInput{TripID: trip.ID, Type: domain.MemoryTypeNote, Note: "also gone"})
	kept := s.CreateMemory(ctx, domain.MemoryInput{TripID: other.ID, Type: domain.MemoryTypeNote, Note: "kept"})

	s.DeleteTrip(ctx, trip.ID)

	require.Len(t, s.Trips(), 1)
	memories := s.Memories()
	require.Len(t, memories, 1, "no orphaned memories may survive")
	assert.Equal(t, kept.ID, memories[0].ID)
}

func TestDeleteTrip_MissingID_SilentNoOp(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)
	s.CreateTrip(context.Background(), tripInput())
	savesBefore := len(port.saved)

	s.DeleteTrip(context.Background(), uuid.New())

	assert.Len(t, s.Trips(), 1)
	assert.Len(t, port.saved, savesBefore)
}

// ---- Memories --------------------------------------------------------------

func TestCreateMemory_AssignsIDAndCreatedAt(t *testing.T) {
	now := time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)
	port := &mockPort{}
	s := store.Open(context.Background(), port, discardLogger(),
		store.WithClock(func() time.Time { return now }))

	got := s.CreateMemory(context.Background(), domain.MemoryInput{
		TripID: uuid.New(), Type: domain.MemoryTypePhoto, PhotoURL: "data:image/jpeg;base64,...",
	})

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, now, got.CreatedAt)
}

func TestCreateMemory_InsertsAtFront(t *testing.T) {
	s := openEmpty(t, &mockPort{})
	ctx := context.Background()
	tripID := uuid.New()

	s.CreateMemory(ctx, domain.MemoryInput{TripID: tripID, Type: domain.MemoryTypeNote, Note: "first"})
	s.CreateMemory(ctx, domain.MemoryInput{TripID: tripID, Type: domain.MemoryTypeNote, Note: "second"})

	memories := s.Memories()
	require.Len(t, memories, 2)
	assert.Equal(t, "second", memories[0].Note)
}

func TestDeleteMemory_RemovesOnlyThatMemory(t *testing.T) {
	s := openEmpty(t, &mockPort{})
	ctx := context.Background()
	tripID := uuid.New()

	doomed := s.CreateMemory(ctx, domain.MemoryInput{TripID: tripID, Type: domain.MemoryTypeNote, Note: "doomed"})
	s.CreateMemory(ctx, domain.MemoryInput{TripID: tripID, Type: domain.MemoryTypeNote, Note: "kept"})

	s.DeleteMemory(ctx, doomed.ID)

	memories := s.Memories()
	require.Len(t, memories, 1)
	assert.Equal(t, "kept", memories[0].Note)
}

func TestDeleteMemory_MissingID_SilentNoOp(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)
	savesBefore := len(port.saved)

	s.DeleteMemory(context.Background(), uuid.New())

	assert.Len(t, port.saved, savesBefore)
}

// ---- Session state ---------------------------------------------------------

func TestSetActiveProfile_NeverPersisted(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)
	savesBefore := len(port.saved)

	s.SetActiveProfile(domain.ProfileMarisa)

	assert.Equal(t, domain.ProfileMarisa, s.ActiveProfile())
	assert.Len(t, port.saved, savesBefore, "profile changes must not touch storage")
}

func TestSetViewMode_Persisted(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)

	s.SetViewMode(context.Background(), domain.ViewModeList)

	assert.Equal(t, domain.ViewModeList, s.ViewMode())
	require.NotEmpty(t, port.saved)
	last := port.saved[len(port.saved)-1]
	assert.Equal(t, domain.ViewModeList, last.ViewMode)
}

// ---- Round-trip ------------------------------------------------------------

func TestRoundTrip_ReopeningFromLastSnapshot_ReproducesState(t *testing.T) {
	port := &mockPort{}
	s := openEmpty(t, port)
	ctx := context.Background()

	trip := s.CreateTrip(ctx, tripInput())
	s.CreateMemory(ctx, domain.MemoryInput{TripID: trip.ID, Type: domain.MemoryTypeNote, Note: "keep me"})
	s.SetViewMode(ctx, domain.ViewModeList)

	require.NotEmpty(t, port.saved)
	reopened := store.Open(ctx, &mockPort{loadSnap: port.saved[len(port.saved)-1], loadOK: true}, discardLogger())

	assert.Equal(t, s.Trips(), reopened.Trips())
	assert.Equal(t, s.Memories(), reopened.Memories())
	assert.Equal(t, domain.ViewModeList, reopened.ViewMode())
}

// Persistence failures must not disturb the in-memory state.
func TestSaveFailure_DoesNotAffectCollections(t *testing.T) {
	port := &mockPort{saveErr: errors.New("disk full")}
	s := openEmpty(t, port)

	got := s.CreateTrip(context.Background(), tripInput())

	require.Len(t, s.Trips(), 1)
	assert.Equal(t, got.ID, s.Trips()[0].ID)
}
