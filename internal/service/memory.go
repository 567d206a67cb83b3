package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/internal/query"
)

// MemoryStore defines the store operations the memory service depends on.
type MemoryStore interface {
	Trips() []domain.Trip
	Memories() []domain.Memory
	CreateMemory(ctx context.Context, in domain.MemoryInput) domain.Memory
	DeleteMemory(ctx context.Context, id uuid.UUID)
}

// MemoryService implements business logic for memory operations. The store
// does not verify trip references or type rules — both checks live here.
type MemoryService struct {
	store MemoryStore
}

// NewMemoryService constructs a MemoryService backed by the provided store.
func NewMemoryService(store MemoryStore) *MemoryService {
	return &MemoryService{store: store}
}

// Create verifies the referenced trip exists and the type-specific content
// rules hold, then persists the memory.
// Returns domain.ErrNotFound for an unknown trip, domain.ErrValidation for
// bad content.
func (s *MemoryService) Create(ctx context.Context, in domain.MemoryInput) (domain.Memory, error) {
	if _, ok := query.TripByID(s.store.Trips(), in.TripID); !ok {
		return domain.Memory{}, fmt.Errorf("service.MemoryService.Create: %w", domain.ErrNotFound)
	}
	if err := validateMemory(in); err != nil {
		return domain.Memory{}, err
	}
	return s.store.CreateMemory(ctx, in), nil
}

// ListByTrip returns all memories for a trip in canonical order.
// Memories referencing a deleted trip are excluded lazily by the query, not
// pruned — there is no cleanup path outside trip deletion.
func (s *MemoryService) ListByTrip(ctx context.Context, tripID uuid.UUID) []domain.Memory {
	return query.MemoriesForTrip(s.store.Memories(), tripID)
}

// Delete removes a single memory. Unknown ids are not an error.
func (s *MemoryService) Delete(ctx context.Context, id uuid.UUID) {
	s.store.DeleteMemory(ctx, id)
}

// validateMemory enforces the per-type content rules: photos need a photo
// URL, notes need text.
func validateMemory(in domain.MemoryInput) error {
	switch in.Type {
	case domain.MemoryTypePhoto:
		if in.PhotoURL == "" {
			return fmt.Errorf("%w: photoUrl is required for photo memories", domain.ErrValidation)
		}
	case domain.MemoryTypeNote:
		if in.Note == "" {
			return fmt.Errorf("%w: note is required for note memories", domain.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: type must be photo or note", domain.ErrValidation)
	}
	return nil
}
