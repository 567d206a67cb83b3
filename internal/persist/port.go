// Package persist contains the snapshot persistence port and its Postgres
// implementation. The store serializes its entire state as one JSON document
// under a single fixed key; this package only moves that document in and out
// of durable storage. No business logic lives here.
package persist

import (
	"context"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// Port is the pluggable persistence boundary the store depends on.
// The store depends on this interface, not the concrete Postgres
// implementation, which keeps it testable with an in-memory fake.
type Port interface {
	// Load reads the persisted snapshot. ok is false when no snapshot has
	// ever been saved, or when the stored payload does not parse — in both
	// cases the caller is expected to fall back to seed data.
	Load(ctx context.Context) (snap domain.Snapshot, ok bool, err error)

	// Save overwrites the persisted snapshot.
	Save(ctx context.Context, snap domain.Snapshot) error
}
