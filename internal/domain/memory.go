package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemoryType discriminates the two kinds of memory.
type MemoryType string

const (
	MemoryTypePhoto MemoryType = "photo"
	MemoryTypeNote  MemoryType = "note"
)

// Memory is an atomic attachment to exactly one trip: a photo or a note.
// Memories are never updated in place — correcting content means delete and
// recreate. PhotoURL may be a remote URL or an embedded base64 data URL; the
// store treats it as an opaque string either way.
type Memory struct {
	ID        uuid.UUID  `json:"id"`
	TripID    uuid.UUID  `json:"tripId"`
	Type      MemoryType `json:"type"`
	PhotoURL  string     `json:"photoUrl,omitempty"`
	Caption   string     `json:"caption,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// MemoryInput carries the caller-settable memory fields.
// The store assigns ID and CreatedAt.
type MemoryInput struct {
	TripID   uuid.UUID  `json:"tripId"`
	Type     MemoryType `json:"type"`
	PhotoURL string     `json:"photoUrl,omitempty"`
	Caption  string     `json:"caption,omitempty"`
	Note     string     `json:"note,omitempty"`
}
