// Package domain contains the core data types for the Elevated travel journal.
// This package has almost no external dependencies and is imported by every
// other internal package (store, query, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Coordinates is a WGS84 point. The zero value (0,0) is the sentinel for
// "unmapped" — no geolocation has been set. Map consumers exclude sentinel
// trips from rendering.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether c is the unmapped sentinel.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Destination describes where a trip went.
// CountryCode is ISO 3166-1 alpha-2, e.g. "US", "JP", "KH".
type Destination struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	CountryCode string      `json:"countryCode"`
	Continent   string      `json:"continent"`
	Coordinates Coordinates `json:"coordinates"`
}

// Trip is the top-level aggregate: a single journey record with destination,
// dates, rating, tags, and narrative content. Memories reference a trip by ID.
//
// StartDate and EndDate are date-only values (no time of day); they marshal
// as "2006-01-02" strings. CreatedAt and UpdatedAt are set by the store,
// never by callers.
//
// JSON field names are camelCase because the same struct is both the API
// representation and the persisted snapshot payload.
type Trip struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Destination    Destination        `json:"destination"`
	StartDate      openapi_types.Date `json:"startDate"`
	EndDate        openapi_types.Date `json:"endDate"`
	CoverPhotoURL  string             `json:"coverPhotoUrl"`
	Photos         []string           `json:"photos"`
	Notes          string             `json:"notes"`
	Rating         int                `json:"rating"`
	Tags           []string           `json:"tags"`
	ErikAttended   bool               `json:"erikAttended"`
	MarisaAttended bool               `json:"marisaAttended"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// TripInput carries every caller-settable trip field. It is the payload for
// both create and update: the store assigns ID/CreatedAt/UpdatedAt itself and
// never lets a caller change them.
type TripInput struct {
	Title          string             `json:"title"`
	Destination    Destination        `json:"destination"`
	StartDate      openapi_types.Date `json:"startDate"`
	EndDate        openapi_types.Date `json:"endDate"`
	CoverPhotoURL  string             `json:"coverPhotoUrl"`
	Photos         []string           `json:"photos"`
	Notes          string             `json:"notes"`
	Rating         int                `json:"rating"`
	Tags           []string           `json:"tags"`
	ErikAttended   bool               `json:"erikAttended"`
	MarisaAttended bool               `json:"marisaAttended"`
}
