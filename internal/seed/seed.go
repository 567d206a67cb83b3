// Package seed provides the bundled first-run dataset. The store falls back
// to it whenever no persisted snapshot exists or the stored payload does not
// parse. Memories always start empty.
package seed

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ehagen/elevated/backend/internal/domain"
)

func day(y int, m time.Month, d int) openapi_types.Date {
	return openapi_types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ts(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// Trips returns a fresh copy of the seed trips, newest creation first to
// match the store's canonical insertion order. IDs are fixed so repeated
// seeding is deterministic.
func Trips() []domain.Trip {
	return []domain.Trip{
		{
			ID:    uuid.MustParse("7a1f3c2e-9b4d-4e6f-8a2b-1c5d7e9f0a3b"),
			Title: "Kampot River Days",
			Destination: domain.Destination{
				City: "Kampot", Country: "Cambodia", CountryCode: "KH", Continent: "Asia",
				Coordinates: domain.Coordinates{Lat: 10.6104, Lng: 104.1810},
			},
			StartDate:     day(2024, time.February, 3),
			EndDate:       day(2024, time.February, 10),
			CoverPhotoURL: "https://images.unsplash.com/photo-1563492065599-3520f775eeed",
			Photos:        []string{},
			Notes:         "Pepper farms, river sunsets, and the slowest week of the year.",
			Rating:        5,
			Tags:          []string{"river", "food", "slow travel"},
			ErikAttended:  true, MarisaAttended: true,
			CreatedAt: ts(2024, time.February, 12),
			UpdatedAt: ts(2024, time.February, 12),
		},
		{
			ID:    uuid.MustParse("2b8e4d1a-6c3f-4a5b-9d7e-0f2a4c6e8b1d"),
			Title: "Tokyo Neon Week",
			Destination: domain.Destination{
				City: "Tokyo", Country: "Japan", CountryCode: "JP", Continent: "Asia",
				Coordinates: domain.Coordinates{Lat: 35.6762, Lng: 139.6503},
			},
			StartDate:     day(2023, time.November, 18),
			EndDate:       day(2023, time.November, 26),
			CoverPhotoURL: "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf",
			Photos:        []string{},
			Notes:         "Shibuya crossing at midnight, tsukemen twice a day.",
			Rating:        5,
			Tags:          []string{"city", "food", "culture"},
			ErikAttended:  true, MarisaAttended: true,
			CreatedAt: ts(2023, time.December, 2),
			UpdatedAt: ts(2023, time.December, 2),
		},
		{
			ID:    uuid.MustParse("9c5a7e3b-1d8f-4b2c-a6e4-3f5b7d9a1c8e"),
			Title: "Lisbon Long Weekend",
			Destination: domain.Destination{
				City: "Lisbon", Country: "Portugal", CountryCode: "PT", Continent: "Europe",
				Coordinates: domain.Coordinates{Lat: 38.7223, Lng: -9.1393},
			},
			StartDate:     day(2023, time.June, 9),
			EndDate:       day(2023, time.June, 12),
			CoverPhotoURL: "https://images.unsplash.com/photo-1585208798174-6cedd86e019a",
			Photos:        []string{},
			Notes:         "Pastéis de nata count: fourteen. No regrets.",
			Rating:        4,
			Tags:          []string{"city", "food"},
			ErikAttended:  false, MarisaAttended: true,
			CreatedAt: ts(2023, time.June, 14),
			UpdatedAt: ts(2023, time.June, 14),
		},
		{
			ID:    uuid.MustParse("4d2c6b8a-3e1f-4c7d-b5a9-8e0d2f4b6a3c"),
			Title: "Banff Ice Walks",
			Destination: domain.Destination{
				City: "Banff", Country: "Canada", CountryCode: "CA", Continent: "North America",
				Coordinates: domain.Coordinates{Lat: 51.1784, Lng: -115.5708},
			},
			StartDate:     day(2023, time.January, 14),
			EndDate:       day(2023, time.January, 21),
			CoverPhotoURL: "https://images.unsplash.com/photo-1561134643-668f9057cce4",
			Photos:        []string{},
			Notes:         "Johnston Canyon frozen solid. Erik fell exactly once.",
			Rating:        4,
			Tags:          []string{"mountains", "winter"},
			ErikAttended:  true, MarisaAttended: false,
			CreatedAt: ts(2023, time.January, 25),
			UpdatedAt: ts(2023, time.January, 25),
		},
		{
			ID:    uuid.MustParse("6e4b2d0c-5a7f-4d3e-8c1b-2a9f6d4e0b7a"),
			Title: "Oaxaca for the Food",
			Destination: domain.Destination{
				City: "Oaxaca", Country: "Mexico", CountryCode: "MX", Continent: "North America",
				// No pin yet — sentinel coordinates keep this off the map view.
				Coordinates: domain.Coordinates{},
			},
			StartDate:     day(2022, time.October, 28),
			EndDate:       day(2022, time.November, 4),
			CoverPhotoURL: "https://images.unsplash.com/photo-1518105779142-d975f22f1b0a",
			Photos:        []string{},
			Notes:         "Día de Muertos, seven kinds of mole.",
			Rating:        5,
			Tags:          []string{"food", "culture"},
			ErikAttended:  true, MarisaAttended: true,
			CreatedAt: ts(2022, time.November, 8),
			UpdatedAt: ts(2022, time.November, 8),
		},
	}
}
