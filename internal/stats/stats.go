// Package stats computes summary statistics over a trip collection.
// Compute is a pure function; callers decide which slice of trips to pass
// (all trips, a filtered view, one profile's trips).
package stats

import (
	"math"

	"github.com/ehagen/elevated/backend/internal/dateutil"
	"github.com/ehagen/elevated/backend/internal/domain"
)

// Compute aggregates the given trips into a domain.Stats.
// An empty input yields all zeros — never a division by zero.
func Compute(trips []domain.Trip) domain.Stats {
	countries := make(map[string]struct{})
	continents := make(map[string]struct{})

	totalDays := 0
	ratingSum := 0
	for _, t := range trips {
		countries[t.Destination.CountryCode] = struct{}{}
		continents[t.Destination.Continent] = struct{}{}
		totalDays += dateutil.TripDuration(t.StartDate.Time, t.EndDate.Time)
		ratingSum += t.Rating
	}

	avg := 0.0
	if len(trips) > 0 {
		avg = math.Round(float64(ratingSum)/float64(len(trips))*10) / 10
	}

	return domain.Stats{
		TotalTrips:      len(trips),
		TotalCountries:  len(countries),
		TotalContinents: len(continents),
		TotalDays:       totalDays,
		AverageRating:   avg,
	}
}
