package domain

// Stats summarizes a trip collection. Country and continent counts are
// cardinalities of the distinct-value sets; TotalDays uses inclusive day
// counts (a one-day trip counts as 1); AverageRating is the mean rating
// across all given trips, rounded to one decimal, and 0 for empty input.
type Stats struct {
	TotalTrips      int     `json:"totalTrips"`
	TotalCountries  int     `json:"totalCountries"`
	TotalContinents int     `json:"totalContinents"`
	TotalDays       int     `json:"totalDays"`
	AverageRating   float64 `json:"averageRating"`
}
