package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// ListTrips handles GET /trips.
// Query parameters: ?search= (substring match over title, city, country,
// notes, tags), ?tags= (comma-separated, conjunctive), ?sort= (startDate,
// rating, createdAt, title), ?order= (asc, desc), ?mappable=true (only trips
// with real coordinates — the map view's filter).
// With no parameters this is all trips, most recent start date first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.NewFilterState(q.Get("search"), splitCSV(q.Get("tags")), q.Get("sort"), q.Get("order"))

	trips := s.trips.List(r.Context(), f)

	if q.Get("mappable") == "true" {
		mapped := make([]domain.Trip, 0, len(trips))
		for _, t := range trips {
			if !t.Destination.Coordinates.IsZero() {
				mapped = append(mapped, t)
			}
		}
		trips = mapped
	}

	writeJSON(w, http.StatusOK, trips)
}

// ListRecentTrips handles GET /trips/recent.
// ?limit= caps the number of trips returned (default 4, max 20).
func (s *Server) ListRecentTrips(w http.ResponseWriter, r *http.Request) {
	var limit *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = &n
		}
	}

	trips := s.trips.Recent(r.Context(), domain.NewRecentLimit(limit))
	writeJSON(w, http.StatusOK, trips)
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var in domain.TripInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		requestError(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{id}. The body carries the full set of
// mutable fields; id and createdAt can never change. An unknown id yields
// 404 — the underlying collection is untouched either way.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	var in domain.TripInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		requestError(w, "invalid request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			notFound(w, "trip not found")
		case errors.Is(err, domain.ErrValidation):
			validationError(w, err)
		default:
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{id}.
// Deletion is idempotent: unknown and malformed ids also answer 204.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		s.trips.Delete(r.Context(), id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// splitCSV splits a comma-separated query value into a trimmed slice,
// ignoring empty entries.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// internalError writes a generic 500. Details stay in the server log.
func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}
