package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// ListTripMemories handles GET /trips/{id}/memories.
// Memories come back in canonical order; a trip with none yields [].
func (s *Server) ListTripMemories(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, s.memories.ListByTrip(r.Context(), tripID))
}

// CreateMemory handles POST /memories.
// The referenced trip must exist; photo memories need a photoUrl, note
// memories need text.
func (s *Server) CreateMemory(w http.ResponseWriter, r *http.Request) {
	var in domain.MemoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		requestError(w, "invalid request body")
		return
	}

	created, err := s.memories.Create(r.Context(), in)
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

	writeJSON(w, http.StatusCreated, created)
}

// DeleteMemory handles DELETE /memories/{id}.
// Deletion is idempotent: unknown and malformed ids also answer 204.
func (s *Server) DeleteMemory(w http.ResponseWriter, r *http.Request) {
	if id, err := uuid.Parse(chi.URLParam(r, "id")); err == nil {
		s.memories.Delete(r.Context(), id)
	}
	w.WriteHeader(http.StatusNoContent)
}
