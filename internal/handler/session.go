package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// sessionBody is the GET /session response. Profile is null while locked.
type sessionBody struct {
	Profile *domain.Profile `json:"profile"`
}

// unlockRequest is the POST /session body.
type unlockRequest struct {
	Profile domain.Profile `json:"profile"`
	PIN     string         `json:"pin"`
}

// GetSession handles GET /session.
// The presentation layer uses this to decide route gating; the API itself
// enforces no access control.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	var body sessionBody
	if p := s.session.Current(r.Context()); p != domain.ProfileNone {
		body.Profile = &p
	}
	writeJSON(w, http.StatusOK, body)
}

// Unlock handles POST /session: a correct profile + 4-digit PIN pair
// activates that profile for the rest of the process lifetime.
func (s *Server) Unlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	if err := s.session.Unlock(r.Context(), req.Profile, req.PIN); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Lock handles DELETE /session.
func (s *Server) Lock(w http.ResponseWriter, r *http.Request) {
	s.session.Lock(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
