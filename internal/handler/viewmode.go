package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// viewModeBody is both the GET /view-mode response and PUT /view-mode request.
type viewModeBody struct {
	ViewMode domain.ViewMode `json:"viewMode"`
}

// GetViewMode handles GET /view-mode.
func (s *Server) GetViewMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewModeBody{ViewMode: s.session.ViewMode(r.Context())})
}

// SetViewMode handles PUT /view-mode. The preference persists with the
// trip and memory data.
func (s *Server) SetViewMode(w http.ResponseWriter, r *http.Request) {
	var req viewModeBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "invalid request body")
		return
	}

	if err := s.session.SetViewMode(r.Context(), req.ViewMode); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
