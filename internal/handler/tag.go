package handler

import "net/http"

// ListTags handles GET /tags: every distinct normalized tag across the
// collection, alphabetically. Always an array, never null.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags := s.trips.Tags(r.Context())
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, tags)
}
