package handler

import "net/http"

// GetStats handles GET /stats: summary aggregation over the whole trip
// collection. An empty collection yields all zeros.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.trips.Stats(r.Context()))
}
