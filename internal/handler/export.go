// Package handler — export.go implements GET /export.
// Returns all trips and memories as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_title", "city", "country",
	"trip_start_date", "trip_end_date", "rating", "tags",
	"memory_type", "photo_url", "caption", "note", "memory_created_at",
}

// exportRowBody is the JSON shape of one export row. Memory columns are
// omitted on rows standing in for trips without memories.
type exportRowBody struct {
	TripID          string     `json:"tripId"`
	TripTitle       string     `json:"tripTitle"`
	City            string     `json:"city"`
	Country         string     `json:"country"`
	TripStartDate   string     `json:"tripStartDate"`
	TripEndDate     string     `json:"tripEndDate"`
	Rating          int        `json:"rating"`
	Tags            []string   `json:"tags"`
	MemoryType      string     `json:"memoryType,omitempty"`
	PhotoURL        string     `json:"photoUrl,omitempty"`
	Caption         string     `json:"caption,omitempty"`
	Note            string     `json:"note,omitempty"`
	MemoryCreatedAt *time.Time `json:"memoryCreatedAt,omitempty"`
}

// GetExport implements GET /export.
// It returns a flat table of every trip and memory combination.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows := s.export.Export(r.Context())

	if r.URL.Query().Get("format") == "csv" {
		writeCSVResponse(w, rows)
		return
	}

	out := make([]exportRowBody, 0, len(rows))
	for _, row := range rows {
		out = append(out, domainRowToBody(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSVResponse encodes domain rows as CSV.
// Tags within a row are pipe-separated ("|") to keep each memory on a single CSV line.
func writeCSVResponse(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="elevated-export.csv"`)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// domainRowToBody maps a domain.ExportRow to its JSON shape.
func domainRowToBody(r domain.ExportRow) exportRowBody {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return exportRowBody{
		TripID:          r.TripID,
		TripTitle:       r.TripTitle,
		City:            r.City,
		Country:         r.Country,
		TripStartDate:   r.TripStartDate,
		TripEndDate:     r.TripEndDate,
		Rating:          r.Rating,
		Tags:            tags,
		MemoryType:      r.MemoryType,
		PhotoURL:        r.PhotoURL,
		Caption:         r.Caption,
		Note:            r.Note,
		MemoryCreatedAt: r.MemoryCreatedAt,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Nil time pointers are encoded as empty strings.
// Tags are joined with "|".
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripTitle,
		r.City,
		r.Country,
		r.TripStartDate,
		r.TripEndDate,
		strconv.Itoa(r.Rating),
		strings.Join(r.Tags, "|"),
		r.MemoryType,
		r.PhotoURL,
		r.Caption,
		r.Note,
		formatOptionalTime(r.MemoryCreatedAt),
	}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
