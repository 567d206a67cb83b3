// Package handler implements the HTTP handlers for the Elevated API.
// All handlers are methods on Server; they are split into domain-specific
// files (trip.go, memory.go, session.go, ...) but share the same struct so
// they can access its dependencies. Routing is plain chi.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/spec"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(ctx context.Context, in domain.TripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, f domain.FilterState) []domain.Trip
	Recent(ctx context.Context, n int) []domain.Trip
	Update(ctx context.Context, id uuid.UUID, in domain.TripInput) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID)
	Tags(ctx context.Context) []string
	Stats(ctx context.Context) domain.Stats
}

// MemoryServicer defines the business operations the memory handlers depend on.
type MemoryServicer interface {
	Create(ctx context.Context, in domain.MemoryInput) (domain.Memory, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) []domain.Memory
	Delete(ctx context.Context, id uuid.UUID)
}

// SessionServicer defines the session-gate and preference operations.
type SessionServicer interface {
	Unlock(ctx context.Context, profile domain.Profile, pin string) error
	Lock(ctx context.Context)
	Current(ctx context.Context) domain.Profile
	ViewMode(ctx context.Context) domain.ViewMode
	SetViewMode(ctx context.Context, mode domain.ViewMode) error
}

// ExportServicer defines the flat-export operation.
type ExportServicer interface {
	Export(ctx context.Context) []domain.ExportRow
}

// Server holds every handler dependency. Methods live in domain-specific
// files but all operate on this struct.
type Server struct {
	trips    TripServicer
	memories MemoryServicer
	session  SessionServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, memories MemoryServicer, session SessionServicer, export ExportServicer) *Server {
	return &Server{trips: trips, memories: memories, session: session, export: export}
}

// Routes builds the full API router. Mount it at "/" in main.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Get("/recent", s.ListRecentTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Get("/memories", s.ListTripMemories)
		})
	})

	r.Post("/memories", s.CreateMemory)
	r.Delete("/memories/{id}", s.DeleteMemory)

	r.Get("/stats", s.GetStats)
	r.Get("/tags", s.ListTags)
	r.Get("/export", s.GetExport)

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.GetSession)
		r.Post("/", s.Unlock)
		r.Delete("/", s.Lock)
	})

	r.Get("/view-mode", s.GetViewMode)
	r.Put("/view-mode", s.SetViewMode)

	return r
}

// GetOpenAPI serves the embedded OpenAPI document, so the spec and the
// running code are always in sync.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
