package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehagen/elevated/backend/internal/domain"
	"github.com/ehagen/elevated/backend/internal/handler"
)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) []domain.ExportRow
}

func (m *mockExportServicer) Export(ctx context.Context) []domain.ExportRow {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

func exportRowFixture() domain.ExportRow {
	created := time.Date(2024, 3, 2, 18, 30, 0, 0, time.UTC)
	return domain.ExportRow{
		TripID:          uuid.New().String(),
		TripTitle:       "Kampot Getaway",
		City:            "Kampot",
		Country:         "Cambodia",
		TripStartDate:   "2024-03-01",
		TripEndDate:     "2024-03-05",
		Rating:          5,
		Tags:            []string{"beach", "food"},
		MemoryType:      "note",
		Note:            "rooftop dinner",
		MemoryCreatedAt: &created,
	}
}

func TestGetExport_JSON(t *testing.T) {
	rows := []domain.ExportRow{exportRowFixture(), exportRowFixture()}
	svc := &mockExportServicer{
		export: func(_ context.Context) []domain.ExportRow { return rows },
	}

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Kampot Getaway", resp[0]["tripTitle"])
	assert.Equal(t, "note", resp[0]["memoryType"])
}

func TestGetExport_JSON_Empty(t *testing.T) {
	svc := &mockExportServicer{
		export: func(_ context.Context) []domain.ExportRow { return []domain.ExportRow{} },
	}

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Must be a JSON array, not null.
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetExport_CSV(t *testing.T) {
	row := exportRowFixture()
	svc := &mockExportServicer{
		export: func(_ context.Context) []domain.ExportRow { return []domain.ExportRow{row} },
	}

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "trip_id", records[0][0])
	assert.Equal(t, row.TripID, records[1][0])
	assert.Equal(t, "beach|food", records[1][7])
	assert.Equal(t, "2024-03-02T18:30:00Z", records[1][12])
}

func TestGetExport_CSV_TripWithoutMemories(t *testing.T) {
	row := exportRowFixture()
	row.MemoryType = ""
	row.Note = ""
	row.MemoryCreatedAt = nil
	svc := &mockExportServicer{
		export: func(_ context.Context) []domain.ExportRow { return []domain.ExportRow{row} },
	}

	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil, svc).ServeHTTP(rec, req)

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Memory columns are present but empty.
	assert.Equal(t, "", records[1][8])
	assert.Equal(t, "", records[1][12])
}
