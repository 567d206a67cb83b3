package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ehagen/elevated/backend/internal/domain"
)

// stateKey is the fixed storage key for the app snapshot. It matches the
// localStorage key used by earlier client-only builds, so a future import
// path stays trivial.
const stateKey = "elevated-app-state"

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgStore is the Postgres implementation of Port. The whole snapshot lives in
// one jsonb row of the app_state table.
type pgStore struct {
	db db
}

// NewPostgres constructs a Port backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgres(db db) Port {
	return &pgStore{db: db}
}

// Load reads and decodes the snapshot row.
// A missing row and an undecodable payload both return ok=false with no
// error: neither may abort initialization — the store seeds instead.
func (s *pgStore) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	const q = `
		SELECT data
		FROM app_state
		WHERE key = @key`

	var raw []byte
	row := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": stateKey})
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Snapshot{}, false, nil
		}
		return domain.Snapshot{}, false, fmt.Errorf("persist.Postgres.Load: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// Corrupt payload — treat the same as absent.
		return domain.Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Save upserts the snapshot row under the fixed key.
func (s *pgStore) Save(ctx context.Context, snap domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("persist.Postgres.Save: marshal: %w", err)
	}

	const q = `
		INSERT INTO app_state (key, data, updated_at)
		VALUES (@key, @data, now())
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": stateKey, "data": raw}); err != nil {
		return fmt.Errorf("persist.Postgres.Save: %w", err)
	}
	return nil
}
