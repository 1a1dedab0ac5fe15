package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists records in Postgres. It is selected at startup when a
// DATABASE_URL is configured; deployments without one fall back to the
// file store. A single upsert per Put keeps last-write-wins semantics
// without coordinating concurrent writers.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a store backed by the given pool and ensures the
// conocimiento table exists.
func NewPGStore(ctx context.Context, pool *pgxpool.Pool) (*PGStore, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS conocimiento (
			area       TEXT PRIMARY KEY,
			record     JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure conocimiento table: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

// Put overwrites the record for the key.
func (s *PGStore) Put(ctx context.Context, areaKey string, rec *Record) error {
	areaKey = strings.TrimSpace(areaKey)
	if areaKey == "" {
		return ErrMissingAreaKey
	}

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal knowledge record: %w", err)
	}

	query := `
		INSERT INTO conocimiento (area, record, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (area) DO UPDATE SET record = $2, updated_at = NOW()
	`
	if _, err := s.pool.Exec(ctx, query, areaKey, recJSON); err != nil {
		return fmt.Errorf("failed to persist knowledge record: %w", err)
	}
	return nil
}

// Get returns the record for the key.
func (s *PGStore) Get(ctx context.Context, areaKey string) (*Record, error) {
	var recJSON []byte
	query := `SELECT record FROM conocimiento WHERE area = $1`
	err := s.pool.QueryRow(ctx, query, strings.TrimSpace(areaKey)).Scan(&recJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, areaKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(recJSON, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode knowledge record %s: %w", areaKey, err)
	}
	return &rec, nil
}
