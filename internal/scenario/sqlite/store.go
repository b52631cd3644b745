// Package sqlite provides a SQLite-backed scenario store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/cleared-dev/forecast/internal/scenario"
	"github.com/cleared-dev/forecast/internal/scenario/sqlite/migrations"
)

// Store persists scenarios as JSON payloads keyed by ID.
type Store struct {
	db *sql.DB
}

var _ scenario.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, sc scenario.Scenario) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(sc.ID) == "" {
		return fmt.Errorf("scenario id is required")
	}
	payload, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encode scenario %s: %w", sc.ID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scenarios (id, name, saved_at, payload) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, saved_at = excluded.saved_at, payload = excluded.payload`,
		sc.ID, sc.Name, sc.Date.UTC().UnixMilli(), string(payload),
	)
	if err != nil {
		return fmt.Errorf("save scenario %s: %w", sc.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (scenario.Scenario, error) {
	return s.queryOne(ctx, `SELECT payload FROM scenarios WHERE id = ?`, id)
}

func (s *Store) FindByName(ctx context.Context, name string) (scenario.Scenario, error) {
	return s.queryOne(ctx, `SELECT payload FROM scenarios WHERE name = ? ORDER BY saved_at DESC LIMIT 1`, name)
}

func (s *Store) queryOne(ctx context.Context, query string, arg string) (scenario.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return scenario.Scenario{}, err
	}
	var payload string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return scenario.Scenario{}, fmt.Errorf("%w: %s", scenario.ErrNotFound, arg)
	}
	if err != nil {
		return scenario.Scenario{}, fmt.Errorf("query scenario %s: %w", arg, err)
	}
	return decode(payload)
}

func (s *Store) List(ctx context.Context) ([]scenario.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM scenarios ORDER BY saved_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var out []scenario.Scenario
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		sc, err := decode(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenarios: %w", err)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete scenario %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", scenario.ErrNotFound, id)
	}
	return nil
}

func decode(payload string) (scenario.Scenario, error) {
	var sc scenario.Scenario
	if err := json.Unmarshal([]byte(payload), &sc); err != nil {
		return scenario.Scenario{}, fmt.Errorf("decode scenario payload: %w", err)
	}
	return sc, nil
}
