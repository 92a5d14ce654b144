package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/docstore/migrations"
)

// DBTX is the subset of database/sql used by the store. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore keeps documents in a single table with a JSON fields column.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dsn and applies the
// embedded migrations.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, collection, key string) (map[string]any, error) {
	return getDocument(ctx, s.db, collection, key)
}

func getDocument(ctx context.Context, db DBTX, collection, key string) (map[string]any, error) {
	row := db.QueryRowContext(ctx,
		`SELECT fields FROM documents WHERE collection = ? AND key = ?`,
		collection, key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("%w: corrupt document: %v", common.ErrPersistence, err)
	}
	return fields, nil
}

// Set upserts the document. A merge overlays the given fields onto the
// stored ones inside a transaction so concurrent merges never lose fields.
func (s *SQLiteStore) Set(ctx context.Context, collection, key string, fields map[string]any, merge bool) error {
	write := fields
	if !merge {
		return s.upsert(ctx, s.db, collection, key, write)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := getDocument(ctx, tx, collection, key)
	switch {
	case errors.Is(err, common.ErrNotFound):
		existing = map[string]any{}
	case err != nil:
		return err
	}
	for name, value := range fields {
		existing[name] = value
	}
	if err := s.upsert(ctx, tx, collection, key, existing); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (s *SQLiteStore) upsert(ctx context.Context, db DBTX, collection, key string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (collection, key, fields, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(collection, key) DO UPDATE SET
			fields = excluded.fields,
			updated_at = excluded.updated_at`,
		collection, key, string(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}
