package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite"
)

// sqlDialect holds the statements that differ between drivers.
type sqlDialect struct {
	schema string
	upsert string
	query  string
}

var sqliteDialect = sqlDialect{
	schema: `CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		doc BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	upsert: `INSERT INTO saves (slot, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
	query: `SELECT doc FROM saves WHERE slot = ?`,
}

var postgresDialect = sqlDialect{
	schema: `CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		doc BYTEA NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	upsert: `INSERT INTO saves (slot, doc, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`,
	query: `SELECT doc FROM saves WHERE slot = $1`,
}

// SQLStore keeps saves in a saves table. It backs both the SQLite and the
// PostgreSQL backends.
type SQLStore struct {
	db      *sql.DB
	dialect sqlDialect
}

// OpenSQLite opens or creates a SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	return openSQL(ctx, "sqlite", dsn, sqliteDialect)
}

// OpenPostgres connects to the database named by dsn.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	return openSQL(ctx, "postgres", dsn, postgresDialect)
}

func openSQL(ctx context.Context, driver, dsn string, d sqlDialect) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}
	return &SQLStore{db: db, dialect: d}, nil
}

// Save upserts doc under slot.
func (s *SQLStore) Save(ctx context.Context, slot string, doc []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, slot, doc, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("upsert save: %w", err)
	}
	return nil
}

// Load returns the document under slot.
func (s *SQLStore) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	var doc []byte
	err := s.db.QueryRowContext(ctx, s.dialect.query, slot).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query save: %w", err)
	}
	return doc, nil
}

// Close closes the database handle.
func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
