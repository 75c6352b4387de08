// Package sqlite implementa el storage sobre un archivo SQLite (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// SchemaVersion es la última versión de esquema (PRAGMA user_version).
const SchemaVersion = 1

type Options struct {
	Path string

	// MaxOpenConns 0 => 1: SQLite admite un solo escritor.
	MaxOpenConns int
	MaxIdleConns int
}

type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo y aplica las migraciones pendientes.
func Open(ctx context.Context, opts Options) (*Store, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, errors.New("sqlite: path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "sqlite: create directory")
		}
	}

	// Pragmas en el DSN para que apliquen a todas las conexiones del pool.
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: open")
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "sqlite: ping")
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// migrate aplica migraciones según user_version.
func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return errors.Wrap(err, "sqlite: read user_version")
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS vitamins (
		  id      INTEGER PRIMARY KEY AUTOINCREMENT,
		  name    TEXT NOT NULL,
		  dosage  TEXT NOT NULL,
		  user_id TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_vitamins_user ON vitamins(user_id);

		CREATE TABLE IF NOT EXISTS vitamin_intake (
		  id         INTEGER PRIMARY KEY AUTOINCREMENT,
		  vitamin_id INTEGER NOT NULL,
		  user_id    TEXT NOT NULL,
		  date       TEXT NOT NULL,
		  taken      INTEGER NOT NULL DEFAULT 0,
		  UNIQUE (vitamin_id, user_id, date)
		);

		CREATE INDEX IF NOT EXISTS idx_vitamin_intake_user_date ON vitamin_intake(user_id, date);
		`
		if _, err := db.ExecContext(ctx, schema); err != nil {
			return errors.Wrap(err, "sqlite: migration 1")
		}
		if _, err := db.ExecContext(ctx, "PRAGMA user_version = 1"); err != nil {
			return errors.Wrap(err, "sqlite: set user_version")
		}
	}

	return nil
}
