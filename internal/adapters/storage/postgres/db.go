package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

type Options struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type Store struct {
	db *sql.DB
}

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, opts Options) (*Store, error) {
	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		return nil, errors.New("postgres: dsn required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: open")
	}

	maxOpen, maxIdle := 10, 5
	if opts.MaxOpenConns > 0 {
		maxOpen = opts.MaxOpenConns
	}
	if opts.MaxIdleConns > 0 {
		maxIdle = opts.MaxIdleConns
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "postgres: ping")
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

// migrate es idempotente; corre en cada arranque.
func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS vitamins (
			id      BIGSERIAL PRIMARY KEY,
			name    TEXT NOT NULL,
			dosage  TEXT NOT NULL,
			user_id TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vitamins_user ON vitamins (user_id)`,
		`CREATE TABLE IF NOT EXISTS vitamin_intake (
			id         BIGSERIAL PRIMARY KEY,
			vitamin_id BIGINT NOT NULL,
			user_id    TEXT NOT NULL,
			date       DATE NOT NULL,
			taken      BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT uq_vitamin_intake_triple UNIQUE (vitamin_id, user_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_vitamin_intake_user_date ON vitamin_intake (user_id, date)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "postgres: migrate")
		}
	}
	return nil
}
