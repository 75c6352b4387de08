// Package storage elige y abre el backend configurado.
package storage

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"vitamin-tracker/internal/adapters/storage/bolt"
	"vitamin-tracker/internal/adapters/storage/memory"
	"vitamin-tracker/internal/adapters/storage/postgres"
	"vitamin-tracker/internal/adapters/storage/sqlite"
	"vitamin-tracker/internal/domain/intake"
	"vitamin-tracker/internal/domain/vitamins"
)

// Storage es el contrato completo que cumple cada backend.
type Storage interface {
	vitamins.Repository
	intake.Repository
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
)

var (
	_ Storage = (*memory.Store)(nil)
	_ Storage = (*sqlite.Store)(nil)
	_ Storage = (*postgres.Store)(nil)
	_ Storage = (*bolt.Store)(nil)
)

type Options struct {
	Driver string
	// DSN para postgres.
	DSN string
	// Path del archivo para sqlite y bolt.
	Path string

	MaxOpenConns int
	MaxIdleConns int
}

// IsDurable indica si el driver persiste a disco/servidor (y por lo tanto tiene esquema).
func IsDurable(driver string) bool {
	return normalize(driver) != DriverMemory
}

// Open abre el backend y deja el esquema al día.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch normalize(opts.Driver) {
	case DriverMemory:
		return memory.New(), nil
	case DriverSQLite:
		s, err := sqlite.Open(ctx, sqlite.Options{
			Path:         opts.Path,
			MaxOpenConns: opts.MaxOpenConns,
			MaxIdleConns: opts.MaxIdleConns,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		s, err := postgres.Open(ctx, postgres.Options{
			DSN:          opts.DSN,
			MaxOpenConns: opts.MaxOpenConns,
			MaxIdleConns: opts.MaxIdleConns,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverBolt:
		s, err := bolt.Open(bolt.Options{Path: opts.Path})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Errorf("storage: unknown driver %q", opts.Driver)
	}
}

func normalize(driver string) string {
	d := strings.ToLower(strings.TrimSpace(driver))
	if d == "" {
		return DriverMemory
	}
	return d
}
