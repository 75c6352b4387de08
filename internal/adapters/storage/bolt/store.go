// Package bolt implementa el storage sobre un archivo bbolt vía storm, con registros en msgpack.
package bolt

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/pkg/errors"
	bbolt "go.etcd.io/bbolt"
)

// Codec es el formato de los registros guardados.
var Codec = storm.Codec(msgpack.Codec)

type Options struct {
	Path string
}

type Store struct {
	db *storm.DB
}

// Open abre (o crea) el archivo e inicializa buckets e índices.
// bbolt toma un lock exclusivo sobre el archivo: un segundo proceso espera hasta 1s y falla.
func Open(opts Options) (*Store, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, errors.New("bolt: path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "bolt: create directory")
		}
	}

	db, err := storm.Open(path, Codec, storm.BoltOptions(0o600, &bbolt.Options{Timeout: time.Second}))
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	if err := db.Init(&vitaminRecord{}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "could not init vitamin index")
	}
	if err := db.Init(&intakeRecord{}); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "could not init intake index")
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func isNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}
