package memory

import (
	"sync"

	"vitamin-tracker/internal/domain/intake"
	"vitamin-tracker/internal/domain/vitamins"
)

// Store guarda vitaminas e intake en memoria del proceso.
// Un solo mutex cubre ambas tablas y los contadores de ids.
type Store struct {
	mu sync.RWMutex

	vitamins      map[int64]vitamins.Vitamin
	nextVitaminID int64

	intake       map[int64]intake.VitaminIntake
	intakeByKey  map[intake.Key]int64
	nextIntakeID int64
}

func New() *Store {
	return &Store{
		vitamins:    make(map[int64]vitamins.Vitamin),
		intake:      make(map[int64]intake.VitaminIntake),
		intakeByKey: make(map[intake.Key]int64),
	}
}

func (s *Store) Close() error { return nil }
