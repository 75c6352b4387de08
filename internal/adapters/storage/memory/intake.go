package memory

import (
	"context"
	"sort"

	"vitamin-tracker/internal/domain/intake"
)

func (s *Store) GetVitaminIntake(ctx context.Context, userID, date string) ([]intake.VitaminIntake, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]intake.VitaminIntake, 0)
	for _, rec := range s.intake {
		if rec.UserID == userID && rec.Date == date {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpsertVitaminIntake busca y escribe bajo el mismo lock, así que dos llamadas
// con la misma clave no pueden crear dos registros.
func (s *Store) UpsertVitaminIntake(ctx context.Context, in intake.InsertVitaminIntake) (intake.VitaminIntake, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := in.Key()
	if id, ok := s.intakeByKey[key]; ok {
		rec := s.intake[id]
		rec.Taken = in.Taken
		s.intake[id] = rec
		return rec, nil
	}

	s.nextIntakeID++
	rec := intake.VitaminIntake{
		ID:        s.nextIntakeID,
		VitaminID: in.VitaminID,
		UserID:    in.UserID,
		Date:      in.Date,
		Taken:     in.Taken,
	}
	s.intake[rec.ID] = rec
	s.intakeByKey[key] = rec.ID
	return rec, nil
}
