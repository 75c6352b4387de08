package bolt

import (
	"context"
	"fmt"

	"github.com/asdine/storm/v3/q"
	"github.com/pkg/errors"

	"vitamin-tracker/internal/domain/intake"
)

type intakeRecord struct {
	ID        int64  `msgpack:"id"         storm:"id,increment"`
	Key       string `msgpack:"key"        storm:"unique"`
	VitaminID int64  `msgpack:"vitamin_id"`
	UserID    string `msgpack:"user_id"    storm:"index"`
	Date      string `msgpack:"date"       storm:"index"`
	Taken     bool   `msgpack:"taken"`
}

func (r intakeRecord) toDomain() intake.VitaminIntake {
	return intake.VitaminIntake{
		ID:        r.ID,
		VitaminID: r.VitaminID,
		UserID:    r.UserID,
		Date:      r.Date,
		Taken:     r.Taken,
	}
}

// recordKey serializa la clave compuesta para el índice unique.
// userId va al final porque es el único campo que puede contener el separador.
func recordKey(k intake.Key) string {
	return fmt.Sprintf("%d|%s|%s", k.VitaminID, k.Date, k.UserID)
}

func (s *Store) GetVitaminIntake(ctx context.Context, userID, date string) ([]intake.VitaminIntake, error) {
	var recs []intakeRecord
	err := s.db.Select(q.Eq("UserID", userID), q.Eq("Date", date)).OrderBy("ID").Find(&recs)
	if err != nil && !isNotFound(err) {
		return nil, errors.Wrap(err, "find intake by user and date")
	}

	out := make([]intake.VitaminIntake, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// UpsertVitaminIntake corre en una transacción de escritura; bbolt admite una sola a la vez,
// así que buscar y guardar no se intercalan con otro upsert.
func (s *Store) UpsertVitaminIntake(ctx context.Context, in intake.InsertVitaminIntake) (intake.VitaminIntake, error) {
	tx, err := s.db.Begin(true)
	if err != nil {
		return intake.VitaminIntake{}, errors.Wrap(err, "begin upsert intake")
	}
	defer tx.Rollback()

	key := recordKey(in.Key())

	var rec intakeRecord
	err = tx.One("Key", key, &rec)
	switch {
	case err == nil:
		rec.Taken = in.Taken
	case isNotFound(err):
		rec = intakeRecord{
			Key:       key,
			VitaminID: in.VitaminID,
			UserID:    in.UserID,
			Date:      in.Date,
			Taken:     in.Taken,
		}
	default:
		return intake.VitaminIntake{}, errors.Wrap(err, "find intake by key")
	}

	if err := tx.Save(&rec); err != nil {
		return intake.VitaminIntake{}, errors.Wrap(err, "could not save intake")
	}
	if err := tx.Commit(); err != nil {
		return intake.VitaminIntake{}, errors.Wrap(err, "commit upsert intake")
	}
	return rec.toDomain(), nil
}
