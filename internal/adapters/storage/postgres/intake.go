package postgres

import (
	"context"

	"github.com/pkg/errors"

	"vitamin-tracker/internal/domain/intake"
)

// date es DATE en la tabla; se lee como texto para devolver siempre YYYY-MM-DD.
func (s *Store) GetVitaminIntake(ctx context.Context, userID, date string) ([]intake.VitaminIntake, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, vitamin_id, user_id, to_char(date, 'YYYY-MM-DD'), taken
		FROM vitamin_intake
		WHERE user_id = $1 AND date = $2::date
		ORDER BY id ASC
	`, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: list intake")
	}
	defer rows.Close()

	out := make([]intake.VitaminIntake, 0)
	for rows.Next() {
		var rec intake.VitaminIntake
		if err := rows.Scan(&rec.ID, &rec.VitaminID, &rec.UserID, &rec.Date, &rec.Taken); err != nil {
			return nil, errors.Wrap(err, "postgres: scan intake")
		}
		out = append(out, rec)
	}
	return out, errors.Wrap(rows.Err(), "postgres: list intake")
}

// UpsertVitaminIntake delega la atomicidad en uq_vitamin_intake_triple.
func (s *Store) UpsertVitaminIntake(ctx context.Context, in intake.InsertVitaminIntake) (intake.VitaminIntake, error) {
	var rec intake.VitaminIntake
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO vitamin_intake (vitamin_id, user_id, date, taken)
		VALUES ($1, $2, $3::date, $4)
		ON CONFLICT ON CONSTRAINT uq_vitamin_intake_triple DO UPDATE SET taken = EXCLUDED.taken
		RETURNING id, vitamin_id, user_id, to_char(date, 'YYYY-MM-DD'), taken
	`, in.VitaminID, in.UserID, in.Date, in.Taken).Scan(
		&rec.ID, &rec.VitaminID, &rec.UserID, &rec.Date, &rec.Taken,
	)
	if err != nil {
		return intake.VitaminIntake{}, errors.Wrap(err, "postgres: upsert intake")
	}
	return rec, nil
}
