package sqlite

import (
	"context"

	"github.com/pkg/errors"

	"vitamin-tracker/internal/domain/intake"
)

func (s *Store) GetVitaminIntake(ctx context.Context, userID, date string) ([]intake.VitaminIntake, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, vitamin_id, user_id, date, taken
		FROM vitamin_intake
		WHERE user_id = ? AND date = ?
		ORDER BY id ASC
	`, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: list intake")
	}
	defer rows.Close()

	out := make([]intake.VitaminIntake, 0)
	for rows.Next() {
		var rec intake.VitaminIntake
		if err := rows.Scan(&rec.ID, &rec.VitaminID, &rec.UserID, &rec.Date, &rec.Taken); err != nil {
			return nil, errors.Wrap(err, "sqlite: scan intake")
		}
		out = append(out, rec)
	}
	return out, errors.Wrap(rows.Err(), "sqlite: list intake")
}

// UpsertVitaminIntake es una sola sentencia: el UNIQUE de la tabla resuelve la carrera.
func (s *Store) UpsertVitaminIntake(ctx context.Context, in intake.InsertVitaminIntake) (intake.VitaminIntake, error) {
	var rec intake.VitaminIntake
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO vitamin_intake (vitamin_id, user_id, date, taken)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (vitamin_id, user_id, date) DO UPDATE SET taken = excluded.taken
		RETURNING id, vitamin_id, user_id, date, taken
	`, in.VitaminID, in.UserID, in.Date, in.Taken).Scan(
		&rec.ID, &rec.VitaminID, &rec.UserID, &rec.Date, &rec.Taken,
	)
	if err != nil {
		return intake.VitaminIntake{}, errors.Wrap(err, "sqlite: upsert intake")
	}
	return rec, nil
}
