package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"vitamin-tracker/internal/domain/vitamins"
)

func (s *Store) GetVitamins(ctx context.Context, userID string) ([]vitamins.Vitamin, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, dosage, user_id
		FROM vitamins
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: list vitamins")
	}
	defer rows.Close()

	out := make([]vitamins.Vitamin, 0)
	for rows.Next() {
		var v vitamins.Vitamin
		if err := rows.Scan(&v.ID, &v.Name, &v.Dosage, &v.UserID); err != nil {
			return nil, errors.Wrap(err, "postgres: scan vitamin")
		}
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), "postgres: list vitamins")
}

func (s *Store) GetVitamin(ctx context.Context, id int64) (vitamins.Vitamin, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, dosage, user_id
		FROM vitamins
		WHERE id = $1
	`, id)
	return scanVitamin(row, "get vitamin")
}

// CreateVitamin: las secuencias de Postgres nunca devuelven un id ya entregado.
func (s *Store) CreateVitamin(ctx context.Context, in vitamins.InsertVitamin) (vitamins.Vitamin, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO vitamins (name, dosage, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, dosage, user_id
	`, in.Name, in.Dosage, in.UserID)
	return scanVitamin(row, "create vitamin")
}

func (s *Store) UpdateVitamin(ctx context.Context, id int64, patch vitamins.VitaminPatch) (vitamins.Vitamin, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE vitamins
		SET
			name    = COALESCE($2, name),
			dosage  = COALESCE($3, dosage),
			user_id = COALESCE($4, user_id)
		WHERE id = $1
		RETURNING id, name, dosage, user_id
	`, id, nullString(patch.Name), nullString(patch.Dosage), nullString(patch.UserID))
	return scanVitamin(row, "update vitamin")
}

func (s *Store) DeleteVitamin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM vitamins WHERE id = $1`, id)
	return errors.Wrap(err, "postgres: delete vitamin")
}

func scanVitamin(row *sql.Row, op string) (vitamins.Vitamin, error) {
	var v vitamins.Vitamin
	if err := row.Scan(&v.ID, &v.Name, &v.Dosage, &v.UserID); err != nil {
		if err == sql.ErrNoRows {
			return vitamins.Vitamin{}, vitamins.ErrNotFound
		}
		return vitamins.Vitamin{}, errors.Wrapf(err, "postgres: %s", op)
	}
	return v, nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}
