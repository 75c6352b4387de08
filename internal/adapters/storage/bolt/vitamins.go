package bolt

import (
	"context"

	"github.com/asdine/storm/v3/q"
	"github.com/pkg/errors"

	"vitamin-tracker/internal/domain/vitamins"
)

// storm lleva un contador por bucket: un id borrado no se vuelve a entregar.
type vitaminRecord struct {
	ID     int64  `msgpack:"id"      storm:"id,increment"`
	Name   string `msgpack:"name"`
	Dosage string `msgpack:"dosage"`
	UserID string `msgpack:"user_id" storm:"index"`
}

func (r vitaminRecord) toDomain() vitamins.Vitamin {
	return vitamins.Vitamin{ID: r.ID, Name: r.Name, Dosage: r.Dosage, UserID: r.UserID}
}

func (s *Store) GetVitamins(ctx context.Context, userID string) ([]vitamins.Vitamin, error) {
	var recs []vitaminRecord
	err := s.db.Select(q.Eq("UserID", userID)).OrderBy("ID").Find(&recs)
	if err != nil && !isNotFound(err) {
		return nil, errors.Wrap(err, "find vitamins by user")
	}

	out := make([]vitamins.Vitamin, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (s *Store) GetVitamin(ctx context.Context, id int64) (vitamins.Vitamin, error) {
	var rec vitaminRecord
	if err := s.db.One("ID", id, &rec); err != nil {
		if isNotFound(err) {
			return vitamins.Vitamin{}, vitamins.ErrNotFound
		}
		return vitamins.Vitamin{}, errors.Wrap(err, "find vitamin by id")
	}
	return rec.toDomain(), nil
}

func (s *Store) CreateVitamin(ctx context.Context, in vitamins.InsertVitamin) (vitamins.Vitamin, error) {
	rec := vitaminRecord{Name: in.Name, Dosage: in.Dosage, UserID: in.UserID}
	if err := s.db.Save(&rec); err != nil {
		return vitamins.Vitamin{}, errors.Wrap(err, "could not save vitamin")
	}
	return rec.toDomain(), nil
}

func (s *Store) UpdateVitamin(ctx context.Context, id int64, patch vitamins.VitaminPatch) (vitamins.Vitamin, error) {
	tx, err := s.db.Begin(true)
	if err != nil {
		return vitamins.Vitamin{}, errors.Wrap(err, "begin update vitamin")
	}
	defer tx.Rollback()

	var rec vitaminRecord
	if err := tx.One("ID", id, &rec); err != nil {
		if isNotFound(err) {
			return vitamins.Vitamin{}, vitamins.ErrNotFound
		}
		return vitamins.Vitamin{}, errors.Wrap(err, "find vitamin by id")
	}

	v := patch.Apply(rec.toDomain())
	rec.Name, rec.Dosage, rec.UserID = v.Name, v.Dosage, v.UserID
	if err := tx.Save(&rec); err != nil {
		return vitamins.Vitamin{}, errors.Wrap(err, "could not save vitamin")
	}
	if err := tx.Commit(); err != nil {
		return vitamins.Vitamin{}, errors.Wrap(err, "commit update vitamin")
	}
	return v, nil
}

func (s *Store) DeleteVitamin(ctx context.Context, id int64) error {
	err := s.db.DeleteStruct(&vitaminRecord{ID: id})
	if err != nil && !isNotFound(err) {
		return errors.Wrap(err, "could not delete vitamin")
	}
	return nil
}
