package memory

import (
	"context"
	"sort"

	"vitamin-tracker/internal/domain/vitamins"
)

func (s *Store) GetVitamins(ctx context.Context, userID string) ([]vitamins.Vitamin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vitamins.Vitamin, 0)
	for _, v := range s.vitamins {
		if v.UserID == userID {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetVitamin(ctx context.Context, id int64) (vitamins.Vitamin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vitamins[id]
	if !ok {
		return vitamins.Vitamin{}, vitamins.ErrNotFound
	}
	return v, nil
}

// CreateVitamin asigna ids crecientes; un id borrado no se vuelve a usar.
func (s *Store) CreateVitamin(ctx context.Context, in vitamins.InsertVitamin) (vitamins.Vitamin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextVitaminID++
	v := vitamins.Vitamin{
		ID:     s.nextVitaminID,
		Name:   in.Name,
		Dosage: in.Dosage,
		UserID: in.UserID,
	}
	s.vitamins[v.ID] = v
	return v, nil
}

func (s *Store) UpdateVitamin(ctx context.Context, id int64, patch vitamins.VitaminPatch) (vitamins.Vitamin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vitamins[id]
	if !ok {
		return vitamins.Vitamin{}, vitamins.ErrNotFound
	}
	v = patch.Apply(v)
	s.vitamins[id] = v
	return v, nil
}

func (s *Store) DeleteVitamin(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.vitamins, id)
	return nil
}
