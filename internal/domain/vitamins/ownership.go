package vitamins

import "context"

// OwnerOf expone el userId dueño de una vitamina.
// Lo usa intake para validar vitaminId sin acoplarse al repositorio.
func (s *Service) OwnerOf(ctx context.Context, id int64) (string, error) {
	v, err := s.repo.GetVitamin(ctx, id)
	if err != nil {
		return "", err
	}
	return v.UserID, nil
}
