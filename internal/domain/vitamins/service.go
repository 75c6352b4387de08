package vitamins

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Vitamin, error) {
	return s.repo.GetVitamins(ctx, strings.TrimSpace(userID))
}

// Create fuerza userID como dueño, ignorando lo que venga en in.UserID.
func (s *Service) Create(ctx context.Context, userID string, in InsertVitamin) (Vitamin, error) {
	in.UserID = userID
	in, err := in.Validate()
	if err != nil {
		return Vitamin{}, err
	}
	return s.repo.CreateVitamin(ctx, in)
}

// Update solo alcanza vitaminas del propio usuario: una ajena se reporta como ErrNotFound.
// userId es inmutable, así que nunca se propaga en el patch. Un patch vacío no escribe.
func (s *Service) Update(ctx context.Context, userID string, id int64, patch VitaminPatch) (Vitamin, error) {
	patch.UserID = nil
	patch, err := patch.Validate()
	if err != nil {
		return Vitamin{}, err
	}

	current, err := s.repo.GetVitamin(ctx, id)
	if err != nil {
		return Vitamin{}, err
	}
	if current.UserID != strings.TrimSpace(userID) {
		return Vitamin{}, ErrNotFound
	}
	if patch.IsEmpty() {
		return current, nil
	}

	return s.repo.UpdateVitamin(ctx, id, patch)
}

// Delete es idempotente: inexistente o ajena => no-op sin error.
func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	owner, err := s.OwnerOf(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if owner != strings.TrimSpace(userID) {
		return nil
	}
	return s.repo.DeleteVitamin(ctx, id)
}
