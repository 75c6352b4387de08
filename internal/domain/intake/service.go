package intake

import (
	"context"
	"errors"
	"strings"

	"vitamin-tracker/internal/domain/vitamins"
)

type Service struct {
	repo     Repository
	vitamins *vitamins.Service
}

func NewService(repo Repository, vitaminsSvc *vitamins.Service) *Service {
	return &Service{repo: repo, vitamins: vitaminsSvc}
}

// ListByDate devuelve los registros del usuario para el día; date acepta cualquier
// forma que CanonicalDate entienda.
func (s *Service) ListByDate(ctx context.Context, userID, date string) ([]VitaminIntake, error) {
	day, err := CanonicalDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.GetVitaminIntake(ctx, strings.TrimSpace(userID), day)
}

// Upsert fuerza userID como dueño y exige que la vitamina sea suya.
func (s *Service) Upsert(ctx context.Context, userID string, in InsertVitaminIntake) (VitaminIntake, error) {
	in.UserID = userID
	in, err := in.Validate()
	if err != nil {
		return VitaminIntake{}, err
	}

	owner, err := s.vitamins.OwnerOf(ctx, in.VitaminID)
	if errors.Is(err, vitamins.ErrNotFound) || (err == nil && owner != in.UserID) {
		return VitaminIntake{}, vitamins.Invalid("vitaminId", "vitamin does not exist")
	}
	if err != nil {
		return VitaminIntake{}, err
	}

	return s.repo.UpsertVitaminIntake(ctx, in)
}

// Summary cuenta las vitaminas actuales del usuario marcadas como tomadas ese día.
// Registros de vitaminas ya borradas no cuentan.
func (s *Service) Summary(ctx context.Context, userID, date string) (DailySummary, error) {
	day, err := CanonicalDate(date)
	if err != nil {
		return DailySummary{}, err
	}
	userID = strings.TrimSpace(userID)

	items, err := s.vitamins.List(ctx, userID)
	if err != nil {
		return DailySummary{}, err
	}
	records, err := s.repo.GetVitaminIntake(ctx, userID, day)
	if err != nil {
		return DailySummary{}, err
	}

	current := make(map[int64]struct{}, len(items))
	for _, v := range items {
		current[v.ID] = struct{}{}
	}

	out := DailySummary{Date: day, Total: len(items)}
	for _, rec := range records {
		if _, ok := current[rec.VitaminID]; ok && rec.Taken {
			out.Taken++
		}
	}
	if out.Total > 0 {
		out.Ratio = float64(out.Taken) / float64(out.Total)
	}
	return out, nil
}
