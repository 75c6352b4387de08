package vitamins

import "context"

// Repository es la parte de vitaminas del storage.
// UpdateVitamin devuelve ErrNotFound si no existe; DeleteVitamin es idempotente.
type Repository interface {
	GetVitamins(ctx context.Context, userID string) ([]Vitamin, error)
	GetVitamin(ctx context.Context, id int64) (Vitamin, error)
	CreateVitamin(ctx context.Context, in InsertVitamin) (Vitamin, error)
	UpdateVitamin(ctx context.Context, id int64, patch VitaminPatch) (Vitamin, error)
	DeleteVitamin(ctx context.Context, id int64) error
}
