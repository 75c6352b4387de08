package intake

import "context"

// Repository guarda registros de intake. UpsertVitaminIntake debe ser atómico
// sobre Key: llamadas concurrentes con la misma clave nunca dejan dos registros.
// Recibe la entrada ya validada (fecha canónica).
type Repository interface {
	GetVitaminIntake(ctx context.Context, userID, date string) ([]VitaminIntake, error)
	UpsertVitaminIntake(ctx context.Context, in InsertVitaminIntake) (VitaminIntake, error)
}
