package intake

import (
	"strings"

	"vitamin-tracker/internal/domain/vitamins"
)

// VitaminIntake registra si el usuario tomó una vitamina en un día dado.
// Date siempre está en forma canónica YYYY-MM-DD.
type VitaminIntake struct {
	ID        int64  `json:"id"`
	VitaminID int64  `json:"vitaminId"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Taken     bool   `json:"taken"`
}

// InsertVitaminIntake es la entrada de un upsert. Taken omitido = false.
type InsertVitaminIntake struct {
	VitaminID int64
	UserID    string
	Date      string
	Taken     bool
}

// Key identifica un registro de intake: hay a lo sumo uno por (vitamina, usuario, día).
type Key struct {
	VitaminID int64
	UserID    string
	Date      string
}

func (in InsertVitaminIntake) Key() Key {
	return Key{VitaminID: in.VitaminID, UserID: in.UserID, Date: in.Date}
}

// DailySummary resume el avance del día: cuántas vitaminas del usuario quedaron tomadas.
type DailySummary struct {
	Date  string  `json:"date"`
	Total int     `json:"total"`
	Taken int     `json:"taken"`
	Ratio float64 `json:"ratio"`
}

// Validate devuelve una copia normalizada (userId con trim, fecha canónica)
// o un *vitamins.ValidationError.
func (in InsertVitaminIntake) Validate() (InsertVitaminIntake, error) {
	out := in
	out.UserID = strings.TrimSpace(in.UserID)

	if out.VitaminID <= 0 {
		return InsertVitaminIntake{}, vitamins.Invalid("vitaminId", "vitaminId must be a positive integer")
	}
	if out.UserID == "" {
		return InsertVitaminIntake{}, vitamins.Invalid("userId", "userId is required")
	}

	date, err := CanonicalDate(in.Date)
	if err != nil {
		return InsertVitaminIntake{}, err
	}
	out.Date = date
	return out, nil
}
