package intake

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"vitamin-tracker/internal/domain/vitamins"
)

const DateLayout = "2006-01-02"

// CanonicalDate reduce cualquier fecha o fecha-hora reconocible a YYYY-MM-DD.
// Se conserva el día calendario tal como viene escrito: "2024-01-01T23:30:00-05:00"
// es 2024-01-01, no se pasa a UTC.
func CanonicalDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", vitamins.Invalid("date", "date is required")
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}

	// Solo dígitos: dateparse lo leería como epoch o año suelto.
	if strings.Trim(s, "0123456789") == "" {
		return "", vitamins.Invalid("date", "date must be a valid calendar date")
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return "", vitamins.Invalid("date", "date must be a valid calendar date")
	}
	return t.Format(DateLayout), nil
}
