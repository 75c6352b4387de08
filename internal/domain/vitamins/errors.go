package vitamins

import (
	"errors"
	"fmt"

	"vitamin-tracker/internal/apperr"
)

var (
	ErrNotFound = errors.New("vitamin not found")
)

// ValidationKind distingue payload mal formado de una regla de negocio violada.
type ValidationKind string

const (
	KindMalformed ValidationKind = "malformed"
	KindInvalid   ValidationKind = "invalid"
)

type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Malformed: el body no se pudo decodificar o trae tipos incorrectos.
func Malformed(msg string) *ValidationError {
	return &ValidationError{Kind: KindMalformed, Message: msg}
}

// Invalid: el payload se decodificó pero viola una regla.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Kind: KindInvalid, Field: field, Message: msg}
}

// AsAppError traduce errores de dominio al error HTTP correspondiente.
// Errores desconocidos se devuelven tal cual (terminan como 500).
// Lo usan los handlers de vitamins e intake.
func AsAppError(err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Kind == KindMalformed {
			return apperr.NewMalformed(verr.Error())
		}
		return apperr.NewInvalid(verr.Error())
	case errors.Is(err, ErrNotFound):
		return apperr.NewNotFound("vitamin not found")
	default:
		return err
	}
}
