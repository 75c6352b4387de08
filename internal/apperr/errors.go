// Package apperr define el error estructurado que la API devuelve al cliente.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type Code string

const (
	CodeUnauthorized Code = "UNAUTHORIZED"      // 401
	CodeMalformed    Code = "MALFORMED_PAYLOAD" // 400
	CodeInvalid      Code = "INVALID_REQUEST"   // 400
	CodeNotFound     Code = "NOT_FOUND"         // 404
	CodeInternal     Code = "INTERNAL"          // 500
)

// Error es lo que se serializa en el body de una respuesta de error.
// La causa de un INTERNAL nunca se serializa; solo el ErrorID para correlacionar con logs.
type Error struct {
	Code    Code   `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
	ErrorID string `json:"errorId,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NewUnauthorized() *Error {
	return &Error{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: "Unauthorized"}
}

func NewMalformed(msg string) *Error {
	return &Error{Code: CodeMalformed, Status: http.StatusBadRequest, Message: msg}
}

func NewInvalid(msg string) *Error {
	return &Error{Code: CodeInvalid, Status: http.StatusBadRequest, Message: msg}
}

func NewNotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: msg}
}

// NewInternal envuelve un error inesperado y le asigna un id para buscarlo en logs.
func NewInternal(err error) *Error {
	return &Error{
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "internal error",
		ErrorID: uuid.NewString(),
		cause:   err,
	}
}

// Is indica si err (o algo que envuelve) es un *Error con el código dado.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
