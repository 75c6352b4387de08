// Package respond centraliza la escritura de respuestas JSON y de errores.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"vitamin-tracker/internal/apperr"
	"vitamin-tracker/internal/platform/logger"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error escribe err como *apperr.Error. Cualquier otro error se trata como 500
// y se loguea con su error_id.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.NewInternal(err)
	}

	if apperr.Is(appErr, apperr.CodeInternal) {
		logger.FromContext(r.Context()).Error("request failed", map[string]any{
			"error_id": appErr.ErrorID,
			"error":    errString(appErr.Unwrap()),
			"method":   r.Method,
			"path":     r.URL.Path,
		})
	}

	JSON(w, appErr.Status, appErr)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
