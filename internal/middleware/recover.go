package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vitamin-tracker/internal/apperr"
	"vitamin-tracker/internal/platform/logger"
	"vitamin-tracker/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: el panic termina como un INTERNAL con
// error_id en JSON y queda logueado con el stack.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			appErr := apperr.NewInternal(fmt.Errorf("panic: %v", rec))
			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"error_id": appErr.ErrorID,
				"panic":    fmt.Sprint(rec),
				"stack":    string(debug.Stack()),
			})
			respond.JSON(w, appErr.Status, appErr)
		}()

		next.ServeHTTP(w, r)
	})
}
