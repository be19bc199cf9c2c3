package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-records/internal/platform/fault"
	"pet-records/internal/platform/logger"
	"pet-records/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: un panic se trata como fault
// (log con referencia + sobre JSON genérico).
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := fault.Wrap(log.With(map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"stack":      string(debug.Stack()),
				}), "http.panic", fmt.Errorf("panic: %v", rec))
				respond.Err(w, err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
