package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"furiends-pets/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea el panic con el
// request id y responde el mismo cuerpo de error 500 que los handlers.
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

				log.Error("panic recovered", map[string]any{
					"panic":      fmt.Sprint(rec),
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": chimw.GetReqID(r.Context()),
					"stack":      string(debug.Stack()),
				})

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{
					"code":    "INTERNAL_ERROR",
					"message": "internal error",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
