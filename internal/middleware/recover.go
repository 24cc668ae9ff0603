package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer para loguear el panic con nuestro logger
// y responder con el mismo shape JSON que el resto de los errores.
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

			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic": fmt.Sprint(rec),
				"stack": string(debug.Stack()),
			})
			httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{Detail: "internal error"})
		}()

		next.ServeHTTP(w, r)
	})
}
