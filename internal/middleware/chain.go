package middleware

import (
	"vet-clinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Stack devuelve los middlewares de la app en orden. Metrics va por fuera de
// Recover para que un panic quede contado como 500.
func Stack(base logger.Logger, m *Metrics) chi.Middlewares {
	return chi.Middlewares{
		RequestLogger(base),
		m.Handler,
		Recover,
	}
}
