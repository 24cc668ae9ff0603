package catalog

import (
	"net/http"

	"vet-clinic/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Get("/services", listServicesHandler(c))
}

// ServiceResponse representa un servicio del catálogo (también anidado en citas).
type ServiceResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// listServicesHandler godoc
// @Summary Listar servicios
// @Tags services
// @Produce json
// @Success 200 {array} ServiceResponse
// @Router /api/services [get]
func listServicesHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := c.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]ServiceResponse, 0, len(items))
		for _, s := range items {
			out = append(out, ToResponse(s))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// ToResponse lo reutiliza appointments para anidar servicios.
func ToResponse(s Service) ServiceResponse {
	return ServiceResponse{
		ID:    s.ID,
		Name:  s.Name,
		Price: s.Price.InexactFloat64(),
	}
}
