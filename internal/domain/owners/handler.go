package owners

import (
	"net/http"

	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
	})
}

// createOwnerRequest es el cuerpo para registrar un dueño.
type createOwnerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ownerResponse representa un dueño devuelto por la API.
type ownerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// createOwnerHandler godoc
// @Summary Registrar dueño
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} httpx.ErrorResponse "invalid json / validación"
// @Router /api/owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("owner created", map[string]any{"owner_id": o.ID})
		httpx.WriteJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Tags owners
// @Produce json
// @Success 200 {array} ownerResponse
// @Router /api/owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:    o.ID,
		Name:  o.Name,
		Phone: o.Phone,
		Email: o.Email,
	}
}
