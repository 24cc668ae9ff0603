package pets

import (
	"net/http"
	"strings"
	"time"

	"vet-clinic/internal/domain/clinicerr"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
	})
}

// createPetRequest es el cuerpo para registrar una mascota.
type createPetRequest struct {
	Name    string  `json:"name" validate:"required"`
	Species string  `json:"species" validate:"required"`
	Breed   *string `json:"breed"`
	DOB     *string `json:"dob"` // YYYY-MM-DD opcional, acepta null
	OwnerID string  `json:"owner_id" validate:"required"`
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"`
	DOB     *string `json:"dob"`
	OwnerID string  `json:"owner_id"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description El owner_id tiene que existir; si no, 400 "owner not found".
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota; dob en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorResponse "invalid json / dob inválido / owner not found"
// @Router /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		var dob *time.Time
		if req.DOB != nil && strings.TrimSpace(*req.DOB) != "" {
			t, err := time.Parse(dateLayout, strings.TrimSpace(*req.DOB))
			if err != nil {
				httpx.WriteError(w, r, clinicerr.InvalidInput("dob must be YYYY-MM-DD"))
				return
			}
			dob = &t
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			DateOfBirth: dob,
			OwnerID:     req.OwnerID,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("pet created", map[string]any{"pet_id": p.ID, "owner_id": p.OwnerID})
		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Router /api/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(p Pet) petResponse {
	var dob *string
	if p.DateOfBirth != nil {
		s := p.DateOfBirth.Format(dateLayout)
		dob = &s
	}
	return petResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		DOB:     dob,
		OwnerID: p.OwnerID,
	}
}
