package appointments

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/domain/clinicerr"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/{appointmentID}/complete", completeAppointmentHandler(svc))
	})
}

// createAppointmentRequest es el cuerpo para agendar una cita.
type createAppointmentRequest struct {
	PetID      int64   `json:"pet_id" validate:"required"`
	VetName    string  `json:"vet_name" validate:"required"`
	Datetime   string  `json:"datetime" validate:"required"` // RFC3339 o datetime-local
	ServiceIDs []int64 `json:"service_ids"`
}

// appointmentResponse representa una cita con sus servicios anidados.
type appointmentResponse struct {
	ID       int64                     `json:"id"`
	PetID    int64                     `json:"pet_id"`
	VetName  string                    `json:"vet_name"`
	Datetime time.Time                 `json:"datetime"`
	Status   Status                    `json:"status" enums:"SCHEDULED,DONE,CANCELLED"`
	Services []catalog.ServiceResponse `json:"services"`
}

// createAppointmentHandler godoc
// @Summary Agendar cita
// @Description pet_id y cada service_id tienen que existir. IDs repetidos en service_ids se rechazan.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita; datetime RFC3339 o YYYY-MM-DDTHH:MM"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} httpx.ErrorResponse "invalid json / pet not found / service not found"
// @Router /api/appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := httpx.Decode(r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		at, err := ParseDatetime(req.Datetime)
		if err != nil {
			httpx.WriteError(w, r, clinicerr.InvalidInput("datetime must be RFC3339 or YYYY-MM-DDTHH:MM"))
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:       req.PetID,
			VetName:     req.VetName,
			ScheduledAt: at,
			ServiceIDs:  req.ServiceIDs,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("appointment created", map[string]any{
			"appointment_id": a.ID,
			"pet_id":         a.PetID,
			"services":       len(a.Services),
		})
		httpx.WriteJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Router /api/appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// completeAppointmentHandler godoc
// @Summary Completar cita
// @Description Marca la cita como DONE. Repetir la llamada no es error.
// @Tags appointments
// @Produce json
// @Param appointmentID path int true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} httpx.ErrorResponse "appointment not found"
// @Router /api/appointments/{appointmentID}/complete [post]
func completeAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			// Un id no numérico nunca existe.
			httpx.WriteError(w, r, clinicerr.NotFound("appointment not found"))
			return
		}

		a, err := svc.Complete(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("appointment completed", map[string]any{"appointment_id": a.ID})
		httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDatetime acepta RFC3339 y los formatos sin zona de <input type="datetime-local">
// (estos se interpretan en UTC).
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	svcs := make([]catalog.ServiceResponse, 0, len(a.Services))
	for _, s := range a.Services {
		svcs = append(svcs, catalog.ToResponse(s))
	}
	return appointmentResponse{
		ID:       a.ID,
		PetID:    a.PetID,
		VetName:  a.VetName,
		Datetime: a.ScheduledAt,
		Status:   a.Status,
		Services: svcs,
	}
}
