package invoices

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"vet-clinic/internal/domain/clinicerr"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/invoices", func(ir chi.Router) {
		ir.Post("/", createInvoiceHandler(svc))
		ir.Get("/", listInvoicesHandler(svc))
	})
}

// createInvoiceRequest es el cuerpo opcional; el frontend viejo manda todo por query.
type createInvoiceRequest struct {
	AppointmentID *int64 `json:"appointment_id"`
	Paid          *bool  `json:"paid"`
}

// invoiceResponse representa una factura devuelta por la API.
type invoiceResponse struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointment_id"`
	Total         float64 `json:"total"`
	Paid          bool    `json:"paid"`
}

// createInvoiceHandler godoc
// @Summary Facturar cita
// @Description El total es la suma de los precios de los servicios de la cita. Acepta appointment_id/paid en el body o appt_id/paid por query.
// @Tags invoices
// @Accept json
// @Produce json
// @Param appt_id query int false "ID de la cita (alternativa al body)"
// @Param paid query bool false "Marcar como pagada"
// @Param payload body createInvoiceRequest false "appointment_id y paid"
// @Success 201 {object} invoiceResponse
// @Failure 400 {object} httpx.ErrorResponse "invalid json / falta appointment_id"
// @Failure 404 {object} httpx.ErrorResponse "appointment not found"
// @Failure 409 {object} httpx.ErrorResponse "invoice already exists for appointment"
// @Router /api/invoices [post]
func createInvoiceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apptID, paid, err := parseCreateInvoice(r)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		inv, err := svc.CreateForAppointment(r.Context(), apptID, paid)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info("invoice created", map[string]any{
			"invoice_id":     inv.ID,
			"appointment_id": inv.AppointmentID,
			"total":          inv.Total.String(),
		})
		httpx.WriteJSON(w, http.StatusCreated, toInvoiceResponse(inv))
	}
}

// parseCreateInvoice: query (appt_id, paid) tiene prioridad; si no, body JSON.
func parseCreateInvoice(r *http.Request) (int64, bool, error) {
	q := r.URL.Query()

	var paid bool

	if v := strings.TrimSpace(q.Get("paid")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return 0, false, clinicerr.InvalidInput("paid must be a boolean")
		}
		paid = b
	}

	if v := strings.TrimSpace(q.Get("appt_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, clinicerr.InvalidInput("appt_id must be an integer")
		}
		return id, paid, nil
	}

	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// body vacío y sin appt_id en query
		if errors.Is(err, io.EOF) {
			return 0, false, clinicerr.InvalidInput("appointment_id is required")
		}
		return 0, false, clinicerr.InvalidInput("invalid json")
	}
	// Un 0 explícito llega al servicio y termina en 404, igual que appt_id=0.
	if req.AppointmentID == nil {
		return 0, false, clinicerr.InvalidInput("appointment_id is required")
	}
	if req.Paid != nil {
		paid = *req.Paid
	}
	return *req.AppointmentID, paid, nil
}

// listInvoicesHandler godoc
// @Summary Listar facturas
// @Tags invoices
// @Produce json
// @Success 200 {array} invoiceResponse
// @Router /api/invoices [get]
func listInvoicesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]invoiceResponse, 0, len(items))
		for _, inv := range items {
			out = append(out, toInvoiceResponse(inv))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toInvoiceResponse(inv Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID,
		AppointmentID: inv.AppointmentID,
		Total:         inv.Total.InexactFloat64(),
		Paid:          inv.Paid,
	}
}
