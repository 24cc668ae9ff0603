package invoices

import (
	"context"

	"vet-clinic/internal/domain/appointments"
)

type Repository interface {
	// Create falla con storage.ErrDuplicate si la cita ya tiene factura.
	Create(ctx context.Context, inv *Invoice) error
	List(ctx context.Context) ([]Invoice, error)
}

// AppointmentGetter devuelve clinicerr.NotFound si la cita no existe.
type AppointmentGetter interface {
	Get(ctx context.Context, id int64) (appointments.Appointment, error)
}
