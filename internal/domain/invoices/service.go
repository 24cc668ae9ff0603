package invoices

import (
	"context"
	"errors"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/clinicerr"
	"vet-clinic/internal/ports/storage"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo         Repository
	appointments AppointmentGetter
}

func NewService(repo Repository, appts AppointmentGetter) *Service {
	return &Service{
		repo:         repo,
		appointments: appts,
	}
}

// CreateForAppointment factura la cita con la suma de los precios de sus servicios
// al momento de crear (0 si no tiene). La unicidad por cita la garantiza el store.
func (s *Service) CreateForAppointment(ctx context.Context, appointmentID int64, paid bool) (Invoice, error) {
	a, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return Invoice{}, err
	}

	inv := Invoice{
		AppointmentID: a.ID,
		Total:         Total(a),
		Paid:          paid,
	}
	if err := s.repo.Create(ctx, &inv); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return Invoice{}, clinicerr.Conflict("invoice already exists for appointment", err)
		}
		return Invoice{}, err
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

// Total suma los precios de los servicios asociados a la cita.
func Total(a appointments.Appointment) decimal.Decimal {
	total := decimal.Zero
	for _, svc := range a.Services {
		total = total.Add(svc.Price)
	}
	return total
}
