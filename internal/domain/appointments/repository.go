package appointments

import (
	"context"

	"vet-clinic/internal/domain/catalog"
)

type Repository interface {
	// Create persiste la cita y sus filas de appointment_services en una sola escritura.
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (Appointment, bool, error)
	List(ctx context.Context) ([]Appointment, error)
	// UpdateStatus devuelve found=false si la cita no existe.
	UpdateStatus(ctx context.Context, id int64, status Status) (bool, error)
}

// PetChecker y ServiceResolver evitan importar pets/catalog como dependencias duras.
type PetChecker interface {
	Exists(ctx context.Context, petID int64) (bool, error)
}

type ServiceResolver interface {
	Resolve(ctx context.Context, ids []int64) ([]catalog.Service, error)
}
