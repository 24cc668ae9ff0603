package appointments

import (
	"time"

	"vet-clinic/internal/domain/catalog"
)

// Status del ciclo de vida de una cita.
// @Enum SCHEDULED, DONE, CANCELLED
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusDone      Status = "DONE"
	// StatusCancelled existe en el esquema pero ninguna operación lo asigna todavía.
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment es una visita de una mascota con un veterinario.
// Services es la relación many-to-many (sin duplicados, orden por id).
type Appointment struct {
	ID          int64
	PetID       int64
	VetName     string
	ScheduledAt time.Time
	Status      Status

	Services []catalog.Service
}
