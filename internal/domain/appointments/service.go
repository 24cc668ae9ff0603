package appointments

import (
	"context"
	"strings"
	"time"

	"vet-clinic/internal/domain/clinicerr"
)

type Service struct {
	repo     Repository
	pets     PetChecker
	services ServiceResolver
}

func NewService(repo Repository, pets PetChecker, services ServiceResolver) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		services: services,
	}
}

type CreateInput struct {
	PetID       int64
	VetName     string
	ScheduledAt time.Time
	ServiceIDs  []int64
}

// Create valida mascota y servicios antes de escribir; si algo falla no se persiste nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	vet := strings.TrimSpace(in.VetName)
	if vet == "" {
		return Appointment{}, clinicerr.InvalidInput("vet_name is required")
	}
	if in.ScheduledAt.IsZero() {
		return Appointment{}, clinicerr.InvalidInput("datetime is required")
	}

	ok, err := s.pets.Exists(ctx, in.PetID)
	if err != nil {
		return Appointment{}, err
	}
	if !ok {
		return Appointment{}, clinicerr.Reference("pet not found")
	}

	svcs, err := s.services.Resolve(ctx, in.ServiceIDs)
	if err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		PetID:       in.PetID,
		VetName:     vet,
		ScheduledAt: in.ScheduledAt,
		Status:      StatusScheduled,
		Services:    svcs,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

// Get devuelve NotFound tipado si no existe. Lo usa invoices.
func (s *Service) Get(ctx context.Context, id int64) (Appointment, error) {
	a, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if !found {
		return Appointment{}, clinicerr.NotFound("appointment not found")
	}
	return a, nil
}

// Complete pasa la cita a DONE. Idempotente: DONE -> DONE no es error.
func (s *Service) Complete(ctx context.Context, id int64) (Appointment, error) {
	found, err := s.repo.UpdateStatus(ctx, id, StatusDone)
	if err != nil {
		return Appointment{}, err
	}
	if !found {
		return Appointment{}, clinicerr.NotFound("appointment not found")
	}
	return s.Get(ctx, id)
}
