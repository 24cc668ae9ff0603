package pets

import (
	"context"
	"strings"
	"time"

	"vet-clinic/internal/domain/clinicerr"
)

type Service struct {
	repo   Repository
	owners OwnerChecker
}

func NewService(repo Repository, owners OwnerChecker) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
	}
}

type CreateInput struct {
	Name        string
	Species     string
	Breed       *string
	DateOfBirth *time.Time
	OwnerID     string
}

// Create valida que el owner exista antes de persistir nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" || species == "" {
		return Pet{}, clinicerr.InvalidInput("name and species are required")
	}

	ownerID := strings.TrimSpace(in.OwnerID)
	ok, err := s.owners.Exists(ctx, ownerID)
	if err != nil {
		return Pet{}, err
	}
	if !ok {
		return Pet{}, clinicerr.Reference("owner not found")
	}

	p := Pet{
		OwnerID:     ownerID,
		Name:        name,
		Species:     species,
		Breed:       normalizeBreed(in.Breed),
		DateOfBirth: dateOnly(in.DateOfBirth),
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, found, err := s.repo.GetByID(ctx, id)
	return found, err
}

// "" se guarda como NULL.
func normalizeBreed(b *string) *string {
	if b == nil {
		return nil
	}
	v := strings.TrimSpace(*b)
	if v == "" {
		return nil
	}
	return &v
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
