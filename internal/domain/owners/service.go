package owners

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/clinicerr"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

type CreateInput struct {
	Name  string
	Phone string
	Email string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	o := Owner{
		ID:    s.newID(),
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Email: strings.TrimSpace(in.Email),
	}
	if o.Name == "" || o.Phone == "" || o.Email == "" {
		return Owner{}, clinicerr.InvalidInput("name, phone and email are required")
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

// Exists se usa desde pets para validar owner_id sin importar este paquete entero.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	_, found, err := s.repo.GetByID(ctx, id)
	return found, err
}
