package catalog

import (
	"context"
	"fmt"
	"strings"

	"vet-clinic/internal/domain/clinicerr"
)

// Catalog expone las operaciones sobre servicios facturables.
type Catalog struct {
	repo Repository
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) List(ctx context.Context) ([]Service, error) {
	return c.repo.List(ctx)
}

// Resolve busca los servicios pedidos. Si la cantidad resuelta no coincide
// con la pedida (ids inexistentes o repetidos) falla con "service not found".
func (c *Catalog) Resolve(ctx context.Context, ids []int64) ([]Service, error) {
	if len(ids) == 0 {
		return []Service{}, nil
	}
	found, err := c.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, clinicerr.Reference("service not found")
	}
	return found, nil
}

// EnsureDefaults siembra el catálogo solo si no hay ningún servicio.
// Devuelve cuántos insertó (0 si ya había datos).
func (c *Catalog) EnsureDefaults(ctx context.Context) (int, error) {
	n, err := c.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	created, err := c.repo.CreateMany(ctx, Defaults())
	if err != nil {
		return 0, fmt.Errorf("seed services: %w", err)
	}
	return len(created), nil
}

// Create agrega un servicio al catálogo. No está expuesto por HTTP; la
// siembra inserta los defaults directo con CreateMany.
func (c *Catalog) Create(ctx context.Context, s Service) (Service, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return Service{}, clinicerr.InvalidInput("name is required")
	}
	if s.Price.IsNegative() {
		return Service{}, clinicerr.InvalidInput("price must be non-negative")
	}
	created, err := c.repo.CreateMany(ctx, []Service{s})
	if err != nil {
		return Service{}, err
	}
	return created[0], nil
}
