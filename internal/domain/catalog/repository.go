package catalog

import "context"

type Repository interface {
	// CreateMany inserta todos o ninguno y asigna los IDs.
	CreateMany(ctx context.Context, items []Service) ([]Service, error)
	// GetByIDs devuelve los que existan, sin repetir, ordenados por id.
	GetByIDs(ctx context.Context, ids []int64) ([]Service, error)
	List(ctx context.Context) ([]Service, error)
	Count(ctx context.Context) (int, error)
}
