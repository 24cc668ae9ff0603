package pets

import "context"

type Repository interface {
	// Create asigna p.ID (secuencial) al persistir.
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id int64) (Pet, bool, error)
	List(ctx context.Context) ([]Pet, error)
}
