package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) error
	// GetByID devuelve found=false (sin error) si no existe.
	GetByID(ctx context.Context, id string) (Owner, bool, error)
	List(ctx context.Context) ([]Owner, error)
}
