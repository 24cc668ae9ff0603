package pets

import "context"

// OwnerChecker es lo único que pets necesita de owners.
// Se define acá para evitar que pets importe el paquete owners.
type OwnerChecker interface {
	Exists(ctx context.Context, ownerID string) (bool, error)
}
