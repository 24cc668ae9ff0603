package memory

import (
	"context"
	"errors"
	"strings"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/ports/storage"
)

type ownersRepo struct {
	db *DB
}

func NewOwnersRepo(db *DB) owners.Repository {
	return &ownersRepo{db: db}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.db.ownerIndex[o.ID]; exists {
		return storage.ErrDuplicate
	}
	r.db.ownerIndex[o.ID] = len(r.db.owners)
	r.db.owners = append(r.db.owners, o)
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id string) (owners.Owner, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i, ok := r.db.ownerIndex[id]
	if !ok {
		return owners.Owner{}, false, nil
	}
	return r.db.owners[i], true, nil
}

// List en orden de inserción (los ids de owner son UUID, no ordenables).
func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]owners.Owner, len(r.db.owners))
	copy(out, r.db.owners)
	return out, nil
}
