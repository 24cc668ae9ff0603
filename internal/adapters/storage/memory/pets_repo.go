package memory

import (
	"context"
	"sort"

	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/ports/storage"
)

type petsRepo struct {
	db *DB
}

func NewPetsRepo(db *DB) pets.Repository {
	return &petsRepo{db: db}
}

func (r *petsRepo) Create(ctx context.Context, p *pets.Pet) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// FK pets.owner_id -> owners.id
	if _, ok := r.db.ownerIndex[p.OwnerID]; !ok {
		return storage.ErrForeignKey
	}

	p.ID = r.db.next("pets")
	r.db.pets[p.ID] = *p
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.pets[id]
	return p, ok, nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.db.pets))
	for _, p := range r.db.pets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
