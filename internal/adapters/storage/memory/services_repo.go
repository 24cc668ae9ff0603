package memory

import (
	"context"
	"sort"

	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/ports/storage"
)

type servicesRepo struct {
	db *DB
}

func NewServicesRepo(db *DB) catalog.Repository {
	return &servicesRepo{db: db}
}

func (r *servicesRepo) CreateMany(ctx context.Context, items []catalog.Service) ([]catalog.Service, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// Chequear unicidad de nombre antes de escribir: todo o nada.
	names := make(map[string]struct{}, len(r.db.services)+len(items))
	for _, s := range r.db.services {
		names[s.Name] = struct{}{}
	}
	for _, s := range items {
		if _, dup := names[s.Name]; dup {
			return nil, storage.ErrDuplicate
		}
		names[s.Name] = struct{}{}
	}

	out := make([]catalog.Service, 0, len(items))
	for _, s := range items {
		s.ID = r.db.next("services")
		// Igual que NUMERIC(12,2) en Postgres.
		s.Price = s.Price.Round(2)
		r.db.services[s.ID] = s
		out = append(out, s)
	}
	return out, nil
}

func (r *servicesRepo) GetByIDs(ctx context.Context, ids []int64) ([]catalog.Service, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.servicesByIDs(ids), nil
}

func (r *servicesRepo) List(ctx context.Context) ([]catalog.Service, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]catalog.Service, 0, len(r.db.services))
	for _, s := range r.db.services {
		out = append(out, s)
	}
	sortServices(out)
	return out, nil
}

func (r *servicesRepo) Count(ctx context.Context) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return len(r.db.services), nil
}

// servicesByIDs hace lo mismo que `WHERE id IN (...)`: ignora repetidos e inexistentes.
// Asume db.mu tomado.
func (db *DB) servicesByIDs(ids []int64) []catalog.Service {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]catalog.Service, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if s, ok := db.services[id]; ok {
			out = append(out, s)
		}
	}
	sortServices(out)
	return out
}

func sortServices(s []catalog.Service) {
	sort.Slice(s, func(i, j int) bool { return s[i].ID < s[j].ID })
}
