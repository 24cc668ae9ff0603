package memory

import (
	"context"
	"sort"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/ports/storage"
)

type appointmentsRepo struct {
	db *DB
}

func NewAppointmentsRepo(db *DB) appointments.Repository {
	return &appointmentsRepo{db: db}
}

func (r *appointmentsRepo) Create(ctx context.Context, a *appointments.Appointment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// FKs: se valida todo antes de escribir para que no quede nada a medias.
	if _, ok := r.db.pets[a.PetID]; !ok {
		return storage.ErrForeignKey
	}
	link := make(map[int64]struct{}, len(a.Services))
	for _, s := range a.Services {
		if _, ok := r.db.services[s.ID]; !ok {
			return storage.ErrForeignKey
		}
		link[s.ID] = struct{}{}
	}

	a.ID = r.db.next("appointments")

	// Los servicios viven solo en la tabla puente.
	row := *a
	row.Services = nil
	r.db.appts[a.ID] = row
	r.db.apptServices[a.ID] = link

	a.Services = r.db.servicesOf(a.ID)
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, bool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.appts[id]
	if !ok {
		return appointments.Appointment{}, false, nil
	}
	a.Services = r.db.servicesOf(id)
	return a, true, nil
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]appointments.Appointment, 0, len(r.db.appts))
	for id, a := range r.db.appts {
		a.Services = r.db.servicesOf(id)
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id int64, status appointments.Status) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	a, ok := r.db.appts[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	r.db.appts[id] = a
	return true, nil
}

// servicesOf arma el join appointment_services -> services. Asume db.mu tomado.
func (db *DB) servicesOf(apptID int64) []catalog.Service {
	ids := make([]int64, 0, len(db.apptServices[apptID]))
	for id := range db.apptServices[apptID] {
		ids = append(ids, id)
	}
	return db.servicesByIDs(ids)
}
