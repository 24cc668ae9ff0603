package memory

import (
	"context"
	"sort"

	"vet-clinic/internal/domain/invoices"
	"vet-clinic/internal/ports/storage"
)

type invoicesRepo struct {
	db *DB
}

func NewInvoicesRepo(db *DB) invoices.Repository {
	return &invoicesRepo{db: db}
}

func (r *invoicesRepo) Create(ctx context.Context, inv *invoices.Invoice) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.appts[inv.AppointmentID]; !ok {
		return storage.ErrForeignKey
	}
	// UNIQUE(appointment_id)
	if _, dup := r.db.invoiceByAppt[inv.AppointmentID]; dup {
		return storage.ErrDuplicate
	}

	inv.ID = r.db.next("invoices")
	r.db.invoices[inv.ID] = *inv
	r.db.invoiceByAppt[inv.AppointmentID] = inv.ID
	return nil
}

func (r *invoicesRepo) List(ctx context.Context) ([]invoices.Invoice, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]invoices.Invoice, 0, len(r.db.invoices))
	for _, inv := range r.db.invoices {
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
