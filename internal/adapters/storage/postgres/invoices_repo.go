package postgres

import (
	"context"
	"fmt"

	"vet-clinic/internal/domain/invoices"

	"github.com/shopspring/decimal"
)

type InvoicesRepo struct {
	db DB
}

func NewInvoicesRepo(db DB) *InvoicesRepo {
	return &InvoicesRepo{db: db}
}

// Create confía en UNIQUE(appointment_id): un duplicado vuelve como storage.ErrDuplicate.
func (r *InvoicesRepo) Create(ctx context.Context, inv *invoices.Invoice) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO invoices (appointment_id, total, paid)
		VALUES ($1, $2::numeric, $3)
		RETURNING id
	`, inv.AppointmentID, inv.Total.String(), inv.Paid).Scan(&inv.ID)
	return mapErr("insert invoice", err)
}

func (r *InvoicesRepo) List(ctx context.Context) ([]invoices.Invoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, appointment_id, total::text, paid
		FROM invoices
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, mapErr("list invoices", err)
	}
	defer rows.Close()

	out := make([]invoices.Invoice, 0)
	for rows.Next() {
		var (
			inv   invoices.Invoice
			total string
		)
		if err := rows.Scan(&inv.ID, &inv.AppointmentID, &total, &inv.Paid); err != nil {
			return nil, mapErr("scan invoice", err)
		}
		d, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("invoice %d total %q: %w", inv.ID, total, err)
		}
		inv.Total = d
		out = append(out, inv)
	}
	return out, rows.Err()
}
