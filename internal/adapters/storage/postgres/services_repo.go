package postgres

import (
	"context"
	"fmt"

	"vet-clinic/internal/domain/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ServicesRepo struct {
	db DB
}

func NewServicesRepo(db DB) *ServicesRepo {
	return &ServicesRepo{db: db}
}

// El precio viaja como texto (::numeric / ::text) para no perder precisión.
const selectServiceColumns = `id, name, price::text`

func (r *ServicesRepo) CreateMany(ctx context.Context, items []catalog.Service) ([]catalog.Service, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, mapErr("begin", err)
	}
	defer rollback(ctx, tx)

	out := make([]catalog.Service, 0, len(items))
	for _, s := range items {
		// price vuelve ya redondeado por NUMERIC(12,2).
		var price string
		if err := tx.QueryRow(ctx, `
			INSERT INTO services (name, price)
			VALUES ($1, $2::numeric)
			RETURNING id, price::text
		`, s.Name, s.Price.String()).Scan(&s.ID, &price); err != nil {
			return nil, mapErr("insert service", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("service %d price %q: %w", s.ID, price, err)
		}
		s.Price = d
		out = append(out, s)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapErr("commit", err)
	}
	return out, nil
}

func (r *ServicesRepo) GetByIDs(ctx context.Context, ids []int64) ([]catalog.Service, error) {
	if len(ids) == 0 {
		return []catalog.Service{}, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+selectServiceColumns+`
		FROM services
		WHERE id = ANY($1)
		ORDER BY id ASC
	`, ids)
	if err != nil {
		return nil, mapErr("get services", err)
	}
	return collectServices(rows)
}

func (r *ServicesRepo) List(ctx context.Context) ([]catalog.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+selectServiceColumns+`
		FROM services
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, mapErr("list services", err)
	}
	return collectServices(rows)
}

func (r *ServicesRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM services`).Scan(&n); err != nil {
		return 0, mapErr("count services", err)
	}
	return n, nil
}

func collectServices(rows pgx.Rows) ([]catalog.Service, error) {
	defer rows.Close()

	out := make([]catalog.Service, 0)
	for rows.Next() {
		var (
			s     catalog.Service
			price string
		)
		if err := rows.Scan(&s.ID, &s.Name, &price); err != nil {
			return nil, mapErr("scan service", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("service %d price %q: %w", s.ID, price, err)
		}
		s.Price = d
		out = append(out, s)
	}
	return out, rows.Err()
}
