package postgres

import (
	"context"
	"errors"
	"strings"

	"vet-clinic/internal/domain/owners"

	"github.com/jackc/pgx/v5"
)

type OwnersRepo struct {
	db DB
}

func NewOwnersRepo(db DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO owners (id, name, phone, email)
		VALUES ($1, $2, $3, $4)
	`, o.ID, o.Name, o.Phone, o.Email)
	return mapErr("insert owner", err)
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, false, nil
	}

	var o owners.Owner
	err := r.db.QueryRow(ctx, `
		SELECT id, name, phone, email
		FROM owners
		WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.Phone, &o.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return owners.Owner{}, false, nil
		}
		return owners.Owner{}, false, mapErr("get owner", err)
	}
	return o, true, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, phone, email
		FROM owners
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, mapErr("list owners", err)
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Phone, &o.Email); err != nil {
			return nil, mapErr("scan owner", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
