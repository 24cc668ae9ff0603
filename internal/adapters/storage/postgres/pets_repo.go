package postgres

import (
	"context"
	"errors"
	"time"

	"vet-clinic/internal/domain/pets"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PetsRepo struct {
	db DB
}

func NewPetsRepo(db DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p *pets.Pet) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO pets (name, species, breed, dob, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		p.Name,
		p.Species,
		toText(p.Breed),
		toDate(p.DateOfBirth),
		p.OwnerID,
	).Scan(&p.ID)
	return mapErr("insert pet", err)
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, bool, error) {
	p, err := scanPet(r.db.QueryRow(ctx, `
		SELECT id, name, species, breed, dob, owner_id
		FROM pets
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pets.Pet{}, false, nil
		}
		return pets.Pet{}, false, mapErr("get pet", err)
	}
	return p, true, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, species, breed, dob, owner_id
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, mapErr("list pets", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, mapErr("scan pet", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(row pgx.Row) (pets.Pet, error) {
	var (
		p     pets.Pet
		breed pgtype.Text
		dob   pgtype.Date
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Species, &breed, &dob, &p.OwnerID); err != nil {
		return pets.Pet{}, err
	}
	if breed.Valid {
		b := breed.String
		p.Breed = &b
	}
	if dob.Valid {
		// dob es DATE: pgx lo da como medianoche UTC
		t := dob.Time
		p.DateOfBirth = &t
	}
	return p, nil
}

func toText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func toDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
