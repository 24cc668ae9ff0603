package postgres

import (
	"context"
	"errors"
	"fmt"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AppointmentsRepo struct {
	db DB
}

func NewAppointmentsRepo(db DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

// Create inserta la cita y las filas de appointment_services en la misma transacción.
func (r *AppointmentsRepo) Create(ctx context.Context, a *appointments.Appointment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapErr("begin", err)
	}
	defer rollback(ctx, tx)

	if err := tx.QueryRow(ctx, `
		INSERT INTO appointments (pet_id, vet_name, scheduled_at, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.PetID, a.VetName, a.ScheduledAt, string(a.Status)).Scan(&a.ID); err != nil {
		return mapErr("insert appointment", err)
	}

	for _, s := range a.Services {
		if _, err := tx.Exec(ctx, `
			INSERT INTO appointment_services (appointment_id, service_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, a.ID, s.ID); err != nil {
			return mapErr("link service", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return mapErr("commit", err)
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, bool, error) {
	var (
		a      appointments.Appointment
		status string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, pet_id, vet_name, scheduled_at, status
		FROM appointments
		WHERE id = $1
	`, id).Scan(&a.ID, &a.PetID, &a.VetName, &a.ScheduledAt, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointments.Appointment{}, false, nil
		}
		return appointments.Appointment{}, false, mapErr("get appointment", err)
	}
	if a.Status, err = parseStatus(a.ID, status); err != nil {
		return appointments.Appointment{}, false, err
	}

	links, err := r.servicesFor(ctx, &id)
	if err != nil {
		return appointments.Appointment{}, false, err
	}
	a.Services = nonNil(links[id])
	return a, true, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, pet_id, vet_name, scheduled_at, status
		FROM appointments
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, mapErr("list appointments", err)
	}

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var (
			a      appointments.Appointment
			status string
		)
		if err := rows.Scan(&a.ID, &a.PetID, &a.VetName, &a.ScheduledAt, &status); err != nil {
			rows.Close()
			return nil, mapErr("scan appointment", err)
		}
		st, err := parseStatus(a.ID, status)
		if err != nil {
			rows.Close()
			return nil, err
		}
		a.Status = st
		out = append(out, a)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapErr("list appointments", err)
	}

	links, err := r.servicesFor(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Services = nonNil(links[out[i].ID])
	}
	return out, nil
}

func (r *AppointmentsRepo) UpdateStatus(ctx context.Context, id int64, status appointments.Status) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments
		SET status = $2
		WHERE id = $1
	`, id, string(status))
	if err != nil {
		return false, mapErr("update appointment status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// servicesFor arma el join appointment_services -> services, de una cita
// (apptID != nil) o de todas.
func (r *AppointmentsRepo) servicesFor(ctx context.Context, apptID *int64) (map[int64][]catalog.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT aps.appointment_id, s.id, s.name, s.price::text
		FROM appointment_services aps
		JOIN services s ON s.id = aps.service_id
		WHERE $1::bigint IS NULL OR aps.appointment_id = $1
		ORDER BY aps.appointment_id ASC, s.id ASC
	`, apptID)
	if err != nil {
		return nil, mapErr("list appointment services", err)
	}
	defer rows.Close()

	out := make(map[int64][]catalog.Service)
	for rows.Next() {
		var (
			aid   int64
			s     catalog.Service
			price string
		)
		if err := rows.Scan(&aid, &s.ID, &s.Name, &price); err != nil {
			return nil, mapErr("scan appointment service", err)
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("service %d price %q: %w", s.ID, price, err)
		}
		s.Price = d
		out[aid] = append(out[aid], s)
	}
	return out, rows.Err()
}

// parseStatus rechaza valores que no son del enum (el CHECK del esquema
// debería impedirlos).
func parseStatus(id int64, raw string) (appointments.Status, error) {
	st := appointments.Status(raw)
	if !st.Valid() {
		return "", fmt.Errorf("appointment %d: unknown status %q", id, raw)
	}
	return st, nil
}

func nonNil(s []catalog.Service) []catalog.Service {
	if s == nil {
		return []catalog.Service{}
	}
	return s
}
