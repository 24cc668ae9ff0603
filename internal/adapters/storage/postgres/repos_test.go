package postgres

import (
	"context"
	"testing"
	"time"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/domain/invoices"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/ports/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestOwnersRepo(t *testing.T) {
	mock := newMock(t)
	repo := NewOwnersRepo(mock)
	ctx := context.Background()

	mock.ExpectExec(q("INSERT INTO owners (id, name, phone, email)")).
		WithArgs("o1", "Alice", "555", "alice@example.com").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.Create(ctx, owners.Owner{ID: "o1", Name: "Alice", Phone: "555", Email: "alice@example.com"}))

	mock.ExpectQuery(q("FROM owners")).WithArgs("o2").WillReturnError(pgx.ErrNoRows)
	_, found, err := repo.GetByID(ctx, "o2")
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectQuery(q("ORDER BY created_at ASC, id ASC")).
		WillReturnRows(mock.NewRows([]string{"id", "name", "phone", "email"}).
			AddRow("o1", "Alice", "555", "alice@example.com").
			AddRow("o0", "Bob", "556", "bob@example.com"))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o1", list[0].ID)
}

func TestOwnersRepo_DuplicateID(t *testing.T) {
	mock := newMock(t)
	repo := NewOwnersRepo(mock)

	mock.ExpectExec(q("INSERT INTO owners")).
		WithArgs("o1", "Alice", "555", "a@b.c").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "owners_pkey"})
	err := repo.Create(context.Background(), owners.Owner{ID: "o1", Name: "Alice", Phone: "555", Email: "a@b.c"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPetsRepo(t *testing.T) {
	mock := newMock(t)
	repo := NewPetsRepo(mock)
	ctx := context.Background()

	breed := "beagle"
	dob := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	p := pets.Pet{Name: "Rex", Species: "dog", Breed: &breed, DateOfBirth: &dob, OwnerID: "o1"}
	mock.ExpectQuery(q("INSERT INTO pets")).
		WithArgs("Rex", "dog", pgxmock.AnyArg(), pgxmock.AnyArg(), "o1").
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(7)))
	require.NoError(t, repo.Create(ctx, &p))
	assert.Equal(t, int64(7), p.ID)

	mock.ExpectQuery(q("FROM pets")).WithArgs(int64(7)).
		WillReturnRows(mock.NewRows([]string{"id", "name", "species", "breed", "dob", "owner_id"}).
			AddRow(int64(7), "Rex", "dog", nil, nil, "o1"))
	got, found, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, got.Breed)
	assert.Nil(t, got.DateOfBirth)
}

func TestPetsRepo_MissingOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewPetsRepo(mock)

	mock.ExpectQuery(q("INSERT INTO pets")).
		WithArgs("Rex", "dog", pgxmock.AnyArg(), pgxmock.AnyArg(), "nope").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "pets_owner_id_fkey"})
	err := repo.Create(context.Background(), &pets.Pet{Name: "Rex", Species: "dog", OwnerID: "nope"})
	assert.ErrorIs(t, err, storage.ErrForeignKey)
}

func TestServicesRepo(t *testing.T) {
	mock := newMock(t)
	repo := NewServicesRepo(mock)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO services (name, price)")).
		WithArgs("General Checkup", "120").
		WillReturnRows(mock.NewRows([]string{"id", "price"}).AddRow(int64(1), "120.00"))
	mock.ExpectQuery(q("INSERT INTO services (name, price)")).
		WithArgs("Grooming", "100").
		WillReturnRows(mock.NewRows([]string{"id", "price"}).AddRow(int64(2), "100.00"))
	mock.ExpectCommit()
	created, err := repo.CreateMany(ctx, []catalog.Service{
		{Name: "General Checkup", Price: decimal.NewFromInt(120)},
		{Name: "Grooming", Price: decimal.NewFromInt(100)},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, int64(2), created[1].ID)

	mock.ExpectQuery(q("WHERE id = ANY($1)")).WithArgs([]int64{2, 1}).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price"}).
			AddRow(int64(1), "General Checkup", "120.00").
			AddRow(int64(2), "Grooming", "100.00"))
	got, err := repo.GetByIDs(ctx, []int64{2, 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(120)))

	mock.ExpectQuery(q("SELECT count(*) FROM services")).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	empty, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestServicesRepo_CreateManyReturnsStoredPrice(t *testing.T) {
	mock := newMock(t)
	repo := NewServicesRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q("RETURNING id, price::text")).
		WithArgs("Nail Trim", "10.125").
		WillReturnRows(mock.NewRows([]string{"id", "price"}).AddRow(int64(4), "10.13"))
	mock.ExpectCommit()

	created, err := repo.CreateMany(context.Background(), []catalog.Service{
		{Name: "Nail Trim", Price: decimal.RequireFromString("10.125")},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "10.13", created[0].Price.StringFixed(2))
	assert.True(t, created[0].Price.Equal(decimal.RequireFromString("10.13")))
}

func TestServicesRepo_DuplicateNameRollsBack(t *testing.T) {
	mock := newMock(t)
	repo := NewServicesRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO services")).
		WithArgs("Grooming", "100").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "services_name_key"})
	mock.ExpectRollback()

	_, err := repo.CreateMany(context.Background(), []catalog.Service{{Name: "Grooming", Price: decimal.NewFromInt(100)}})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestAppointmentsRepo_CreateLinksServices(t *testing.T) {
	mock := newMock(t)
	repo := NewAppointmentsRepo(mock)

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a := appointments.Appointment{
		PetID:       3,
		VetName:     "Dr. Vega",
		ScheduledAt: at,
		Status:      appointments.StatusScheduled,
		Services:    []catalog.Service{{ID: 1}, {ID: 3}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO appointments (pet_id, vet_name, scheduled_at, status)")).
		WithArgs(int64(3), "Dr. Vega", at, "SCHEDULED").
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(q("INSERT INTO appointment_services")).WithArgs(int64(11), int64(1)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(q("INSERT INTO appointment_services")).WithArgs(int64(11), int64(3)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), &a))
	assert.Equal(t, int64(11), a.ID)
}

func TestAppointmentsRepo_CreateFailsOnMissingService(t *testing.T) {
	mock := newMock(t)
	repo := NewAppointmentsRepo(mock)

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	a := appointments.Appointment{PetID: 3, VetName: "Dr. Vega", ScheduledAt: at, Status: appointments.StatusScheduled, Services: []catalog.Service{{ID: 9}}}

	mock.ExpectBegin()
	mock.ExpectQuery(q("INSERT INTO appointments")).
		WithArgs(int64(3), "Dr. Vega", at, "SCHEDULED").
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(q("INSERT INTO appointment_services")).WithArgs(int64(12), int64(9)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &a)
	assert.ErrorIs(t, err, storage.ErrForeignKey)
}

func TestAppointmentsRepo_GetByIDJoinsServices(t *testing.T) {
	mock := newMock(t)
	repo := NewAppointmentsRepo(mock)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("FROM appointments")).WithArgs(int64(11)).
		WillReturnRows(mock.NewRows([]string{"id", "pet_id", "vet_name", "scheduled_at", "status"}).
			AddRow(int64(11), int64(3), "Dr. Vega", at, "DONE"))
	mock.ExpectQuery(q("FROM appointment_services aps")).WithArgs(pgxmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"appointment_id", "id", "name", "price"}).
			AddRow(int64(11), int64(1), "General Checkup", "120.00").
			AddRow(int64(11), int64(3), "Grooming", "100.00"))

	a, found, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, appointments.StatusDone, a.Status)
	require.Len(t, a.Services, 2)
	assert.Equal(t, "Grooming", a.Services[1].Name)
}

func TestAppointmentsRepo_RejectsUnknownStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewAppointmentsRepo(mock)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("WHERE id = $1")).WithArgs(int64(11)).
		WillReturnRows(mock.NewRows([]string{"id", "pet_id", "vet_name", "scheduled_at", "status"}).
			AddRow(int64(11), int64(3), "Dr. Vega", at, "LOST"))
	_, found, err := repo.GetByID(context.Background(), 11)
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), `unknown status "LOST"`)

	mock.ExpectQuery(q("ORDER BY id ASC")).
		WillReturnRows(mock.NewRows([]string{"id", "pet_id", "vet_name", "scheduled_at", "status"}).
			AddRow(int64(1), int64(3), "Dr. Vega", at, "pending"))
	_, err = repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appointment 1")
}

func TestAppointmentsRepo_ListWithoutServices(t *testing.T) {
	mock := newMock(t)
	repo := NewAppointmentsRepo(mock)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("ORDER BY id ASC")).
		WillReturnRows(mock.NewRows([]string{"id", "pet_id", "vet_name", "scheduled_at", "status"}).
			AddRow(int64(1), int64(3), "Dr. Vega", at, "SCHEDULED"))
	mock.ExpectQuery(q("FROM appointment_services aps")).WithArgs(pgxmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"appointment_id", "id", "name", "price"}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Services)
	assert.Empty(t, list[0].Services)
}

func TestAppointmentsRepo_UpdateStatus(t *testing.T) {
	mock := newMock(t)
	repo := NewAppointmentsRepo(mock)

	mock.ExpectExec(q("UPDATE appointments")).WithArgs(int64(1), "DONE").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(q("UPDATE appointments")).WithArgs(int64(2), "DONE").WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := repo.UpdateStatus(context.Background(), 1, appointments.StatusDone)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.UpdateStatus(context.Background(), 2, appointments.StatusDone)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvoicesRepo(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoicesRepo(mock)
	ctx := context.Background()

	inv := invoices.Invoice{AppointmentID: 11, Total: decimal.NewFromInt(220), Paid: true}
	mock.ExpectQuery(q("INSERT INTO invoices (appointment_id, total, paid)")).
		WithArgs(int64(11), "220", true).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(1)))
	require.NoError(t, repo.Create(ctx, &inv))
	assert.Equal(t, int64(1), inv.ID)

	mock.ExpectQuery(q("INSERT INTO invoices")).
		WithArgs(int64(11), "220", false).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "invoices_appointment_id_key"})
	err := repo.Create(ctx, &invoices.Invoice{AppointmentID: 11, Total: decimal.NewFromInt(220)})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	mock.ExpectQuery(q("FROM invoices")).
		WillReturnRows(mock.NewRows([]string{"id", "appointment_id", "total", "paid"}).
			AddRow(int64(1), int64(11), "220.00", true))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "220", list[0].Total.String())
}
