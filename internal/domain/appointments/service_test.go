package appointments_test

import (
	"context"
	"testing"
	"time"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/catalog"
	"vet-clinic/internal/domain/clinicerr"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *appointments.Service
	petID int64
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := memory.NewDB()

	ownersSvc := owners.NewService(memory.NewOwnersRepo(db))
	petsSvc := pets.NewService(memory.NewPetsRepo(db), ownersSvc)
	cat := catalog.NewCatalog(memory.NewServicesRepo(db))
	_, err := cat.EnsureDefaults(ctx)
	require.NoError(t, err)

	o, err := ownersSvc.Create(ctx, owners.CreateInput{Name: "Alice", Phone: "555", Email: "alice@example.com"})
	require.NoError(t, err)
	p, err := petsSvc.Create(ctx, pets.CreateInput{Name: "Rex", Species: "dog", OwnerID: o.ID})
	require.NoError(t, err)

	return fixture{
		svc:   appointments.NewService(memory.NewAppointmentsRepo(db), petsSvc, cat),
		petID: p.ID,
	}
}

var at = time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

func TestCreate_WithServices(t *testing.T) {
	f := setup(t)

	a, err := f.svc.Create(context.Background(), appointments.CreateInput{
		PetID:       f.petID,
		VetName:     " Dr. Vega ",
		ScheduledAt: at,
		ServiceIDs:  []int64{3, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Dr. Vega", a.VetName)
	assert.Equal(t, appointments.StatusScheduled, a.Status)
	require.Len(t, a.Services, 2)
	assert.Equal(t, "General Checkup", a.Services[0].Name)
	assert.Equal(t, "Grooming", a.Services[1].Name)

	got, err := f.svc.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestCreate_RejectsBadReferencesAtomically(t *testing.T) {
	f := setup(t)

	cases := map[string]appointments.CreateInput{
		"repeated service": {PetID: f.petID, VetName: "Dr. Vega", ScheduledAt: at, ServiceIDs: []int64{1, 1}},
		"unknown service":  {PetID: f.petID, VetName: "Dr. Vega", ScheduledAt: at, ServiceIDs: []int64{1, 9}},
		"unknown pet":      {PetID: 77, VetName: "Dr. Vega", ScheduledAt: at},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, clinicerr.ErrReference)
		})
	}

	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_RequiresVetAndDatetime(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(context.Background(), appointments.CreateInput{PetID: f.petID, ScheduledAt: at})
	assert.ErrorIs(t, err, clinicerr.ErrInvalidInput)

	_, err = f.svc.Create(context.Background(), appointments.CreateInput{PetID: f.petID, VetName: "Dr. Vega"})
	assert.ErrorIs(t, err, clinicerr.ErrInvalidInput)
}

func TestComplete_IsIdempotent(t *testing.T) {
	f := setup(t)
	a, err := f.svc.Create(context.Background(), appointments.CreateInput{PetID: f.petID, VetName: "Dr. Vega", ScheduledAt: at})
	require.NoError(t, err)
	assert.NotNil(t, a.Services)
	assert.Empty(t, a.Services)

	for i := 0; i < 2; i++ {
		done, err := f.svc.Complete(context.Background(), a.ID)
		require.NoError(t, err)
		assert.Equal(t, appointments.StatusDone, done.Status)
	}
}

func TestComplete_Unknown(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Complete(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, clinicerr.ErrNotFound)

	_, err = f.svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, clinicerr.ErrNotFound)
}

func TestParseDatetime(t *testing.T) {
	cases := map[string]time.Time{
		"2025-03-01T10:30:00Z":      at,
		"2025-03-01T07:30:00-03:00": at,
		"2025-03-01T10:30":          at,
		"2025-03-01T10:30:00":       at,
	}
	for in, want := range cases {
		got, err := appointments.ParseDatetime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s => %s", in, got)
	}

	_, err := appointments.ParseDatetime("01/03/2025 10:30")
	assert.Error(t, err)
}

func TestStatusValid(t *testing.T) {
	for _, s := range []appointments.Status{appointments.StatusScheduled, appointments.StatusDone, appointments.StatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, appointments.Status("LOST").Valid())
}
