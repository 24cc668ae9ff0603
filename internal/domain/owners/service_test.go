package owners

import (
	"context"
	"errors"
	"testing"

	"vet-clinic/internal/domain/clinicerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	rows []Owner
	err  error
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, o)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Owner, bool, error) {
	for _, o := range r.rows {
		if o.ID == id {
			return o, true, nil
		}
	}
	return Owner{}, false, nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	return append([]Owner(nil), r.rows...), nil
}

func newTestService(repo Repository) *Service {
	n := 0
	s := NewService(repo)
	s.newID = func() string {
		n++
		return "owner-" + string(rune('0'+n))
	}
	return s
}

func TestCreate_TrimsAndAssignsID(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)

	o, err := svc.Create(context.Background(), CreateInput{
		Name:  "  Alice ",
		Phone: "555-0100",
		Email: "alice@example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, Owner{ID: "owner-1", Name: "Alice", Phone: "555-0100", Email: "alice@example.com"}, o)
	assert.Len(t, repo.rows, 1)
}

func TestCreate_RequiresAllFields(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Alice", Phone: " ", Email: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, clinicerr.KindInvalidInput, clinicerr.KindOf(err))
	assert.Empty(t, repo.rows)
}

func TestCreate_PropagatesRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := newTestService(&testRepo{err: boom})

	_, err := svc.Create(context.Background(), CreateInput{Name: "A", Phone: "1", Email: "a@b.c"})
	assert.ErrorIs(t, err, boom)
}

func TestExists(t *testing.T) {
	repo := &testRepo{}
	svc := newTestService(repo)
	o, err := svc.Create(context.Background(), CreateInput{Name: "A", Phone: "1", Email: "a@b.c"})
	require.NoError(t, err)

	ok, err := svc.Exists(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Exists(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewService_UsesUUIDs(t *testing.T) {
	svc := NewService(&testRepo{})
	a, err := svc.Create(context.Background(), CreateInput{Name: "A", Phone: "1", Email: "a@b.c"})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), CreateInput{Name: "B", Phone: "2", Email: "b@b.c"})
	require.NoError(t, err)

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}
