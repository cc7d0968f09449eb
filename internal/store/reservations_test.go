package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/notify"
)

type fakeReservationAPI struct {
	listed    []models.Reservation
	statusErr error
	calls     []string
	lastPrice float64
}

func (f *fakeReservationAPI) List(ctx context.Context, _ models.ReservationFilter) ([]models.Reservation, error) {
	f.calls = append(f.calls, "list")
	return f.listed, nil
}

func (f *fakeReservationAPI) Create(ctx context.Context, r models.Reservation, pricePerAdult float64) (models.Reservation, error) {
	f.calls = append(f.calls, "create")
	f.lastPrice = pricePerAdult
	r.ID = "RES-900"
	return r, nil
}

func (f *fakeReservationAPI) Update(ctx context.Context, id string, r models.Reservation) (models.Reservation, error) {
	f.calls = append(f.calls, "update "+id)
	r.ID = id
	return r, nil
}

func (f *fakeReservationAPI) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return nil
}

func (f *fakeReservationAPI) ChangeStatus(ctx context.Context, id, status string) (models.Reservation, error) {
	f.calls = append(f.calls, "status "+id)
	if f.statusErr != nil {
		return models.Reservation{}, f.statusErr
	}
	for _, r := range f.listed {
		if r.ID == id {
			r.Status = status
			return r, nil
		}
	}
	return models.Reservation{ID: id, Status: status}, nil
}

// staticResolver satisfies Resolver with a fixed table.
type staticResolver map[string]string

func (m staticResolver) IDByName(name string) (string, error) {
	if id, ok := m[name]; ok {
		return id, nil
	}
	return "", domain.NotFoundError{Resource: "cliente", ID: name}
}

func TestReservationChangeStatusStoresNewState(t *testing.T) {
	svc := &fakeReservationAPI{listed: []models.Reservation{
		{ID: "RES-001", ClientName: "Marta Ruiz", Status: models.ReservationPending},
	}}
	rec := &notify.Recorder{}
	s := NewReservationStore(svc, nil, nil, rec)
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.ChangeStatus(context.Background(), "RES-001", models.ReservationConfirmed))

	got := s.Get("RES-001")
	require.NotNil(t, got)
	assert.Equal(t, models.ReservationConfirmed, got.Status)
	require.NotEmpty(t, rec.Successes, "a success notification must be produced")
	assert.Contains(t, rec.Successes[0], "confirmada")
}

func TestReservationChangeStatusFailureLeavesListIntact(t *testing.T) {
	svc := &fakeReservationAPI{
		listed:    []models.Reservation{{ID: "RES-001", Status: models.ReservationPending}},
		statusErr: domain.InternalError{Msg: "backend caído"},
	}
	rec := &notify.Recorder{}
	s := NewReservationStore(svc, nil, nil, rec)
	require.NoError(t, s.Load(context.Background()))

	err := s.ChangeStatus(context.Background(), "RES-001", models.ReservationConfirmed)
	require.Error(t, err)
	assert.Equal(t, StateError, s.State())

	got := s.Get("RES-001")
	require.NotNil(t, got)
	assert.Equal(t, models.ReservationPending, got.Status, "no optimistic write to roll back")
	assert.NotEmpty(t, rec.Errors)
}

func newExcursionStoreWith(t *testing.T, items []models.Excursion) *ExcursionStore {
	t.Helper()
	s := NewExcursionStore(staticExcursionAPI{items: items}, nil)
	require.NoError(t, s.Load(context.Background()))
	return s
}

type staticExcursionAPI struct{ items []models.Excursion }

func (a staticExcursionAPI) List(ctx context.Context, _ models.ExcursionFilter) ([]models.Excursion, error) {
	return a.items, nil
}
func (a staticExcursionAPI) Create(ctx context.Context, e models.Excursion) (models.Excursion, error) {
	return e, nil
}
func (a staticExcursionAPI) Update(ctx context.Context, id string, e models.Excursion) (models.Excursion, error) {
	return e, nil
}
func (a staticExcursionAPI) Delete(ctx context.Context, id string) error { return nil }
func (a staticExcursionAPI) ToggleFeatured(ctx context.Context, id string) (models.Excursion, error) {
	return models.Excursion{}, nil
}
func (a staticExcursionAPI) ChangeStatus(ctx context.Context, id, status string) (models.Excursion, error) {
	return models.Excursion{}, nil
}

func TestReservationCreateResolvesDenormalizedNames(t *testing.T) {
	excursions := newExcursionStoreWith(t, []models.Excursion{
		{ID: "EXC-001", Name: "Tour del Teide", Price: 40, MeetingPoint: "Plaza Mayor"},
	})
	svc := &fakeReservationAPI{}
	s := NewReservationStore(svc, staticResolver{"Marta Ruiz": "CLI-001"}, excursions, &notify.Recorder{})
	require.NoError(t, s.Load(context.Background()))

	saved, err := s.Save(context.Background(), models.Reservation{
		ClientName:    "Marta Ruiz",
		ExcursionName: "Tour del Teide",
		Adults:        2,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "CLI-001", saved.ClientID)
	assert.Equal(t, "EXC-001", saved.ExcursionID)
	assert.Equal(t, "Plaza Mayor", saved.MeetingPoint)
	assert.Equal(t, 40.0, svc.lastPrice, "excursion price feeds the total computation")
}

func TestReservationCreateUnmatchedNameIsExplicitError(t *testing.T) {
	excursions := newExcursionStoreWith(t, nil)
	svc := &fakeReservationAPI{}
	rec := &notify.Recorder{}
	s := NewReservationStore(svc, staticResolver{}, excursions, rec)
	require.NoError(t, s.Load(context.Background()))

	_, err := s.Save(context.Background(), models.Reservation{ClientName: "Nadie Conocido"}, true)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.NotContains(t, svc.calls, "create", "no synthetic id, no create call")
	assert.NotEmpty(t, rec.Errors)
}

func TestReservationDeleteUnknownIDFailsClosed(t *testing.T) {
	svc := &fakeReservationAPI{listed: []models.Reservation{{ID: "RES-001"}}}
	s := NewReservationStore(svc, nil, nil, &notify.Recorder{})
	require.NoError(t, s.Load(context.Background()))
	svc.calls = nil

	err := s.Delete(context.Background(), "RES-404")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Len(t, s.All(), 1)
	assert.Empty(t, svc.calls)
}
