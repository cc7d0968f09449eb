package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/notify"
)

// fakeClientAPI records calls and serves canned data.
type fakeClientAPI struct {
	listed  []models.Client
	listErr error
	nextID  int
	calls   []string
}

func (f *fakeClientAPI) List(ctx context.Context, _ models.ClientFilter) ([]models.Client, error) {
	f.calls = append(f.calls, "list")
	return f.listed, f.listErr
}

func (f *fakeClientAPI) Create(ctx context.Context, c models.Client) (models.Client, error) {
	f.calls = append(f.calls, "create")
	f.nextID++
	c.ID = fmt.Sprintf("CLI-%03d", f.nextID)
	return c, nil
}

func (f *fakeClientAPI) Update(ctx context.Context, id string, c models.Client) (models.Client, error) {
	f.calls = append(f.calls, "update "+id)
	c.ID = id
	return c, nil
}

func (f *fakeClientAPI) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return nil
}

func (f *fakeClientAPI) ChangeStatus(ctx context.Context, id, status string) (models.Client, error) {
	f.calls = append(f.calls, "status "+id)
	return models.Client{ID: id, Status: status}, nil
}

func (f *fakeClientAPI) ToggleVIP(ctx context.Context, id string) (models.Client, error) {
	f.calls = append(f.calls, "vip "+id)
	return models.Client{ID: id, VIP: true}, nil
}

func loadedClientStore(t *testing.T, seed []models.Client) (*ClientStore, *fakeClientAPI, *notify.Recorder) {
	t.Helper()
	svc := &fakeClientAPI{listed: seed, nextID: 500}
	rec := &notify.Recorder{}
	s := NewClientStore(svc, rec)
	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, StateReady, s.State())
	svc.calls = nil
	return s, svc, rec
}

func TestClientSaveUpdateMergesIntoList(t *testing.T) {
	s, _, rec := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz", Status: models.ClientActive},
	})

	updated := models.Client{ID: "CLI-001", Name: "Marta Ruiz", Status: models.ClientActive, VIP: true, Notes: "prefiere mañanas"}
	saved, err := s.Save(context.Background(), updated, false)
	require.NoError(t, err)
	assert.True(t, saved.VIP)

	got := s.Get("CLI-001")
	require.NotNil(t, got)
	assert.Equal(t, updated, *got)
	assert.Len(t, s.All(), 1)
	assert.NotEmpty(t, rec.Successes)
}

func TestClientSaveCreateAppendsServerAssignedID(t *testing.T) {
	s, _, _ := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz"},
	})

	saved, err := s.Save(context.Background(), models.Client{Name: "Pau Vidal"}, true)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.NotEqual(t, "CLI-001", saved.ID)
	assert.Len(t, s.All(), 2)
	require.NotNil(t, s.Get(saved.ID))
}

func TestClientDeleteRemovesFromList(t *testing.T) {
	s, svc, rec := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz"},
		{ID: "CLI-002", Name: "Pau Vidal"},
	})

	require.NoError(t, s.Delete(context.Background(), "CLI-001"))
	assert.Nil(t, s.Get("CLI-001"))
	assert.Len(t, s.All(), 1)
	assert.Equal(t, []string{"delete CLI-001"}, svc.calls)
	require.NotEmpty(t, rec.Successes)
	assert.Contains(t, rec.Successes[0], "Marta Ruiz")
}

func TestClientDeleteUnknownIDFailsClosed(t *testing.T) {
	s, svc, rec := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz"},
	})

	err := s.Delete(context.Background(), "CLI-999")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Len(t, s.All(), 1)
	assert.Empty(t, svc.calls, "no service call for a stale id")
	assert.NotEmpty(t, rec.Errors)
}

func TestClientGetIsIdempotent(t *testing.T) {
	s, _, _ := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz", PreferredCategories: []string{"senderismo"}},
	})

	first := s.Get("CLI-001")
	second := s.Get("CLI-001")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestClientGetMissReturnsNilWithoutFetch(t *testing.T) {
	s, svc, _ := loadedClientStore(t, nil)
	assert.Nil(t, s.Get("CLI-404"))
	assert.Empty(t, svc.calls)
}

func TestClientLoadFailureKeepsPreviousList(t *testing.T) {
	svc := &fakeClientAPI{listed: []models.Client{{ID: "CLI-001"}}}
	rec := &notify.Recorder{}
	s := NewClientStore(svc, rec)
	require.NoError(t, s.Load(context.Background()))

	svc.listErr = domain.TransportError{Op: "cliente"}
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateError, s.State())
	assert.Len(t, s.All(), 1, "previous list survives a failed reload")
	assert.NotEmpty(t, rec.Errors)
}

func TestClientSelectAndCurrent(t *testing.T) {
	s, _, _ := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz"},
	})

	require.Error(t, s.Select("CLI-404"))
	assert.Nil(t, s.Current())

	require.NoError(t, s.Select("CLI-001"))
	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "CLI-001", cur.ID)

	require.NoError(t, s.Delete(context.Background(), "CLI-001"))
	assert.Nil(t, s.Current(), "selection cleared on delete")
}

func TestClientToggleVIPReconciles(t *testing.T) {
	s, _, rec := loadedClientStore(t, []models.Client{
		{ID: "CLI-001", Name: "Marta Ruiz"},
	})

	require.NoError(t, s.ToggleVIP(context.Background(), "CLI-001"))
	got := s.Get("CLI-001")
	require.NotNil(t, got)
	assert.True(t, got.VIP)
	assert.NotEmpty(t, rec.Successes)
}
