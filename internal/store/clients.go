package store

import (
	"context"
	"sync"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/notify"
)

// ClientAPI is the slice of ClientService the store needs.
type ClientAPI interface {
	List(ctx context.Context, f models.ClientFilter) ([]models.Client, error)
	Create(ctx context.Context, c models.Client) (models.Client, error)
	Update(ctx context.Context, id string, c models.Client) (models.Client, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id, status string) (models.Client, error)
	ToggleVIP(ctx context.Context, id string) (models.Client, error)
}

// ClientStore caches the client list for the admin dashboard.
type ClientStore struct {
	mu       sync.RWMutex
	svc      ClientAPI
	notifier notify.Notifier

	items    []models.Client
	selected string
	state    State
	lastErr  error
}

// NewClientStore wires a store to its service. A nil notifier is
// replaced with a no-op.
func NewClientStore(svc ClientAPI, n notify.Notifier) *ClientStore {
	if n == nil {
		n = notify.Nop{}
	}
	return &ClientStore{svc: svc, notifier: n, state: StateIdle}
}

// State returns the current lifecycle state.
func (s *ClientStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed operation, if any.
func (s *ClientStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Load fetches the full client list, replacing the cache. A failed load
// keeps the previous list and must be retried by the caller.
func (s *ClientStore) Load(ctx context.Context) error {
	s.enterLoading()
	items, err := s.svc.List(ctx, models.ClientFilter{})
	if err != nil {
		s.fail(err)
		s.notifier.Error("No se pudieron cargar los clientes")
		return err
	}
	s.mu.Lock()
	s.items = items
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// All returns a copy of the cached list.
func (s *ClientStore) All() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks the client up in memory. It never fetches on a miss.
func (s *ClientStore) Get(id string) *models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			c := s.items[i]
			return &c
		}
	}
	return nil
}

// Select marks a client as the currently selected one.
func (s *ClientStore) Select(id string) error {
	if s.Get(id) == nil {
		return domain.NotFoundError{Resource: "cliente", ID: id}
	}
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	return nil
}

// Current returns the selected client, nil when nothing is selected or
// the selection has since been deleted.
func (s *ClientStore) Current() *models.Client {
	s.mu.RLock()
	id := s.selected
	s.mu.RUnlock()
	if id == "" {
		return nil
	}
	return s.Get(id)
}

// Save creates or updates a client. On create the server-assigned record
// is appended; on update the matching entry is replaced. The list only
// changes after the service call resolves.
func (s *ClientStore) Save(ctx context.Context, c models.Client, isNew bool) (models.Client, error) {
	if !isNew {
		if s.Get(c.ID) == nil {
			err := domain.NotFoundError{Resource: "cliente", ID: c.ID}
			s.notifier.Error("El cliente ya no existe")
			return models.Client{}, err
		}
	}

	s.enterLoading()
	var (
		saved models.Client
		err   error
	)
	if isNew {
		saved, err = s.svc.Create(ctx, c)
	} else {
		saved, err = s.svc.Update(ctx, c.ID, c)
	}
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al guardar el cliente")
		return models.Client{}, err
	}

	s.mu.Lock()
	if isNew {
		s.items = append(s.items, saved)
	} else {
		s.replace(saved)
	}
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Cliente guardado correctamente")
	return saved, nil
}

// Delete removes the client. A stale id fails closed: no service call,
// list untouched.
func (s *ClientStore) Delete(ctx context.Context, id string) error {
	existing := s.Get(id)
	if existing == nil {
		err := domain.NotFoundError{Resource: "cliente", ID: id}
		s.notifier.Error("El cliente ya no existe")
		return err
	}

	s.enterLoading()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail(err)
		s.notifier.Error("Error al eliminar el cliente")
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if s.selected == id {
		s.selected = ""
	}
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Cliente " + existing.Name + " eliminado")
	return nil
}

// ChangeStatus moves a client to the given state, call-then-reconcile.
func (s *ClientStore) ChangeStatus(ctx context.Context, id, status string) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "cliente", ID: id}
		s.notifier.Error("El cliente ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.ChangeStatus(ctx, id, status)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al cambiar el estado del cliente")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Estado del cliente actualizado")
	return nil
}

// ToggleVIP flips the VIP flag, call-then-reconcile.
func (s *ClientStore) ToggleVIP(ctx context.Context, id string) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "cliente", ID: id}
		s.notifier.Error("El cliente ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.ToggleVIP(ctx, id)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al actualizar el cliente")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Cliente actualizado")
	return nil
}

// IDByName resolves a client name to its id using the cached list. An
// unmatched name is an explicit error, never a synthetic id.
func (s *ClientStore) IDByName(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].Name == name {
			return s.items[i].ID, nil
		}
	}
	return "", domain.NotFoundError{Resource: "cliente", ID: name}
}

func (s *ClientStore) enterLoading() {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()
}

func (s *ClientStore) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastErr = err
	s.mu.Unlock()
}

// replace swaps the matching entry in place. Caller holds the lock.
func (s *ClientStore) replace(c models.Client) {
	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i] = c
			return
		}
	}
}
