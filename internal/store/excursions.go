package store

import (
	"context"
	"sync"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/notify"
)

// ExcursionAPI is the slice of ExcursionService the store needs.
type ExcursionAPI interface {
	List(ctx context.Context, f models.ExcursionFilter) ([]models.Excursion, error)
	Create(ctx context.Context, e models.Excursion) (models.Excursion, error)
	Update(ctx context.Context, id string, e models.Excursion) (models.Excursion, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (models.Excursion, error)
	ChangeStatus(ctx context.Context, id, status string) (models.Excursion, error)
}

// ExcursionStore caches the excursion catalog. Besides the list it keeps
// a name→id index rebuilt on Load, used to resolve the denormalized
// excursion names reservations carry.
type ExcursionStore struct {
	mu       sync.RWMutex
	svc      ExcursionAPI
	notifier notify.Notifier

	items    []models.Excursion
	byName   map[string]string
	selected string
	state    State
	lastErr  error
}

// NewExcursionStore wires a store to its service.
func NewExcursionStore(svc ExcursionAPI, n notify.Notifier) *ExcursionStore {
	if n == nil {
		n = notify.Nop{}
	}
	return &ExcursionStore{svc: svc, notifier: n, state: StateIdle, byName: map[string]string{}}
}

// State returns the current lifecycle state.
func (s *ExcursionStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed operation, if any.
func (s *ExcursionStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Load fetches the full catalog and rebuilds the name index.
func (s *ExcursionStore) Load(ctx context.Context) error {
	s.enterLoading()
	items, err := s.svc.List(ctx, models.ExcursionFilter{})
	if err != nil {
		s.fail(err)
		s.notifier.Error("No se pudieron cargar las excursiones")
		return err
	}
	s.mu.Lock()
	s.items = items
	s.rebuildIndex()
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// All returns a copy of the cached catalog.
func (s *ExcursionStore) All() []models.Excursion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Excursion, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks the excursion up in memory. It never fetches on a miss.
func (s *ExcursionStore) Get(id string) *models.Excursion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			e := s.items[i]
			return &e
		}
	}
	return nil
}

// Select marks an excursion as the currently selected one.
func (s *ExcursionStore) Select(id string) error {
	if s.Get(id) == nil {
		return domain.NotFoundError{Resource: "excursion", ID: id}
	}
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	return nil
}

// Current returns the selected excursion, nil when nothing is selected.
func (s *ExcursionStore) Current() *models.Excursion {
	s.mu.RLock()
	id := s.selected
	s.mu.RUnlock()
	if id == "" {
		return nil
	}
	return s.Get(id)
}

// Save creates or updates an excursion, call-then-reconcile.
func (s *ExcursionStore) Save(ctx context.Context, e models.Excursion, isNew bool) (models.Excursion, error) {
	if !isNew {
		if s.Get(e.ID) == nil {
			err := domain.NotFoundError{Resource: "excursion", ID: e.ID}
			s.notifier.Error("La excursión ya no existe")
			return models.Excursion{}, err
		}
	}

	s.enterLoading()
	var (
		saved models.Excursion
		err   error
	)
	if isNew {
		saved, err = s.svc.Create(ctx, e)
	} else {
		saved, err = s.svc.Update(ctx, e.ID, e)
	}
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al guardar la excursión")
		return models.Excursion{}, err
	}

	s.mu.Lock()
	if isNew {
		s.items = append(s.items, saved)
	} else {
		s.replace(saved)
	}
	s.rebuildIndex()
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Excursión guardada correctamente")
	return saved, nil
}

// Delete removes the excursion. A stale id fails closed.
func (s *ExcursionStore) Delete(ctx context.Context, id string) error {
	existing := s.Get(id)
	if existing == nil {
		err := domain.NotFoundError{Resource: "excursion", ID: id}
		s.notifier.Error("La excursión ya no existe")
		return err
	}

	s.enterLoading()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail(err)
		s.notifier.Error("Error al eliminar la excursión")
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
	s.rebuildIndex()
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Excursión " + existing.Name + " eliminada")
	return nil
}

// ToggleFeatured flips the featured flag, call-then-reconcile.
func (s *ExcursionStore) ToggleFeatured(ctx context.Context, id string) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "excursion", ID: id}
		s.notifier.Error("La excursión ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.ToggleFeatured(ctx, id)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al destacar la excursión")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Excursión actualizada")
	return nil
}

// ChangeStatus moves the excursion between activa/inactiva.
func (s *ExcursionStore) ChangeStatus(ctx context.Context, id, status string) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "excursion", ID: id}
		s.notifier.Error("La excursión ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.ChangeStatus(ctx, id, status)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al cambiar el estado de la excursión")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Estado de la excursión actualizado")
	return nil
}

// IDByName resolves an excursion name through the index built on Load.
// Unmatched names are an explicit error, never a synthetic id.
func (s *ExcursionStore) IDByName(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byName[name]; ok {
		return id, nil
	}
	return "", domain.NotFoundError{Resource: "excursion", ID: name}
}

func (s *ExcursionStore) enterLoading() {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()
}

func (s *ExcursionStore) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastErr = err
	s.mu.Unlock()
}

// replace swaps the matching entry in place. Caller holds the lock.
func (s *ExcursionStore) replace(e models.Excursion) {
	for i := range s.items {
		if s.items[i].ID == e.ID {
			s.items[i] = e
			return
		}
	}
}

// rebuildIndex refreshes the name→id map. Caller holds the lock.
func (s *ExcursionStore) rebuildIndex() {
	s.byName = make(map[string]string, len(s.items))
	for i := range s.items {
		s.byName[s.items[i].Name] = s.items[i].ID
	}
}
