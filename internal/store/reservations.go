package store

import (
	"context"
	"sync"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/notify"
)

// ReservationAPI is the slice of ReservationService the store needs.
type ReservationAPI interface {
	List(ctx context.Context, f models.ReservationFilter) ([]models.Reservation, error)
	Create(ctx context.Context, r models.Reservation, pricePerAdult float64) (models.Reservation, error)
	Update(ctx context.Context, id string, r models.Reservation) (models.Reservation, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id, status string) (models.Reservation, error)
}

// Resolver resolves denormalized names to ids. Both ClientStore and
// ExcursionStore satisfy it through IDByName.
type Resolver interface {
	IDByName(name string) (string, error)
}

// ReservationStore caches the reservation list. Creation resolves the
// denormalized client and excursion names through the sibling stores'
// indexes; an unmatched name aborts the save.
type ReservationStore struct {
	mu       sync.RWMutex
	svc      ReservationAPI
	notifier notify.Notifier

	clients    Resolver
	excursions *ExcursionStore

	items    []models.Reservation
	selected string
	state    State
	lastErr  error
}

// NewReservationStore wires a store to its service and sibling indexes.
// Resolvers may be nil when reservations arrive with ids already set.
func NewReservationStore(svc ReservationAPI, clients Resolver, excursions *ExcursionStore, n notify.Notifier) *ReservationStore {
	if n == nil {
		n = notify.Nop{}
	}
	return &ReservationStore{svc: svc, clients: clients, excursions: excursions, notifier: n, state: StateIdle}
}

// State returns the current lifecycle state.
func (s *ReservationStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed operation, if any.
func (s *ReservationStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Load fetches the full reservation list, replacing the cache.
func (s *ReservationStore) Load(ctx context.Context) error {
	s.enterLoading()
	items, err := s.svc.List(ctx, models.ReservationFilter{})
	if err != nil {
		s.fail(err)
		s.notifier.Error("No se pudieron cargar las reservas")
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
func (s *ReservationStore) All() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks the reservation up in memory. It never fetches on a miss.
func (s *ReservationStore) Get(id string) *models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			r := s.items[i]
			return &r
		}
	}
	return nil
}

// Select marks a reservation as the currently selected one.
func (s *ReservationStore) Select(id string) error {
	if s.Get(id) == nil {
		return domain.NotFoundError{Resource: "reserva", ID: id}
	}
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	return nil
}

// Current returns the selected reservation, nil when nothing is selected.
func (s *ReservationStore) Current() *models.Reservation {
	s.mu.RLock()
	id := s.selected
	s.mu.RUnlock()
	if id == "" {
		return nil
	}
	return s.Get(id)
}

// Save creates or updates a reservation. On create, missing client or
// excursion ids are resolved from the denormalized names through the
// sibling indexes, and the excursion price feeds the total computation.
func (s *ReservationStore) Save(ctx context.Context, r models.Reservation, isNew bool) (models.Reservation, error) {
	if !isNew {
		if s.Get(r.ID) == nil {
			err := domain.NotFoundError{Resource: "reserva", ID: r.ID}
			s.notifier.Error("La reserva ya no existe")
			return models.Reservation{}, err
		}
	}

	var pricePerAdult float64
	if isNew {
		resolved, price, err := s.resolveReferences(r)
		if err != nil {
			s.notifier.Error("Error al guardar la reserva: " + err.Error())
			return models.Reservation{}, err
		}
		r = resolved
		pricePerAdult = price
	}

	s.enterLoading()
	var (
		saved models.Reservation
		err   error
	)
	if isNew {
		saved, err = s.svc.Create(ctx, r, pricePerAdult)
	} else {
		saved, err = s.svc.Update(ctx, r.ID, r)
	}
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al guardar la reserva")
		return models.Reservation{}, err
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

	s.notifier.Success("Reserva guardada correctamente")
	return saved, nil
}

// Delete removes the reservation. A stale id fails closed.
func (s *ReservationStore) Delete(ctx context.Context, id string) error {
	existing := s.Get(id)
	if existing == nil {
		err := domain.NotFoundError{Resource: "reserva", ID: id}
		s.notifier.Error("La reserva ya no existe")
		return err
	}

	s.enterLoading()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail(err)
		s.notifier.Error("Error al eliminar la reserva")
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

	s.notifier.Success("Reserva de " + existing.ClientName + " eliminada")
	return nil
}

// ChangeStatus moves the reservation to the given state,
// call-then-reconcile.
func (s *ReservationStore) ChangeStatus(ctx context.Context, id, status string) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "reserva", ID: id}
		s.notifier.Error("La reserva ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.ChangeStatus(ctx, id, status)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al cambiar el estado de la reserva")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Reserva " + statusLabel(status))
	return nil
}

// resolveReferences fills missing ids from denormalized names and looks
// up the excursion price for the total computation.
func (s *ReservationStore) resolveReferences(r models.Reservation) (models.Reservation, float64, error) {
	if r.ClientID == "" && r.ClientName != "" && s.clients != nil {
		id, err := s.clients.IDByName(r.ClientName)
		if err != nil {
			return r, 0, err
		}
		r.ClientID = id
	}
	if r.ExcursionID == "" && r.ExcursionName != "" && s.excursions != nil {
		id, err := s.excursions.IDByName(r.ExcursionName)
		if err != nil {
			return r, 0, err
		}
		r.ExcursionID = id
	}

	var price float64
	if s.excursions != nil && r.ExcursionID != "" {
		if exc := s.excursions.Get(r.ExcursionID); exc != nil {
			price = exc.Price
			if r.MeetingPoint == "" {
				r.MeetingPoint = exc.MeetingPoint
			}
		}
	}
	return r, price, nil
}

func statusLabel(status string) string {
	switch status {
	case models.ReservationConfirmed:
		return "confirmada"
	case models.ReservationCompleted:
		return "completada"
	case models.ReservationCancelled:
		return "cancelada"
	default:
		return "actualizada"
	}
}

func (s *ReservationStore) enterLoading() {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()
}

func (s *ReservationStore) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastErr = err
	s.mu.Unlock()
}

// replace swaps the matching entry in place. Caller holds the lock.
func (s *ReservationStore) replace(r models.Reservation) {
	for i := range s.items {
		if s.items[i].ID == r.ID {
			s.items[i] = r
			return
		}
	}
}
