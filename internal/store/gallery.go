package store

import (
	"context"
	"sync"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/notify"
)

// GalleryAPI is the slice of GalleryService the store needs.
type GalleryAPI interface {
	List(ctx context.Context, f models.GalleryFilter) ([]models.GalleryImage, error)
	Create(ctx context.Context, img models.GalleryImage) (models.GalleryImage, error)
	Update(ctx context.Context, id string, img models.GalleryImage) (models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (models.GalleryImage, error)
	Reorder(ctx context.Context, id string, order int) (models.GalleryImage, error)
}

// GalleryStore caches the gallery image list.
type GalleryStore struct {
	mu       sync.RWMutex
	svc      GalleryAPI
	notifier notify.Notifier

	items   []models.GalleryImage
	state   State
	lastErr error
}

// NewGalleryStore wires a store to its service.
func NewGalleryStore(svc GalleryAPI, n notify.Notifier) *GalleryStore {
	if n == nil {
		n = notify.Nop{}
	}
	return &GalleryStore{svc: svc, notifier: n, state: StateIdle}
}

// State returns the current lifecycle state.
func (s *GalleryStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error of the last failed operation, if any.
func (s *GalleryStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Load fetches the full image list, replacing the cache.
func (s *GalleryStore) Load(ctx context.Context) error {
	s.enterLoading()
	items, err := s.svc.List(ctx, models.GalleryFilter{})
	if err != nil {
		s.fail(err)
		s.notifier.Error("No se pudieron cargar las imágenes")
		return err
	}
	s.mu.Lock()
	s.items = items
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// All returns a copy of the cached list in backend order. Display
// ordering by orden is a derived view (catalog.SortGallery).
func (s *GalleryStore) All() []models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GalleryImage, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks the image up in memory. It never fetches on a miss.
func (s *GalleryStore) Get(id string) *models.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			img := s.items[i]
			return &img
		}
	}
	return nil
}

// Save creates or updates image metadata, call-then-reconcile.
func (s *GalleryStore) Save(ctx context.Context, img models.GalleryImage, isNew bool) (models.GalleryImage, error) {
	if !isNew {
		if s.Get(img.ID) == nil {
			err := domain.NotFoundError{Resource: "imagen", ID: img.ID}
			s.notifier.Error("La imagen ya no existe")
			return models.GalleryImage{}, err
		}
	}

	s.enterLoading()
	var (
		saved models.GalleryImage
		err   error
	)
	if isNew {
		saved, err = s.svc.Create(ctx, img)
	} else {
		saved, err = s.svc.Update(ctx, img.ID, img)
	}
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al guardar la imagen")
		return models.GalleryImage{}, err
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

	s.notifier.Success("Imagen guardada correctamente")
	return saved, nil
}

// Delete removes the image. A stale id fails closed.
func (s *GalleryStore) Delete(ctx context.Context, id string) error {
	existing := s.Get(id)
	if existing == nil {
		err := domain.NotFoundError{Resource: "imagen", ID: id}
		s.notifier.Error("La imagen ya no existe")
		return err
	}

	s.enterLoading()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.fail(err)
		s.notifier.Error("Error al eliminar la imagen")
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
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Imagen " + existing.Title + " eliminada")
	return nil
}

// ToggleFeatured flips the featured flag, call-then-reconcile.
func (s *GalleryStore) ToggleFeatured(ctx context.Context, id string) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "imagen", ID: id}
		s.notifier.Error("La imagen ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.ToggleFeatured(ctx, id)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al destacar la imagen")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Imagen actualizada")
	return nil
}

// Reorder gives the image a new display position, call-then-reconcile.
func (s *GalleryStore) Reorder(ctx context.Context, id string, order int) error {
	if s.Get(id) == nil {
		err := domain.NotFoundError{Resource: "imagen", ID: id}
		s.notifier.Error("La imagen ya no existe")
		return err
	}

	s.enterLoading()
	updated, err := s.svc.Reorder(ctx, id, order)
	if err != nil {
		s.fail(err)
		s.notifier.Error("Error al reordenar la imagen")
		return err
	}

	s.mu.Lock()
	s.replace(updated)
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()

	s.notifier.Success("Orden actualizado")
	return nil
}

func (s *GalleryStore) enterLoading() {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()
}

func (s *GalleryStore) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastErr = err
	s.mu.Unlock()
}

// replace swaps the matching entry in place. Caller holds the lock.
func (s *GalleryStore) replace(img models.GalleryImage) {
	for i := range s.items {
		if s.items[i].ID == img.ID {
			s.items[i] = img
			return
		}
	}
}
