package services

import (
	"context"
	"net/url"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

const reservationResource = "reserva"

// ReservationService speaks to /reservas.
type ReservationService struct {
	API *api.Client
}

// List fetches reservations, optionally narrowed by status or date range.
func (s ReservationService) List(ctx context.Context, f models.ReservationFilter) ([]models.Reservation, error) {
	params := url.Values{}
	setIfPresent(params, "estado", f.Status)
	setIfPresent(params, "fechaDesde", f.DateFrom)
	setIfPresent(params, "fechaHasta", f.DateTo)

	resp := s.API.Get(ctx, withQuery("/reservas", params))
	if err := envelopeError(reservationResource, "", resp); err != nil {
		return nil, err
	}
	var out []models.Reservation
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one reservation by id.
func (s ReservationService) Get(ctx context.Context, id string) (models.Reservation, error) {
	resp := s.API.Get(ctx, "/reservas/"+url.PathEscape(id))
	var out models.Reservation
	if err := envelopeError(reservationResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Create sends a new reservation. Status defaults to pending and the
// total is recomputed from head counts when the caller left it at zero.
func (s ReservationService) Create(ctx context.Context, r models.Reservation, pricePerAdult float64) (models.Reservation, error) {
	if r.Status == "" {
		r.Status = models.ReservationPending
	}
	if r.TotalPrice == 0 && pricePerAdult > 0 {
		r.TotalPrice = utils.ComputeTotal(pricePerAdult, r.Adults, r.Children)
	}

	resp := s.API.Post(ctx, "/reservas", r)
	var out models.Reservation
	if err := envelopeError(reservationResource, "", resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Update replaces the reservation identified by id.
func (s ReservationService) Update(ctx context.Context, id string, r models.Reservation) (models.Reservation, error) {
	resp := s.API.Put(ctx, "/reservas/"+url.PathEscape(id), r)
	var out models.Reservation
	if err := envelopeError(reservationResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Delete removes the reservation identified by id.
func (s ReservationService) Delete(ctx context.Context, id string) error {
	resp := s.API.Delete(ctx, "/reservas/"+url.PathEscape(id))
	return envelopeError(reservationResource, id, resp)
}

// ChangeStatus moves the reservation to the given state. The state value
// is checked locally; the backend enumerates the same set.
func (s ReservationService) ChangeStatus(ctx context.Context, id, status string) (models.Reservation, error) {
	var out models.Reservation
	if !models.ValidReservationStatus(status) {
		return out, domain.ValidationError{Field: "estado", Msg: "estado desconocido: " + status}
	}
	resp := s.API.Put(ctx, "/reservas/"+url.PathEscape(id)+"/estado", map[string]string{"estado": status})
	if err := envelopeError(reservationResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}
