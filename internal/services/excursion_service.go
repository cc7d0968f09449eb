package services

import (
	"context"
	"net/url"

	"backoffice/internal/api"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

const excursionResource = "excursion"

// ExcursionService speaks to /excursiones.
type ExcursionService struct {
	API *api.Client
}

// List fetches excursions, optionally narrowed by filter.
func (s ExcursionService) List(ctx context.Context, f models.ExcursionFilter) ([]models.Excursion, error) {
	params := url.Values{}
	setIfPresent(params, "categoria", f.Category)
	setIfPresent(params, "ubicacion", f.Location)
	setIfPresent(params, "estado", f.Status)

	resp := s.API.Get(ctx, withQuery("/excursiones", params))
	if err := envelopeError(excursionResource, "", resp); err != nil {
		return nil, err
	}
	var out []models.Excursion
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one excursion by id.
func (s ExcursionService) Get(ctx context.Context, id string) (models.Excursion, error) {
	resp := s.API.Get(ctx, "/excursiones/"+url.PathEscape(id))
	var out models.Excursion
	if err := envelopeError(excursionResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Create sends a new excursion, filling backend defaults for omitted
// fields the same way the dashboard form does.
func (s ExcursionService) Create(ctx context.Context, e models.Excursion) (models.Excursion, error) {
	if e.Status == "" {
		e.Status = models.ExcursionActive
	}
	if e.MaxPeople == 0 {
		e.MaxPeople = 10
	}

	resp := s.API.Post(ctx, "/excursiones", shapeExcursion(e))
	var out models.Excursion
	if err := envelopeError(excursionResource, "", resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Update replaces the excursion identified by id.
func (s ExcursionService) Update(ctx context.Context, id string, e models.Excursion) (models.Excursion, error) {
	resp := s.API.Put(ctx, "/excursiones/"+url.PathEscape(id), shapeExcursion(e))
	var out models.Excursion
	if err := envelopeError(excursionResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Delete removes the excursion identified by id.
func (s ExcursionService) Delete(ctx context.Context, id string) error {
	resp := s.API.Delete(ctx, "/excursiones/"+url.PathEscape(id))
	return envelopeError(excursionResource, id, resp)
}

// ToggleFeatured flips the featured flag server-side and returns the
// updated excursion.
func (s ExcursionService) ToggleFeatured(ctx context.Context, id string) (models.Excursion, error) {
	resp := s.API.Put(ctx, "/excursiones/"+url.PathEscape(id)+"/destacado", nil)
	var out models.Excursion
	if err := envelopeError(excursionResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// ChangeStatus sets estado to the given value.
func (s ExcursionService) ChangeStatus(ctx context.Context, id, status string) (models.Excursion, error) {
	resp := s.API.Put(ctx, "/excursiones/"+url.PathEscape(id)+"/estado", map[string]string{"estado": status})
	var out models.Excursion
	if err := envelopeError(excursionResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// shapeExcursion normalizes the form-shaped payload before sending:
// include/exclude/schedule lists arrive as newline-delimited text from
// the dashboard and must go out as arrays.
func shapeExcursion(e models.Excursion) models.Excursion {
	e.Includes = utils.CoalesceLines(e.Includes)
	e.Excludes = utils.CoalesceLines(e.Excludes)
	e.Schedules = utils.CoalesceLines(e.Schedules)
	return e
}
