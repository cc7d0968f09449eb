package services

import (
	"context"
	"net/url"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

const clientResource = "cliente"

// ClientService speaks to /clientes.
type ClientService struct {
	API *api.Client
}

// List fetches clients, optionally narrowed by filter.
func (s ClientService) List(ctx context.Context, f models.ClientFilter) ([]models.Client, error) {
	params := url.Values{}
	setIfPresent(params, "estado", f.Status)
	setIfPresent(params, "buscar", f.Search)

	resp := s.API.Get(ctx, withQuery("/clientes", params))
	if err := envelopeError(clientResource, "", resp); err != nil {
		return nil, err
	}
	var out []models.Client
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one client by id.
func (s ClientService) Get(ctx context.Context, id string) (models.Client, error) {
	resp := s.API.Get(ctx, "/clientes/"+url.PathEscape(id))
	var out models.Client
	if err := envelopeError(clientResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Create registers a new client. Status defaults to "nuevo" and the
// registration date to today when omitted.
func (s ClientService) Create(ctx context.Context, c models.Client) (models.Client, error) {
	if c.Status == "" {
		c.Status = models.ClientNew
	}
	if c.RegisteredAt == "" {
		c.RegisteredAt = utils.Today()
	}

	resp := s.API.Post(ctx, "/clientes", c)
	var out models.Client
	if err := envelopeError(clientResource, "", resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Update replaces the client identified by id.
func (s ClientService) Update(ctx context.Context, id string, c models.Client) (models.Client, error) {
	resp := s.API.Put(ctx, "/clientes/"+url.PathEscape(id), c)
	var out models.Client
	if err := envelopeError(clientResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Delete removes the client identified by id.
func (s ClientService) Delete(ctx context.Context, id string) error {
	resp := s.API.Delete(ctx, "/clientes/"+url.PathEscape(id))
	return envelopeError(clientResource, id, resp)
}

// ChangeStatus moves the client to the given state.
func (s ClientService) ChangeStatus(ctx context.Context, id, status string) (models.Client, error) {
	var out models.Client
	if !models.ValidClientStatus(status) {
		return out, domain.ValidationError{Field: "estado", Msg: "estado desconocido: " + status}
	}
	resp := s.API.Put(ctx, "/clientes/"+url.PathEscape(id)+"/estado", map[string]string{"estado": status})
	if err := envelopeError(clientResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// ToggleVIP flips the VIP flag server-side.
func (s ClientService) ToggleVIP(ctx context.Context, id string) (models.Client, error) {
	resp := s.API.Put(ctx, "/clientes/"+url.PathEscape(id)+"/vip", nil)
	var out models.Client
	if err := envelopeError(clientResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}
