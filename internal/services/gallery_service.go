package services

import (
	"context"
	"net/url"

	"backoffice/internal/api"
	"backoffice/internal/domain/models"
)

const galleryResource = "imagen"

// GalleryService speaks to /galeria.
type GalleryService struct {
	API *api.Client
}

// List fetches gallery images, optionally narrowed by filter.
func (s GalleryService) List(ctx context.Context, f models.GalleryFilter) ([]models.GalleryImage, error) {
	params := url.Values{}
	setIfPresent(params, "categoria", f.Category)
	if f.Featured {
		params.Set("destacada", "true")
	}

	resp := s.API.Get(ctx, withQuery("/galeria", params))
	if err := envelopeError(galleryResource, "", resp); err != nil {
		return nil, err
	}
	var out []models.GalleryImage
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one image by id.
func (s GalleryService) Get(ctx context.Context, id string) (models.GalleryImage, error) {
	resp := s.API.Get(ctx, "/galeria/"+url.PathEscape(id))
	var out models.GalleryImage
	if err := envelopeError(galleryResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Create registers image metadata. The binary itself goes through the
// storage bucket; only the public URL travels here. The activa flag is
// sent as given, so images can be registered hidden and activated later.
func (s GalleryService) Create(ctx context.Context, img models.GalleryImage) (models.GalleryImage, error) {
	resp := s.API.Post(ctx, "/galeria", img)
	var out models.GalleryImage
	if err := envelopeError(galleryResource, "", resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Update replaces the image metadata identified by id.
func (s GalleryService) Update(ctx context.Context, id string, img models.GalleryImage) (models.GalleryImage, error) {
	resp := s.API.Put(ctx, "/galeria/"+url.PathEscape(id), img)
	var out models.GalleryImage
	if err := envelopeError(galleryResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Delete removes the image identified by id.
func (s GalleryService) Delete(ctx context.Context, id string) error {
	resp := s.API.Delete(ctx, "/galeria/"+url.PathEscape(id))
	return envelopeError(galleryResource, id, resp)
}

// ToggleFeatured flips the featured flag server-side.
func (s GalleryService) ToggleFeatured(ctx context.Context, id string) (models.GalleryImage, error) {
	resp := s.API.Put(ctx, "/galeria/"+url.PathEscape(id)+"/destacado", nil)
	var out models.GalleryImage
	if err := envelopeError(galleryResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}

// Reorder assigns a new display position to the image.
func (s GalleryService) Reorder(ctx context.Context, id string, order int) (models.GalleryImage, error) {
	resp := s.API.Put(ctx, "/galeria/"+url.PathEscape(id)+"/orden", map[string]int{"orden": order})
	var out models.GalleryImage
	if err := envelopeError(galleryResource, id, resp); err != nil {
		return out, err
	}
	err := resp.Decode(&out)
	return out, err
}
