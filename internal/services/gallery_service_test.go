package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/api"
	"backoffice/internal/domain/models"
)

func TestGalleryCreatePreservesActiveFlag(t *testing.T) {
	var sent models.GalleryImage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		sent.ID = "IMG-100"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sent)
	}))
	defer server.Close()

	svc := GalleryService{API: api.New(server.URL)}

	// A hidden image must stay hidden; creation does not force activa.
	in := models.GalleryImage{URL: "https://cdn.test/teide.jpg", Active: false}
	out, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if sent.Active {
		t.Error("activa was forced to true on create")
	}
	if out.Active {
		t.Error("returned image is active, want inactive")
	}

	in.Active = true
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !sent.Active {
		t.Error("activa=true was not preserved on create")
	}
}

func TestGalleryReorderSendsOrder(t *testing.T) {
	var path string
	var body map[string]int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(models.GalleryImage{ID: "IMG-001", Order: body["orden"]})
	}))
	defer server.Close()

	svc := GalleryService{API: api.New(server.URL)}
	out, err := svc.Reorder(context.Background(), "IMG-001", 4)
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if path != "/galeria/IMG-001/orden" {
		t.Errorf("path = %q", path)
	}
	if out.Order != 4 {
		t.Errorf("orden = %d, want 4", out.Order)
	}
}
