package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/api"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func newExcursionBackend(t *testing.T, handler http.HandlerFunc) (ExcursionService, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	svc := ExcursionService{API: api.New(server.URL)}
	return svc, server.Close
}

func TestExcursionListSerializesFilterOnlyWhenPresent(t *testing.T) {
	var gotQuery string
	svc, done := newExcursionBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Excursion{})
	})
	defer done()

	if _, err := svc.List(context.Background(), models.ExcursionFilter{}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotQuery != "" {
		t.Errorf("empty filter produced query %q", gotQuery)
	}

	if _, err := svc.List(context.Background(), models.ExcursionFilter{Category: "senderismo", Status: models.ExcursionActive}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotQuery != "categoria=senderismo&estado=activa" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestExcursionCreateFillsDefaults(t *testing.T) {
	var sent models.Excursion
	svc, done := newExcursionBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		sent.ID = "EXC-100"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sent)
	})
	defer done()

	created, err := svc.Create(context.Background(), models.Excursion{Name: "Ruta del faro", Price: 35})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if sent.Status != models.ExcursionActive {
		t.Errorf("default estado = %q, want activa", sent.Status)
	}
	if sent.MaxPeople != 10 {
		t.Errorf("default maxPersonas = %d, want 10", sent.MaxPeople)
	}
	if created.ID != "EXC-100" {
		t.Errorf("returned id = %q", created.ID)
	}
}

func TestExcursionCreateCoalescesNewlineLists(t *testing.T) {
	var sent models.Excursion
	svc, done := newExcursionBackend(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		json.NewEncoder(w).Encode(sent)
	})
	defer done()

	in := models.Excursion{
		Name:     "Volcanes",
		Includes: []string{"Guía\nPicnic\n", "Seguro"},
	}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	want := []string{"Guía", "Picnic", "Seguro"}
	if len(sent.Includes) != len(want) {
		t.Fatalf("incluye = %v, want %v", sent.Includes, want)
	}
	for i := range want {
		if sent.Includes[i] != want[i] {
			t.Errorf("incluye[%d] = %q, want %q", i, sent.Includes[i], want[i])
		}
	}
}

func TestExcursionErrorMapping(t *testing.T) {
	svc, done := newExcursionBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "excursion no encontrada"})
	})
	defer done()

	_, err := svc.Get(context.Background(), "EXC-404")
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestExcursionTransportErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	svc := ExcursionService{API: api.New(server.URL)}

	_, err := svc.List(context.Background(), models.ExcursionFilter{})
	if !domain.IsTransport(err) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestExcursionToggleFeaturedPath(t *testing.T) {
	var gotPath, gotMethod string
	svc, done := newExcursionBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(models.Excursion{ID: "EXC-7", Featured: true})
	})
	defer done()

	out, err := svc.ToggleFeatured(context.Background(), "EXC-7")
	if err != nil {
		t.Fatalf("ToggleFeatured error: %v", err)
	}
	if gotPath != "/excursiones/EXC-7/destacado" || gotMethod != http.MethodPut {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if !out.Featured {
		t.Error("Featured not set on response")
	}
}
