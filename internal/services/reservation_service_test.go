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

func TestReservationCreateComputesTotal(t *testing.T) {
	var sent models.Reservation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		sent.ID = "RES-100"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sent)
	}))
	defer server.Close()

	svc := ReservationService{API: api.New(server.URL)}
	in := models.Reservation{ExcursionID: "EXC-1", Adults: 2, Children: 1}
	out, err := svc.Create(context.Background(), in, 40)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if sent.Status != models.ReservationPending {
		t.Errorf("default estado = %q, want pendiente", sent.Status)
	}
	// 2 adults at 40 plus 1 child at half rate.
	if sent.TotalPrice != 100 {
		t.Errorf("precioTotal = %v, want 100", sent.TotalPrice)
	}
	if out.ID != "RES-100" {
		t.Errorf("returned id = %q", out.ID)
	}
}

func TestReservationChangeStatusRejectsUnknownState(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := ReservationService{API: api.New(server.URL)}
	_, err := svc.ChangeStatus(context.Background(), "RES-001", "archivada")
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if called {
		t.Error("backend was called for an invalid estado")
	}
}

func TestReservationListDateRangeQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Reservation{})
	}))
	defer server.Close()

	svc := ReservationService{API: api.New(server.URL)}
	f := models.ReservationFilter{Status: models.ReservationConfirmed, DateFrom: "2026-09-01", DateTo: "2026-09-30"}
	if _, err := svc.List(context.Background(), f); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotQuery != "estado=confirmada&fechaDesde=2026-09-01&fechaHasta=2026-09-30" {
		t.Errorf("query = %q", gotQuery)
	}
}
