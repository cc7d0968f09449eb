package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSuccessEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/excursiones" {
			t.Errorf("Path = %s, want /excursiones", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]string{{"id": "EXC-001"}})
	}))
	defer server.Close()

	client := New(server.URL)
	resp := client.Get(context.Background(), "/excursiones")
	if !resp.Success {
		t.Fatalf("Success = false, error = %s", resp.Error)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.Status)
	}

	var items []map[string]string
	if err := resp.Decode(&items); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(items) != 1 || items[0]["id"] != "EXC-001" {
		t.Errorf("decoded items = %v", items)
	}
}

func TestTransportFailureReturnsEnvelope(t *testing.T) {
	// A closed server makes every request fail at the transport level.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL)
	resp := client.Get(context.Background(), "/excursiones")
	if resp.Success {
		t.Fatal("Success = true for transport failure")
	}
	if resp.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", resp.Status)
	}
	if resp.Error == "" {
		t.Error("Error is empty, want transport message")
	}
}

func TestBackendErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"excursion no encontrada"}`, "excursion no encontrada"},
		{"error field", `{"error":"sin permisos"}`, "sin permisos"},
		{"plain text", "gateway exploded", "gateway exploded"},
		{"empty body", "", "Not Found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			resp := New(server.URL).Get(context.Background(), "/reservas/RES-404")
			if resp.Success {
				t.Fatal("Success = true for 404")
			}
			if resp.Error != tc.want {
				t.Errorf("Error = %q, want %q", resp.Error, tc.want)
			}
		})
	}
}

func TestPostSendsJSONBodyAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		if key := r.Header.Get("apikey"); key != "anon-key" {
			t.Errorf("apikey header = %s", key)
		}
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["nombre"] != "Tour del Teide" {
			t.Errorf("body nombre = %v", payload["nombre"])
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "EXC-009"})
	}))
	defer server.Close()

	client := New(server.URL, WithHeader("apikey", "anon-key"))
	resp := client.Post(context.Background(), "/excursiones", map[string]string{"nombre": "Tour del Teide"})
	if !resp.Success || resp.Status != http.StatusCreated {
		t.Fatalf("envelope = %+v", resp)
	}
}

func TestDecodeFailedEnvelope(t *testing.T) {
	resp := Response{Status: 500, Success: false, Error: "boom"}
	var out map[string]any
	if err := resp.Decode(&out); err == nil {
		t.Fatal("Decode of failed envelope returned nil error")
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := New(server.URL).Get(ctx, "/clientes")
	if resp.Success {
		t.Fatal("Success = true for cancelled context")
	}
}
