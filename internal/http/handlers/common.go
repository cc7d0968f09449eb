package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/store"
	"backoffice/internal/supabase"
)

// Handlers bundles the stores and the hosted-backend adapter the routes
// work against. Everything arrives by injection; no ambient globals.
type Handlers struct {
	Excursions   *store.ExcursionStore
	Reservations *store.ReservationStore
	Clients      *store.ClientStore
	Gallery      *store.GalleryStore
	Backend      *supabase.Client
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "cuerpo de la petición vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "payload inválido", err.Error())
		return false
	}
	return true
}
