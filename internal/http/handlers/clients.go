package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/models"
	"backoffice/internal/export"
)

// GET /api/clientes
func (h *Handlers) ListClients(c *gin.Context) {
	if h.Clients.State().NeedsLoad() {
		if err := h.Clients.Load(c.Request.Context()); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	items := h.Clients.All()

	status := strings.TrimSpace(c.Query("estado"))
	search := strings.ToLower(strings.TrimSpace(c.Query("buscar")))
	if status != "" || search != "" {
		filtered := make([]models.Client, 0, len(items))
		for _, cl := range items {
			if status != "" && cl.Status != status {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(cl.Name), search) &&
				!strings.Contains(strings.ToLower(cl.Email), search) &&
				!strings.Contains(cl.Phone, search) {
				continue
			}
			filtered = append(filtered, cl)
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"clientes": items, "total": len(items)})
}

// GET /api/clientes/:id
func (h *Handlers) GetClient(c *gin.Context) {
	cl := h.Clients.Get(strings.TrimSpace(c.Param("id")))
	if cl == nil {
		respondError(c, http.StatusNotFound, "not_found", "cliente no encontrado", nil)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// POST /api/clientes
func (h *Handlers) CreateClient(c *gin.Context) {
	var cl models.Client
	if !BindJSONOrError(c, &cl) {
		return
	}
	if strings.TrimSpace(cl.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "el nombre es obligatorio", nil)
		return
	}

	created, err := h.Clients.Save(c.Request.Context(), cl, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/clientes/:id
func (h *Handlers) UpdateClient(c *gin.Context) {
	var cl models.Client
	if !BindJSONOrError(c, &cl) {
		return
	}
	cl.ID = strings.TrimSpace(c.Param("id"))

	updated, err := h.Clients.Save(c.Request.Context(), cl, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/clientes/:id
func (h *Handlers) DeleteClient(c *gin.Context) {
	if err := h.Clients.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente eliminado"})
}

// PUT /api/clientes/:id/estado
func (h *Handlers) ChangeClientStatus(c *gin.Context) {
	var body struct {
		Status string `json:"estado"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if err := h.Clients.ChangeStatus(c.Request.Context(), id, body.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Clients.Get(id))
}

// PUT /api/clientes/:id/vip
func (h *Handlers) ToggleClientVIP(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Clients.ToggleVIP(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Clients.Get(id))
}

// GET /api/clientes/exportar/csv downloads the client list as CSV.
func (h *Handlers) ExportClientsCSV(c *gin.Context) {
	data, filename, err := export.ClientsCSV(h.Clients.All())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", "no se pudo generar el CSV", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// GET /api/clientes/exportar/listado returns the printable client roster.
func (h *Handlers) ExportClientRoster(c *gin.Context) {
	html, err := export.ClientRosterHTML(h.Clients.All())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", "no se pudo generar el listado", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
