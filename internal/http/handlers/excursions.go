package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/catalog"
	"backoffice/internal/domain/models"
)

// GET /api/excursiones
func (h *Handlers) ListExcursions(c *gin.Context) {
	if h.Excursions.State().NeedsLoad() {
		if err := h.Excursions.Load(c.Request.Context()); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	f := catalog.Filter{
		Category: c.Query("categoria"),
		Location: c.Query("ubicacion"),
		Duration: c.Query("duracion"),
		Search:   c.Query("buscar"),
	}
	if v := c.Query("precioMin"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = min
		}
	}
	if v := c.Query("precioMax"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = max
		}
	}
	f.FeaturedOnly = c.Query("destacadas") == "true"
	f.ActiveOnly = c.Query("activas") == "true"

	items := f.Apply(h.Excursions.All())
	c.JSON(http.StatusOK, gin.H{"excursiones": items, "total": len(items)})
}

// GET /api/excursiones/:id
func (h *Handlers) GetExcursion(c *gin.Context) {
	e := h.Excursions.Get(strings.TrimSpace(c.Param("id")))
	if e == nil {
		respondError(c, http.StatusNotFound, "not_found", "excursión no encontrada", nil)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/excursiones
func (h *Handlers) CreateExcursion(c *gin.Context) {
	var e models.Excursion
	if !BindJSONOrError(c, &e) {
		return
	}
	if strings.TrimSpace(e.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "el nombre es obligatorio", nil)
		return
	}

	created, err := h.Excursions.Save(c.Request.Context(), e, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/excursiones/:id
func (h *Handlers) UpdateExcursion(c *gin.Context) {
	var e models.Excursion
	if !BindJSONOrError(c, &e) {
		return
	}
	e.ID = strings.TrimSpace(c.Param("id"))

	updated, err := h.Excursions.Save(c.Request.Context(), e, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/excursiones/:id
func (h *Handlers) DeleteExcursion(c *gin.Context) {
	if err := h.Excursions.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "excursión eliminada"})
}

// PUT /api/excursiones/:id/destacado
func (h *Handlers) ToggleExcursionFeatured(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Excursions.ToggleFeatured(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Excursions.Get(id))
}

// PUT /api/excursiones/:id/estado
func (h *Handlers) ChangeExcursionStatus(c *gin.Context) {
	var body struct {
		Status string `json:"estado"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if err := h.Excursions.ChangeStatus(c.Request.Context(), id, body.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Excursions.Get(id))
}
