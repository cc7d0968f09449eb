package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/catalog"
	"backoffice/internal/domain/models"
	"backoffice/internal/export"
)

// GET /api/reservas
func (h *Handlers) ListReservations(c *gin.Context) {
	if h.Reservations.State().NeedsLoad() {
		if err := h.Reservations.Load(c.Request.Context()); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	items := h.Reservations.All()

	status := strings.TrimSpace(c.Query("estado"))
	from := strings.TrimSpace(c.Query("fechaDesde"))
	to := strings.TrimSpace(c.Query("fechaHasta"))
	if status != "" || from != "" || to != "" {
		filtered := make([]models.Reservation, 0, len(items))
		for _, r := range items {
			if status != "" && r.Status != status {
				continue
			}
			if from != "" && r.Date < from {
				continue
			}
			if to != "" && r.Date > to {
				continue
			}
			filtered = append(filtered, r)
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"reservas": items, "total": len(items)})
}

// GET /api/reservas/calendario
func (h *Handlers) ReservationCalendar(c *gin.Context) {
	if h.Reservations.State().NeedsLoad() {
		if err := h.Reservations.Load(c.Request.Context()); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	days := catalog.GroupByDate(h.Reservations.All())
	c.JSON(http.StatusOK, gin.H{"dias": days})
}

// GET /api/reservas/resumen
func (h *Handlers) ReservationSummary(c *gin.Context) {
	if h.Reservations.State().NeedsLoad() {
		if err := h.Reservations.Load(c.Request.Context()); err != nil {
			RespondDomainError(c, err)
			return
		}
	}
	counts := catalog.CountByStatus(h.Reservations.All())
	c.JSON(http.StatusOK, gin.H{"porEstado": counts})
}

// GET /api/reservas/:id
func (h *Handlers) GetReservation(c *gin.Context) {
	r := h.Reservations.Get(strings.TrimSpace(c.Param("id")))
	if r == nil {
		respondError(c, http.StatusNotFound, "not_found", "reserva no encontrada", nil)
		return
	}
	c.JSON(http.StatusOK, r)
}

// POST /api/reservas
func (h *Handlers) CreateReservation(c *gin.Context) {
	var r models.Reservation
	if !BindJSONOrError(c, &r) {
		return
	}
	if strings.TrimSpace(r.ClientName) == "" && strings.TrimSpace(r.ClientID) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "la reserva necesita un cliente", nil)
		return
	}

	created, err := h.Reservations.Save(c.Request.Context(), r, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/reservas/:id
func (h *Handlers) UpdateReservation(c *gin.Context) {
	var r models.Reservation
	if !BindJSONOrError(c, &r) {
		return
	}
	r.ID = strings.TrimSpace(c.Param("id"))

	updated, err := h.Reservations.Save(c.Request.Context(), r, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/reservas/:id
func (h *Handlers) DeleteReservation(c *gin.Context) {
	if err := h.Reservations.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reserva eliminada"})
}

// PUT /api/reservas/:id/estado
func (h *Handlers) ChangeReservationStatus(c *gin.Context) {
	var body struct {
		Status string `json:"estado"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if err := h.Reservations.ChangeStatus(c.Request.Context(), id, body.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Reservations.Get(id))
}

// GET /api/reservas/:id/bono returns the reservation voucher (inline PDF).
func (h *Handlers) GetReservationVoucherPDF(c *gin.Context) {
	r := h.Reservations.Get(strings.TrimSpace(c.Param("id")))
	if r == nil {
		respondError(c, http.StatusNotFound, "not_found", "reserva no encontrada", nil)
		return
	}

	pdfBytes, filename, err := export.ReservationVoucherPDF(*r)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "pdf_failed", "no se pudo generar el bono", err.Error())
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/reservas/hoja/:fecha returns the printable day sheet.
func (h *Handlers) GetDaySheet(c *gin.Context) {
	date := strings.TrimSpace(c.Param("fecha"))
	if date == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "fecha no válida", nil)
		return
	}

	html, err := export.DaySheetHTML(date, h.Reservations.All())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "report_failed", "no se pudo generar la hoja del día", err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
