package handlers

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/catalog"
	"backoffice/internal/domain/models"
	"backoffice/internal/supabase"
	"backoffice/internal/utils"
)

// 5 MB upload cap, matching the bucket policy.
const maxUploadBytes = 5 << 20

// GET /api/galeria
func (h *Handlers) ListGallery(c *gin.Context) {
	if h.Gallery.State().NeedsLoad() {
		if err := h.Gallery.Load(c.Request.Context()); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	items := catalog.SortGallery(h.Gallery.All())
	if c.Query("activas") == "true" {
		items = catalog.ActiveGallery(items)
	}
	if cat := strings.TrimSpace(c.Query("categoria")); cat != "" {
		filtered := make([]models.GalleryImage, 0, len(items))
		for _, img := range items {
			if strings.EqualFold(img.Category, cat) {
				filtered = append(filtered, img)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"imagenes": items, "total": len(items)})
}

// GET /api/galeria/:id
func (h *Handlers) GetGalleryImage(c *gin.Context) {
	img := h.Gallery.Get(strings.TrimSpace(c.Param("id")))
	if img == nil {
		respondError(c, http.StatusNotFound, "not_found", "imagen no encontrada", nil)
		return
	}
	c.JSON(http.StatusOK, img)
}

// POST /api/galeria
func (h *Handlers) CreateGalleryImage(c *gin.Context) {
	var img models.GalleryImage
	if !BindJSONOrError(c, &img) {
		return
	}
	if strings.TrimSpace(img.URL) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "la imagen necesita una URL", nil)
		return
	}

	created, err := h.Gallery.Save(c.Request.Context(), img, true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/galeria/:id
func (h *Handlers) UpdateGalleryImage(c *gin.Context) {
	var img models.GalleryImage
	if !BindJSONOrError(c, &img) {
		return
	}
	img.ID = strings.TrimSpace(c.Param("id"))

	updated, err := h.Gallery.Save(c.Request.Context(), img, false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/galeria/:id
func (h *Handlers) DeleteGalleryImage(c *gin.Context) {
	if err := h.Gallery.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "imagen eliminada"})
}

// PUT /api/galeria/:id/destacado
func (h *Handlers) ToggleGalleryFeatured(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.Gallery.ToggleFeatured(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Gallery.Get(id))
}

// PUT /api/galeria/:id/orden
func (h *Handlers) ReorderGalleryImage(c *gin.Context) {
	var body struct {
		Order int `json:"orden"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if err := h.Gallery.Reorder(c.Request.Context(), id, body.Order); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Gallery.Get(id))
}

// POST /api/galeria/subir receives a multipart image and stores it in
// the gallery bucket, returning the public URL.
func (h *Handlers) UploadGalleryImage(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing_file", "falta el campo archivo", err.Error())
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "file_too_large", "la imagen supera los 5 MB", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "unreadable_file", "no se pudo leer el archivo", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "read_failed", "no se pudo leer el archivo", err.Error())
		return
	}
	if len(data) > maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "file_too_large", "la imagen supera los 5 MB", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "invalid_type", "solo se admiten imágenes", nil)
		return
	}

	name := utils.Today() + "_" + path.Base(fileHeader.Filename)
	publicURL, err := h.Backend.Upload(c.Request.Context(), supabase.BucketGallery, name, contentType, data)
	if err != nil {
		respondError(c, http.StatusBadGateway, "upload_failed", "no se pudo subir la imagen", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": publicURL, "nombre": name})
}
