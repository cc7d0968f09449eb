package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"backoffice/internal/supabase"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backoffice en marcha"})
}

// BackendCheck verifies the hosted backend is reachable by listing the
// shared storage bucket.
func (h *Handlers) BackendCheck(c *gin.Context) {
	if h.Backend == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "backend no configurado"})
		return
	}
	objects, err := h.Backend.List(c.Request.Context(), supabase.BucketGeneral, "")
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend no accesible: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexión con el backend OK", "objetos": len(objects)})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router no inicializado"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
