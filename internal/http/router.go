package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"
)

// NewRouter wires the public catalog surface and the session-guarded
// admin surface onto one engine.
func NewRouter(env config.Env, hs *h.Handlers, verifier middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/backend-check", hs.BackendCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", hs.Login)
		auth.POST("/registro", hs.Register)
		auth.POST("/logout", hs.Logout)
		auth.POST("/recuperar", hs.RecoverPassword)
		auth.PUT("/password", hs.ChangePassword)
		auth.GET("/usuario", middleware.RequireSession(verifier), hs.CurrentUser)

		// Public catalog reads
		api.GET("/excursiones", hs.ListExcursions)
		api.GET("/excursiones/:id", hs.GetExcursion)
		api.GET("/galeria", hs.ListGallery)
		api.GET("/galeria/:id", hs.GetGalleryImage)

		// Admin surface
		admin := api.Group("", middleware.RequireSession(verifier))

		excursions := admin.Group("/excursiones")
		excursions.POST("", hs.CreateExcursion)
		excursions.PUT("/:id", hs.UpdateExcursion)
		excursions.DELETE("/:id", hs.DeleteExcursion)
		excursions.PUT("/:id/destacado", hs.ToggleExcursionFeatured)
		excursions.PUT("/:id/estado", hs.ChangeExcursionStatus)

		reservations := admin.Group("/reservas")
		reservations.GET("", hs.ListReservations)
		reservations.GET("/calendario", hs.ReservationCalendar)
		reservations.GET("/resumen", hs.ReservationSummary)
		reservations.GET("/hoja/:fecha", hs.GetDaySheet)
		reservations.GET("/:id", hs.GetReservation)
		reservations.POST("", hs.CreateReservation)
		reservations.PUT("/:id", hs.UpdateReservation)
		reservations.DELETE("/:id", hs.DeleteReservation)
		reservations.PUT("/:id/estado", hs.ChangeReservationStatus)
		reservations.GET("/:id/bono", hs.GetReservationVoucherPDF)

		clients := admin.Group("/clientes")
		clients.GET("", hs.ListClients)
		clients.GET("/exportar/csv", hs.ExportClientsCSV)
		clients.GET("/exportar/listado", hs.ExportClientRoster)
		clients.GET("/:id", hs.GetClient)
		clients.POST("", hs.CreateClient)
		clients.PUT("/:id", hs.UpdateClient)
		clients.DELETE("/:id", hs.DeleteClient)
		clients.PUT("/:id/estado", hs.ChangeClientStatus)
		clients.PUT("/:id/vip", hs.ToggleClientVIP)

		gallery := admin.Group("/galeria")
		gallery.POST("", hs.CreateGalleryImage)
		gallery.POST("/subir", hs.UploadGalleryImage)
		gallery.PUT("/:id", hs.UpdateGalleryImage)
		gallery.DELETE("/:id", hs.DeleteGalleryImage)
		gallery.PUT("/:id/destacado", hs.ToggleGalleryFeatured)
		gallery.PUT("/:id/orden", hs.ReorderGalleryImage)
	}

	h.SetRouter(r)
	return r
}
