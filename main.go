package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	apiclient "backoffice/internal/api"
	"backoffice/internal/config"
	router "backoffice/internal/http"
	"backoffice/internal/http/handlers"
	"backoffice/internal/notify"
	"backoffice/internal/services"
	"backoffice/internal/store"
	"backoffice/internal/supabase"
	"backoffice/internal/utils"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	env, err := config.LoadEnv()
	if err != nil {
		zlog.Fatal().Err(err).Msg("configuración inválida")
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	backend, err := supabase.New(supabase.Config{
		ProjectURL: env.SupabaseURL,
		AnonKey:    env.SupabaseAnonKey,
		JWTSecret:  env.SupabaseJWTSecret,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("no se pudo crear el cliente del backend")
	}

	api := apiclient.New(env.APIBaseURL,
		apiclient.WithHeader("apikey", env.SupabaseAnonKey),
		apiclient.WithHeader("Authorization", "Bearer "+env.SupabaseAnonKey),
		apiclient.WithLogger(zlog.Logger),
	)

	notifier := notify.Log{Logger: zlog.Logger}

	excursionSvc := &services.ExcursionService{API: api}
	reservationSvc := &services.ReservationService{API: api}
	clientSvc := &services.ClientService{API: api}
	gallerySvc := &services.GalleryService{API: api}

	excursions := store.NewExcursionStore(excursionSvc, notifier)
	clients := store.NewClientStore(clientSvc, notifier)
	reservations := store.NewReservationStore(reservationSvc, clients, excursions, notifier)
	gallery := store.NewGalleryStore(gallerySvc, notifier)

	// Warm the stores; failures are not fatal, each surface lazily
	// retries on first request.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 15*time.Second)
	for name, load := range map[string]func(context.Context) error{
		"excursiones": excursions.Load,
		"clientes":    clients.Load,
		"reservas":    reservations.Load,
		"galeria":     gallery.Load,
	} {
		if err := load(warmCtx); err != nil {
			zlog.Warn().Err(err).Str("store", name).Msg("precarga fallida")
		}
	}
	cancelWarm()

	hs := &handlers.Handlers{
		Excursions:   excursions,
		Reservations: reservations,
		Clients:      clients,
		Gallery:      gallery,
		Backend:      backend,
	}

	r := router.NewRouter(env, hs, backend)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info().Str("addr", env.AppAddr).Msg("servidor escuchando")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("el servidor no pudo arrancar")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("apagando el servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal().Err(err).Msg("apagado fallido")
	}

	zlog.Info().Msg("servidor detenido")
}
