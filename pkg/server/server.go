package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"glamhaven/pkg/config"
	"glamhaven/pkg/handlers"
	"glamhaven/pkg/middleware"
	"glamhaven/pkg/services"
)

// NewRouter wires every route of the site. services.InitService must have run.
func NewRouter(cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chiMid.Recoverer)
	r.Use(chiMid.Compress(5))

	r.Get("/healthz", handlers.HealthHandler)

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.PublicDir)))
	r.Handle("/static/*", middleware.StaticCache(static))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Preload(preloadHeader))
		r.Get("/", handlers.HomeHandler)
	})
	r.Post("/contact", handlers.ContactHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/gallery", handlers.FeedHandler)
		r.With(cors.Handler(cors.Options{
			AllowedOrigins: []string{cfg.SiteURL},
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		})).Post("/vitals", handlers.VitalsHandler)
	})

	if cfg.VitalsEnabled() {
		r.Route(fmt.Sprintf("/%s", cfg.SecretKey), func(r chi.Router) {
			r.Get("/vitals", handlers.DashboardHandler)
			r.Get("/vitals.json", handlers.DashboardJSONHandler)
		})
	}

	return r
}

func preloadHeader() string {
	hints := services.PreconnectHints()
	hints = append(hints, services.PreloadResources(services.GetItems(), 4)...)
	return services.LinkHeader(hints)
}

// Run serves the site until the process receives SIGINT or SIGTERM
func Run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           NewRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
