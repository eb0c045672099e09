package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	handlers "github.com/sm-tools/social-pulse/pkg/handlers/metrics"
	socialpulsemiddleware "github.com/sm-tools/social-pulse/pkg/server/middleware"
	"github.com/sm-tools/social-pulse/pkg/services/config"
	"github.com/sm-tools/social-pulse/pkg/services/source"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Profiles config.Registry
	Sources  source.Registry
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the metrics handler into a chi router with request
// logging and panic recovery.
func ConfigureRouter(cfg Config) *chi.Mux {
	handler := handlers.NewHandler(cfg.Dependencies.Profiles, cfg.Dependencies.Sources)

	router := chi.NewRouter()

	router.Use(socialpulsemiddleware.Logger(&cfg.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/profiles", handler.ListProfiles)
		r.Get("/profiles/{profile}/platforms", handler.GetPlatforms)
		r.Get("/profiles/{profile}/summary", handler.GetSummary)
	})
	router.Get("/profiles/{profile}/dashboard", handler.GetDashboard)

	return router
}

func NewWebAPI(cfg Config) *WebAPI {
	router := ConfigureRouter(cfg)
	logger := cfg.Dependencies.Logger

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
