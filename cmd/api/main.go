package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Lightzzz011/project-showcase-api/config"
	"github.com/Lightzzz011/project-showcase-api/internal/bootstrap"
	"github.com/Lightzzz011/project-showcase-api/internal/stats"
)

func main() {
	cfg, warns, err := config.Load()
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("config")
	}

	log := bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	for _, w := range warns {
		log.Warn().Msg(w)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.OpenCatalog(cfg.Catalog.File, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open catalog")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		Development:    !cfg.IsProduction(),
		Catalog:        store,
		Stats:          stats.NewService(store, nil),
		Log:            log,
		StaticDir:      cfg.Server.StaticDir,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		RatePerMinute:  cfg.RateLimit.PerMinute,
		RateBurst:      cfg.RateLimit.Burst,
		Metrics:        cfg.App.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("ProjectShowcase API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
