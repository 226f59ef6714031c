package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FactScanner/internal/app"
	"FactScanner/internal/config"
	"FactScanner/internal/httpapi"
	"FactScanner/internal/logging"
	"FactScanner/internal/metrics"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	application := app.New(cfg, log)
	met := application.Metrics()
	h := httpapi.NewHandler(application.Pipeline(), log.With("component", "httpapi"))

	r := chi.NewRouter()
	r.Use(logging.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		met.Handler().ServeHTTP(w, req)
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", h.Analyze)
		r.Get("/analyze/stream", h.AnalyzeStream)
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", cfg.Server.Port,
		"strategies", cfg.Transcript.Strategies,
		"log_level", cfg.Logging.Level,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
