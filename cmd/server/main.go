package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/resumescore/internal/api"
	"github.com/dgallion1/resumescore/internal/compare"
	"github.com/dgallion1/resumescore/internal/config"
	"github.com/dgallion1/resumescore/internal/stats"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	comparer, err := compare.New(compare.Options{
		TopN:        cfg.TopN,
		Language:    cfg.StopwordLanguage,
		PDFFallback: cfg.PDFFallbackPdftotext,
	})
	if err != nil {
		log.Error("failed to build comparer", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(comparer, stats.NewWindow(cfg.StatsWindow), log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting resumescore",
		"port", cfg.Port,
		"top_n", cfg.TopN,
		"stopword_language", cfg.StopwordLanguage,
		"auth", cfg.CompareAPIKey != "",
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
