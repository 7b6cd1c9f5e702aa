package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/sicksfc/peladeiro/internal/api"
	"github.com/sicksfc/peladeiro/internal/config"
	server "github.com/sicksfc/peladeiro/internal/http"
	"github.com/sicksfc/peladeiro/internal/metrics"
	"github.com/sicksfc/peladeiro/internal/notifier"
	slacknotifier "github.com/sicksfc/peladeiro/internal/notifier/slack"
	"github.com/sicksfc/peladeiro/internal/session"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	// The server never persists a token; requests it forwards are
	// authenticated per-deployment via the backend's own session handling.
	sess := session.New(cfg.TokenFile)
	if err := sess.Load(); err != nil {
		log.Warn("Failed to load session token", "error", err)
	}

	backend := api.NewClient(cfg.BackendURL, sess)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var announcer notifier.Notifier
	if cfg.Slack.Enabled() {
		announcer = slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		log.Info("Slack announcer enabled", "channel", cfg.Slack.ChannelID)
	} else {
		announcer = notifier.NewMock()
		log.Info("Slack announcer disabled; notifications are dropped")
	}

	s := server.NewServer(
		backend,
		metricsSvc,
		metricsHandler,
		cfg,
		announcer,
		clockwork.NewRealClock(),
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
