// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/emulatorgames/rom-catalog/internal/config"
	"github.com/emulatorgames/rom-catalog/internal/fixtures"
	"github.com/emulatorgames/rom-catalog/internal/i18n"
	"github.com/emulatorgames/rom-catalog/internal/metrics"
	"github.com/emulatorgames/rom-catalog/internal/middleware"
	"github.com/emulatorgames/rom-catalog/internal/router"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := newLogger(cfg.Log)

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		log.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var m *metrics.Metrics
	loaderOpts := []fixtures.Option{fixtures.WithLogger(log)}
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Environment)
		loaderOpts = append(loaderOpts, fixtures.WithObserver(m.ObserveLoad))
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	}

	dataDir := fixtures.ResolveDataDir(cfg.Catalog.DataDirCandidates(), log)
	loader := fixtures.NewLoader(dataDir, loaderOpts...)

	// Initialize router
	r := router.Initialize(cfg, router.Dependencies{
		Source:      loader,
		Metrics:     m,
		RateLimiter: limiter,
		Logger:      log,
		Version:     version,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.WithFields(logrus.Fields{
			"addr":     srv.Addr,
			"data_dir": dataDir,
			"version":  version,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Warm the catalog so the first request does not pay for the load
	go func() {
		if _, err := loader.Load(); err != nil {
			log.WithError(err).Warn("Catalog warm-up failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}
	if limiter != nil {
		limiter.Stop()
	}

	log.Info("Server exited")
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
