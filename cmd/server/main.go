// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-web/internal/config"
	"github.com/javajoker/catalog-web/internal/i18n"
	"github.com/javajoker/catalog-web/internal/router"
	"github.com/javajoker/catalog-web/internal/services"
	"github.com/javajoker/catalog-web/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		for _, fieldErr := range utils.GetValidationErrors(err) {
			logrus.WithField("field", fieldErr.Field).Error(fieldErr.Message)
		}
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if err := cfg.Log.Apply(); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	source, err := newRowSource(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize row source")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r, err := router.Initialize(cfg, source)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize router")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":       srv.Addr,
			"source":     cfg.Catalog.Source,
			"range":      cfg.Catalog.Range(),
			"qr_enabled": cfg.Catalog.QREnabled,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

func newRowSource(ctx context.Context, cfg *config.Config) (services.RowSource, error) {
	switch cfg.Catalog.Source {
	case config.SourceXLSX:
		return services.NewXLSXSource(cfg.Catalog.XLSXPath, cfg.Catalog.XLSXSheet, cfg.Catalog.Range())
	default:
		credentials, err := cfg.Sheets.Credentials()
		if err != nil {
			return nil, err
		}
		return services.NewSheetsSource(ctx, cfg.Sheets.DocumentURL, cfg.Catalog.Range(), credentials)
	}
}
