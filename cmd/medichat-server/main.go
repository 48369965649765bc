package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medichat/medichat/internal/config"
	"github.com/medichat/medichat/internal/domain/appointment"
	"github.com/medichat/medichat/internal/domain/dashboard"
	"github.com/medichat/medichat/internal/domain/medicine"
	"github.com/medichat/medichat/internal/domain/patient"
	"github.com/medichat/medichat/internal/domain/prescription"
	"github.com/medichat/medichat/internal/domain/record"
	"github.com/medichat/medichat/internal/domain/task"
	"github.com/medichat/medichat/internal/platform/assistant"
	"github.com/medichat/medichat/internal/platform/middleware"
	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/platform/nursecall"
	"github.com/medichat/medichat/internal/platform/speech"
	"github.com/medichat/medichat/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medichat-server",
		Short: "Medical practice dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Notification channel shared by every domain service.
	center := notify.NewCenter()

	// Seeded in-memory stores.
	patientSvc := patient.NewService(store.New(patient.Seed()...), center)
	appointmentSvc := appointment.NewService(store.New(appointment.Seed()...), center)
	recordSvc := record.NewService(store.New(record.Seed()...), center)
	taskSvc := task.NewService(store.New(task.Seed()...), center)
	prescriptionSvc := prescription.NewService(store.New(prescription.Seed()...), center)
	medicineSvc := medicine.NewService(store.New(medicine.Seed()...), center)

	// Assistant session and nurse-call channel.
	session := assistant.NewSession(assistant.NewResponder(), cfg.ChatResponseDelay())
	defer session.Close()

	dispatcher := nursecall.NewDispatcher(center, cfg.NurseReset(), logger)
	defer dispatcher.Close()

	// No speech backend exists server-side; dictation degrades to manual
	// entry and the condition is surfaced once through the notifier.
	recognizer := speech.NewUnavailable(center)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API group
	apiV1 := e.Group("/api/v1")

	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(apiV1)
	record.NewHandler(recordSvc).RegisterRoutes(apiV1)
	task.NewHandler(taskSvc).RegisterRoutes(apiV1)
	prescription.NewHandler(prescriptionSvc, recognizer).RegisterRoutes(apiV1)
	medicine.NewHandler(medicineSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(patientSvc, appointmentSvc, recordSvc, taskSvc, prescriptionSvc, medicineSvc).RegisterRoutes(apiV1)
	assistant.NewHandler(session).RegisterRoutes(apiV1)
	nursecall.NewHandler(dispatcher).RegisterRoutes(apiV1)
	notify.NewHandler(center).RegisterRoutes(apiV1)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
