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

	"github.com/karte/karte/internal/config"
	"github.com/karte/karte/internal/domain/appointment"
	"github.com/karte/karte/internal/domain/nextrecord"
	"github.com/karte/karte/internal/domain/patient"
	"github.com/karte/karte/internal/domain/record"
	"github.com/karte/karte/internal/domain/summary"
	"github.com/karte/karte/internal/platform/middleware"
	"github.com/karte/karte/internal/platform/upstream"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "karte-server",
		Short: "Clinical records API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set; summary generation will be unavailable")
	}

	// Upstream backend client, shared by all domain sources.
	backend := upstream.New(cfg.BackendURL, cfg.BackendTimeout(), logger)
	logger.Info().Str("backend", cfg.BackendURL).Msg("upstream backend configured")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Record parsing pipeline
	recordSvc := record.NewService(record.NewHTTPSource(backend), logger)
	record.NewHandler(recordSvc).RegisterRoutes(apiV1)

	// Summary generation
	llm := summary.NewOpenAIClient(summary.OpenAIConfig{
		BaseURL: cfg.OpenAIBaseURL,
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.RequestTimeout(),
	}, logger)
	summarySvc := summary.NewService(recordSvc, llm, logger)
	summary.NewHandler(summarySvc).RegisterRoutes(apiV1)

	// Patient search
	patientSvc := patient.NewService(backend, logger)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)

	// Appointment day view
	apptSvc := appointment.NewService(appointment.NewHTTPSource(backend), logger)
	appointment.NewHandler(apptSvc).RegisterRoutes(apiV1)

	// Next-visit chart helper
	nextSvc := nextrecord.NewService(nextrecord.NewHTTPSource(backend), logger)
	nextrecord.NewHandler(nextSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
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
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
