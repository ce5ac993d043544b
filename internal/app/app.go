package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/internal/infrastructure"
	customMiddleware "salescli/internal/middleware"
	"salescli/internal/services"
	handlers "salescli/internal/transport/http"
)

const (
	Version = "1.0.0"
	AppName = "SalesPulse"
)

// BuildTime is set at compile time via -ldflags.
var BuildTime = ""

// Application is the main application container.
type Application struct {
	Config          *config.Config
	Router          *chi.Mux
	Server          *http.Server
	AnalysisService *services.AnalysisService
	HealthService   *services.HealthService
	Logger          *slog.Logger
	OTelProviders   *infrastructure.OTelProviders

	otelMiddleware *customMiddleware.OTelMiddleware
}

// NewApplication creates a new application instance with all dependencies
// wired together.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// NewApplicationWithConfig builds the application around a prepared config
// and logger. Used by tests to avoid touching the process environment.
func NewApplicationWithConfig(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices initializes all application services.
func (a *Application) initializeServices() error {
	otelMiddleware, err := customMiddleware.NewOTelMiddleware(a.OTelProviders)
	if err != nil {
		return fmt.Errorf("failed to create OpenTelemetry middleware: %w", err)
	}
	a.otelMiddleware = otelMiddleware

	a.AnalysisService = services.NewAnalysisService(a.Logger, otelMiddleware.BusinessMetrics())
	a.HealthService = services.NewHealthService(Version, BuildTime, a.Config.Analysis.OutputDir, a.Logger)

	return nil
}

// setupRouter configures the HTTP router with all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	// Middleware ordering: RequestID, RealIP, OTel, Logger, Recoverer,
	// then the security and traffic controls.
	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(a.otelMiddleware.Handler)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.Logger))
	r.Use(customMiddleware.SecurityHeaders)

	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins:   a.Config.Security.AllowedOrigins,
			AllowCredentials: true,
			Logger:           a.Logger,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	errorHandler := errors.NewErrorHandler(a.Logger, a.Config.Logging.Development)

	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	validationMiddleware := customMiddleware.NewValidationMiddleware(a.Logger, errorHandler, a.Config.Analysis.MaxUploadSize)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(customMiddleware.Timeout(a.Config.Analysis.Timeout, a.Logger))
		r.Use(validationMiddleware.ValidateRequest)

		healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)
		r.Mount("/health", healthHandler.Routes())
		r.Get("/version", healthHandler.Version)

		analysisHandler := handlers.NewAnalysisHandler(
			a.AnalysisService,
			a.Logger,
			errorHandler,
			a.Config.Analysis.MaxUploadSize,
		)
		r.With(customMiddleware.ContentTypeValidator(
			"multipart/form-data",
			"text/csv",
			"text/plain",
			"application/json",
			"application/octet-stream",
		)).Mount("/analyses", analysisHandler.Routes())
	})

	// Prometheus endpoint stays outside the API middleware group.
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
}

// createServer creates the HTTP server.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start starts the HTTP server. Server errors cancel the supplied context.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting server",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.Int("port", a.Config.Server.Port),
		slog.String("level", a.Config.Logging.Level))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	return nil
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run runs the application until interrupted.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
