package services

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// HealthService reports process health for the web server.
type HealthService struct {
	version   string
	buildTime string
	outputDir string
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus is the health check response body.
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Checks    map[string]string      `json:"checks,omitempty"`
}

// VersionInfo is the version endpoint response body.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// NewHealthService creates the health service. outputDir is probed during
// readiness checks because exports land there.
func NewHealthService(version, buildTime, outputDir string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthService{
		version:   version,
		buildTime: buildTime,
		outputDir: outputDir,
		startTime: time.Now(),
		logger:    logger.With(slog.String("service", "health")),
	}
}

// HealthCheck handles the full health report including runtime stats.
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Runtime: map[string]interface{}{
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
			"os":         runtime.GOOS,
			"arch":       runtime.GOARCH,
		},
		Checks: map[string]string{},
	}

	if err := s.checkOutputDir(); err != nil {
		status.Status = "degraded"
		status.Checks["output_dir"] = err.Error()
		s.logger.WarnContext(ctx, "output directory check failed",
			slog.String("output_dir", s.outputDir),
			slog.String("error", err.Error()),
		)
	} else {
		status.Checks["output_dir"] = "ok"
	}

	return status
}

// LivenessCheck reports only that the process is running.
func (s *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	}
}

// ReadinessCheck reports whether the server can accept analysis requests.
func (s *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := s.LivenessCheck(ctx)
	status.Status = "ready"

	if err := s.checkOutputDir(); err != nil {
		status.Status = "not_ready"
		status.Checks = map[string]string{"output_dir": err.Error()}
	}

	return status
}

// Version returns build information.
func (s *HealthService) Version() VersionInfo {
	return VersionInfo{
		Version:   s.version,
		BuildTime: s.buildTime,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func (s *HealthService) checkOutputDir() error {
	if s.outputDir == "" {
		return nil
	}
	return os.MkdirAll(s.outputDir, 0o755)
}
