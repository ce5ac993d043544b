package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// SecurityConfig contains security-related configuration.
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format      string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" default:"both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT" default:"false"`
}

// AnalysisConfig contains analysis pipeline configuration.
type AnalysisConfig struct {
	MaxUploadSize int64         `yaml:"max_upload_size" envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`
	Timeout       time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
	OutputDir     string        `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"reports"`
}

// Load loads configuration from environment variables and config file.
// Environment variables win over the file; defaults fill the rest.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SALESPULSE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile := findConfigFile(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config into env config; env values win, file
// values fill fields the environment left at zero.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Server.Port == 0 {
		envConfig.Server.Port = fileConfig.Server.Port
	}
	if envConfig.Server.ReadTimeout == 0 {
		envConfig.Server.ReadTimeout = fileConfig.Server.ReadTimeout
	}
	if envConfig.Server.WriteTimeout == 0 {
		envConfig.Server.WriteTimeout = fileConfig.Server.WriteTimeout
	}
	if envConfig.Server.IdleTimeout == 0 {
		envConfig.Server.IdleTimeout = fileConfig.Server.IdleTimeout
	}
	if envConfig.Server.ShutdownTimeout == 0 {
		envConfig.Server.ShutdownTimeout = fileConfig.Server.ShutdownTimeout
	}
	if len(envConfig.Security.AllowedOrigins) == 0 {
		envConfig.Security.AllowedOrigins = fileConfig.Security.AllowedOrigins
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Analysis.MaxUploadSize == 0 {
		envConfig.Analysis.MaxUploadSize = fileConfig.Analysis.MaxUploadSize
	}
	if envConfig.Analysis.Timeout == 0 {
		envConfig.Analysis.Timeout = fileConfig.Analysis.Timeout
	}
	if envConfig.Analysis.OutputDir == "" {
		envConfig.Analysis.OutputDir = fileConfig.Analysis.OutputDir
	}

	return envConfig
}

// validate validates the configuration and normalizes logging settings.
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	if len(c.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin must be specified")
	}

	if c.Analysis.MaxUploadSize <= 0 {
		return fmt.Errorf("analysis max upload size must be positive")
	}

	// Only JSON logging is supported; normalize rather than fail.
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}

	if c.Logging.Output != "both" && c.Logging.Output != "file" && c.Logging.Output != "console" {
		c.Logging.Output = "both"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/app.log"
	}

	return nil
}

// findConfigFile returns the first config file present in the common
// locations, or empty when the environment is the only source.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/app.log",
		},
		Analysis: AnalysisConfig{
			MaxUploadSize: 10 << 20,
			Timeout:       30 * time.Second,
			OutputDir:     "reports",
		},
	}
}
