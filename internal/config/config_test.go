package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int64(10<<20), cfg.Analysis.MaxUploadSize)
	assert.Equal(t, "reports", cfg.Analysis.OutputDir)
	assert.True(t, cfg.Security.RateLimit.Enabled)
	require.NoError(t, cfg.validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "negative read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = -time.Second },
			wantErr: "read timeout must be positive",
		},
		{
			name:    "no allowed origins",
			mutate:  func(c *Config) { c.Security.AllowedOrigins = nil },
			wantErr: "allowed origin",
		},
		{
			name:    "zero upload size",
			mutate:  func(c *Config) { c.Analysis.MaxUploadSize = 0 },
			wantErr: "max upload size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "text"
	cfg.Logging.Output = "syslog"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
logging:
  level: debug
analysis:
  output_dir: out
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "out", cfg.Analysis.OutputDir)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0644))

	_, err := loadFromFile(path)
	assert.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Server.Port = 9090
	fileCfg.Analysis.OutputDir = "from-file"
	fileCfg.Logging.Level = "debug"

	envCfg := Config{}
	envCfg.Server.Port = 7070
	envCfg.Analysis.Timeout = time.Minute

	merged := mergeConfigs(fileCfg, envCfg)

	// Env wins where set; file fills the gaps.
	assert.Equal(t, 7070, merged.Server.Port)
	assert.Equal(t, time.Minute, merged.Analysis.Timeout)
	assert.Equal(t, "from-file", merged.Analysis.OutputDir)
	assert.Equal(t, "debug", merged.Logging.Level)
}
