// Package validation provides filesystem-level checks shared by the CLI
// entry points. Request-level validation lives in the middleware package.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"salescli/internal/files"
)

// FileValidator checks export files and output locations before analysis.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateExportFile checks that path points to a readable export in a
// format the ingestion layer supports.
func (v *FileValidator) ValidateExportFile(path string) error {
	if err := v.validateReadable(path); err != nil {
		return err
	}

	if !files.IsExportFile(filepath.Base(path)) {
		ext := strings.ToLower(filepath.Ext(path))
		v.logger.Error("Unsupported export format",
			slog.String("file", path),
			slog.String("extension", ext))
		return fmt.Errorf("file %s is not a supported export format (extension: %s)", path, ext)
	}

	return nil
}

// ValidateOutputDirectory ensures the output directory exists and is
// writable, creating it when missing.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	return nil
}

func (v *FileValidator) validateReadable(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}
