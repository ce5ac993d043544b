package ingest

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ReadFile tokenizes an export file, choosing the reader by extension.
// Anything that is not a recognized workbook extension is treated as
// delimited text; vendors ship .csv, .txt and .tsv interchangeably.
func ReadFile(path string) ([]string, []domain.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ReadExcel(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, apperrors.NewStorageError("failed to open export file", err)
		}
		defer f.Close()
		return ReadCSV(f)
	}
}
