package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ReadCSV tokenizes delimited text into column names and records. The first
// row is the header; its trimmed cell values become the column names, in
// declaration order. Rows shorter than the header get empty strings for the
// missing cells, since ragged trailing cells are common in hand-edited
// exports. An input with no rows at all yields zero records, which the
// pipeline reports as empty input.
func ReadCSV(r io.Reader) ([]string, []domain.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, apperrors.NewParsingError("failed to read delimited input", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = strings.TrimSpace(name)
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(domain.Record, len(columns))
		for i, name := range columns {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	return columns, records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
