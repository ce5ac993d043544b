package ingest

import (
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ReadExcel tokenizes the first usable sheet of an Excel workbook. POS
// vendors put the data on differently named sheets and sometimes stack
// title rows above the header, so the reader probes every sheet in order
// and takes the first one with a recognizable header row.
func ReadExcel(path string) ([]string, []domain.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, apperrors.NewParsingError("failed to open workbook", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		headerIdx := headerRowIndex(rows)
		if headerIdx < 0 {
			continue
		}
		return tokenizeRows(rows, headerIdx)
	}

	return nil, nil, apperrors.NewParsingError("no sheet in the workbook contains tabular data", nil)
}

// headerRowIndex finds the first row with at least two non-empty cells.
// Title and metadata rows above the real header rarely have more than one.
func headerRowIndex(rows [][]string) int {
	for i, row := range rows {
		filled := 0
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}
		if filled >= 2 {
			return i
		}
	}
	return -1
}

func tokenizeRows(rows [][]string, headerIdx int) ([]string, []domain.Record, error) {
	columns := make([]string, len(rows[headerIdx]))
	for i, name := range rows[headerIdx] {
		columns[i] = strings.TrimSpace(name)
	}

	records := make([]domain.Record, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
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
