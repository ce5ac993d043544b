package exporter

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ReportExporter writes analysis reports as CSV tables and JSON documents.
type ReportExporter struct {
	csvWriter *CSVWriter
	logger    *slog.Logger
}

// NewReportExporter creates a report exporter.
func NewReportExporter(logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{
		csvWriter: NewCSVWriter(),
		logger:    logger.With(slog.String("component", "report_exporter")),
	}
}

// ExportDailyCSV writes the daily series as a CSV table, one row per
// operating day in ascending date order.
func (e *ReportExporter) ExportDailyCSV(report *domain.Report, filePath string) error {
	headers := []string{"Date", "Gross", "Net", "Discounts", "Tips", "Transactions"}

	records := make([][]string, 0, len(report.Daily))
	for _, day := range report.Daily {
		records = append(records, []string{
			day.Date,
			formatFloat(day.Gross),
			formatFloat(day.Net),
			formatFloat(day.Discounts),
			formatFloat(day.Tips),
			formatFloat(day.Transactions),
		})
	}

	if err := e.csvWriter.WriteSimpleCSV(filePath, headers, records); err != nil {
		return apperrors.NewStorageError("failed to write daily series CSV", err)
	}

	e.logger.Info("daily series exported",
		slog.String("path", filePath),
		slog.Int("days", len(report.Daily)))
	return nil
}

// ExportSummaryCSV writes the summary as a key/value sheet followed by the
// per-metric rate table and the signal sentences.
func (e *ReportExporter) ExportSummaryCSV(report *domain.Report, filePath string) error {
	s := report.Summary

	records := [][]string{
		{"Report ID", report.ID},
		{"Source", report.SourceName},
		{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Operating Days", formatInt(s.OperatingDays)},
		{"Calendar Days", formatInt(s.CalendarDays)},
		{"Discount Rate", formatRate(s.DiscountRate)},
		{"Net Per Transaction", formatFloat(s.NetPerTransaction)},
		{"Tips Per Transaction", formatFloat(s.TipsPerTransaction)},
		{""},
		{"Metric", "Total", "Per Operating Day", "Per Calendar Day"},
	}

	for _, key := range domain.MetricKeys() {
		records = append(records, []string{
			string(key),
			formatFloat(s.Totals[key]),
			formatFloat(s.PerOperatingDay[key]),
			formatFloat(s.PerCalendarDay[key]),
		})
	}

	records = append(records, []string{""})
	records = append(records, []string{"Signals"})
	for _, signal := range s.Signals {
		records = append(records, []string{signal})
	}

	if err := e.csvWriter.WriteCSV(filePath, WriteOptions{Records: records, BOMPrefix: true}); err != nil {
		return apperrors.NewStorageError("failed to write summary CSV", err)
	}

	e.logger.Info("summary exported", slog.String("path", filePath))
	return nil
}

// ExportJSON writes the full report as an indented JSON document.
func (e *ReportExporter) ExportJSON(report *domain.Report, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to encode report", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return apperrors.NewStorageError("failed to write report JSON", err)
	}

	e.logger.Info("report exported",
		slog.String("path", filePath),
		slog.String("report_id", report.ID))
	return nil
}
