package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	apperrors "salescli/internal/errors"
	"salescli/internal/exporter"
	"salescli/internal/infrastructure"
	"salescli/internal/ingest"
	"salescli/internal/report"
	"salescli/pkg/contracts/domain"
)

// ExportFormat selects which artifacts ExportReport writes.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatAll  ExportFormat = "all"
)

// AnalysisService orchestrates ingestion, column detection, aggregation and
// summary generation for a single sales export.
type AnalysisService struct {
	logger   *slog.Logger
	analyzer *report.Analyzer
	exporter *exporter.ReportExporter
	metrics  *infrastructure.BusinessMetrics
}

// NewAnalysisService creates the service. metrics may be nil when telemetry
// is disabled.
func NewAnalysisService(logger *slog.Logger, metrics *infrastructure.BusinessMetrics) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("service", "analysis"))

	return &AnalysisService{
		logger:   logger,
		analyzer: report.NewAnalyzer(logger),
		exporter: exporter.NewReportExporter(logger),
		metrics:  metrics,
	}
}

// AnalyzeReader ingests CSV content from r and produces a report.
func (s *AnalysisService) AnalyzeReader(ctx context.Context, sourceName string, r io.Reader) (*domain.Report, error) {
	columns, records, err := ingest.ReadCSV(r)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", sourceName), err)
	}
	return s.analyze(ctx, sourceName, columns, records)
}

// AnalyzeFile ingests a CSV or Excel file from disk and produces a report.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*domain.Report, error) {
	columns, records, err := ingest.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}
	return s.analyze(ctx, filepath.Base(path), columns, records)
}

// AnalyzeRecords runs the analysis over already-tokenized rows.
func (s *AnalysisService) AnalyzeRecords(ctx context.Context, sourceName string, columns []string, records []domain.Record) (*domain.Report, error) {
	return s.analyze(ctx, sourceName, columns, records)
}

func (s *AnalysisService) analyze(ctx context.Context, sourceName string, columns []string, records []domain.Record) (*domain.Report, error) {
	start := time.Now()

	rep, err := s.analyzer.Analyze(ctx, sourceName, columns, records)
	infrastructure.RecordAnalysisMetrics(ctx, s.metrics, sourceName, len(records), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		if dropped := droppedRowCount(records, rep.Columns.DateColumn); dropped > 0 {
			s.metrics.RowsDroppedTotal.Add(ctx, int64(dropped))
		}
	}

	return rep, nil
}

// droppedRowCount counts source rows whose date cell did not parse. Those
// rows never reach a daily bucket.
func droppedRowCount(records []domain.Record, dateColumn string) int {
	dropped := 0
	for _, record := range records {
		if _, ok := report.ParseDate(record[dateColumn]); !ok {
			dropped++
		}
	}
	return dropped
}

// ExportReport writes the report artifacts into outputDir. Returned paths
// are in write order.
func (s *AnalysisService) ExportReport(ctx context.Context, rep *domain.Report, outputDir string, format ExportFormat) ([]string, error) {
	base := strings.TrimSuffix(rep.SourceName, filepath.Ext(rep.SourceName))
	if base == "" {
		base = rep.ID
	}

	var written []string

	if format == FormatCSV || format == FormatAll {
		dailyPath := filepath.Join(outputDir, base+"_daily.csv")
		if err := s.exporter.ExportDailyCSV(rep, dailyPath); err != nil {
			return written, err
		}
		written = append(written, dailyPath)

		summaryPath := filepath.Join(outputDir, base+"_summary.csv")
		if err := s.exporter.ExportSummaryCSV(rep, summaryPath); err != nil {
			return written, err
		}
		written = append(written, summaryPath)
	}

	if format == FormatJSON || format == FormatAll {
		jsonPath := filepath.Join(outputDir, base+"_report.json")
		if err := s.exporter.ExportJSON(rep, jsonPath); err != nil {
			return written, err
		}
		written = append(written, jsonPath)
	}

	if s.metrics != nil && len(written) > 0 {
		s.metrics.ExportsWrittenTotal.Add(ctx, int64(len(written)))
	}

	s.logger.InfoContext(ctx, "report exported",
		slog.String("report_id", rep.ID),
		slog.String("output_dir", outputDir),
		slog.Int("files", len(written)),
	)

	return written, nil
}
