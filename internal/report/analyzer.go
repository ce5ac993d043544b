package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salescli/pkg/contracts/domain"
)

// Analyzer runs the full pipeline over the records of one export: column
// detection, daily aggregation, summary and signals. One call, one report;
// nothing carries over between exports.
type Analyzer struct {
	logger     *slog.Logger
	summarizer *Summarizer
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		logger:     logger.With(slog.String("component", "analyzer")),
		summarizer: NewSummarizer(logger),
	}
}

// Analyze produces a report for one export. columns carries the header
// order, which detection tie-breaks depend on; sourceName is audit metadata
// only. Failure is one of the four aggregation errors; callers branch on
// errors.IsAnalysisFailure and fall back to an empty-state view.
func (a *Analyzer) Analyze(ctx context.Context, sourceName string, columns []string, records []domain.Record) (*domain.Report, error) {
	start := time.Now()

	selection := DetectColumns(records, columns)
	a.logger.DebugContext(ctx, "columns detected",
		slog.String("source", sourceName),
		slog.String("date_column", selection.DateColumn),
		slog.Int("metric_columns", len(selection.Metrics)))

	daily, err := Aggregate(records, selection)
	if err != nil {
		a.logger.WarnContext(ctx, "export could not be analyzed",
			slog.String("source", sourceName),
			slog.Int("record_count", len(records)),
			slog.String("error", err.Error()))
		return nil, err
	}

	summary := a.summarizer.Build(ctx, daily)

	report := &domain.Report{
		ID:          uuid.NewString(),
		SourceName:  sourceName,
		RecordCount: len(records),
		Columns:     selection,
		Daily:       daily,
		Summary:     summary,
		GeneratedAt: time.Now().UTC(),
	}

	a.logger.InfoContext(ctx, "export analyzed",
		slog.String("report_id", report.ID),
		slog.String("source", sourceName),
		slog.Int("record_count", report.RecordCount),
		slog.Int("operating_days", summary.OperatingDays),
		slog.Duration("duration", time.Since(start)))

	return report, nil
}
