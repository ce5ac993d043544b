package report

import (
	"context"
	"log/slog"
	"time"

	"salescli/pkg/contracts/domain"
)

// Summarizer turns an ordered daily series into the normalized summary view:
// grand totals, operating/calendar day counts, per-day rates, the derived
// ratios and the diagnostic signals. It holds no state between calls; the
// summary is recomputed wholesale for every input.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Build computes the summary for a non-empty daily series sorted ascending
// by date. The aggregator guarantees both properties, so operating days is
// at least 1 and the per-day divisions are safe. The three ratios fall back
// to 0 on a zero denominator instead of failing; one missing metric must
// not take down the whole summary.
func (s *Summarizer) Build(ctx context.Context, daily []domain.DailyAggregate) domain.Summary {
	totals := make(map[domain.MetricKey]float64, len(domain.MetricKeys()))
	for _, day := range daily {
		for _, key := range domain.MetricKeys() {
			totals[key] += day.Metric(key)
		}
	}

	operatingDays := len(daily)
	calendarDays := calendarSpan(daily[0].Date, daily[operatingDays-1].Date)

	perOperating := make(map[domain.MetricKey]float64, len(totals))
	perCalendar := make(map[domain.MetricKey]float64, len(totals))
	for _, key := range domain.MetricKeys() {
		perOperating[key] = totals[key] / float64(operatingDays)
		perCalendar[key] = totals[key] / float64(calendarDays)
	}

	summary := domain.Summary{
		OperatingDays:      operatingDays,
		CalendarDays:       calendarDays,
		Totals:             totals,
		PerOperatingDay:    perOperating,
		PerCalendarDay:     perCalendar,
		DiscountRate:       guardedRatio(totals[domain.MetricDiscounts], totals[domain.MetricGross]),
		NetPerTransaction:  guardedRatio(totals[domain.MetricNet], totals[domain.MetricTransactions]),
		TipsPerTransaction: guardedRatio(totals[domain.MetricTips], totals[domain.MetricTransactions]),
	}
	summary.Signals = buildSignals(summary)

	s.logger.InfoContext(ctx, "summary built",
		slog.Int("operating_days", operatingDays),
		slog.Int("calendar_days", calendarDays),
		slog.Float64("gross_total", totals[domain.MetricGross]),
		slog.Int("signal_count", len(summary.Signals)))

	return summary
}

// calendarSpan returns the inclusive day count between two ISO dates.
// Both come out of the aggregator, so they are well-formed and ordered.
func calendarSpan(first, last string) int {
	start, err := time.Parse("2006-01-02", first)
	if err != nil {
		return 1
	}
	end, err := time.Parse("2006-01-02", last)
	if err != nil {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func guardedRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
