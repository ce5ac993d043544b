package report

import (
	"sort"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Aggregate buckets records by resolved calendar date and sums each selected
// metric per date. Records whose date cell does not resolve are dropped
// without comment; stray footer and subtotal rows are expected in vendor
// exports. The result is sorted ascending by ISO date string.
//
// Aggregate is the single error boundary of the pipeline. It fails with one
// of four typed errors: empty input, no date column, gross/net undetected,
// or no row surviving date resolution. Every other anomaly is absorbed by
// zero-defaults upstream.
func Aggregate(records []domain.Record, selection domain.ColumnSelection) ([]domain.DailyAggregate, error) {
	if len(records) == 0 {
		return nil, apperrors.NewEmptyInputError()
	}
	if selection.DateColumn == "" {
		return nil, apperrors.NewNoDateColumnError()
	}

	var missing []string
	if !selection.Has(domain.MetricGross) {
		missing = append(missing, string(domain.MetricGross))
	}
	if !selection.Has(domain.MetricNet) {
		missing = append(missing, string(domain.MetricNet))
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingMetricColumnsError(missing...)
	}

	byDate := make(map[string]*domain.DailyAggregate)
	for _, rec := range records {
		iso, ok := ParseDate(rec[selection.DateColumn])
		if !ok {
			continue
		}

		agg, exists := byDate[iso]
		if !exists {
			agg = &domain.DailyAggregate{Date: iso}
			byDate[iso] = agg
		}

		for _, key := range domain.MetricKeys() {
			if column, selected := selection.Column(key); selected {
				agg.Add(key, ParseNumber(rec[column]))
			}
		}
	}

	if len(byDate) == 0 {
		return nil, apperrors.NewNoUsableDatedRowsError()
	}

	daily := make([]domain.DailyAggregate, 0, len(byDate))
	for _, agg := range byDate {
		daily = append(daily, *agg)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return daily, nil
}
