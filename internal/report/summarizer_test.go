package report

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func TestSummarizer_Build(t *testing.T) {
	ctx := context.Background()
	summarizer := NewSummarizer(nil)

	daily := []domain.DailyAggregate{
		{Date: "2024-01-01", Gross: 100, Net: 90, Discounts: 5, Tips: 10, Transactions: 10},
		{Date: "2024-01-03", Gross: 200, Net: 180, Discounts: 0, Tips: 30, Transactions: 15},
	}

	summary := summarizer.Build(ctx, daily)

	t.Run("day counts", func(t *testing.T) {
		assert.Equal(t, 2, summary.OperatingDays)
		assert.Equal(t, 3, summary.CalendarDays)
		assert.GreaterOrEqual(t, summary.CalendarDays, summary.OperatingDays)
	})

	t.Run("totals are exact sums", func(t *testing.T) {
		assert.Equal(t, 300.0, summary.Totals[domain.MetricGross])
		assert.Equal(t, 270.0, summary.Totals[domain.MetricNet])
		assert.Equal(t, 5.0, summary.Totals[domain.MetricDiscounts])
		assert.Equal(t, 40.0, summary.Totals[domain.MetricTips])
		assert.Equal(t, 25.0, summary.Totals[domain.MetricTransactions])
	})

	t.Run("per-day rates", func(t *testing.T) {
		assert.Equal(t, 150.0, summary.PerOperatingDay[domain.MetricGross])
		assert.Equal(t, 100.0, summary.PerCalendarDay[domain.MetricGross])
		assert.Equal(t, 12.5, summary.PerOperatingDay[domain.MetricTransactions])
	})

	t.Run("derived ratios", func(t *testing.T) {
		assert.InDelta(t, 0.0167, summary.DiscountRate, 0.0001)
		assert.InDelta(t, 10.8, summary.NetPerTransaction, 0.0001)
		assert.InDelta(t, 1.6, summary.TipsPerTransaction, 0.0001)
	})

	t.Run("rebuild is identical", func(t *testing.T) {
		again := summarizer.Build(ctx, daily)
		assert.Equal(t, summary, again)
	})
}

func TestSummarizer_Build_SingleDay(t *testing.T) {
	summarizer := NewSummarizer(nil)
	daily := []domain.DailyAggregate{
		{Date: "2024-06-10", Gross: 50, Net: 45, Transactions: 5},
	}

	summary := summarizer.Build(context.Background(), daily)
	assert.Equal(t, 1, summary.OperatingDays)
	assert.Equal(t, 1, summary.CalendarDays)
	assert.Equal(t, 50.0, summary.PerOperatingDay[domain.MetricGross])
	assert.Equal(t, 50.0, summary.PerCalendarDay[domain.MetricGross])
}

func TestSummarizer_Build_ZeroDenominators(t *testing.T) {
	summarizer := NewSummarizer(nil)

	// No transactions column detected and zero gross: every guarded ratio
	// must collapse to 0 rather than NaN or infinity.
	daily := []domain.DailyAggregate{
		{Date: "2024-01-01", Gross: 0, Net: 90, Discounts: 5},
		{Date: "2024-01-02", Gross: 0, Net: 180, Discounts: 3},
	}

	summary := summarizer.Build(context.Background(), daily)

	assert.Zero(t, summary.DiscountRate)
	assert.Zero(t, summary.NetPerTransaction)
	assert.Zero(t, summary.TipsPerTransaction)

	for _, key := range domain.MetricKeys() {
		require.False(t, math.IsNaN(summary.PerOperatingDay[key]))
		require.False(t, math.IsInf(summary.PerOperatingDay[key], 0))
	}
}

func TestCalendarSpan(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  int
	}{
		{name: "same day", first: "2024-01-01", last: "2024-01-01", want: 1},
		{name: "inclusive span", first: "2024-01-01", last: "2024-01-03", want: 3},
		{name: "across month boundary", first: "2024-01-30", last: "2024-02-02", want: 4},
		{name: "across leap day", first: "2024-02-28", last: "2024-03-01", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendarSpan(tt.first, tt.last))
		})
	}
}
