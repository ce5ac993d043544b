package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func baseSummary() domain.Summary {
	return domain.Summary{
		OperatingDays: 5,
		CalendarDays:  5,
		PerOperatingDay: map[domain.MetricKey]float64{
			domain.MetricGross:        100,
			domain.MetricTransactions: 10,
		},
		DiscountRate:       0.02,
		NetPerTransaction:  9,
		TipsPerTransaction: 1.5,
	}
}

func TestBuildSignals_Order(t *testing.T) {
	signals := buildSignals(baseSummary())
	require.Len(t, signals, 4)

	// Fixed display order: coverage, driver, discounts, tips.
	assert.Contains(t, signals[0], "calendar day")
	assert.Contains(t, signals[1], "Revenue")
	assert.Contains(t, signals[2], "Discount")
	assert.Contains(t, signals[3], "Tipping")
}

func TestBuildSignals_CoverageNote(t *testing.T) {
	t.Run("gap between operating and calendar days", func(t *testing.T) {
		s := baseSummary()
		s.OperatingDays = 2
		s.CalendarDays = 3

		signals := buildSignals(s)
		assert.Contains(t, signals[0], "2 of 3 calendar days")
	})

	t.Run("full coverage", func(t *testing.T) {
		signals := buildSignals(baseSummary())
		assert.Contains(t, signals[0], "Every calendar day")
	})
}

func TestBuildSignals_DriverNote(t *testing.T) {
	tests := []struct {
		name              string
		netPerTransaction float64
		txPerDay          float64
		want              string
	}{
		{name: "ticket-size-led", netPerTransaction: 20, txPerDay: 10, want: "ticket-size-led"},
		{name: "volume-led", netPerTransaction: 5, txPerDay: 10, want: "volume-led"},
		{name: "balanced", netPerTransaction: 10, txPerDay: 10, want: "balanced"},
		{name: "exactly at factor stays balanced", netPerTransaction: 15, txPerDay: 10, want: "balanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSummary()
			s.NetPerTransaction = tt.netPerTransaction
			s.PerOperatingDay[domain.MetricTransactions] = tt.txPerDay

			signals := buildSignals(s)
			require.Len(t, signals, 4)
			assert.Contains(t, signals[1], tt.want)
		})
	}

	t.Run("skipped when an input is zero", func(t *testing.T) {
		s := baseSummary()
		s.NetPerTransaction = 0

		signals := buildSignals(s)
		require.Len(t, signals, 3)
		assert.Contains(t, signals[1], "Discount")
	})
}

func TestBuildSignals_DiscountNote(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{name: "material at threshold", rate: 0.15, want: "material"},
		{name: "material above threshold", rate: 0.30, want: "material"},
		{name: "moderate", rate: 0.10, want: "moderate"},
		{name: "light at moderate boundary", rate: 0.05, want: "light"},
		{name: "light", rate: 0.0167, want: "light"},
		{name: "light at zero", rate: 0, want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSummary()
			s.DiscountRate = tt.rate

			signals := buildSignals(s)
			assert.Contains(t, signals[2], tt.want)
		})
	}
}

func TestBuildSignals_TipsNote(t *testing.T) {
	tests := []struct {
		name string
		tips float64
		want string
	}{
		{name: "soft", tips: 0.5, want: "soft"},
		{name: "steady at lower boundary", tips: 1.0, want: "steady"},
		{name: "steady", tips: 1.6, want: "steady"},
		{name: "steady at upper boundary", tips: 2.5, want: "steady"},
		{name: "strong", tips: 3.0, want: "strong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := baseSummary()
			s.TipsPerTransaction = tt.tips

			signals := buildSignals(s)
			assert.Contains(t, signals[3], tt.want)
		})
	}
}
