package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func TestDetectDateColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		records []domain.Record
		want    string
		wantOK  bool
	}{
		{
			name:    "single date column",
			columns: []string{"Date", "Amount"},
			records: []domain.Record{
				{"Date": "2024-01-01", "Amount": "$10"},
				{"Date": "2024-01-02", "Amount": "$20"},
			},
			want:   "Date",
			wantOK: true,
		},
		{
			name:    "column with most date hits wins",
			columns: []string{"Created", "Business Date"},
			records: []domain.Record{
				{"Created": "garbage", "Business Date": "2024-01-01"},
				{"Created": "2024-02-01", "Business Date": "2024-01-02"},
				{"Created": "also bad", "Business Date": "2024-01-03"},
			},
			want:   "Business Date",
			wantOK: true,
		},
		{
			name:    "tie keeps earlier column",
			columns: []string{"Start", "End"},
			records: []domain.Record{
				{"Start": "2024-01-01", "End": "2024-01-02"},
			},
			want:   "Start",
			wantOK: true,
		},
		{
			name:    "no column parses as a date",
			columns: []string{"Name", "Amount"},
			records: []domain.Record{
				{"Name": "Alice", "Amount": "$10"},
				{"Name": "Bob", "Amount": "$20"},
			},
			wantOK: false,
		},
		{
			name:    "no records",
			columns: []string{"Date"},
			records: nil,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectDateColumn(tt.records, tt.columns)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDetectMetricColumns(t *testing.T) {
	t.Run("name hints beat raw density", func(t *testing.T) {
		columns := []string{"Misc", "Gross Sales"}
		records := []domain.Record{
			{"Misc": "1", "Gross Sales": "$100.00"},
			{"Misc": "2", "Gross Sales": "$200.00"},
		}

		got := DetectMetricColumns(records, columns)
		assert.Equal(t, "Gross Sales", got[domain.MetricGross])
	})

	t.Run("earlier metric claims a shared column", func(t *testing.T) {
		// "Gross Net" hints for both gross and net; gross is evaluated
		// first, so net is left without a column.
		columns := []string{"Gross Net"}
		records := []domain.Record{
			{"Gross Net": "$100.00"},
		}

		got := DetectMetricColumns(records, columns)
		assert.Equal(t, "Gross Net", got[domain.MetricGross])
		_, hasNet := got[domain.MetricNet]
		assert.False(t, hasNet)
	})

	t.Run("non numeric columns are ineligible", func(t *testing.T) {
		columns := []string{"Notes", "Status"}
		records := []domain.Record{
			{"Notes": "pending", "Status": "ok"},
			{"Notes": "done", "Status": "ok"},
		}

		got := DetectMetricColumns(records, columns)
		assert.Empty(t, got)
	})

	t.Run("full vendor header resolves every metric", func(t *testing.T) {
		columns := []string{"Total Sales", "Net Sales", "Discounts", "Tip", "Orders"}
		records := []domain.Record{
			{"Total Sales": "$100.00", "Net Sales": "$90.00", "Discounts": "$5.00", "Tip": "$10.00", "Orders": "10"},
			{"Total Sales": "$200.00", "Net Sales": "$180.00", "Discounts": "$0.00", "Tip": "$30.00", "Orders": "15"},
		}

		got := DetectMetricColumns(records, columns)
		require.Len(t, got, 5)
		assert.Equal(t, "Total Sales", got[domain.MetricGross])
		assert.Equal(t, "Net Sales", got[domain.MetricNet])
		assert.Equal(t, "Discounts", got[domain.MetricDiscounts])
		assert.Equal(t, "Tip", got[domain.MetricTips])
		assert.Equal(t, "Orders", got[domain.MetricTransactions])
	})
}

func TestDetectColumns(t *testing.T) {
	columns := []string{"Date", "Total Sales", "Net Sales"}
	records := []domain.Record{
		{"Date": "2024-01-01", "Total Sales": "$100.00", "Net Sales": "$90.00"},
		{"Date": "2024-01-02", "Total Sales": "$200.00", "Net Sales": "$180.00"},
	}

	got := DetectColumns(records, columns)
	assert.Equal(t, "Date", got.DateColumn)
	assert.Equal(t, "Total Sales", got.Metrics[domain.MetricGross])
	assert.Equal(t, "Net Sales", got.Metrics[domain.MetricNet])

	t.Run("date column is never reused for a metric", func(t *testing.T) {
		for _, name := range got.Metrics {
			assert.NotEqual(t, got.DateColumn, name)
		}
	})

	t.Run("detection is deterministic", func(t *testing.T) {
		again := DetectColumns(records, columns)
		assert.Equal(t, got, again)
	})
}
