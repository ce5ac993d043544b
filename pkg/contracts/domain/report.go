package domain

import "time"

// DailyAggregate holds the summed metrics for a single calendar date.
// Date is an ISO calendar-date string (YYYY-MM-DD); lexicographic order of
// the string equals chronological order, which downstream range and
// day-count computation relies on.
type DailyAggregate struct {
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	Gross        float64 `json:"gross"`
	Net          float64 `json:"net"`
	Discounts    float64 `json:"discounts"`
	Tips         float64 `json:"tips"`
	Transactions float64 `json:"transactions"`
}

// Add accumulates a value into the named metric.
func (d *DailyAggregate) Add(key MetricKey, value float64) {
	switch key {
	case MetricGross:
		d.Gross += value
	case MetricNet:
		d.Net += value
	case MetricDiscounts:
		d.Discounts += value
	case MetricTips:
		d.Tips += value
	case MetricTransactions:
		d.Transactions += value
	}
}

// Metric returns the accumulated value for the named metric.
func (d DailyAggregate) Metric(key MetricKey) float64 {
	switch key {
	case MetricGross:
		return d.Gross
	case MetricNet:
		return d.Net
	case MetricDiscounts:
		return d.Discounts
	case MetricTips:
		return d.Tips
	case MetricTransactions:
		return d.Transactions
	default:
		return 0
	}
}

// Summary contains the normalized view of an export: grand totals,
// operating/calendar day counts, per-day rates, the derived ratios, and the
// ordered diagnostic signals. It is recomputed wholesale for each input;
// there is no incremental update path.
type Summary struct {
	OperatingDays int `json:"operating_days" validate:"min=1"`
	CalendarDays  int `json:"calendar_days" validate:"min=1"`

	Totals          map[MetricKey]float64 `json:"totals"`
	PerOperatingDay map[MetricKey]float64 `json:"per_operating_day"`
	PerCalendarDay  map[MetricKey]float64 `json:"per_calendar_day"`

	DiscountRate       float64 `json:"discount_rate"`
	NetPerTransaction  float64 `json:"net_per_transaction"`
	TipsPerTransaction float64 `json:"tips_per_transaction"`

	Signals []string `json:"signals"`
}

// Report is the full output of one analysis run: the resolved column
// selection, the ascending-by-date daily series, and the summary, plus
// metadata about the source for audit purposes.
type Report struct {
	ID          string           `json:"id"`
	SourceName  string           `json:"source_name,omitempty"`
	RecordCount int              `json:"record_count" validate:"min=0"`
	Columns     ColumnSelection  `json:"columns"`
	Daily       []DailyAggregate `json:"daily" validate:"dive"`
	Summary     Summary          `json:"summary"`
	GeneratedAt time.Time        `json:"generated_at"`
}
