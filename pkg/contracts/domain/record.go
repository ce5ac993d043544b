package domain

// Record is a single source row from a vendor export: column name to raw
// cell text. All records from one export share the same column-name set,
// since the columns come from a shared header row.
type Record map[string]string

// MetricKey identifies one of the five business metrics tracked per day.
type MetricKey string

const (
	MetricGross        MetricKey = "gross"
	MetricNet          MetricKey = "net"
	MetricDiscounts    MetricKey = "discounts"
	MetricTips         MetricKey = "tips"
	MetricTransactions MetricKey = "transactions"
)

// MetricKeys returns the metric keys in their canonical evaluation order.
// Column detection claims columns in this order, so earlier keys win when
// two keys would score the same column highest.
func MetricKeys() []MetricKey {
	return []MetricKey{MetricGross, MetricNet, MetricDiscounts, MetricTips, MetricTransactions}
}

// ColumnSelection is the resolved mapping from logical roles to the actual
// column names of one export. A column claimed for one role is never reused
// for another. Optional metrics that could not be detected are simply absent
// from Metrics.
type ColumnSelection struct {
	DateColumn string               `json:"date_column"`
	Metrics    map[MetricKey]string `json:"metrics"`
}

// Column returns the selected column name for a metric, if any.
func (s ColumnSelection) Column(key MetricKey) (string, bool) {
	name, ok := s.Metrics[key]
	return name, ok
}

// Has reports whether a column was selected for the metric.
func (s ColumnSelection) Has(key MetricKey) bool {
	_, ok := s.Metrics[key]
	return ok
}
