package report

import (
	"strings"

	"salescli/pkg/contracts/domain"
)

// Column-name hint substrings per metric, matched case-insensitively.
// A hint hit is worth two numeric cells in the detection score, so a
// well-named sparse column still beats an anonymous dense one.
var metricHints = map[domain.MetricKey][]string{
	domain.MetricGross:        {"gross", "total sales", "total gross", "revenue"},
	domain.MetricNet:          {"net", "total net", "net sales"},
	domain.MetricDiscounts:    {"discount", "comp", "promo"},
	domain.MetricTips:         {"tip", "gratuity"},
	domain.MetricTransactions: {"transactions", "orders", "receipts", "count"},
}

const hintWeight = 2

// DetectColumns resolves the full column selection for one export: the date
// column first, then the metric columns from whatever remains. Detection
// never fails; missing roles are simply absent from the result, and the
// aggregator decides which absences are fatal.
func DetectColumns(records []domain.Record, columns []string) domain.ColumnSelection {
	selection := domain.ColumnSelection{
		Metrics: make(map[domain.MetricKey]string),
	}

	remaining := columns
	if dateCol, ok := DetectDateColumn(records, columns); ok {
		selection.DateColumn = dateCol
		remaining = withoutColumn(columns, dateCol)
	}

	selection.Metrics = DetectMetricColumns(records, remaining)
	return selection
}

// DetectDateColumn picks the column whose cells parse as dates most often.
// Ties keep the earlier-declared column; a tie is only possible on
// pathological input and the earlier column is the better guess. Returns
// false when no column yields a single parseable date.
func DetectDateColumn(records []domain.Record, columns []string) (string, bool) {
	bestColumn := ""
	bestHits := 0

	for _, name := range columns {
		hits := 0
		for _, rec := range records {
			if _, ok := ParseDate(rec[name]); ok {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestColumn = name
		}
	}

	return bestColumn, bestHits > 0
}

// DetectMetricColumns assigns at most one column to each metric key, in the
// canonical order gross, net, discounts, tips, transactions. Each step
// scores only the columns no earlier key has claimed, so earlier keys are
// priority claimants on shared high-scoring columns. The remaining set is
// rebuilt rather than mutated between steps, keeping each selection a pure
// function of its inputs.
func DetectMetricColumns(records []domain.Record, columns []string) map[domain.MetricKey]string {
	selected := make(map[domain.MetricKey]string)
	remaining := columns

	for _, key := range domain.MetricKeys() {
		name, ok := selectMetricColumn(records, remaining, key)
		if !ok {
			continue
		}
		selected[key] = name
		remaining = withoutColumn(remaining, name)
	}

	// Exports often label their count column unpredictably. If no name hint
	// claimed a transactions column, fall back to the first remaining column
	// that is numeric in more than a third of the rows.
	if _, ok := selected[domain.MetricTransactions]; !ok {
		for _, name := range remaining {
			if 3*numericCellCount(records, name) > len(records) {
				selected[domain.MetricTransactions] = name
				break
			}
		}
	}

	return selected
}

// selectMetricColumn scores every candidate column for one metric key and
// returns the winner. A column is eligible only if at least one of its
// cells looks numeric; score is hintWeight per name-hint hit plus the
// numeric cell count. Strictly-greater comparison keeps the first maximal
// column on ties.
func selectMetricColumn(records []domain.Record, columns []string, key domain.MetricKey) (string, bool) {
	bestColumn := ""
	bestScore := 0

	for _, name := range columns {
		numeric := numericCellCount(records, name)
		if numeric == 0 {
			continue
		}
		score := hintWeight*hintHits(name, metricHints[key]) + numeric
		if score > bestScore {
			bestScore = score
			bestColumn = name
		}
	}

	return bestColumn, bestColumn != ""
}

func hintHits(columnName string, hints []string) int {
	lowered := strings.ToLower(columnName)
	hits := 0
	for _, hint := range hints {
		if strings.Contains(lowered, hint) {
			hits++
		}
	}
	return hits
}

func numericCellCount(records []domain.Record, columnName string) int {
	count := 0
	for _, rec := range records {
		if looksNumeric(rec[columnName]) {
			count++
		}
	}
	return count
}

func withoutColumn(columns []string, name string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}
