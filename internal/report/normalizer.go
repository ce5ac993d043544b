package report

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Characters stripped from a cell before numeric parsing. Vendor exports
// wrap amounts in currency symbols, grouping commas, percent signs and
// accounting parentheses; none of them carry information the aggregation
// needs.
const numericNoise = "$€£¥,%()  "

// Date layouts tried in order. Cells are normalized to dash separators
// first, so one layout covers both "2024-01-15" and "2024/01/15".
var dateLayouts = []string{
	"2006-01-02",
	"01-02-2006",
	"1-2-2006",
	"2006-1-2",
}

// ParseNumber converts a raw text cell to a float64. It strips currency
// symbols, grouping separators, percent signs, parentheses and non-breaking
// spaces, then parses what remains as a decimal. Empty, unparseable and
// non-finite cells all yield 0; bad cells are routine in vendor exports and
// must never abort aggregation.
//
// Parenthesized amounts are stripped, not negated: comps and refunds stay
// positive so that discount totals accumulate as magnitudes.
func ParseNumber(cell string) float64 {
	cleaned := strings.TrimSpace(cell)
	if cleaned == "" {
		return 0
	}

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if !strings.ContainsRune(numericNoise, r) {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseDate resolves a raw text cell to an ISO calendar date (YYYY-MM-DD).
// Slash separators are normalized to dashes before parsing. If the full
// cell fails to parse, the substring before the first whitespace or 'T' is
// retried so that trailing time-of-day text does not defeat recognition.
// The second return value is false when the cell is not a date.
func ParseDate(cell string) (string, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(cell), "/", "-")
	if cleaned == "" {
		return "", false
	}

	if iso, ok := parseDateExact(cleaned); ok {
		return iso, true
	}

	if cut := strings.IndexFunc(cleaned, func(r rune) bool {
		return r == ' ' || r == '\t' || r == 'T'
	}); cut > 0 {
		return parseDateExact(cleaned[:cut])
	}

	return "", false
}

func parseDateExact(s string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// looksNumeric reports whether a cell plausibly holds a numeric value:
// any digit, sign, decimal point, grouping comma, currency symbol,
// parenthesis or percent qualifies. The detector uses this as a cheap
// density test before committing to full parsing.
func looksNumeric(cell string) bool {
	for _, r := range cell {
		switch {
		case r >= '0' && r <= '9':
			return true
		case strings.ContainsRune("-.,$€£¥()%", r):
			return true
		}
	}
	return false
}
