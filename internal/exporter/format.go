package exporter

import (
	"fmt"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal
// places, so values like 13.4 appear as 13.40.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatRate formats a ratio with 4 decimal places; discount rates are
// small and 2 places would round most of them to 0.00.
func formatRate(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatInt formats an int value for CSV output.
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
