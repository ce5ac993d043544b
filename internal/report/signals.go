package report

import (
	"fmt"

	"salescli/pkg/contracts/domain"
)

// Signal thresholds. Fixed constants, no configuration surface.
const (
	driverDominanceFactor = 1.5

	discountMaterialRate = 0.15
	discountModerateRate = 0.05

	tipsSoftPerTransaction   = 1.0
	tipsStrongPerTransaction = 2.5
)

// buildSignals derives the ordered diagnostic sentences from a computed
// summary. The order is fixed for display: normalization note, revenue
// driver note, discount note, tips note. Every applicable rule fires; the
// driver note is skipped entirely when any of its three inputs is zero,
// since a dominance comparison against zero is meaningless.
func buildSignals(s domain.Summary) []string {
	signals := make([]string, 0, 4)

	if s.OperatingDays < s.CalendarDays {
		signals = append(signals, fmt.Sprintf(
			"Activity was recorded on %d of %d calendar days; per-calendar-day rates spread totals across the idle days.",
			s.OperatingDays, s.CalendarDays))
	} else {
		signals = append(signals,
			"Every calendar day in the reporting span shows recorded activity.")
	}

	grossPerDay := s.PerOperatingDay[domain.MetricGross]
	txPerDay := s.PerOperatingDay[domain.MetricTransactions]
	if grossPerDay != 0 && s.NetPerTransaction != 0 && txPerDay != 0 {
		switch {
		case s.NetPerTransaction > driverDominanceFactor*txPerDay:
			signals = append(signals,
				"Revenue is ticket-size-led: net per transaction dominates daily transaction volume.")
		case txPerDay > driverDominanceFactor*s.NetPerTransaction:
			signals = append(signals,
				"Revenue is volume-led: daily transaction volume dominates net per transaction.")
		default:
			signals = append(signals,
				"Revenue drivers look balanced between ticket size and transaction volume.")
		}
	}

	switch {
	case s.DiscountRate >= discountMaterialRate:
		signals = append(signals, fmt.Sprintf(
			"Discount pressure is material: %.1f%% of gross is given back in discounts.",
			s.DiscountRate*100))
	case s.DiscountRate > discountModerateRate:
		signals = append(signals, fmt.Sprintf(
			"Discount pressure is moderate: %.1f%% of gross is given back in discounts.",
			s.DiscountRate*100))
	default:
		signals = append(signals, fmt.Sprintf(
			"Discount pressure is light: %.1f%% of gross is given back in discounts.",
			s.DiscountRate*100))
	}

	switch {
	case s.TipsPerTransaction < tipsSoftPerTransaction:
		signals = append(signals, fmt.Sprintf(
			"Tipping is soft at %.2f per transaction.", s.TipsPerTransaction))
	case s.TipsPerTransaction > tipsStrongPerTransaction:
		signals = append(signals, fmt.Sprintf(
			"Tipping is strong at %.2f per transaction.", s.TipsPerTransaction))
	default:
		signals = append(signals, fmt.Sprintf(
			"Tipping is steady at %.2f per transaction.", s.TipsPerTransaction))
	}

	return signals
}
