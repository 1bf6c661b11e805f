// Package screener implements the stock screening core: metric formatting,
// fundamental/valuation scoring, multi-field filtering, and null-aware
// sorting. Every function is pure — inputs are never retained or mutated.
package screener

import (
	"fmt"
	"math"
	"strings"
)

// NotAvailable is the display string for an absent metric.
const NotAvailable = "N/A"

// Magnitude thresholds for FormatNumber, checked largest-first. The lower
// bound of each band is inclusive, so exactly 1e12 prints as "1.00 T".
const (
	trillion = 1e12
	billion  = 1e9
	million  = 1e6
)

// FormatNumber renders a metric for display. Nil is "N/A". Values from one
// million upward are scaled to an M/B/T suffix with two decimals; ratios in
// (0, 100) keep two decimals; everything else (including exactly 100) gets
// grouped integer formatting.
func FormatNumber(value *float64) string {
	if value == nil {
		return NotAvailable
	}
	v := *value

	switch {
	case v >= trillion:
		return fmt.Sprintf("%.2f T", v/trillion)
	case v >= billion:
		return fmt.Sprintf("%.2f B", v/billion)
	case v >= million:
		return fmt.Sprintf("%.2f M", v/million)
	}

	if v > 0 && v < 100 {
		return fmt.Sprintf("%.2f", v)
	}

	return groupDigits(v)
}

// FormatPercentage renders a percent metric with an explicit sign.
// Nil is "N/A"; zero and positive values carry a "+" prefix.
func FormatPercentage(value *float64) string {
	if value == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%+.2f%%", *value)
}

// FormatPrice renders a price as a grouped integer string without a currency
// symbol. Prices are always present, so there is no nil handling.
func FormatPrice(value float64) string {
	return groupDigits(value)
}

// groupDigits formats v as an integer with Indonesian thousands separators
// ("1.234.567"). Rounds half away from zero.
func groupDigits(v float64) string {
	n := int64(math.Round(math.Abs(v)))
	s := fmt.Sprintf("%d", n)

	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ".")
	}

	if v < 0 && n != 0 {
		return "-" + s
	}
	return s
}
