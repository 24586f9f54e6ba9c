// Package utils provides common utility functions for finsight.
package utils

import (
	"fmt"
	"math"
)

// FormatCompact formats a large number with a short magnitude suffix.
// e.g., 93_000_000_000 → "93.00B", 1_250_000 → "1.25M"
func FormatCompact(amount float64) string {
	prefix := ""
	if amount < 0 {
		prefix = "-"
		amount = math.Abs(amount)
	}

	switch {
	case amount >= 1e12:
		return fmt.Sprintf("%s%.2fT", prefix, amount/1e12)
	case amount >= 1e9:
		return fmt.Sprintf("%s%.2fB", prefix, amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("%s%.2fM", prefix, amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("%s%.2fK", prefix, amount/1e3)
	default:
		return fmt.Sprintf("%s%.2f", prefix, amount)
	}
}

// FormatPercent renders a fraction as a signed percentage.
// e.g., 0.153 → "15.3%", -0.042 → "-4.2%"
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// FormatOptional renders a possibly-absent value, using "-" for absent.
func FormatOptional(v *float64, format func(float64) string) string {
	if v == nil {
		return "-"
	}
	return format(*v)
}
