// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatQuantity formats a request quantity with thousands separators,
// keeping up to three fractional digits for discounted-multiplier models.
// e.g., 1234 -> "1,234", 1234.5 -> "1,234.5", 0.33 -> "0.33"
func FormatQuantity(v float64) string {
	whole, frac := math.Modf(math.Abs(v))
	sign := ""
	if v < 0 {
		sign = "-"
	}

	intPart := FormatNumber(int64(whole))
	if frac == 0 {
		return sign + intPart
	}

	fracStr := strconv.FormatFloat(frac, 'f', 3, 64) // "0.xxx"
	fracStr = strings.TrimRight(fracStr[1:], "0")    // ".xx", trailing zeros dropped
	if fracStr == "." {
		return sign + intPart
	}
	return sign + intPart + fracStr
}

// FormatPlain renders a number the shortest way with no grouping.
// e.g., 1234 -> "1234", 87.5 -> "87.5"
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent1 formats a 0-100 percentage to one decimal place, no sign.
// e.g., 40 -> "40.0"
func FormatPercent1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatPercent formats a 0-100 percentage for table cells.
func FormatPercent(v float64) string {
	return FormatPercent1(v) + "%"
}

// FormatMoney0 formats a dollar amount with no cents and no grouping.
func FormatMoney0(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// FormatMoney2 formats a dollar amount with cents.
func FormatMoney2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatHours0 formats an hour total with no decimals.
func FormatHours0(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// FormatRate renders an hourly rate the way it was entered.
// e.g., 100 -> "100", 87.5 -> "87.5"
func FormatRate(v float64) string {
	return FormatPlain(v)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
