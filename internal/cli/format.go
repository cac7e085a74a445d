// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a currency amount with the configured symbol and two
// decimal places, e.g. "$42.50".
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// FormatData renders a data volume in GB, e.g. "12.50 GB".
func FormatData(gb float64) string {
	return fmt.Sprintf("%.2f GB", gb)
}

// FormatMinutes renders a minute count, e.g. "300 min".
func FormatMinutes(minutes int64) string {
	return fmt.Sprintf("%d min", minutes)
}

// FormatPercent renders an already-scaled percentage, e.g. 42.5 -> "42.5%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatYesNo renders a boolean as "Yes" or "No".
func FormatYesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
