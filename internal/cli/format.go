// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CountLine phrases how many expenses a listing holds.
// e.g., 1 -> "There is 1 expense.", 3 -> "There are 3 expenses."
func CountLine(n int) string {
	if n == 1 {
		return "There is 1 expense."
	}
	return fmt.Sprintf("There are %d expenses.", n)
}

// FormatAmount renders an amount with exactly two decimal digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatMonth turns a YYYY-MM bucket key into a short month label.
// e.g., "2021-06" -> "Jun 2021"
func FormatMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

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
