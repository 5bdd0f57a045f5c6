package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGB formats a binary-GB value the way the report tables print storage.
// Example: 50.0 → "50.00G".
func FormatGB(gb float64) string {
	return fmt.Sprintf("%.2fG", gb)
}

// FormatMB formats a binary-MB value with 2 decimal places.
// Example: 12.5 → "12.50MB".
func FormatMB(mb float64) string {
	return fmt.Sprintf("%.2fMB", mb)
}

// FormatMoney formats a dollar amount with 2 decimal places.
// Example: 600.0 → "$600.00".
func FormatMoney(dollars float64) string {
	return fmt.Sprintf("$%.2f", dollars)
}

// FormatPercent formats a percentage with two decimal places.
// Example: 34.56 → "34.56%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
