// Package output encodes tables as CSV or Excel files.
package output

import (
	"math"
	"strconv"
)

// maxExactInt is the largest integer a spreadsheet stores without rounding.
const maxExactInt = 1 << 53

// parseValue types a cell for a spreadsheet.
// Returns int64 for integers, float64 for decimals, or the original string.
// Only canonical spellings are converted so the text reads back unchanged:
// "007", "1.50" and "1e3" stay strings.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if strconv.FormatInt(i, 10) == s && i > -maxExactInt && i < maxExactInt {
			return i
		}
		return s
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if !math.IsInf(f, 0) && !math.IsNaN(f) && strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	// Return as string
	return s
}
