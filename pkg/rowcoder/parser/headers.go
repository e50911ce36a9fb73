package parser

import (
	"strconv"
	"strings"
)

// excelColumnName converts a 0-based index to an Excel-style column name.
// Examples: 0 -> A, 25 -> Z, 26 -> AA, 701 -> ZZ
func excelColumnName(index int) string {
	result := ""
	index++
	for index > 0 {
		index--
		result = string(rune('A'+index%26)) + result
		index /= 26
	}
	return result
}

// NormalizeHeaders makes a header row usable as row keys.
//
// Rules:
//   - Empty or whitespace-only headers become Unnamed_A, Unnamed_B, ...
//   - Repeated names get .1, .2, ... suffixes in order of appearance
//   - Everything else is preserved as-is
//
// Example:
//
//	Input:  ["name", "", "name", "  "]
//	Output: ["name", "Unnamed_A", "name.1", "Unnamed_B"]
func NormalizeHeaders(header []string) []string {
	normalized := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	emptyCount := 0

	for i, h := range header {
		name := h
		if strings.TrimSpace(h) == "" {
			name = "Unnamed_" + excelColumnName(emptyCount)
			emptyCount++
		}
		if seen[name] {
			base := name
			for n := 1; seen[name]; n++ {
				name = base + "." + strconv.Itoa(n)
			}
		}
		seen[name] = true
		normalized[i] = name
	}

	return normalized
}
