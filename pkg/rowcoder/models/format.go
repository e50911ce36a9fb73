package models

import (
	"fmt"
	"strings"
)

// Format is a tabular file format.
type Format string

const (
	// FormatCSV is comma-separated text with a header row.
	FormatCSV Format = "csv"
	// FormatXLSX is an Office Open XML workbook; only the first sheet is used.
	FormatXLSX Format = "xlsx"
)

// ParseFormat parses a format name such as "csv", "xlsx" or ".xlsx".
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("invalid format: %q (must be csv or xlsx)", s)
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Other returns the alternate export format.
func (f Format) Other() Format {
	if f == FormatCSV {
		return FormatXLSX
	}
	return FormatCSV
}
