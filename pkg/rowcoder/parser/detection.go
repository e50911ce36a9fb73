package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// ErrLegacyExcel indicates a BIFF .xls workbook, which cannot be decoded.
var ErrLegacyExcel = errors.New("legacy .xls workbooks are not supported; save as .xlsx")

// DetectFormat determines the file format from the file extension.
func DetectFormat(path string) (models.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return models.FormatCSV, nil
	case ".xlsx", ".xlsm":
		return models.FormatXLSX, nil
	case ".xls":
		return "", ErrLegacyExcel
	default:
		return "", fmt.Errorf("unsupported file type %q: upload a CSV or Excel file", ext)
	}
}
