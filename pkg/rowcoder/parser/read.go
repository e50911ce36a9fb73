package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// Read decodes r in the given format.
func Read(r io.Reader, format models.Format) (*models.Table, error) {
	switch format {
	case models.FormatCSV:
		return ReadCSV(r)
	case models.FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

// ReadFile detects the format of path and decodes it.
func ReadFile(path string) (*models.Table, models.Format, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}
	defer f.Close()

	table, err := Read(f, format)
	if err != nil {
		return nil, format, err
	}
	return table, format, nil
}
