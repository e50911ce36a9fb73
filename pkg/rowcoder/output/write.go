package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// ErrUnsupportedFormat is returned for formats other than CSV and XLSX.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Write encodes the table in the given format.
func Write(w io.Writer, table *models.Table, format models.Format, sheetName string) error {
	switch format {
	case models.FormatCSV:
		return WriteCSV(w, table)
	case models.FormatXLSX:
		return WriteXLSX(w, table, sheetName)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile encodes the table into path, replacing any existing file.
// A failed encode leaves no file behind.
func WriteFile(path string, table *models.Table, format models.Format, sheetName string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := Write(bw, table, format, sheetName); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

var sourceExt = regexp.MustCompile(`(?i)\.(csv|xlsx|xlsm|xls)$`)

// OutputName returns "<base>_coded.<ext>" for an input file.
// The file is placed in dir, or next to the input when dir is empty.
func OutputName(inputPath string, format models.Format, dir string) string {
	base := sourceExt.ReplaceAllString(filepath.Base(inputPath), "")
	name := base + "_coded" + format.Extension()
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, name)
}
