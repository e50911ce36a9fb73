package rowcoder

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/output"
)

// ErrUnreadableFile indicates the input could not be decoded as CSV or Excel.
var ErrUnreadableFile = errors.New("unreadable file")

// ErrIndexOutOfRange indicates a row index outside [0, row count).
var ErrIndexOutOfRange = errors.New("row index out of range")

// ErrNoNotesColumn indicates the table has no Notes column to edit.
var ErrNoNotesColumn = errors.New("table has no Notes column")

// ErrSessionClosed indicates use of a session after Close.
var ErrSessionClosed = errors.New("session closed")

// ErrUnsupportedFormat indicates an export format other than CSV or XLSX.
var ErrUnsupportedFormat = output.ErrUnsupportedFormat

// ErrCellTooLong indicates a cell longer than XLSX allows; CSV export still works.
var ErrCellTooLong = output.ErrCellTooLong

// LoadError represents a failure to load an input file.
// errors.Is(err, ErrUnreadableFile) holds for every LoadError.
type LoadError struct {
	Path   string
	Format models.Format // empty when the format could not be detected
	Err    error
}

func (e *LoadError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("could not read %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not read %q as %s: %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches ErrUnreadableFile.
func (e *LoadError) Is(target error) bool {
	return target == ErrUnreadableFile
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, format models.Format, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}

// IndexError reports a row index outside the table.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("row index %d out of range [0, %d)", e.Index, e.Len)
}

// Is matches ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
