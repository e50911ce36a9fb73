// Package rowcoder provides row-by-row human coding of tabular files.
package rowcoder

import (
	"go.uber.org/zap"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/output"
)

// Options configures a coding session.
type Options struct {
	// StartAtUncoded places the cursor on the first uncoded row instead of row 0.
	StartAtUncoded bool
	// SheetName is the sheet written on Excel export.
	// If empty, defaults to "data".
	SheetName string
	// Logger receives session events. If nil, logging is discarded.
	Logger *zap.Logger
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	return Options{
		SheetName: output.DefaultSheetName,
	}
}

func (o Options) sheetName() string {
	if o.SheetName != "" {
		return o.SheetName
	}
	return output.DefaultSheetName
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
