package rowcoder

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/output"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/parser"
)

// Session is one editing session over one loaded file. It owns the table
// and cursor from Open until Close; loading another file means opening a
// new Session.
type Session struct {
	// ID identifies the session in logs.
	ID string
	// Path is the file the session was loaded from.
	Path string
	// Format is the format the file was decoded as.
	Format models.Format
	// AddedLabels lists label columns that were synthesized on load.
	AddedLabels []models.Label
	// OpenedAt is when the file was loaded.
	OpenedAt time.Time

	coder  *Coder
	opts   Options
	logger *zap.Logger
}

// Open loads path and starts a session. On failure no session is
// returned and the error matches ErrUnreadableFile.
func Open(path string, opts Options) (*Session, error) {
	table, format, err := parser.ReadFile(path)
	if err != nil {
		return nil, NewLoadError(path, format, err)
	}
	return newSession(path, format, table, opts), nil
}

// OpenReader starts a session from an uploaded stream. name is the
// upload's file name and selects the format.
func OpenReader(r io.Reader, name string, opts Options) (*Session, error) {
	format, err := parser.DetectFormat(name)
	if err != nil {
		return nil, NewLoadError(name, "", err)
	}
	table, err := parser.Read(r, format)
	if err != nil {
		return nil, NewLoadError(name, format, err)
	}
	return newSession(name, format, table, opts), nil
}

func newSession(path string, format models.Format, table *models.Table, opts Options) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Path:        path,
		Format:      format,
		AddedLabels: MissingLabels(table),
		OpenedAt:    time.Now(),
		opts:        opts,
	}
	s.logger = opts.logger().With(zap.String("session", s.ID))
	s.coder = NewCoder(table, s.logger)

	if opts.StartAtUncoded {
		if idx, ok := s.coder.FirstUncoded(); ok {
			s.coder.Jump(idx)
		}
	}

	s.logger.Info("Session opened",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns)),
		zap.Int("labels_added", len(s.AddedLabels)),
		zap.Int("cursor", s.coder.Cursor()))
	return s
}

// Coder returns the session's Row Coder, or nil after Close.
func (s *Session) Coder() *Coder {
	return s.coder
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.coder == nil
}

// Export writes the current table to path in the given format.
func (s *Session) Export(path string, format models.Format) error {
	if s.Closed() {
		return ErrSessionClosed
	}
	if err := output.WriteFile(path, s.coder.Table(), format, s.opts.sheetName()); err != nil {
		s.logger.Warn("Export failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("export failed: %w", err)
	}
	p := s.coder.Progress()
	s.logger.Info("Table exported",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("rows", p.Total),
		zap.Int("coded", p.Coded))
	return nil
}

// ExportTo encodes the current table to w, for download-style callers.
func (s *Session) ExportTo(w io.Writer, format models.Format) error {
	if s.Closed() {
		return ErrSessionClosed
	}
	return output.Write(w, s.coder.Table(), format, s.opts.sheetName())
}

// SuggestedOutput returns "<base>_coded.<ext>" in dir, or next to the
// source file when dir is empty.
func (s *Session) SuggestedOutput(format models.Format, dir string) string {
	return output.OutputName(s.Path, format, dir)
}

// Name returns the base name of the source file.
func (s *Session) Name() string {
	return filepath.Base(s.Path)
}

// Close ends the session and releases the table. Calling Close more than
// once is a no-op.
func (s *Session) Close() error {
	if s.Closed() {
		return nil
	}
	p := s.coder.Progress()
	s.logger.Info("Session closed",
		zap.Int("coded", p.Coded),
		zap.Int("rows", p.Total),
		zap.Duration("duration", time.Since(s.OpenedAt)))
	s.coder = nil
	return nil
}
