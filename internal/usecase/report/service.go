package report

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/export"
	usecaseErrors "github.com/johnquangdev/voicenotes/internal/usecase/errors"
)

// Uploader stores exported files remotely and hands out download links
type Uploader interface {
	UploadLocalFile(ctx context.Context, objectName, path, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Exported describes one written report file
type Exported struct {
	Format      string `json:"format"`
	FileName    string `json:"file_name"`
	Path        string `json:"-"`
	ContentType string `json:"content_type"`
	ObjectName  string `json:"object_name,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Service writes reports under <outputDir>/<session>/ and optionally
// mirrors them to object storage.
type Service struct {
	outputDir string
	uploader  Uploader
	opts      export.Options
	logger    *zap.Logger
}

// NewService creates a report service. A nil uploader keeps reports local.
func NewService(outputDir string, uploader Uploader, logger *zap.Logger) *Service {
	if outputDir == "" {
		outputDir = "outputs"
	}
	return &Service{outputDir: outputDir, uploader: uploader, logger: logger}
}

// WithPDFFont embeds the TrueType font at path in PDF reports
func (s *Service) WithPDFFont(path string) *Service {
	s.opts.PDFFontPath = path
	return s
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SessionDir returns the directory a session's reports are written to
func (s *Service) SessionDir(sessionID string) string {
	name := unsafeChars.ReplaceAllString(sessionID, "_")
	if name == "" || name == "_" {
		name = "default"
	}
	return filepath.Join(s.outputDir, name)
}

// Export assembles the bundle's report and writes it in one format
func (s *Service) Export(ctx context.Context, b *entities.ResultBundle, format string) (*Exported, error) {
	if b == nil {
		return nil, usecaseErrors.ErrResultNotFound
	}

	exporter, err := export.ForFormat(format, s.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrUnsupportedReport, format)
	}

	dir := s.SessionDir(b.SessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	out := &Exported{
		Format:      exporter.Extension(),
		FileName:    export.FileName(exporter),
		ContentType: exporter.ContentType(),
	}
	out.Path = filepath.Join(dir, out.FileName)

	if err := exporter.Export(Assemble(b), out.Path); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("📄 Report exported",
			zap.String("session_id", b.SessionID),
			zap.String("format", out.Format),
			zap.String("path", out.Path),
		)
	}

	if s.uploader == nil {
		return out, nil
	}

	out.ObjectName = path.Join(filepath.Base(dir), b.RunID.String(), out.FileName)
	if err := s.uploader.UploadLocalFile(ctx, out.ObjectName, out.Path, out.ContentType); err != nil {
		return nil, fmt.Errorf("upload report: %w: %w", usecaseErrors.ErrObjectStorage, err)
	}
	url, err := s.uploader.GetFileURL(ctx, out.ObjectName, 0)
	if err != nil {
		return nil, fmt.Errorf("presign report: %w: %w", usecaseErrors.ErrObjectStorage, err)
	}
	out.URL = url

	if s.logger != nil {
		s.logger.Info("☁️ Report uploaded",
			zap.String("session_id", b.SessionID),
			zap.String("object", out.ObjectName),
		)
	}
	return out, nil
}

// ExportAll writes both PDF and DOCX
func (s *Service) ExportAll(ctx context.Context, b *entities.ResultBundle) ([]*Exported, error) {
	var files []*Exported
	for _, format := range []string{export.FormatPDF, export.FormatDOCX} {
		f, err := s.Export(ctx, b, format)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
