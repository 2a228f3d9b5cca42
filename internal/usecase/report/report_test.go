package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/voicenotes/internal/usecase/errors"
)

func sampleBundle() *entities.ResultBundle {
	return &entities.ResultBundle{
		RunID:           uuid.MustParse("7b1f3c56-0a0e-4f55-9d4d-1b5a3b1f0c11"),
		SessionID:       "sess-1",
		AudioName:       "lecture.wav",
		Summary:         "Cells divide.",
		StructuredNotes: "\n## CELLS\n• Cells divide.",
		SmartNotes:      "\n# Cells\nKey Points:\n• Cells divide.\nInsight:\n→ Cells divide.",
		Flashcards:      "Card 1:\nTitle: Cells\nPoint 1: divide",
		Quiz:            entities.NoContentMessage,
	}
}

func TestAssemble(t *testing.T) {
	got := Assemble(sampleBundle())
	want := "\nNote: AI-generated report based on \"lecture.wav\".\n\n" +
		"SUMMARY\nCells divide.\n\n" +
		"STRUCTURED NOTES\n\n## CELLS\n• Cells divide.\n\n" +
		"SMART NOTES\n\n# Cells\nKey Points:\n• Cells divide.\nInsight:\n→ Cells divide.\n\n" +
		"FLASHCARDS\nCard 1:\nTitle: Cells\nPoint 1: divide\n\n" +
		"QUIZ\nNo content available.\n"
	if got != want {
		t.Fatalf("Assemble() = %q\nwant %q", got, want)
	}
	if Assemble(nil) != "" {
		t.Fatal("nil bundle should assemble to empty text")
	}
}

func TestFormatSegment(t *testing.T) {
	got := FormatSegment(entities.Segment{Start: 0, End: 2.456, Text: " Hello class. "})
	if got != "[0.00s → 2.46s] Hello class." {
		t.Fatalf("FormatSegment() = %q", got)
	}
	if lines := TranscriptLines(nil); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}

type fakeUploader struct {
	objects map[string]string
	err     error
	urlErr  error
}

func (f *fakeUploader) UploadLocalFile(_ context.Context, objectName, path, _ string) error {
	if f.err != nil {
		return f.err
	}
	if f.objects == nil {
		f.objects = map[string]string{}
	}
	f.objects[objectName] = path
	return nil
}

func (f *fakeUploader) GetFileURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://files.example.com/" + objectName + "?sig=1", nil
}

func TestService_ExportLocal(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, nil, nil)

	files, err := svc.ExportAll(context.Background(), sampleBundle())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}

	for _, f := range files {
		want := filepath.Join(dir, "sess-1", "AI_Report."+f.Format)
		if f.Path != want {
			t.Fatalf("path = %s, want %s", f.Path, want)
		}
		if info, err := os.Stat(f.Path); err != nil || info.Size() == 0 {
			t.Fatalf("expected non-empty file at %s: %v", f.Path, err)
		}
		if f.URL != "" {
			t.Fatalf("local export should not have a URL")
		}
	}
}

func TestService_ExportUploads(t *testing.T) {
	up := &fakeUploader{}
	svc := NewService(t.TempDir(), up, nil)

	f, err := svc.Export(context.Background(), sampleBundle(), "pdf")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	wantObject := "sess-1/7b1f3c56-0a0e-4f55-9d4d-1b5a3b1f0c11/AI_Report.pdf"
	if f.ObjectName != wantObject || up.objects[wantObject] != f.Path {
		t.Fatalf("unexpected upload %+v %v", f, up.objects)
	}
	if !strings.HasPrefix(f.URL, "https://files.example.com/") {
		t.Fatalf("unexpected url %q", f.URL)
	}
}

func TestService_ExportErrors(t *testing.T) {
	svc := NewService(t.TempDir(), nil, nil)

	if _, err := svc.Export(context.Background(), nil, "pdf"); !errors.Is(err, usecaseErrors.ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound, got %v", err)
	}
	if _, err := svc.Export(context.Background(), sampleBundle(), "odt"); !errors.Is(err, usecaseErrors.ErrUnsupportedReport) {
		t.Fatalf("expected ErrUnsupportedReport, got %v", err)
	}

	failing := NewService(t.TempDir(), &fakeUploader{err: errors.New("bucket gone")}, nil)
	if _, err := failing.Export(context.Background(), sampleBundle(), "docx"); !errors.Is(err, usecaseErrors.ErrObjectStorage) {
		t.Fatalf("expected ErrObjectStorage, got %v", err)
	}

	unsigned := NewService(t.TempDir(), &fakeUploader{urlErr: errors.New("no credentials")}, nil)
	if _, err := unsigned.Export(context.Background(), sampleBundle(), "pdf"); !errors.Is(err, usecaseErrors.ErrObjectStorage) {
		t.Fatalf("expected ErrObjectStorage on presign, got %v", err)
	}
}

func TestService_WithPDFFont(t *testing.T) {
	svc := NewService(t.TempDir(), nil, nil).WithPDFFont(filepath.Join(t.TempDir(), "missing.ttf"))

	if _, err := svc.Export(context.Background(), sampleBundle(), "pdf"); err == nil {
		t.Fatal("expected pdf export to fail with a missing font")
	}
	if _, err := svc.Export(context.Background(), sampleBundle(), "docx"); err != nil {
		t.Fatalf("docx does not use the font: %v", err)
	}
}

func TestSessionDir(t *testing.T) {
	svc := NewService("out", nil, nil)
	tests := map[string]string{
		"abc-123":   filepath.Join("out", "abc-123"),
		"../../etc": filepath.Join("out", "_etc"),
		"":          filepath.Join("out", "default"),
	}
	for in, want := range tests {
		if got := svc.SessionDir(in); got != want {
			t.Errorf("SessionDir(%q) = %q, want %q", in, got, want)
		}
	}
}
