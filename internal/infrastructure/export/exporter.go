package export

import (
	"fmt"
	"strings"
)

// Format names accepted by ForFormat
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// ReportBaseName is the file name, without extension, of every exported report
const ReportBaseName = "AI_Report"

// Exporter writes a plain-text report to a document file
type Exporter interface {
	Export(text, path string) error
	Extension() string
	ContentType() string
}

// Options tune the exporters returned by ForFormat
type Options struct {
	// PDFFontPath is a TrueType font embedded in PDFs. Empty keeps the
	// core Helvetica font.
	PDFFontPath string
}

// ForFormat returns the exporter for "pdf" or "docx" (case-insensitive)
func ForFormat(format string, opts Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatPDF:
		return NewPDFExporter(opts.PDFFontPath), nil
	case FormatDOCX:
		return NewDOCXExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// FileName returns AI_Report.<ext> for the exporter
func FileName(e Exporter) string {
	return ReportBaseName + "." + e.Extension()
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
