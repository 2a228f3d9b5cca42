package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfUTF8Font   = "body"
	pdfFontSize   = 11
	pdfLineHeight = 5
	pdfSpacer     = 2.1 // 6pt in mm
	pdfMargin     = 20
)

// UTF8FontPaths are the TrueType fonts looked up when no font is configured
var UTF8FontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
}

// glyphs outside the core font encoding
var pdfReplacer = strings.NewReplacer(
	"→", "->",
	"“", "\"",
	"”", "\"",
	"‘", "'",
	"’", "'",
)

// FindUTF8Font returns the first of UTF8FontPaths present on disk, or ""
func FindUTF8Font() string {
	for _, p := range UTF8FontPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// ResolveFontPath returns configured when set, otherwise a system font
func ResolveFontPath(configured string) string {
	if configured != "" {
		return configured
	}
	return FindUTF8Font()
}

// PDFExporter renders each report line as its own paragraph on A4 pages.
// With a TrueType font the text is embedded as UTF-8; without one it falls
// back to Helvetica and cp1252, where other characters are lost.
type PDFExporter struct {
	fontPath string
}

// NewPDFExporter creates a PDF exporter. An empty fontPath selects the core font.
func NewPDFExporter(fontPath string) *PDFExporter { return &PDFExporter{fontPath: fontPath} }

func (*PDFExporter) Extension() string   { return FormatPDF }
func (*PDFExporter) ContentType() string { return "application/pdf" }

// Export writes text to path. Empty lines only add vertical space.
func (e *PDFExporter) Export(text, path string) error {
	fontDir := ""
	if e.fontPath != "" {
		fontDir = filepath.Dir(e.fontPath)
	}
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)

	encode := func(s string) string { return s }
	if e.fontPath != "" {
		pdf.AddUTF8Font(pdfUTF8Font, "", filepath.Base(e.fontPath))
		pdf.AddPage()
		pdf.SetFont(pdfUTF8Font, "", pdfFontSize)
	} else {
		pdf.AddPage()
		pdf.SetFont(pdfFont, "", pdfFontSize)
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		encode = func(s string) string { return tr(pdfReplacer.Replace(s)) }
	}

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) != "" {
			pdf.MultiCell(0, pdfLineHeight, encode(line), "", "L", false)
		}
		pdf.Ln(pdfSpacer)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
