package export

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont        = "Calibri"
	docxFontSize    = 11
	docxHeadingSize = 16

	// DOCXHeading opens every exported document
	DOCXHeading = "Generated Notes"
)

// DOCXExporter writes a heading followed by one paragraph per report line
type DOCXExporter struct{}

// NewDOCXExporter creates a DOCX exporter
func NewDOCXExporter() *DOCXExporter { return &DOCXExporter{} }

func (*DOCXExporter) Extension() string { return FormatDOCX }
func (*DOCXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Export writes text to path
func (*DOCXExporter) Export(text, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}

	addRun(doc.AddParagraph(""), DOCXHeading, true, docxHeadingSize)

	for _, line := range splitLines(text) {
		p := doc.AddParagraph("")
		if strings.TrimSpace(line) == "" {
			continue
		}
		addRun(p, line, false, docxFontSize)
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
