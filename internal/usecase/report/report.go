package report

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

const reportTemplate = `
Note: AI-generated report based on "%s".

SUMMARY
%s

STRUCTURED NOTES
%s

SMART NOTES
%s

FLASHCARDS
%s

QUIZ
%s
`

// Assemble concatenates every text artifact of a run into one plain-text report
func Assemble(b *entities.ResultBundle) string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf(reportTemplate,
		b.AudioName,
		b.Summary,
		b.StructuredNotes,
		b.SmartNotes,
		b.Flashcards,
		b.Quiz,
	)
}

// TranscriptLines renders one "[start → end] text" line per segment
func TranscriptLines(t *entities.Transcript) []string {
	if t == nil {
		return []string{}
	}
	lines := make([]string, 0, len(t.Segments))
	for _, seg := range t.Segments {
		lines = append(lines, FormatSegment(seg))
	}
	return lines
}

// FormatSegment renders a segment with two-decimal second timestamps
func FormatSegment(seg entities.Segment) string {
	return fmt.Sprintf("[%.2fs → %.2fs] %s", seg.Start, seg.End, strings.TrimSpace(seg.Text))
}
