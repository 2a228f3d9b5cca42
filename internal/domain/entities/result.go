package entities

import (
	"time"

	"github.com/google/uuid"
)

// ResultBundle is everything one pipeline run produced. A new run for the
// same session replaces the previous bundle as a whole.
type ResultBundle struct {
	RunID           uuid.UUID   `json:"run_id"`
	SessionID       string      `json:"session_id"`
	AudioName       string      `json:"audio_name"`
	Transcript      *Transcript `json:"transcript"`
	Summary         string      `json:"summary"`
	Keywords        []Keyword   `json:"keywords"`
	Topics          []string    `json:"topics"`
	TopicMap        *TopicMap   `json:"topic_map"`
	StructuredNotes string      `json:"structured_notes"`
	SmartNotes      string      `json:"smart_notes"`
	Flashcards      string      `json:"flashcards"`
	Cards           []Flashcard `json:"cards"`
	NoteCards       []Flashcard `json:"note_cards"`
	Quiz            string      `json:"quiz"`
	QuizItems       []QuizItem  `json:"quiz_items"`
	CreatedAt       time.Time   `json:"created_at"`
}

// TranscriptText returns the transcript text, or "" when missing
func (b *ResultBundle) TranscriptText() string {
	if b == nil || b.Transcript == nil {
		return ""
	}
	return b.Transcript.Text
}
