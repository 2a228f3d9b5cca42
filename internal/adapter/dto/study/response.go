package study

import "time"

// MetricsResponse holds the run metrics shown above the result tabs
type MetricsResponse struct {
	Language         string  `json:"language"`
	InferenceSeconds float64 `json:"inference_seconds"`
	TranscriptLength int     `json:"transcript_length"`
}

// KeywordResponse is one ranked keyword, score rounded to three decimals
type KeywordResponse struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// FlashcardResponse is one parsed card
type FlashcardResponse struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// FlashcardsResponse carries the raw card text, its parsed form and the
// cards derived from the structured notes
type FlashcardsResponse struct {
	Raw       string              `json:"raw"`
	Cards     []FlashcardResponse `json:"cards"`
	NoteCards []FlashcardResponse `json:"note_cards"`
}

// QuizItemResponse is one multiple-choice question
type QuizItemResponse struct {
	Number        int      `json:"number"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectLetter string   `json:"correct_letter"`
}

// QuizResponse carries the rendered quiz and its items
type QuizResponse struct {
	Raw   string             `json:"raw"`
	Items []QuizItemResponse `json:"items"`
}

// ResultResponse is the latest run of a session, one field per result tab
type ResultResponse struct {
	RunID           string             `json:"run_id"`
	SessionID       string             `json:"session_id"`
	AudioName       string             `json:"audio_name"`
	Metrics         MetricsResponse    `json:"metrics"`
	Transcript      []string           `json:"transcript"`
	StructuredNotes string             `json:"structured_notes"`
	SmartNotes      string             `json:"smart_notes"`
	Summary         string             `json:"summary"`
	Keywords        []KeywordResponse  `json:"keywords"`
	Flashcards      FlashcardsResponse `json:"flashcards"`
	Quiz            QuizResponse       `json:"quiz"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ExportResponse describes an exported report available for download
type ExportResponse struct {
	Format   string `json:"format"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

// RunResponse is one run history row
type RunResponse struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	AudioName        string    `json:"audio_name"`
	ModelSize        string    `json:"model_size"`
	Status           string    `json:"status"`
	Language         string    `json:"language,omitempty"`
	InferenceSeconds float64   `json:"inference_seconds"`
	TranscriptChars  int       `json:"transcript_chars"`
	Keywords         []string  `json:"keywords,omitempty"`
	Topics           []string  `json:"topics,omitempty"`
	QuizQuestions    int       `json:"quiz_questions"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
