package pipeline

import "fmt"

// Stage names a pipeline step that can fail
type Stage string

const (
	StageTranscribe Stage = "transcribe"
	StageSummarize  Stage = "summarize"
	StageFlashcards Stage = "flashcards"
	StageStore      Stage = "store"
)

// StageError records which step of a run failed
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
