package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudyRunStatus is the outcome of a pipeline run
type StudyRunStatus string

const (
	StudyRunStatusCompleted StudyRunStatus = "completed"
	StudyRunStatusFailed    StudyRunStatus = "failed"
)

// StudyRun is the persisted history row for one pipeline run
type StudyRun struct {
	ID               uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID        string                      `json:"session_id" gorm:"type:varchar(64);not null;index"`
	AudioName        string                      `json:"audio_name" gorm:"type:varchar(255);not null"`
	ModelSize        ModelSize                   `json:"model_size" gorm:"type:varchar(20);not null"`
	Status           StudyRunStatus              `json:"status" gorm:"type:varchar(20);not null;index"`
	Language         string                      `json:"language,omitempty" gorm:"type:varchar(20)"`
	InferenceSeconds float64                     `json:"inference_seconds"`
	TranscriptChars  int                         `json:"transcript_chars"`
	Keywords         datatypes.JSONSlice[string] `json:"keywords,omitempty" gorm:"type:jsonb"`
	Topics           datatypes.JSONSlice[string] `json:"topics,omitempty" gorm:"type:jsonb"`
	QuizQuestions    int                         `json:"quiz_questions"`
	ErrorMessage     *string                     `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt        time.Time                   `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (StudyRun) TableName() string {
	return "study_runs"
}

// NewStudyRun creates a completed run record from a result bundle
func NewStudyRun(b *ResultBundle, modelSize ModelSize) *StudyRun {
	run := &StudyRun{
		ID:            b.RunID,
		SessionID:     b.SessionID,
		AudioName:     b.AudioName,
		ModelSize:     modelSize,
		Status:        StudyRunStatusCompleted,
		Topics:        datatypes.JSONSlice[string](b.Topics),
		QuizQuestions: len(b.QuizItems),
		CreatedAt:     b.CreatedAt,
	}

	if b.Transcript != nil {
		run.Language = b.Transcript.Language
		run.InferenceSeconds = b.Transcript.InferenceSeconds
		run.TranscriptChars = len(b.Transcript.Text)
	}

	terms := make([]string, 0, len(b.Keywords))
	for _, k := range b.Keywords {
		terms = append(terms, k.Term)
	}
	run.Keywords = datatypes.JSONSlice[string](terms)

	return run
}

// NewFailedStudyRun creates a failed run record
func NewFailedStudyRun(runID uuid.UUID, sessionID, audioName string, modelSize ModelSize, cause error) *StudyRun {
	msg := cause.Error()
	return &StudyRun{
		ID:           runID,
		SessionID:    sessionID,
		AudioName:    audioName,
		ModelSize:    modelSize,
		Status:       StudyRunStatusFailed,
		ErrorMessage: &msg,
		CreatedAt:    time.Now().UTC(),
	}
}
