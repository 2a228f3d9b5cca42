package presenter

import (
	studyDTO "github.com/johnquangdev/voicenotes/internal/adapter/dto/study"
	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/usecase/report"
)

// ToResultResponse converts a result bundle to the tabbed result DTO
func ToResultResponse(b *entities.ResultBundle) *studyDTO.ResultResponse {
	if b == nil {
		return nil
	}

	resp := &studyDTO.ResultResponse{
		RunID:           b.RunID.String(),
		SessionID:       b.SessionID,
		AudioName:       b.AudioName,
		Transcript:      report.TranscriptLines(b.Transcript),
		StructuredNotes: b.StructuredNotes,
		SmartNotes:      b.SmartNotes,
		Summary:         b.Summary,
		Keywords:        make([]studyDTO.KeywordResponse, 0, len(b.Keywords)),
		Flashcards: studyDTO.FlashcardsResponse{
			Raw:       b.Flashcards,
			Cards:     toFlashcardResponses(b.Cards),
			NoteCards: toFlashcardResponses(b.NoteCards),
		},
		Quiz: studyDTO.QuizResponse{
			Raw:   b.Quiz,
			Items: make([]studyDTO.QuizItemResponse, 0, len(b.QuizItems)),
		},
		CreatedAt: b.CreatedAt,
	}

	if b.Transcript != nil {
		resp.Metrics = studyDTO.MetricsResponse{
			Language:         b.Transcript.Language,
			InferenceSeconds: b.Transcript.InferenceSeconds,
			TranscriptLength: len(b.Transcript.Text),
		}
	}

	for _, k := range b.Keywords {
		resp.Keywords = append(resp.Keywords, studyDTO.KeywordResponse{
			Term:  k.Term,
			Score: entities.RoundScore(k.Score),
		})
	}
	for _, q := range b.QuizItems {
		resp.Quiz.Items = append(resp.Quiz.Items, studyDTO.QuizItemResponse{
			Number:        q.Number,
			Question:      q.Question,
			Options:       q.Options,
			CorrectLetter: q.CorrectLetter,
		})
	}

	return resp
}

func toFlashcardResponses(cards []entities.Flashcard) []studyDTO.FlashcardResponse {
	out := make([]studyDTO.FlashcardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, studyDTO.FlashcardResponse{
			Title:  c.Title,
			Points: c.Points,
		})
	}
	return out
}

// ToExportResponse converts an exported report to its DTO
func ToExportResponse(e *report.Exported) *studyDTO.ExportResponse {
	if e == nil {
		return nil
	}
	return &studyDTO.ExportResponse{
		Format:   e.Format,
		FileName: e.FileName,
		URL:      e.URL,
	}
}

// ToRunResponses converts run history rows to DTOs
func ToRunResponses(runs []*entities.StudyRun) []studyDTO.RunResponse {
	out := make([]studyDTO.RunResponse, 0, len(runs))
	for _, r := range runs {
		if r == nil {
			continue
		}
		item := studyDTO.RunResponse{
			ID:               r.ID.String(),
			SessionID:        r.SessionID,
			AudioName:        r.AudioName,
			ModelSize:        string(r.ModelSize),
			Status:           string(r.Status),
			Language:         r.Language,
			InferenceSeconds: r.InferenceSeconds,
			TranscriptChars:  r.TranscriptChars,
			Keywords:         []string(r.Keywords),
			Topics:           []string(r.Topics),
			QuizQuestions:    r.QuizQuestions,
			CreatedAt:        r.CreatedAt,
		}
		if r.ErrorMessage != nil {
			item.Error = *r.ErrorMessage
		}
		out = append(out, item)
	}
	return out
}
