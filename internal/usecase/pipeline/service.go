package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/voicenotes/internal/usecase/errors"
	"github.com/johnquangdev/voicenotes/internal/usecase/nlp"
	"github.com/johnquangdev/voicenotes/internal/usecase/notes"
	"github.com/johnquangdev/voicenotes/internal/usecase/study"
	"github.com/johnquangdev/voicenotes/pkg/ai"
	"github.com/johnquangdev/voicenotes/pkg/config"
	"github.com/johnquangdev/voicenotes/pkg/runcontext"
)

// SupportedExtensions lists the accepted audio file extensions
var SupportedExtensions = []string{".wav", ".mp3", ".m4a"}

// ModelProvider hands out cached model clients
type ModelProvider interface {
	Transcriber(size entities.ModelSize) ai.Transcriber
	Generator(ctx context.Context) (ai.TextGenerator, error)
}

// Input is one audio file to process
type Input struct {
	SessionID string
	AudioName string
	AudioPath string
	ModelSize entities.ModelSize
}

// Service runs the full audio-to-study-notes chain for one input at a time
type Service interface {
	Process(ctx context.Context, in Input) (*entities.ResultBundle, error)
	Latest(ctx context.Context, sessionID string) (*entities.ResultBundle, error)
	History(ctx context.Context, sessionID string, limit int) ([]*entities.StudyRun, error)
}

type service struct {
	models   ModelProvider
	analyzer *nlp.Analyzer
	quiz     *study.Quiz
	store    repositories.ResultStore
	runs     repositories.StudyRunRepository
	cfg      config.PipelineConfig
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService constructs the pipeline. runs may be nil when run history is disabled.
func NewService(
	models ModelProvider,
	store repositories.ResultStore,
	runs repositories.StudyRunRepository,
	cfg config.PipelineConfig,
	logger *zap.Logger,
) Service {
	return &service{
		models:   models,
		analyzer: nlp.NewAnalyzer(),
		quiz:     study.NewQuiz(nlp.SplitSentences, nil),
		store:    store,
		runs:     runs,
		cfg:      cfg,
		timeout:  runcontext.DefaultTimeout,
		logger:   logger,
	}
}

// ValidateAudioName checks the file extension against SupportedExtensions
func ValidateAudioName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", usecaseErrors.ErrUnsupportedFormat, ext)
}

// Process transcribes the audio, derives every study artifact and stores
// the bundle as the session's latest result, replacing any previous one.
func (s *service) Process(ctx context.Context, in Input) (*entities.ResultBundle, error) {
	if err := ValidateAudioName(in.AudioName); err != nil {
		return nil, err
	}
	if info, err := os.Stat(in.AudioPath); err != nil {
		return nil, fmt.Errorf("stat audio: %w", err)
	} else if info.Size() == 0 {
		return nil, usecaseErrors.ErrEmptyAudio
	}
	if in.ModelSize == "" {
		in.ModelSize = entities.ModelSizeFast
	}

	runID := uuid.New()
	ctx, cancel := runcontext.RunBegin(ctx, runID, in.SessionID, in.AudioName, s.timeout)
	defer cancel()

	if s.logger != nil {
		s.logger.Info("🚀 Pipeline run started",
			append(runFields(ctx), zap.String("model_size", string(in.ModelSize)))...,
		)
	}

	bundle := &entities.ResultBundle{
		RunID:     runID,
		SessionID: in.SessionID,
		AudioName: in.AudioName,
	}
	ctx = runcontext.WithBundle(ctx, bundle)

	err := runcontext.RunEnd(ctx, func(ctx context.Context) error {
		return s.run(ctx, in)
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Pipeline run failed",
				append(runFields(ctx),
					zap.Duration("elapsed", runcontext.Elapsed(ctx)),
					zap.Error(err),
				)...,
			)
		}
		s.recordRun(ctx, entities.NewFailedStudyRun(runID, in.SessionID, in.AudioName, in.ModelSize, err))
		return nil, err
	}

	bundle.CreatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, in.SessionID, bundle); err != nil {
		return nil, &StageError{Stage: StageStore, Err: err}
	}
	s.recordRun(ctx, entities.NewStudyRun(bundle, in.ModelSize))

	if s.logger != nil {
		s.logger.Info("✅ Pipeline run completed",
			append(runFields(ctx),
				zap.Int("keywords", len(bundle.Keywords)),
				zap.Int("topics", len(bundle.Topics)),
				zap.Int("quiz_items", len(bundle.QuizItems)),
				zap.Duration("elapsed", runcontext.Elapsed(ctx)),
			)...,
		)
	}
	return bundle, nil
}

// runFields returns the log fields identifying the run carried by ctx
func runFields(ctx context.Context) []zap.Field {
	meta := runcontext.GetRunMetadata(ctx)
	return []zap.Field{
		zap.String("run_id", meta.RunID.String()),
		zap.String("session_id", meta.SessionID),
		zap.String("audio", meta.AudioName),
	}
}

// run fills the bundle attached to ctx stage by stage
func (s *service) run(ctx context.Context, in Input) error {
	bundle, ok := runcontext.GetBundle(ctx)
	if !ok {
		return errors.New("run context has no result bundle")
	}

	transcriber := s.models.Transcriber(in.ModelSize)
	if transcriber == nil {
		return &StageError{Stage: StageTranscribe, Err: usecaseErrors.ErrTranscriberMissing}
	}
	transcript, err := transcriber.Transcribe(ctx, in.AudioPath)
	if err != nil {
		return &StageError{Stage: StageTranscribe, Err: err}
	}
	bundle.Transcript = transcript
	text := transcript.Text

	gen, err := s.models.Generator(ctx)
	if err != nil {
		return &StageError{Stage: StageSummarize, Err: fmt.Errorf("%w: %v", usecaseErrors.ErrGeneratorNotConfigured, err)}
	}

	summary, err := nlp.NewSummarizer(gen, s.cfg.SummaryChunkWords, s.logger).Summarize(ctx, text)
	if err != nil {
		return &StageError{Stage: StageSummarize, Err: err}
	}
	bundle.Summary = summary

	bundle.Keywords = s.analyzer.ExtractKeywords(text, s.cfg.KeywordCount)
	topics, sentences := s.analyzer.DetectTopics(text, s.cfg.TopicCount)
	bundle.Topics = topics

	bundle.TopicMap = notes.BuildTopicMap(sentences, topics)
	bundle.StructuredNotes = notes.GenerateStructuredNotes(bundle.TopicMap, s.cfg.MaxNoteSentences)
	bundle.SmartNotes = notes.SmartNotes(sentences, topics)
	bundle.NoteCards = notes.CardsFromNotes(bundle.StructuredNotes)

	flashcards, err := study.NewFlashcards(gen, s.cfg.FlashcardInputChars, s.logger).Generate(ctx, text, s.cfg.FlashcardCount)
	if err != nil {
		return &StageError{Stage: StageFlashcards, Err: err}
	}
	bundle.Flashcards = flashcards
	bundle.Cards = study.ParseFlashcards(flashcards)

	bundle.QuizItems = s.quiz.Generate(text, s.cfg.QuizQuestions)
	bundle.Quiz = study.FormatQuiz(bundle.QuizItems)

	return nil
}

func (s *service) recordRun(ctx context.Context, run *entities.StudyRun) {
	if s.runs == nil {
		return
	}
	// History must not fail a run that already produced results.
	if err := s.runs.Create(context.WithoutCancel(ctx), run); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to record run history",
			zap.String("run_id", run.ID.String()),
			zap.Error(err),
		)
	}
}

// Latest returns the session's most recent bundle
func (s *service) Latest(ctx context.Context, sessionID string) (*entities.ResultBundle, error) {
	b, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, usecaseErrors.ErrResultNotFound
	}
	return b, nil
}

// History lists past runs for a session, or all sessions when sessionID is empty
func (s *service) History(ctx context.Context, sessionID string, limit int) ([]*entities.StudyRun, error) {
	if s.runs == nil {
		return nil, usecaseErrors.ErrHistoryDisabled
	}
	if sessionID == "" {
		return s.runs.ListRecent(ctx, limit)
	}
	return s.runs.ListBySession(ctx, sessionID, limit)
}
