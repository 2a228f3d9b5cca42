package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/voicenotes/internal/usecase/errors"
	"github.com/johnquangdev/voicenotes/pkg/ai"
	"github.com/johnquangdev/voicenotes/pkg/config"
)

const lecture = "Cats are mammals that purr. Dogs are mammals that bark loudly. " +
	"Fish live in water and breathe through gills. Many mammals live on land. " +
	"Water covers most of the planet surface."

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(context.Context, string) (*entities.Transcript, error) {
	if f.err != nil {
		return nil, f.err
	}
	segs := []entities.Segment{{Start: 0, End: 4.2, Text: f.text}}
	return entities.NewTranscript(segs, "en", entities.ModelSizeFast, 0.5), nil
}

type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	failOn  string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)

	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return "", errors.New("model unavailable")
	}
	if strings.Contains(prompt, "flashcards") {
		return "Card 1:\nTitle: Mammals\nPoint 1: Cats purr\nPoint 2: Dogs bark", nil
	}
	return "Animals differ.", nil
}

type fakeModels struct {
	transcriber ai.Transcriber
	gen         ai.TextGenerator
	genErr      error
	sizes       []entities.ModelSize
}

func (f *fakeModels) Transcriber(size entities.ModelSize) ai.Transcriber {
	f.sizes = append(f.sizes, size)
	return f.transcriber
}

func (f *fakeModels) Generator(context.Context) (ai.TextGenerator, error) {
	return f.gen, f.genErr
}

type fakeRuns struct {
	created []*entities.StudyRun
}

func (f *fakeRuns) Create(_ context.Context, run *entities.StudyRun) error {
	f.created = append(f.created, run)
	return nil
}
func (f *fakeRuns) FindByID(context.Context, uuid.UUID) (*entities.StudyRun, error) { return nil, nil }
func (f *fakeRuns) ListRecent(context.Context, int) ([]*entities.StudyRun, error) {
	return f.created, nil
}
func (f *fakeRuns) ListBySession(_ context.Context, sessionID string, _ int) ([]*entities.StudyRun, error) {
	var out []*entities.StudyRun
	for _, r := range f.created {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func pipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{
		KeywordCount:        10,
		TopicCount:          5,
		MaxNoteSentences:    5,
		FlashcardCount:      5,
		QuizQuestions:       5,
		SummaryChunkWords:   400,
		FlashcardInputChars: 1500,
	}
}

func writeAudio(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func newTestService(t *testing.T, models *fakeModels, runs *fakeRuns) Service {
	t.Helper()
	ms := cache.NewMemoryStore()
	t.Cleanup(func() { ms.Close() })
	if runs == nil {
		return NewService(models, cache.NewResultStore(ms, 0), nil, pipelineConfig(), nil)
	}
	return NewService(models, cache.NewResultStore(ms, 0), runs, pipelineConfig(), nil)
}

func TestProcess(t *testing.T) {
	models := &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{}}
	runs := &fakeRuns{}
	svc := newTestService(t, models, runs)

	in := Input{SessionID: "s1", AudioName: "lecture.mp3", AudioPath: writeAudio(t, "a.mp3", []byte("x")), ModelSize: entities.ModelSizeBalanced}
	b, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if len(models.sizes) != 1 || models.sizes[0] != entities.ModelSizeBalanced {
		t.Fatalf("transcriber requested with %v", models.sizes)
	}
	if b.TranscriptText() != lecture || b.AudioName != "lecture.mp3" {
		t.Fatalf("unexpected bundle %+v", b)
	}
	if b.Summary != "Animals differ." {
		t.Fatalf("unexpected summary %q", b.Summary)
	}
	if len(b.Keywords) == 0 || len(b.Keywords) > 10 {
		t.Fatalf("unexpected keywords %+v", b.Keywords)
	}
	if len(b.Topics) == 0 || b.TopicMap.Len() != len(b.Topics) {
		t.Fatalf("topic map keys must equal topics: %v vs %v", b.TopicMap.Topics(), b.Topics)
	}
	if !strings.Contains(b.StructuredNotes, "## ") || !strings.Contains(b.SmartNotes, "Key Points:") {
		t.Fatalf("unexpected notes %q / %q", b.StructuredNotes, b.SmartNotes)
	}
	if len(b.Cards) != 1 || b.Cards[0].Title != "Mammals" {
		t.Fatalf("unexpected cards %+v", b.Cards)
	}
	if len(b.QuizItems) == 0 || !strings.Contains(b.Quiz, "Answer: ") {
		t.Fatalf("unexpected quiz %q", b.Quiz)
	}

	latest, err := svc.Latest(context.Background(), "s1")
	if err != nil || latest.RunID != b.RunID {
		t.Fatalf("latest = %+v, %v", latest, err)
	}

	if len(runs.created) != 1 || runs.created[0].Status != entities.StudyRunStatusCompleted {
		t.Fatalf("expected one completed run, got %+v", runs.created)
	}
}

func TestProcess_NoteCardsFollowTopics(t *testing.T) {
	models := &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{}}
	svc := newTestService(t, models, nil)

	in := Input{SessionID: "s1", AudioName: "lecture.mp3", AudioPath: writeAudio(t, "a.mp3", []byte("x"))}
	b, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	var want []string
	for _, e := range b.TopicMap.Entries {
		if len(e.Sentences) > 0 {
			want = append(want, strings.ToUpper(e.Topic))
		}
	}
	if len(want) == 0 || len(b.NoteCards) != len(want) {
		t.Fatalf("expected %d note cards, got %+v", len(want), b.NoteCards)
	}
	for i, c := range b.NoteCards {
		if c.Title != want[i] {
			t.Fatalf("card %d title = %q, want %q", i, c.Title, want[i])
		}
		if len(c.Points) == 0 || len(c.Points) > entities.MaxFlashcardPoints {
			t.Fatalf("card %d has %d points", i, len(c.Points))
		}
	}
}

func TestProcess_LogsRunMetadata(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ms := cache.NewMemoryStore()
	t.Cleanup(func() { ms.Close() })
	models := &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{}}
	svc := NewService(models, cache.NewResultStore(ms, 0), nil, pipelineConfig(), zap.New(core))

	in := Input{SessionID: "s9", AudioName: "talk.wav", AudioPath: writeAudio(t, "a.wav", []byte("x"))}
	b, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	for _, msg := range []string{"🚀 Pipeline run started", "✅ Pipeline run completed"} {
		entries := logs.FilterMessage(msg).All()
		if len(entries) != 1 {
			t.Fatalf("expected one %q entry, got %d", msg, len(entries))
		}
		fields := entries[0].ContextMap()
		if fields["run_id"] != b.RunID.String() || fields["session_id"] != "s9" || fields["audio"] != "talk.wav" {
			t.Fatalf("%q logged %v", msg, fields)
		}
	}
}

func TestProcess_OverwritesPreviousResult(t *testing.T) {
	models := &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{}}
	svc := newTestService(t, models, nil)
	path := writeAudio(t, "a.wav", []byte("x"))

	first, _ := svc.Process(context.Background(), Input{SessionID: "s", AudioName: "one.wav", AudioPath: path})
	second, err := svc.Process(context.Background(), Input{SessionID: "s", AudioName: "two.wav", AudioPath: path})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	latest, _ := svc.Latest(context.Background(), "s")
	if latest.RunID != second.RunID || latest.RunID == first.RunID || latest.AudioName != "two.wav" {
		t.Fatalf("latest should be the second run, got %+v", latest)
	}
}

func TestProcess_Validation(t *testing.T) {
	models := &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{}}
	svc := newTestService(t, models, nil)

	_, err := svc.Process(context.Background(), Input{SessionID: "s", AudioName: "notes.txt", AudioPath: writeAudio(t, "n.txt", []byte("x"))})
	if !errors.Is(err, usecaseErrors.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}

	_, err = svc.Process(context.Background(), Input{SessionID: "s", AudioName: "a.wav", AudioPath: writeAudio(t, "a.wav", nil)})
	if !errors.Is(err, usecaseErrors.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
}

func TestProcess_StageFailures(t *testing.T) {
	tests := []struct {
		name   string
		models *fakeModels
		stage  Stage
	}{
		{
			name:   "transcription",
			models: &fakeModels{transcriber: &fakeTranscriber{err: errors.New("upload failed")}, gen: &fakeGenerator{}},
			stage:  StageTranscribe,
		},
		{
			name:   "no transcriber",
			models: &fakeModels{gen: &fakeGenerator{}},
			stage:  StageTranscribe,
		},
		{
			name:   "generator unavailable",
			models: &fakeModels{transcriber: &fakeTranscriber{text: lecture}, genErr: errors.New("no key")},
			stage:  StageSummarize,
		},
		{
			name:   "summary",
			models: &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{failOn: "Summarize"}},
			stage:  StageSummarize,
		},
		{
			name:   "flashcards",
			models: &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{failOn: "flashcards"}},
			stage:  StageFlashcards,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := &fakeRuns{}
			svc := newTestService(t, tt.models, runs)

			_, err := svc.Process(context.Background(), Input{SessionID: "s", AudioName: "a.wav", AudioPath: writeAudio(t, "a.wav", []byte("x"))})
			var se *StageError
			if !errors.As(err, &se) || se.Stage != tt.stage {
				t.Fatalf("expected %s stage error, got %v", tt.stage, err)
			}

			if _, err := svc.Latest(context.Background(), "s"); !errors.Is(err, usecaseErrors.ErrResultNotFound) {
				t.Fatalf("failed run must not store a result, got %v", err)
			}
			if len(runs.created) != 1 || runs.created[0].Status != entities.StudyRunStatusFailed {
				t.Fatalf("expected one failed run, got %+v", runs.created)
			}
		})
	}
}

func TestProcess_ShortTranscriptUsesSentinels(t *testing.T) {
	gen := &fakeGenerator{}
	models := &fakeModels{transcriber: &fakeTranscriber{text: "Hello there."}, gen: gen}
	svc := newTestService(t, models, nil)

	b, err := svc.Process(context.Background(), Input{SessionID: "s", AudioName: "a.m4a", AudioPath: writeAudio(t, "a.m4a", []byte("x"))})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if b.Summary != entities.TooShortToSummary {
		t.Fatalf("expected short-text sentinel, got %q", b.Summary)
	}
	if len(b.Topics) != 0 || b.StructuredNotes != entities.NoTopicsMessage || b.SmartNotes != entities.NoTopicsMessage {
		t.Fatalf("single sentence should yield no topics: %+v", b)
	}
	if len(b.QuizItems) != 1 {
		t.Fatalf("expected a single quiz item, got %d", len(b.QuizItems))
	}
	for _, p := range gen.prompts {
		if strings.Contains(p, "Summarize") {
			t.Fatal("summary should not call the generator for short text")
		}
	}
}

func TestHistory(t *testing.T) {
	models := &fakeModels{transcriber: &fakeTranscriber{text: lecture}, gen: &fakeGenerator{}}

	noHistory := newTestService(t, models, nil)
	if _, err := noHistory.History(context.Background(), "s", 10); !errors.Is(err, usecaseErrors.ErrHistoryDisabled) {
		t.Fatalf("expected ErrHistoryDisabled, got %v", err)
	}

	runs := &fakeRuns{}
	svc := newTestService(t, models, runs)
	path := writeAudio(t, "a.wav", []byte("x"))
	svc.Process(context.Background(), Input{SessionID: "a", AudioName: "a.wav", AudioPath: path})
	svc.Process(context.Background(), Input{SessionID: "b", AudioName: "b.wav", AudioPath: path})

	mine, _ := svc.History(context.Background(), "a", 10)
	all, _ := svc.History(context.Background(), "", 10)
	if len(mine) != 1 || len(all) != 2 {
		t.Fatalf("unexpected history: mine=%d all=%d", len(mine), len(all))
	}
}

func TestValidateAudioName(t *testing.T) {
	for _, name := range []string{"a.wav", "B.MP3", "x.m4a"} {
		if err := ValidateAudioName(name); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	for _, name := range []string{"a.ogg", "noext", ""} {
		if err := ValidateAudioName(name); !errors.Is(err, usecaseErrors.ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}
