package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/pkg/config"
)

const defaultPollInterval = 3 * time.Second

// AssemblyAIClient transcribes local audio files through the AssemblyAI SDK.
// One client is bound to one model size.
type AssemblyAIClient struct {
	client       *aai.Client
	speechModel  aai.SpeechModel
	modelSize    entities.ModelSize
	pollInterval time.Duration
	logger       *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig, size entities.ModelSize, logger *zap.Logger) *AssemblyAIClient {
	var apiKey, baseURL string
	interval := defaultPollInterval
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
		if cfg.PollInterval > 0 {
			interval = cfg.PollInterval
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}

	return &AssemblyAIClient{
		client:       aai.NewClientWithOptions(opts...),
		speechModel:  speechModelFor(size),
		modelSize:    size,
		pollInterval: interval,
		logger:       logger,
	}
}

func speechModelFor(size entities.ModelSize) aai.SpeechModel {
	if size == entities.ModelSizeBalanced {
		return aai.SpeechModelBest
	}
	return aai.SpeechModelNano
}

// Transcribe uploads the file, submits it with language detection enabled
// and polls until the transcript completes. Segments come from the sentence
// endpoint; timestamps are converted from milliseconds to seconds.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, path string) (*entities.Transcript, error) {
	started := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	if c.logger != nil {
		c.logger.Info("📤 Uploading audio to AssemblyAI",
			zap.String("file", filepath.Base(path)),
			zap.String("model_size", string(c.modelSize)),
		)
	}

	uploadURL, err := c.client.Upload(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeechModel:       c.speechModel,
		LanguageDetection: aai.Bool(true),
	}
	submitted, err := c.client.Transcripts.SubmitFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("submit transcript: %w", err)
	}
	if submitted.ID == nil {
		return nil, errors.New("submit transcript: missing transcript id")
	}
	transcriptID := *submitted.ID

	if c.logger != nil {
		c.logger.Info("🎙️ Transcription submitted",
			zap.String("transcript_id", transcriptID),
			zap.String("status", string(submitted.Status)),
		)
	}

	done, err := c.waitForCompletion(ctx, transcriptID)
	if err != nil {
		return nil, err
	}

	segments, err := c.segments(ctx, transcriptID, done)
	if err != nil {
		return nil, err
	}

	language := string(done.LanguageCode)
	if language == "" {
		language = "unknown"
	}

	tr := entities.NewTranscript(segments, language, c.modelSize, time.Since(started).Seconds())

	if c.logger != nil {
		c.logger.Info("✅ Transcription completed",
			zap.String("transcript_id", transcriptID),
			zap.String("language", tr.Language),
			zap.Int("segments", len(tr.Segments)),
			zap.Float64("inference_seconds", tr.InferenceSeconds),
		)
	}
	return tr, nil
}

func (c *AssemblyAIClient) waitForCompletion(ctx context.Context, transcriptID string) (aai.Transcript, error) {
	var result aai.Transcript

	poll := func() error {
		t, err := c.client.Transcripts.Get(ctx, transcriptID)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("get transcript: %w", err))
		}

		switch t.Status {
		case aai.TranscriptStatusCompleted:
			result = t
			return nil
		case aai.TranscriptStatusError:
			msg := "unknown error"
			if t.Error != nil {
				msg = *t.Error
			}
			return backoff.Permanent(fmt.Errorf("transcription failed: %s", msg))
		default:
			return fmt.Errorf("transcript %s is %s", transcriptID, t.Status)
		}
	}

	bo := backoff.WithContext(backoff.NewConstantBackOff(c.pollInterval), ctx)
	if err := backoff.Retry(poll, bo); err != nil {
		return aai.Transcript{}, err
	}
	return result, nil
}

func (c *AssemblyAIClient) segments(ctx context.Context, transcriptID string, t aai.Transcript) ([]entities.Segment, error) {
	resp, err := c.client.Transcripts.GetSentences(ctx, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("get sentences: %w", err)
	}

	segments := make([]entities.Segment, 0, len(resp.Sentences))
	for _, s := range resp.Sentences {
		if s.Text == nil {
			continue
		}
		text := strings.TrimSpace(*s.Text)
		if text == "" {
			continue
		}
		seg := entities.Segment{Text: text}
		if s.Start != nil {
			seg.Start = float64(*s.Start) / 1000.0
		}
		if s.End != nil {
			seg.End = float64(*s.End) / 1000.0
		}
		segments = append(segments, seg)
	}

	// Sentence endpoint returned nothing usable; keep the full text as one span.
	if len(segments) == 0 && t.Text != nil && strings.TrimSpace(*t.Text) != "" {
		segments = append(segments, entities.Segment{Text: strings.TrimSpace(*t.Text)})
	}
	return segments, nil
}
