package ai

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/pkg/config"
)

// Transcriber turns a local audio file into a timed transcript
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (*entities.Transcript, error)
}

// TextGenerator completes a single prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider names accepted by LLM_PROVIDER
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Registry builds model clients once per process and hands out the cached
// instance on later calls. Safe for concurrent use.
type Registry struct {
	cfg    *config.Config
	logger *zap.Logger

	mu           sync.Mutex
	transcribers map[entities.ModelSize]Transcriber
	generators   map[string]TextGenerator

	newTranscriber func(size entities.ModelSize) Transcriber
	newGenerator   func(ctx context.Context, provider string) (TextGenerator, error)
}

// NewRegistry creates a registry backed by the configured providers
func NewRegistry(cfg *config.Config, logger *zap.Logger) *Registry {
	r := &Registry{
		cfg:          cfg,
		logger:       logger,
		transcribers: make(map[entities.ModelSize]Transcriber),
		generators:   make(map[string]TextGenerator),
	}
	r.newTranscriber = r.buildTranscriber
	r.newGenerator = r.buildGenerator
	return r
}

// Transcriber returns the transcriber for a model size, creating it on first use
func (r *Registry) Transcriber(size entities.ModelSize) Transcriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.transcribers[size]; ok {
		return t
	}

	t := r.newTranscriber(size)
	r.transcribers[size] = t
	if r.logger != nil {
		r.logger.Info("🧠 Transcriber loaded", zap.String("model_size", string(size)))
	}
	return t
}

// Generator returns the text generator for the configured provider
func (r *Registry) Generator(ctx context.Context) (TextGenerator, error) {
	provider := ProviderGroq
	if r.cfg != nil && r.cfg.LLM.Provider != "" {
		provider = r.cfg.LLM.Provider
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.generators[provider]; ok {
		return g, nil
	}

	g, err := r.newGenerator(ctx, provider)
	if err != nil {
		return nil, err
	}
	r.generators[provider] = g
	if r.logger != nil {
		r.logger.Info("🧠 Text generator loaded", zap.String("provider", provider))
	}
	return g, nil
}

func (r *Registry) buildTranscriber(size entities.ModelSize) Transcriber {
	var cfg *config.AssemblyAIConfig
	if r.cfg != nil {
		cfg = &r.cfg.Assembly
	}
	return NewAssemblyAIClient(cfg, size, r.logger)
}

func (r *Registry) buildGenerator(ctx context.Context, provider string) (TextGenerator, error) {
	switch provider {
	case ProviderGroq:
		var cfg *config.GroqConfig
		if r.cfg != nil {
			cfg = &r.cfg.Groq
		}
		return NewGroqClient(cfg), nil
	case ProviderGemini:
		var cfg *config.GeminiConfig
		if r.cfg != nil {
			cfg = &r.cfg.Gemini
		}
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
