package nlp

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

const (
	// MinSummaryWords is the shortest input worth summarising
	MinSummaryWords = 25
	// DefaultChunkWords bounds each window sent to the generator
	DefaultChunkWords = 400
)

const summaryPrompt = `Summarize the following passage of a lecture transcript in 25 to 80 words.
Write plain prose. Do not add a title, bullet points or any commentary.

Passage:
%s`

// Generator produces text from a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer condenses long text by summarising fixed word windows
// independently and joining the results.
type Summarizer struct {
	gen        Generator
	chunkWords int
	logger     *zap.Logger
}

// NewSummarizer creates a summarizer. chunkWords <= 0 selects the default.
func NewSummarizer(gen Generator, chunkWords int, logger *zap.Logger) *Summarizer {
	if chunkWords <= 0 {
		chunkWords = DefaultChunkWords
	}
	return &Summarizer{gen: gen, chunkWords: chunkWords, logger: logger}
}

// ChunkWords splits text on whitespace into windows of at most size words
func ChunkWords(text string, size int) []string {
	words := strings.Fields(text)
	chunks := make([]string, 0, len(words)/size+1)
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// Summarize returns the joined window summaries, or the too-short sentinel
// when text has fewer than MinSummaryWords words.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if len(strings.Fields(text)) < MinSummaryWords {
		return entities.TooShortToSummary, nil
	}
	if s.gen == nil {
		return "", fmt.Errorf("summarizer has no generator")
	}

	chunks := ChunkWords(text, s.chunkWords)
	if s.logger != nil {
		s.logger.Info("📝 Summarizing transcript",
			zap.Int("chunks", len(chunks)),
			zap.Int("chunk_words", s.chunkWords),
		)
	}

	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := s.gen.Generate(ctx, fmt.Sprintf(summaryPrompt, chunk))
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i+1, err)
		}
		parts = append(parts, strings.TrimSpace(out))
	}

	return strings.Join(parts, " "), nil
}
