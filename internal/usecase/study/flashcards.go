package study

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

const (
	// DefaultFlashcardInputChars bounds the text handed to the generator
	DefaultFlashcardInputChars = 1500

	// FallbackFlashcard is returned when the generator ignores the card format
	FallbackFlashcard = "Card 1:\nTitle: Key Concept\nPoint 1: Core idea summary\nPoint 2: Important supporting detail\nPoint 3: Practical implication"
)

const flashcardPrompt = `Create %d concise study flashcards from the text below.
Use exactly this format for every card and nothing else:

Card 1:
Title: <short concept name>
Point 1: <key fact>
Point 2: <supporting detail>
Point 3: <practical implication>

Number the cards Card 1:, Card 2:, and so on.

Text:
%s
`

// Generator produces text from a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Flashcards asks a text generator for numbered study cards
type Flashcards struct {
	gen      Generator
	maxChars int
	logger   *zap.Logger
}

// NewFlashcards creates a flashcard generator. maxChars <= 0 selects the default.
func NewFlashcards(gen Generator, maxChars int, logger *zap.Logger) *Flashcards {
	if maxChars <= 0 {
		maxChars = DefaultFlashcardInputChars
	}
	return &Flashcards{gen: gen, maxChars: maxChars, logger: logger}
}

// Generate returns the raw card text. Blank input yields the no-content
// sentinel and output without "Card 1:" is replaced by FallbackFlashcard.
func (f *Flashcards) Generate(ctx context.Context, text string, numCards int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return entities.NoContentMessage, nil
	}
	if f.gen == nil {
		return "", fmt.Errorf("flashcards have no generator")
	}

	out, err := f.gen.Generate(ctx, fmt.Sprintf(flashcardPrompt, numCards, truncateRunes(text, f.maxChars)))
	if err != nil {
		return "", fmt.Errorf("generate flashcards: %w", err)
	}

	if !strings.Contains(out, "Card 1:") {
		if f.logger != nil {
			f.logger.Warn("⚠️ Flashcard output missing card format, using fallback",
				zap.Int("output_length", len(out)),
			)
		}
		return FallbackFlashcard, nil
	}

	return strings.TrimSpace(out), nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var (
	reCard  = regexp.MustCompile(`(?i)^card\s+\d+\s*:`)
	reTitle = regexp.MustCompile(`(?i)^title\s*:\s*(.*)$`)
	rePoint = regexp.MustCompile(`(?i)^point\s+\d+\s*:\s*(.*)$`)
)

// ParseFlashcards reads "Card N:" blocks with "Title:" and "Point n:" lines.
// Points beyond three per card are dropped.
func ParseFlashcards(text string) []entities.Flashcard {
	var cards []entities.Flashcard

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case reCard.MatchString(line):
			cards = append(cards, entities.Flashcard{Points: []string{}})
		case len(cards) == 0:
			continue
		default:
			card := &cards[len(cards)-1]
			if m := reTitle.FindStringSubmatch(line); m != nil {
				card.Title = strings.TrimSpace(m[1])
			} else if m := rePoint.FindStringSubmatch(line); m != nil && len(card.Points) < entities.MaxFlashcardPoints {
				card.Points = append(card.Points, strings.TrimSpace(m[1]))
			}
		}
	}

	return cards
}
