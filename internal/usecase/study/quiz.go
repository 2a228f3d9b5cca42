package study

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

const (
	minQuestionRunes = 40
	maxQuestionRunes = 160
	maxDistractors   = 3
)

var optionLetters = []string{"A", "B", "C", "D"}

// Quiz builds multiple-choice questions from transcript sentences. Each
// question quotes a sentence; the other options are drawn from the rest of
// the transcript.
type Quiz struct {
	split func(string) []string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuiz creates a quiz generator. A nil rng seeds a fresh PCG source.
func NewQuiz(split func(string) []string, rng *rand.Rand) *Quiz {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Quiz{split: split, rng: rng}
}

// Generate returns up to numQuestions items. Sentences strictly between 40
// and 160 characters are preferred; when there are not enough of them the
// first numQuestions sentences are used instead.
func (q *Quiz) Generate(text string, numQuestions int) []entities.QuizItem {
	sentences := q.split(text)
	if len(sentences) == 0 || numQuestions <= 0 {
		return []entities.QuizItem{}
	}

	candidates := make([]string, 0, len(sentences))
	for _, s := range sentences {
		n := utf8.RuneCountInString(s)
		if n > minQuestionRunes && n < maxQuestionRunes {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) < numQuestions {
		candidates = sentences
	}
	if len(candidates) > numQuestions {
		candidates = candidates[:numQuestions]
	}

	want := min(maxDistractors, max(1, len(sentences)-1))

	q.mu.Lock()
	defer q.mu.Unlock()

	items := make([]entities.QuizItem, 0, len(candidates))
	for i, correct := range candidates {
		pool := make([]string, 0, len(sentences))
		for _, s := range sentences {
			if s != correct {
				pool = append(pool, s)
			}
		}

		k := min(want, len(pool))
		options := make([]string, 0, k+1)
		options = append(options, correct)
		for _, idx := range q.rng.Perm(len(pool))[:k] {
			options = append(options, pool[idx])
		}
		q.rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		item := entities.QuizItem{
			Number:   i + 1,
			Question: fmt.Sprintf("Q%d: What is meant by:\n\"%s\"", i+1, correct),
			Options:  options,
		}
		for j, opt := range options {
			if opt == correct {
				item.CorrectLetter = optionLetters[j]
				break
			}
		}
		items = append(items, item)
	}

	return items
}

// FormatQuiz renders items as question, lettered options and answer line,
// separated by blank lines. No items renders the no-content sentinel.
func FormatQuiz(items []entities.QuizItem) string {
	if len(items) == 0 {
		return entities.NoContentMessage
	}

	var lines []string
	for _, item := range items {
		lines = append(lines, item.Question)
		for j, opt := range item.Options {
			lines = append(lines, fmt.Sprintf("%s) %s", optionLetters[j], opt))
		}
		lines = append(lines, fmt.Sprintf("Answer: %s\n", item.CorrectLetter))
	}
	return strings.Join(lines, "\n")
}
