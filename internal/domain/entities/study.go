package entities

import "math"

// Keyword is a scored term from TF-IDF ranking
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// TopicEntry pairs a topic with the sentences that mention it
type TopicEntry struct {
	Topic     string   `json:"topic"`
	Sentences []string `json:"sentences"`
}

// TopicMap is an ordered topic -> sentences mapping. Entry order follows
// the order topics were detected in.
type TopicMap struct {
	Entries []TopicEntry `json:"entries"`
}

// Len returns the number of topics, including topics with no sentences
func (m *TopicMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Entries)
}

// Topics returns topic keys in order
func (m *TopicMap) Topics() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Topic)
	}
	return out
}

// Get returns the sentences mapped to a topic
func (m *TopicMap) Get(topic string) ([]string, bool) {
	if m == nil {
		return nil, false
	}
	for _, e := range m.Entries {
		if e.Topic == topic {
			return e.Sentences, true
		}
	}
	return nil, false
}

// HasContent reports whether at least one topic has a sentence
func (m *TopicMap) HasContent() bool {
	if m == nil {
		return false
	}
	for _, e := range m.Entries {
		if len(e.Sentences) > 0 {
			return true
		}
	}
	return false
}

// Flashcard is a titled card with at most three points
type Flashcard struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// MaxFlashcardPoints caps the points kept per card
const MaxFlashcardPoints = 3

// QuizItem is one multiple-choice question
type QuizItem struct {
	Number        int      `json:"number"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectLetter string   `json:"correct_letter"`
}

// Answer returns the option text the correct letter points at
func (q QuizItem) Answer() string {
	if len(q.CorrectLetter) != 1 {
		return ""
	}
	idx := int(q.CorrectLetter[0] - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// RoundScore rounds a keyword score for display
func RoundScore(v float64) float64 {
	return roundTo(v, 3)
}
