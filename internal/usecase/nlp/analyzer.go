package nlp

import (
	"strings"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

// Analyzer ranks keywords and topics. The zero value is not usable; use
// NewAnalyzer.
type Analyzer struct {
	split func(string) []string
	score func([]string) []entities.Keyword
}

// NewAnalyzer builds an analyzer backed by Punkt sentence splitting and
// TF-IDF scoring.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		split: SplitSentences,
		score: ScoreTerms,
	}
}

var defaultAnalyzer = NewAnalyzer()

// ExtractKeywords ranks terms of the whole text as a single document
func ExtractKeywords(text string, topN int) []entities.Keyword {
	return defaultAnalyzer.ExtractKeywords(text, topN)
}

// DetectTopics ranks terms across the sentences of text
func DetectTopics(text string, topN int) ([]string, []string) {
	return defaultAnalyzer.DetectTopics(text, topN)
}

// ExtractKeywords returns up to topN keywords, highest score first
func (a *Analyzer) ExtractKeywords(text string, topN int) []entities.Keyword {
	if strings.TrimSpace(text) == "" || topN <= 0 {
		return []entities.Keyword{}
	}

	scored := a.score([]string{text})
	if len(scored) > topN {
		scored = scored[:topN]
	}
	if scored == nil {
		return []entities.Keyword{}
	}
	return scored
}

// DetectTopics returns up to topN topic terms and the sentences they were
// drawn from. With fewer than two sentences no scoring happens and the
// topic list is empty.
func (a *Analyzer) DetectTopics(text string, topN int) ([]string, []string) {
	if strings.TrimSpace(text) == "" {
		return []string{}, []string{}
	}

	sents := a.split(text)
	if len(sents) < 2 || topN <= 0 {
		return []string{}, sents
	}

	scored := a.score(sents)
	topics := make([]string, 0, topN)
	for i := 0; i < len(scored) && i < topN; i++ {
		topics = append(topics, scored[i].Term)
	}
	return topics, sents
}
