package nlp

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

func sentenceTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = english.NewSentenceTokenizer(nil)
	})
	return tokenizer, tokenizerErr
}

// SplitSentences splits text into trimmed, non-empty sentences using the
// Punkt English model.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	tok, err := sentenceTokenizer()
	if err != nil {
		// training data ships with the package; fall back to one sentence
		return []string{strings.TrimSpace(text)}
	}

	out := make([]string, 0)
	for _, s := range tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
