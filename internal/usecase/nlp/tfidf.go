package nlp

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

// Tokenize lowercases text and returns runs of two or more word characters
// that are not stop words.
func Tokenize(text string) []string {
	text = strings.ToLower(text)

	var (
		tokens []string
		cur    []rune
	)
	flush := func() {
		if len(cur) >= 2 {
			tok := string(cur)
			if !IsStopWord(tok) {
				tokens = append(tokens, tok)
			}
		}
		cur = cur[:0]
	}

	for _, r := range text {
		if isWordRune(r) {
			cur = append(cur, r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// ScoreTerms computes TF-IDF over docs (raw counts, smooth idf, l2 row
// normalisation) and returns each vocabulary term with its score summed
// across documents. Output is sorted by descending score; equal scores keep
// alphabetical order. An empty vocabulary yields nil.
func ScoreTerms(docs []string) []entities.Keyword {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	if len(df) == 0 {
		return nil
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	idf := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		idf[term] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	totals := make(map[string]float64, len(vocab))
	for _, tf := range counts {
		if len(tf) == 0 {
			continue
		}

		// sorted so float accumulation is deterministic
		terms := make([]string, 0, len(tf))
		for term := range tf {
			terms = append(terms, term)
		}
		sort.Strings(terms)

		weights := make([]float64, len(terms))
		var norm float64
		for i, term := range terms {
			weights[i] = float64(tf[term]) * idf[term]
			norm += weights[i] * weights[i]
		}
		norm = math.Sqrt(norm)

		for i, term := range terms {
			totals[term] += weights[i] / norm
		}
	}

	scored := make([]entities.Keyword, 0, len(vocab))
	for _, term := range vocab {
		scored = append(scored, entities.Keyword{Term: term, Score: totals[term]})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
