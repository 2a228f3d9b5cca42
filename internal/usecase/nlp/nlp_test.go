package nlp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

const animals = "Cats are mammals. Dogs are mammals too. Fish live in water."

func TestTokenize(t *testing.T) {
	got := Tokenize("The quick Brown fox, a_b and I x2 went to the café!")
	want := []string{"quick", "brown", "fox", "a_b", "x2", "went", "café"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences(animals)
	want := []string{"Cats are mammals.", "Dogs are mammals too.", "Fish live in water."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSentences() = %q, want %q", got, want)
	}

	if got := SplitSentences("   "); len(got) != 0 {
		t.Fatalf("expected no sentences for blank input, got %q", got)
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Cats are mammals. Dogs are mammals too.", 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 keywords, got %v", got)
	}
	terms := []string{got[0].Term, got[1].Term, got[2].Term}
	if !reflect.DeepEqual(terms, []string{"mammals", "cats", "dogs"}) {
		t.Fatalf("unexpected ranking %v", terms)
	}

	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not non-increasing: %v", got)
		}
	}
}

func TestExtractKeywords_TopNAndEmpty(t *testing.T) {
	if got := ExtractKeywords("", 10); len(got) != 0 {
		t.Fatalf("expected empty keywords, got %v", got)
	}
	if got := ExtractKeywords("the and of it", 10); len(got) != 0 {
		t.Fatalf("expected empty keywords for stop-word only text, got %v", got)
	}
	if got := ExtractKeywords(animals, 2); len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
}

func TestDetectTopics(t *testing.T) {
	topics, sents := DetectTopics(animals, 5)

	wantTopics := []string{"mammals", "cats", "dogs", "fish", "live"}
	if !reflect.DeepEqual(topics, wantTopics) {
		t.Fatalf("topics = %v, want %v", topics, wantTopics)
	}
	if len(sents) != 3 {
		t.Fatalf("expected 3 sentences, got %q", sents)
	}
}

func TestDetectTopics_Empty(t *testing.T) {
	topics, sents := DetectTopics("", 5)
	if len(topics) != 0 || len(sents) != 0 {
		t.Fatalf("expected empty result, got %v %v", topics, sents)
	}
}

func TestDetectTopics_SingleSentenceSkipsScoring(t *testing.T) {
	calls := 0
	a := NewAnalyzer()
	a.score = func(docs []string) []entities.Keyword {
		calls++
		return ScoreTerms(docs)
	}

	topics, sents := a.DetectTopics("Only one sentence lives here.", 5)
	if len(topics) != 0 {
		t.Fatalf("expected no topics, got %v", topics)
	}
	if len(sents) != 1 {
		t.Fatalf("expected the sentence back, got %q", sents)
	}
	if calls != 0 {
		t.Fatalf("scorer called %d times", calls)
	}
}

func TestScoreTerms_NoVocabulary(t *testing.T) {
	if got := ScoreTerms([]string{"a an the", "I"}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

type fakeGenerator struct {
	prompts []string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return " summary ", nil
}

func TestSummarize(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 900))
	gen := &fakeGenerator{}

	got, err := NewSummarizer(gen, 400, nil).Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen.prompts) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(gen.prompts))
	}
	if got != "summary summary summary" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestSummarize_TooShort(t *testing.T) {
	gen := &fakeGenerator{}
	for _, text := range []string{"", "just a few words here"} {
		got, err := NewSummarizer(gen, 0, nil).Summarize(context.Background(), text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != entities.TooShortToSummary {
			t.Fatalf("expected sentinel, got %q", got)
		}
	}
	if len(gen.prompts) != 0 {
		t.Fatalf("generator should not be called")
	}
}

func TestSummarize_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	text := strings.Repeat("word ", 30)

	if _, err := NewSummarizer(gen, 0, nil).Summarize(context.Background(), text); err == nil {
		t.Fatal("expected error")
	}
}

func TestChunkWords(t *testing.T) {
	got := ChunkWords("a b c d e", 2)
	want := []string{"a b", "c d", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ChunkWords() = %v, want %v", got, want)
	}
}
