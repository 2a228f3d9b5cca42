package entities

import (
	"strings"
)

// ModelSize selects the speech-to-text speed/accuracy tier
type ModelSize string

const (
	ModelSizeFast     ModelSize = "fast"     // fastest, lower accuracy
	ModelSizeBalanced ModelSize = "balanced" // slower, higher accuracy
)

// ParseModelSize maps user input onto a model size. Empty input selects fast.
// "base" and "small" are accepted as aliases for fast and balanced.
func ParseModelSize(s string) (ModelSize, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fast", "base":
		return ModelSizeFast, true
	case "balanced", "small":
		return ModelSizeBalanced, true
	default:
		return "", false
	}
}

// Segment is one timed span of transcribed speech
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the output of one transcription run
type Transcript struct {
	Segments         []Segment `json:"segments"`
	Language         string    `json:"language"`
	Text             string    `json:"text"`
	InferenceSeconds float64   `json:"inference_seconds"`
	ModelSize        ModelSize `json:"model_size"`
}

// NewTranscript builds a transcript from ordered segments. Text is the
// segment texts joined by a single space.
func NewTranscript(segments []Segment, language string, modelSize ModelSize, inferenceSeconds float64) *Transcript {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, s.Text)
	}

	return &Transcript{
		Segments:         segments,
		Language:         language,
		Text:             strings.Join(parts, " "),
		InferenceSeconds: roundTo(inferenceSeconds, 2),
		ModelSize:        modelSize,
	}
}
