package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient generates text with the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client for the configured model
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Model returns the configured model name
func (g *GeminiClient) Model() string { return g.model }

// Generate returns the concatenated text parts of the first candidate
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var sb strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		return strings.TrimSpace(sb.String()), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
