package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

const (
	defaultGroqModel = "llama-3.1-8b-instant"
	groqMaxTokens    = 512
)

// GroqClient is a minimal client for Groq chat completions
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey, model string
	timeout := 60 * time.Second
	if cfg != nil {
		apiKey = cfg.APIKey
		model = cfg.Model
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}
	if model == "" {
		model = defaultGroqModel
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_BASE_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	return &GroqClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// ChatMessage is one message of a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Model returns the configured model name
func (g *GroqClient) Model() string { return g.model }

// Generate sends one user prompt with temperature 0 and returns the
// assistant content.
func (g *GroqClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model:       g.model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0,
		MaxTokens:   groqMaxTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
