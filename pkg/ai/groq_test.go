package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

func TestGroqGenerate_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Model != "llama-test" || req.Temperature != 0 || len(req.Messages) != 1 {
			t.Fatalf("unexpected request %+v", req)
		}
		if req.Messages[0].Content != "summarize this" {
			t.Fatalf("unexpected prompt %q", req.Messages[0].Content)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  A short summary. "}}]}`))
	}))
	defer ts.Close()

	client := NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: ts.URL, Model: "llama-test"})
	out, err := client.Generate(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A short summary." {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGroqGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "http error", status: http.StatusTooManyRequests, body: `{"error":"rate limited"}`, wantErr: "status 429"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: "empty response"},
		{name: "bad json", status: http.StatusOK, body: `not json`, wantErr: "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := NewGroqClient(&config.GroqConfig{APIKey: "k", BaseURL: ts.URL})
			_, err := client.Generate(context.Background(), "prompt")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewGroqClient_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")
	t.Setenv("GROQ_BASE_URL", "")

	c := NewGroqClient(nil)
	if c.apiKey != "env-key" || c.baseURL != "https://api.groq.com" || c.Model() != defaultGroqModel {
		t.Fatalf("unexpected defaults %+v", c)
	}
}
