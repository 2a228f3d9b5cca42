package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/pkg/config"
)

// fakeAssemblyAI mimics the upload, transcript and sentences endpoints.
// The transcript reports "processing" on the first poll.
func fakeAssemblyAI(t *testing.T, finalStatus string, submitted *map[string]interface{}) *httptest.Server {
	t.Helper()
	var polls int32

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("missing api key, got %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/upload":
			body, _ := io.ReadAll(r.Body)
			if string(body) != "fake-audio" {
				t.Errorf("unexpected upload body %q", body)
			}
			json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.example.com/upload/1"})

		case r.Method == http.MethodPost && r.URL.Path == "/v2/transcript":
			if submitted != nil {
				json.NewDecoder(r.Body).Decode(submitted)
			}
			json.NewEncoder(w).Encode(map[string]string{"id": "tr-1", "status": "queued"})

		case r.Method == http.MethodGet && r.URL.Path == "/v2/transcript/tr-1":
			if atomic.AddInt32(&polls, 1) == 1 {
				json.NewEncoder(w).Encode(map[string]string{"id": "tr-1", "status": "processing"})
				return
			}
			resp := map[string]interface{}{
				"id":            "tr-1",
				"status":        finalStatus,
				"text":          "Cats are mammals. Fish live in water.",
				"language_code": "en",
			}
			if finalStatus == "error" {
				resp["error"] = "audio is silent"
			}
			json.NewEncoder(w).Encode(resp)

		case r.Method == http.MethodGet && r.URL.Path == "/v2/transcript/tr-1/sentences":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": "tr-1",
				"sentences": []map[string]interface{}{
					{"text": "Cats are mammals.", "start": 0, "end": 1500, "confidence": 0.9},
					{"text": " Fish live in water. ", "start": 1500, "end": 3250, "confidence": 0.9},
				},
			})

		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.wav")
	if err := os.WriteFile(path, []byte("fake-audio"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return path
}

func TestTranscribe_Success(t *testing.T) {
	var submitted map[string]interface{}
	ts := fakeAssemblyAI(t, "completed", &submitted)
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{
		APIKey:       "test-key",
		BaseURL:      ts.URL,
		PollInterval: 10 * time.Millisecond,
	}, entities.ModelSizeBalanced, nil)

	tr, err := client.Transcribe(context.Background(), writeAudio(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if submitted["audio_url"] != "https://cdn.example.com/upload/1" {
		t.Fatalf("unexpected audio_url %v", submitted["audio_url"])
	}
	if submitted["speech_model"] != "best" {
		t.Fatalf("balanced should request the best speech model, got %v", submitted["speech_model"])
	}
	if submitted["language_detection"] != true {
		t.Fatalf("language detection not requested: %v", submitted["language_detection"])
	}

	if len(tr.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %+v", tr.Segments)
	}
	if tr.Segments[1].Start != 1.5 || tr.Segments[1].End != 3.25 || tr.Segments[1].Text != "Fish live in water." {
		t.Fatalf("unexpected segment %+v", tr.Segments[1])
	}
	if tr.Text != "Cats are mammals. Fish live in water." {
		t.Fatalf("unexpected text %q", tr.Text)
	}
	if tr.Language != "en" || tr.ModelSize != entities.ModelSizeBalanced {
		t.Fatalf("unexpected metadata %+v", tr)
	}
}

func TestTranscribe_Failed(t *testing.T) {
	ts := fakeAssemblyAI(t, "error", nil)
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{
		APIKey:       "test-key",
		BaseURL:      ts.URL,
		PollInterval: 10 * time.Millisecond,
	}, entities.ModelSizeFast, nil)

	_, err := client.Transcribe(context.Background(), writeAudio(t))
	if err == nil || !strings.Contains(err.Error(), "audio is silent") {
		t.Fatalf("expected transcription failure, got %v", err)
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key"}, entities.ModelSizeFast, nil)
	if _, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpeechModelFor(t *testing.T) {
	if got := speechModelFor(entities.ModelSizeFast); got != "nano" {
		t.Fatalf("fast -> %q", got)
	}
	if got := speechModelFor(entities.ModelSizeBalanced); got != "best" {
		t.Fatalf("balanced -> %q", got)
	}
}
