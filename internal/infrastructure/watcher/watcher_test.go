package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_HandlesNewAudioSequentially(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 4)

	w, err := New(dir, []string{".wav", ".mp3"}, func(_ context.Context, path string) error {
		handled <- filepath.Base(path)
		return errors.New("handler errors are logged, not fatal")
	}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()
	w.SetSettleDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	for _, name := range []string{"notes.txt", "a.WAV", "b.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	timeout := time.After(5 * time.Second)
	for len(got) < 2 {
		select {
		case name := <-handled:
			got = append(got, name)
		case <-timeout:
			t.Fatalf("timed out, handled %v", got)
		}
	}
	if got[0] != "a.WAV" || got[1] != "b.mp3" {
		t.Fatalf("handled = %v", got)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	select {
	case name := <-handled:
		t.Fatalf("unexpected file handled: %s", name)
	default:
	}
}

func TestNew_MissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), nil, nil, nil); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
