package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

func TestWriteTextOutputs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lecture")
	b := &entities.ResultBundle{
		AudioName: "lecture.wav",
		Transcript: entities.NewTranscript([]entities.Segment{
			{Start: 0, End: 1.25, Text: "Cats are mammals."},
			{Start: 1.25, End: 2.5, Text: "Dogs bark."},
		}, "en", entities.ModelSizeFast, 1),
		Summary: "Animals.",
	}

	written, err := writeTextOutputs(dir, b)
	if err != nil {
		t.Fatalf("writeTextOutputs: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %v", written)
	}

	transcript, err := os.ReadFile(filepath.Join(dir, transcriptFile))
	if err != nil {
		t.Fatal(err)
	}
	want := "[0.00s → 1.25s] Cats are mammals.\n[1.25s → 2.50s] Dogs bark.\n"
	if string(transcript) != want {
		t.Fatalf("transcript = %q", transcript)
	}

	rep, err := os.ReadFile(filepath.Join(dir, reportFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rep), "Animals.") {
		t.Fatalf("report missing summary: %q", rep)
	}
}
