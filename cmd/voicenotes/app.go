package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/cache"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/export"
	"github.com/johnquangdev/voicenotes/internal/usecase/pipeline"
	"github.com/johnquangdev/voicenotes/internal/usecase/report"
	pkgai "github.com/johnquangdev/voicenotes/pkg/ai"
)

const (
	transcriptFile = "transcript.txt"
	reportFile     = "report.txt"
)

// app is the CLI's wiring: one pipeline and one report writer per process
type app struct {
	pipeline  pipeline.Service
	reports   *report.Service
	modelSize entities.ModelSize
	closer    func() error
}

func newApp() (*app, error) {
	size, ok := entities.ParseModelSize(modelFlag)
	if !ok {
		return nil, fmt.Errorf("unknown model %q (want fast or balanced)", modelFlag)
	}

	memory := cache.NewMemoryStore()
	store := cache.NewResultStore(memory, cfg.Store.TTL)
	models := pkgai.NewRegistry(cfg, logger)

	return &app{
		pipeline:  pipeline.NewService(models, store, nil, cfg.Pipeline, logger),
		reports:   report.NewService(outDir, nil, logger).WithPDFFont(export.ResolveFontPath(cfg.Pipeline.PDFFontPath)),
		modelSize: size,
		closer:    memory.Close,
	}, nil
}

// processFile runs one audio file and writes every output next to each other
// under <out>/<audio name>/.
func (a *app) processFile(ctx context.Context, audioPath string) ([]string, error) {
	name := filepath.Base(audioPath)
	sessionID := strings.TrimSuffix(name, filepath.Ext(name))

	bundle, err := a.pipeline.Process(ctx, pipeline.Input{
		SessionID: sessionID,
		AudioName: name,
		AudioPath: audioPath,
		ModelSize: a.modelSize,
	})
	if err != nil {
		return nil, err
	}

	dir := a.reports.SessionDir(sessionID)
	written, err := writeTextOutputs(dir, bundle)
	if err != nil {
		return nil, err
	}

	exported, err := a.reports.ExportAll(ctx, bundle)
	if err != nil {
		return nil, err
	}
	for _, e := range exported {
		written = append(written, e.Path)
	}

	logger.Info("✅ Outputs written",
		zap.String("audio", name),
		zap.String("dir", dir),
		zap.Int("files", len(written)),
	)
	return written, nil
}

// writeTextOutputs writes the timed transcript and the plain-text report
func writeTextOutputs(dir string, b *entities.ResultBundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{transcriptFile, strings.Join(report.TranscriptLines(b.Transcript), "\n") + "\n"},
		{reportFile, report.Assemble(b)},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
