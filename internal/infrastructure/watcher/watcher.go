package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultSettleDelay is how long a new file is left alone before processing
// so the writer can finish.
const DefaultSettleDelay = 500 * time.Millisecond

// EventHandler processes one newly created file
type EventHandler func(ctx context.Context, filePath string) error

// Watcher monitors one directory and hands new audio files to a handler one
// at a time.
type Watcher struct {
	inputDir    string
	extensions  []string
	handler     EventHandler
	settleDelay time.Duration
	watcher     *fsnotify.Watcher
	logger      *zap.Logger
}

// New creates a watcher on inputDir. Only files whose extension is listed
// in extensions are handed to handler.
func New(inputDir string, extensions []string, handler EventHandler, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &Watcher{
		inputDir:    inputDir,
		extensions:  extensions,
		handler:     handler,
		settleDelay: DefaultSettleDelay,
		watcher:     fsw,
		logger:      logger,
	}, nil
}

// SetSettleDelay overrides DefaultSettleDelay
func (w *Watcher) SetSettleDelay(d time.Duration) {
	w.settleDelay = d
}

// Start blocks until ctx is cancelled or the underlying watcher closes.
// Handler errors are logged and do not stop the watcher.
func (w *Watcher) Start(ctx context.Context) error {
	if w.logger != nil {
		w.logger.Info("👀 File watcher started",
			zap.String("dir", w.inputDir),
			zap.Strings("extensions", w.extensions),
		)
	}

	for {
		select {
		case <-ctx.Done():
			if w.logger != nil {
				w.logger.Info("🛑 File watcher stopped")
			}
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.accepts(event.Name) {
				if w.logger != nil {
					w.logger.Debug("Ignoring file", zap.String("file", event.Name))
				}
				continue
			}

			if w.logger != nil {
				w.logger.Info("🎧 New audio detected", zap.String("file", event.Name))
			}

			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := w.handler(ctx, event.Name); err != nil && w.logger != nil {
				w.logger.Error("❌ Failed to process file",
					zap.String("file", event.Name),
					zap.Error(err),
				)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.logger != nil {
				w.logger.Error("Watcher error", zap.Error(err))
			}
		}
	}
}

// Stop closes the file watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
