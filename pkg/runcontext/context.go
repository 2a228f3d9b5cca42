package runcontext

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

type KeyContext string

var (
	keyRunID        KeyContext = "run_id"
	keySessionID    KeyContext = "session_id"
	keyAudioName    KeyContext = "audio_name"
	keyRunStartTime KeyContext = "run_start_time"
	keyBundle       KeyContext = "result_bundle"
)

// DefaultTimeout bounds one pipeline run end to end
const DefaultTimeout = 15 * time.Minute

// RunMetadata holds metadata for one pipeline run
type RunMetadata struct {
	RunID     uuid.UUID
	SessionID string
	AudioName string
	StartTime time.Time
}

// RunBegin derives a run context carrying the run metadata and a timeout.
// timeout <= 0 selects DefaultTimeout.
func RunBegin(parentCtx context.Context, runID uuid.UUID, sessionID, audioName string, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(parentCtx, timeout)

	ctx = context.WithValue(ctx, keyRunID, runID)
	ctx = context.WithValue(ctx, keySessionID, sessionID)
	ctx = context.WithValue(ctx, keyAudioName, audioName)
	ctx = context.WithValue(ctx, keyRunStartTime, time.Now())

	return ctx, cancel
}

// RunEnd executes runFunc once with panic recovery. Runs are never retried:
// a failing stage fails the whole run.
func RunEnd(ctx context.Context, runFunc func(context.Context) error) (err error) {
	if ctx.Err() != nil {
		return fmt.Errorf("context cancelled before run execution: %w", ctx.Err())
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic recovered: %v", p)
		}
	}()

	return runFunc(ctx)
}

// GetRunID extracts run ID from context
func GetRunID(ctx context.Context) (uuid.UUID, bool) {
	runID, ok := ctx.Value(keyRunID).(uuid.UUID)
	return runID, ok
}

// GetSessionID extracts session ID from context
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(keySessionID).(string)
	return sessionID, ok
}

// GetAudioName extracts the uploaded file name from context
func GetAudioName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(keyAudioName).(string)
	return name, ok
}

// GetRunStartTime extracts run start time from context
func GetRunStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyRunStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since the run started, or zero outside a run
func Elapsed(ctx context.Context) time.Duration {
	start, ok := GetRunStartTime(ctx)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// WithBundle attaches the bundle being built by the current run
func WithBundle(ctx context.Context, b *entities.ResultBundle) context.Context {
	return context.WithValue(ctx, keyBundle, b)
}

// GetBundle extracts the bundle being built by the current run
func GetBundle(ctx context.Context) (*entities.ResultBundle, bool) {
	b, ok := ctx.Value(keyBundle).(*entities.ResultBundle)
	return b, ok && b != nil
}

// GetRunMetadata extracts all run metadata from context
func GetRunMetadata(ctx context.Context) *RunMetadata {
	runID, _ := GetRunID(ctx)
	sessionID, _ := GetSessionID(ctx)
	audioName, _ := GetAudioName(ctx)
	startTime, _ := GetRunStartTime(ctx)

	return &RunMetadata{
		RunID:     runID,
		SessionID: sessionID,
		AudioName: audioName,
		StartTime: startTime,
	}
}

// IsTimeout reports whether err comes from the run deadline or a cancelled request
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
