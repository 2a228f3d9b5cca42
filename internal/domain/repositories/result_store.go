package repositories

import (
	"context"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

// ResultStore keeps the latest result bundle per session
type ResultStore interface {
	// Save replaces the bundle stored for the session
	Save(ctx context.Context, sessionID string, bundle *entities.ResultBundle) error

	// Get returns the bundle for the session, or nil when there is none
	Get(ctx context.Context, sessionID string) (*entities.ResultBundle, error)

	// Delete drops the bundle for the session
	Delete(ctx context.Context, sessionID string) error
}
