package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/voicenotes/internal/domain/entities"
)

// StudyRunRepository defines persistence for pipeline run history
type StudyRunRepository interface {
	// Create stores a run record
	Create(ctx context.Context, run *entities.StudyRun) error

	// FindByID finds a run by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.StudyRun, error)

	// ListRecent lists the most recent runs, newest first
	ListRecent(ctx context.Context, limit int) ([]*entities.StudyRun, error)

	// ListBySession lists runs for one session, newest first
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*entities.StudyRun, error)
}
