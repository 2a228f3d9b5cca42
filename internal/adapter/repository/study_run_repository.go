package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/domain/repositories"
)

const defaultListLimit = 20

type studyRunRepository struct {
	db *gorm.DB
}

// NewStudyRunRepository creates a new run history repository
func NewStudyRunRepository(db *gorm.DB) repositories.StudyRunRepository {
	return &studyRunRepository{db: db}
}

// Create stores a run record
func (r *studyRunRepository) Create(ctx context.Context, run *entities.StudyRun) error {
	if run == nil {
		return errors.New("run cannot be nil")
	}
	return r.db.WithContext(ctx).Create(run).Error
}

// FindByID returns nil, nil when the run does not exist
func (r *studyRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.StudyRun, error) {
	var run entities.StudyRun
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// ListRecent lists the most recent runs, newest first
func (r *studyRunRepository) ListRecent(ctx context.Context, limit int) ([]*entities.StudyRun, error) {
	var runs []*entities.StudyRun
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(normalizeLimit(limit)).
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// ListBySession lists runs for one session, newest first
func (r *studyRunRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*entities.StudyRun, error) {
	var runs []*entities.StudyRun
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(normalizeLimit(limit)).
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultListLimit
	}
	return limit
}
