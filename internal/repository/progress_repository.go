package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learntrack/internal/model"
)

// ProgressRepository defines lesson progress persistence operations.
type ProgressRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.LessonProgress, error)
	Upsert(ctx context.Context, progress *model.LessonProgress) error
	FindByUserAndLesson(ctx context.Context, userID uint, lessonID string) (*model.LessonProgress, error)
	RecentCompleted(ctx context.Context, userID uint, limit int) ([]model.LessonProgress, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository builds a GORM-backed repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uint) ([]model.LessonProgress, error) {
	var progress []model.LessonProgress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// Upsert inserts or updates the single row keyed by (user_id, lesson_id).
// completed_at is set once, on the first write carrying completed=true, and
// preserved on every later write; updated_at is refreshed unconditionally.
func (r *progressRepository) Upsert(ctx context.Context, progress *model.LessonProgress) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    progress.Completed,
			"current_step": progress.CurrentStep,
			"completed_at": gorm.Expr("CASE WHEN excluded.completed THEN COALESCE(lesson_progress.completed_at, CURRENT_TIMESTAMP) ELSE lesson_progress.completed_at END"),
			"updated_at":   gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(progress).Error
}

func (r *progressRepository) FindByUserAndLesson(ctx context.Context, userID uint, lessonID string) (*model.LessonProgress, error) {
	var progress model.LessonProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// RecentCompleted returns the most recently completed lessons, newest first.
func (r *progressRepository) RecentCompleted(ctx context.Context, userID uint, limit int) ([]model.LessonProgress, error) {
	var progress []model.LessonProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, true).
		Order("completed_at DESC").
		Limit(limit).
		Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}
