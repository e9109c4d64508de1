package service

import (
	"context"
	"fmt"
	"time"

	"learntrack/internal/model"
	"learntrack/internal/repository"
)

// ProgressService exposes lesson progress operations.
type ProgressService interface {
	List(ctx context.Context, userID uint) ([]model.LessonProgress, error)
	Save(ctx context.Context, userID uint, lessonID string, completed bool, currentStep int) (*model.LessonProgress, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService builds a ProgressService.
func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

func (s *progressService) List(ctx context.Context, userID uint) ([]model.LessonProgress, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}

// Save upserts the (user, lesson) row and returns the stored state. The
// row is re-read after the upsert because the conflict branch computes
// completed_at in the database.
func (s *progressService) Save(ctx context.Context, userID uint, lessonID string, completed bool, currentStep int) (*model.LessonProgress, error) {
	progress := &model.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   completed,
		CurrentStep: currentStep,
	}
	if completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	saved, err := s.progressRepo.FindByUserAndLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("reload progress: %w", err)
	}
	return saved, nil
}
