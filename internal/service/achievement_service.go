package service

import (
	"context"
	"fmt"

	"learntrack/internal/model"
	"learntrack/internal/repository"
)

// AchievementService exposes achievement operations.
type AchievementService interface {
	List(ctx context.Context, userID uint) ([]model.Achievement, error)
	Grant(ctx context.Context, userID uint, name, icon string) (achievement *model.Achievement, alreadyEarned bool, err error)
}

type achievementService struct {
	achievementRepo repository.AchievementRepository
}

// NewAchievementService builds an AchievementService.
func NewAchievementService(achievementRepo repository.AchievementRepository) AchievementService {
	return &achievementService{achievementRepo: achievementRepo}
}

func (s *achievementService) List(ctx context.Context, userID uint) ([]model.Achievement, error) {
	return s.achievementRepo.ListByUser(ctx, userID)
}

// Grant awards an achievement once. A repeat grant is not an error: it
// reports alreadyEarned instead so clients can skip the celebration.
func (s *achievementService) Grant(ctx context.Context, userID uint, name, icon string) (*model.Achievement, bool, error) {
	achievement := &model.Achievement{
		UserID:          userID,
		AchievementName: name,
		AchievementIcon: icon,
	}

	inserted, err := s.achievementRepo.Insert(ctx, achievement)
	if err != nil {
		return nil, false, fmt.Errorf("grant achievement: %w", err)
	}
	if !inserted {
		return nil, true, nil
	}
	return achievement, false, nil
}
