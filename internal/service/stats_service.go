package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"learntrack/internal/model"
	"learntrack/internal/repository"
)

// recentLimit caps each dashboard list.
const recentLimit = 5

// Dashboard aggregates a user's stats with their latest activity.
type Dashboard struct {
	Stats              *model.UserStats       `json:"stats"`
	RecentLessons      []model.LessonProgress `json:"recentLessons"`
	RecentTests        []model.TestResult     `json:"recentTests"`
	RecentAchievements []model.Achievement    `json:"recentAchievements"`
}

// StatsService exposes aggregate statistics reads.
type StatsService interface {
	GetStats(ctx context.Context, userID uint) (*model.UserStats, error)
	GetDashboard(ctx context.Context, userID uint) (*Dashboard, error)
}

type statsService struct {
	statsRepo       repository.StatsRepository
	progressRepo    repository.ProgressRepository
	testResultRepo  repository.TestResultRepository
	achievementRepo repository.AchievementRepository
}

// NewStatsService builds a StatsService over the four record families.
func NewStatsService(
	statsRepo repository.StatsRepository,
	progressRepo repository.ProgressRepository,
	testResultRepo repository.TestResultRepository,
	achievementRepo repository.AchievementRepository,
) StatsService {
	return &statsService{
		statsRepo:       statsRepo,
		progressRepo:    progressRepo,
		testResultRepo:  testResultRepo,
		achievementRepo: achievementRepo,
	}
}

// GetStats returns the user's stats row, creating a zeroed one when absent.
func (s *statsService) GetStats(ctx context.Context, userID uint) (*model.UserStats, error) {
	stats, err := s.statsRepo.FindOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return stats, nil
}

// GetDashboard assembles stats plus the last completed lessons, test
// results and achievements, each newest first. A missing stats row is
// reported as zeroed values without inserting one.
func (s *statsService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	stats, err := s.statsRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load stats: %w", err)
		}
		stats = &model.UserStats{UserID: userID}
	}

	lessons, err := s.progressRepo.RecentCompleted(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent lessons: %w", err)
	}
	tests, err := s.testResultRepo.Recent(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent tests: %w", err)
	}
	achievements, err := s.achievementRepo.Recent(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent achievements: %w", err)
	}

	return &Dashboard{
		Stats:              stats,
		RecentLessons:      lessons,
		RecentTests:        tests,
		RecentAchievements: achievements,
	}, nil
}
