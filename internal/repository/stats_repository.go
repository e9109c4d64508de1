package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"learntrack/internal/model"
)

// StatsRepository defines aggregate statistics persistence operations.
type StatsRepository interface {
	FindByUser(ctx context.Context, userID uint) (*model.UserStats, error)
	FindOrCreate(ctx context.Context, userID uint) (*model.UserStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository builds a GORM-backed repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) FindByUser(ctx context.Context, userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// FindOrCreate returns the user's stats row, lazily inserting a zeroed one
// when absent. Users registered before the stats row existed get one here.
func (r *statsRepository) FindOrCreate(ctx context.Context, userID uint) (*model.UserStats, error) {
	stats, err := r.FindByUser(ctx, userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.UserStats{UserID: userID}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}
