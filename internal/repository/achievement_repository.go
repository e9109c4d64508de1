package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learntrack/internal/model"
)

// AchievementRepository defines achievement persistence operations.
type AchievementRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Achievement, error)
	Insert(ctx context.Context, achievement *model.Achievement) (inserted bool, err error)
	Recent(ctx context.Context, userID uint, limit int) ([]model.Achievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository builds a GORM-backed repository.
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

// Insert writes the achievement unless the user already earned it. The
// (user_id, achievement_name) conflict is silently absorbed; inserted
// reports whether a row was actually written.
func (r *achievementRepository) Insert(ctx context.Context, achievement *model.Achievement) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_name"}},
		DoNothing: true,
	}).Create(achievement)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Recent returns the latest achievements, newest first.
func (r *achievementRepository) Recent(ctx context.Context, userID uint, limit int) ([]model.Achievement, error) {
	var achievements []model.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Limit(limit).
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
