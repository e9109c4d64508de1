package repository

import (
	"context"

	"gorm.io/gorm"

	"learntrack/internal/model"
)

// TestResultRepository defines test result persistence operations.
// Results are append-only: no upsert, no uniqueness constraint.
type TestResultRepository interface {
	Create(ctx context.Context, result *model.TestResult) error
	ListByUser(ctx context.Context, userID uint) ([]model.TestResult, error)
	Recent(ctx context.Context, userID uint, limit int) ([]model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

// NewTestResultRepository builds a GORM-backed repository.
func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *testResultRepository) ListByUser(ctx context.Context, userID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Recent returns the latest attempts, newest first.
func (r *testResultRepository) Recent(ctx context.Context, userID uint, limit int) ([]model.TestResult, error) {
	var results []model.TestResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
