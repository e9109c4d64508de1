package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learntrack/internal/model"
	"learntrack/internal/testhelpers"
)

func TestTestResultRepository_RepeatAttemptsAllRetained(t *testing.T) {
	repo := NewTestResultRepository(testhelpers.SetupTestDB(t))
	ctx := context.Background()

	// Same test attempted three times: every attempt is kept.
	for i, score := range []int{4, 7, 10} {
		require.NoError(t, repo.Create(ctx, &model.TestResult{
			UserID:         1,
			TestID:         "quiz-1",
			Score:          score,
			TotalQuestions: 10,
			Percentage:     float64(score * 10),
			Passed:         score >= 6,
		}), "attempt %d", i)
	}

	results, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestTestResultRepository_RecentLimitAndOrder(t *testing.T) {
	repo := NewTestResultRepository(testhelpers.SetupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &model.TestResult{
			UserID:         1,
			TestID:         "quiz-1",
			Score:          i,
			TotalQuestions: 10,
			Percentage:     float64(i * 10),
		}))
	}
	// Another user's results must not leak in.
	require.NoError(t, repo.Create(ctx, &model.TestResult{UserID: 2, TestID: "quiz-1", TotalQuestions: 10}))

	recent, err := repo.Recent(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	for _, r := range recent {
		assert.Equal(t, uint(1), r.UserID)
	}
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i-1].CompletedAt.Before(recent[i].CompletedAt),
			"results not ordered newest first")
	}
}
