package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learntrack/internal/model"
	"learntrack/internal/testhelpers"
)

func TestAchievementRepository_DuplicateGrantAbsorbed(t *testing.T) {
	repo := NewAchievementRepository(testhelpers.SetupTestDB(t))
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, &model.Achievement{
		UserID:          1,
		AchievementName: "first-lesson",
		AchievementIcon: "🎓",
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Granting the same achievement again is a no-op, not an error.
	inserted, err = repo.Insert(ctx, &model.Achievement{
		UserID:          1,
		AchievementName: "first-lesson",
		AchievementIcon: "🎓",
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAchievementRepository_SameNameDifferentUsers(t *testing.T) {
	repo := NewAchievementRepository(testhelpers.SetupTestDB(t))
	ctx := context.Background()

	for _, userID := range []uint{1, 2} {
		inserted, err := repo.Insert(ctx, &model.Achievement{
			UserID:          userID,
			AchievementName: "first-lesson",
		})
		require.NoError(t, err)
		assert.True(t, inserted)
	}
}

func TestAchievementRepository_RecentLimitAndOrder(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewAchievementRepository(db)
	ctx := context.Background()

	names := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for _, name := range names {
		_, err := repo.Insert(ctx, &model.Achievement{UserID: 1, AchievementName: name})
		require.NoError(t, err)
	}

	recent, err := repo.Recent(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i-1].EarnedAt.Before(recent[i].EarnedAt),
			"achievements not ordered newest first")
	}
}
