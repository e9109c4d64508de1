package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learntrack/internal/repository"
	"learntrack/internal/testhelpers"
)

func TestProgressService_SaveReturnsStoredState(t *testing.T) {
	repo := repository.NewProgressRepository(testhelpers.SetupTestDB(t))
	svc := NewProgressService(repo)
	ctx := context.Background()

	saved, err := svc.Save(ctx, 1, "lesson-1", false, 3)
	require.NoError(t, err)
	assert.Equal(t, "lesson-1", saved.LessonID)
	assert.Equal(t, 3, saved.CurrentStep)
	assert.False(t, saved.Completed)
	assert.Nil(t, saved.CompletedAt)
	assert.NotZero(t, saved.ID)

	// Saving again updates in place rather than creating a second row.
	updated, err := svc.Save(ctx, 1, "lesson-1", true, 8)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProgressService_CompletionTimestampIdempotent(t *testing.T) {
	repo := repository.NewProgressRepository(testhelpers.SetupTestDB(t))
	svc := NewProgressService(repo)
	ctx := context.Background()

	first, err := svc.Save(ctx, 1, "lesson-1", true, 5)
	require.NoError(t, err)
	require.NotNil(t, first.CompletedAt)

	second, err := svc.Save(ctx, 1, "lesson-1", true, 6)
	require.NoError(t, err)
	require.NotNil(t, second.CompletedAt)
	assert.True(t, second.CompletedAt.Equal(*first.CompletedAt),
		"completing an already completed lesson must keep the original completed_at")
}
