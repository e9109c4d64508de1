package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learntrack/internal/model"
	"learntrack/internal/testhelpers"
)

func TestUserRepository_CreateWithStats(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userRepo := NewUserRepository(db)
	statsRepo := NewStatsRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, userRepo.CreateWithStats(ctx, user))
	require.NotZero(t, user.ID)

	// The stats row is created in the same transaction.
	stats, err := statsRepo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalLessonsCompleted)
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestUserRepository_FindByLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateWithStats(ctx, user))

	byUsername, err := repo.FindByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)

	byEmail, err := repo.FindByLogin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_FindByUsernameOrEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateWithStats(ctx, user))

	// Either field colliding counts as a match.
	found, err := repo.FindByUsernameOrEmail(ctx, "alice", "other@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = repo.FindByUsernameOrEmail(ctx, "bob", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByUsernameOrEmail(ctx, "bob", "b@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.CreateWithStats(ctx, user))
	require.Nil(t, user.LastLogin)

	require.NoError(t, repo.UpdateLastLogin(ctx, user.ID))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.LastLogin)
}
