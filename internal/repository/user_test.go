package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/testing/suite"
)

func newUser(id, username string) *entity.User {
	return &entity.User{
		ID:           id,
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUserRepository_Save(t *testing.T) {
	t.Run("Save_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		userRepo := NewUserRepository(st.SQL)

		// Given: a new user
		user := newUser("u1", "Alice")

		// When: Save is called
		err := userRepo.Save(ctx, user)

		// Then: the user can be found again
		require.NoError(t, err)

		found, err := userRepo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", found.Username)
		assert.Equal(t, "hash", found.PasswordHash)
		assert.True(t, user.CreatedAt.Equal(found.CreatedAt))
		assert.Zero(t, found.TotalGames)
	})

	t.Run("Save_DuplicateUsername", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		userRepo := NewUserRepository(st.SQL)

		// Given: alice is taken
		require.NoError(t, userRepo.Save(ctx, newUser("u1", "alice")))

		// When: ALICE registers
		err := userRepo.Save(ctx, newUser("u2", "ALICE"))

		// Then: the username is rejected
		require.ErrorIs(t, err, apperror.ErrUserExists)
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	t.Run("FindByUsername_CaseInsensitive", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		userRepo := NewUserRepository(st.SQL)
		historyRepo := NewHistoryRepository(st.SQL)

		// Given: a user with one recorded game
		require.NoError(t, userRepo.Save(ctx, newUser("u1", "Alice")))
		require.NoError(t, historyRepo.SaveResult(ctx, &entity.GameResult{
			UserID: "u1", Topic: "Space", QuestionsAnswered: 1, PlayedAt: time.Now(),
		}))

		// When: looking up with another case
		found, err := userRepo.FindByUsername(ctx, "aLiCe")

		// Then: the user and the game count come back
		require.NoError(t, err)
		assert.Equal(t, "u1", found.ID)
		assert.Equal(t, 1, found.TotalGames)
	})

	t.Run("FindByUsername_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		userRepo := NewUserRepository(st.SQL)

		// When: the user does not exist
		found, err := userRepo.FindByUsername(ctx, "nobody")

		// Then: ErrNotFound is returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, found)
	})
}
