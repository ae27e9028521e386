package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/testing/suite"
)

func TestHistoryRepository(t *testing.T) {
	t.Run("ListByUser_NewestFirst", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		userRepo := NewUserRepository(st.SQL)
		historyRepo := NewHistoryRepository(st.SQL)

		require.NoError(t, userRepo.Save(ctx, newUser("u1", "alice")))
		require.NoError(t, userRepo.Save(ctx, newUser("u2", "bob")))

		// Given: two games for alice and one for bob
		played := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		games := []*entity.GameResult{
			{UserID: "u1", Topic: "Space", Score: 400, CorrectAnswers: 2, QuestionsAnswered: 3, PlayedAt: played},
			{UserID: "u1", Topic: "Rivers", Score: -200, CorrectAnswers: 0, QuestionsAnswered: 1, PlayedAt: played.Add(time.Hour)},
			{UserID: "u2", Topic: "Cheese", Score: 1000, CorrectAnswers: 1, QuestionsAnswered: 1, PlayedAt: played},
		}
		for _, game := range games {
			require.NoError(t, historyRepo.SaveResult(ctx, game))
			assert.NotEmpty(t, game.ID)
		}

		// When: alice's history is listed
		results, err := historyRepo.ListByUser(ctx, "u1")

		// Then: only her games come back, newest first
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Rivers", results[0].Topic)
		assert.Equal(t, -200, results[0].Score)
		assert.Equal(t, "Space", results[1].Topic)
		assert.Equal(t, 3, results[1].QuestionsAnswered)
		assert.Equal(t, 2, results[1].CorrectAnswers)
		assert.True(t, played.Equal(results[1].PlayedAt))
	})

	t.Run("ListByUser_Empty", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		historyRepo := NewHistoryRepository(st.SQL)

		results, err := historyRepo.ListByUser(ctx, "ghost")

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("SaveResult_UnknownUser", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		historyRepo := NewHistoryRepository(st.SQL)

		err := historyRepo.SaveResult(ctx, &entity.GameResult{UserID: "ghost", Topic: "Space", PlayedAt: time.Now()})

		require.Error(t, err)
	})
}
