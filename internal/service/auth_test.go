package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

func TestAuthService(t *testing.T) {
	user := &entity.User{ID: "u1", Username: "alice"}

	t.Run("Round trip", func(t *testing.T) {
		// Given: a token for alice
		auth := NewAuthService("secret", time.Hour)
		token, err := auth.GenerateToken(user)
		require.NoError(t, err)

		// When: it is parsed
		player, err := auth.ParseToken(token)

		// Then: it names the same user
		require.NoError(t, err)
		assert.Equal(t, entity.NewUserPlayer("u1", "alice"), player)
		assert.False(t, player.IsGuest())
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := NewAuthService("secret", time.Hour).GenerateToken(user)
		require.NoError(t, err)

		_, err = NewAuthService("other", time.Hour).ParseToken(token)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Expired token", func(t *testing.T) {
		// Given: a token issued two hours ago with a one hour lifetime
		issuer := NewAuthService("secret", time.Hour).(*authServiceImpl)
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := issuer.GenerateToken(user)
		require.NoError(t, err)

		// When: it is parsed now
		_, err = NewAuthService("secret", time.Hour).ParseToken(token)

		// Then: it is rejected
		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := NewAuthService("secret", time.Hour).ParseToken("not-a-token")

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}
