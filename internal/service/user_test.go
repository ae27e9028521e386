package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

type mockUserRepo struct {
	mock.Mock
}

func (that *mockUserRepo) Save(ctx context.Context, user *entity.User) error {
	args := that.Called(ctx, user)
	return args.Error(0)
}

func (that *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := that.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Hashes the password and trims the username", func(t *testing.T) {
		// Given: a repository that accepts the user
		repo := &mockUserRepo{}
		repo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()

		// When: registering
		user, err := NewUserService(repo).Register(ctx, "  alice ", "hunter22")

		// Then: the stored user has an id and a bcrypt hash
		require.NoError(t, err)
		repo.AssertExpectations(t)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
	})

	t.Run("Validates input", func(t *testing.T) {
		repo := &mockUserRepo{}
		service := NewUserService(repo)

		cases := map[string][2]string{
			"missing username": {"", "hunter22"},
			"missing password": {"alice", ""},
			"short username":   {"al", "hunter22"},
			"short password":   {"alice", "12345"},
		}

		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := service.Register(ctx, input[0], input[1])
				require.ErrorIs(t, err, apperror.ErrValidation)
			})
		}

		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Taken username", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("Save", ctx, mock.Anything).Return(apperror.ErrUserExists).Once()

		_, err := NewUserService(repo).Register(ctx, "alice", "hunter22")

		require.ErrorIs(t, err, apperror.ErrUserExists)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.User{ID: "u1", Username: "Alice", PasswordHash: string(hash), TotalGames: 4}

	t.Run("Correct password", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("FindByUsername", ctx, "alice").Return(stored, nil).Once()

		user, err := NewUserService(repo).Authenticate(ctx, "alice", "hunter22")

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("FindByUsername", ctx, "alice").Return(stored, nil).Once()

		_, err := NewUserService(repo).Authenticate(ctx, "alice", "wrong-password")

		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("FindByUsername", ctx, "bob").Return(nil, apperror.ErrNotFound).Once()

		_, err := NewUserService(repo).Authenticate(ctx, "bob", "hunter22")

		require.ErrorIs(t, err, apperror.ErrInvalidCredentials)
	})
}
