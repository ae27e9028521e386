package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

type UserService interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userService struct {
	userRepo userRepo
}

func NewUserService(userRepo userRepo) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (that *userService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperror.ErrValidation)
	}

	if len([]rune(username)) < MinUsernameLen {
		return nil, fmt.Errorf("%w: username must be at least %d characters", apperror.ErrValidation, MinUsernameLen)
	}

	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperror.ErrValidation, MinPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err = that.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	return user, nil
}

// Authenticate does not say whether the username or the password was wrong.
func (that *userService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperror.ErrValidation)
	}

	user, err := that.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}
