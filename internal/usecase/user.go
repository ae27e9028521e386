package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/service"
)

type UserUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*Login, error)
	History(ctx context.Context, player *entity.Player) (*service.History, error)
}

type Login struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type userUseCase struct {
	users   userServiceDep
	auth    authServiceDep
	history historyServiceDep
}

func NewUserUseCase(users userServiceDep, auth authServiceDep, history historyServiceDep) UserUseCase {
	return &userUseCase{
		users:   users,
		auth:    auth,
		history: history,
	}
}

func (that *userUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := that.users.Register(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

func (that *userUseCase) Login(ctx context.Context, username, password string) (*Login, error) {
	user, err := that.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	token, err := that.auth.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Login{Token: token, User: user}, nil
}

func (that *userUseCase) History(ctx context.Context, player *entity.Player) (*service.History, error) {
	history, err := that.history.History(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return history, nil
}
