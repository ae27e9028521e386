package usecase

import (
	"context"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
	"github.com/rocketscienceinc/jeopardy-backend/internal/service"
)

//go:generate mockery --name "(boardGenerator|sessionRepo|resultRecorder|userService|authService|historyService)Dep" --with-expecter --output ../../mocks/usecase --outpkg usecase

type boardGeneratorDep interface {
	GenerateBoard(ctx context.Context, topic string) (*entity.Board, error)
}

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, playerID string, snapshot *jeopardy.Snapshot) error
	GetByID(ctx context.Context, playerID string) (*jeopardy.Snapshot, error)
	DeleteByID(ctx context.Context, playerID string) error
}

type resultRecorderDep interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
}

type dailyDoubleSelectorDep interface {
	SelectBoard() ([]entity.Coord, error)
}

type userServiceDep interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}

type authServiceDep interface {
	GenerateToken(user *entity.User) (string, error)
}

type historyServiceDep interface {
	History(ctx context.Context, userID string) (*service.History, error)
}
