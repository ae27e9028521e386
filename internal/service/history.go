package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

type HistoryService interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
	History(ctx context.Context, userID string) (*History, error)
}

type GameSummary struct {
	*entity.GameResult
	PercentCorrect int `json:"percent_correct"`
}

type History struct {
	Games []GameSummary       `json:"games"`
	Stats entity.HistoryStats `json:"stats"`
}

type historyRepo interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
	ListByUser(ctx context.Context, userID string) ([]*entity.GameResult, error)
}

type historyService struct {
	repo historyRepo
}

func NewHistoryService(repo historyRepo) HistoryService {
	return &historyService{
		repo: repo,
	}
}

func (that *historyService) SaveResult(ctx context.Context, result *entity.GameResult) error {
	if err := that.repo.SaveResult(ctx, result); err != nil {
		return fmt.Errorf("could not save game result: %w", err)
	}

	return nil
}

func (that *historyService) History(ctx context.Context, userID string) (*History, error) {
	games, err := that.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list games: %w", err)
	}

	history := &History{
		Games: make([]GameSummary, 0, len(games)),
		Stats: entity.NewHistoryStats(games),
	}

	for _, game := range games {
		history.Games = append(history.Games, GameSummary{GameResult: game, PercentCorrect: game.PercentCorrect()})
	}

	return history, nil
}
