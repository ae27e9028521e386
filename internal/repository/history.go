package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

type HistoryRepository interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
	ListByUser(ctx context.Context, userID string) ([]*entity.GameResult, error)
}

type historyRepository struct {
	conn *sql.DB
}

func NewHistoryRepository(conn *sql.DB) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

// SaveResult stores a finished game. An empty ID is filled in.
func (that *historyRepository) SaveResult(ctx context.Context, result *entity.GameResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}

	query := `INSERT INTO games (id, user_id, topic, score, correct_answers, total_questions, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		result.ID, result.UserID, result.Topic, result.Score,
		result.CorrectAnswers, result.QuestionsAnswered, result.PlayedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: can't save game result: %w", apperror.ErrExternalCall, err)
	}

	return nil
}

// ListByUser returns the user's games, newest first.
func (that *historyRepository) ListByUser(ctx context.Context, userID string) ([]*entity.GameResult, error) {
	query := `SELECT id, user_id, topic, score, correct_answers, total_questions, played_at
		FROM games WHERE user_id = ? ORDER BY played_at DESC, id`

	rows, err := that.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("can't list games: %w", err)
	}
	defer rows.Close()

	var results []*entity.GameResult
	for rows.Next() {
		var result entity.GameResult
		if err = rows.Scan(&result.ID, &result.UserID, &result.Topic, &result.Score,
			&result.CorrectAnswers, &result.QuestionsAnswered, &result.PlayedAt); err != nil {
			return nil, fmt.Errorf("can't scan game: %w", err)
		}
		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list games: %w", err)
	}

	return results, nil
}
