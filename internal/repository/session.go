package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
)

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, playerID string, snapshot *jeopardy.Snapshot) error
	GetByID(ctx context.Context, playerID string) (*jeopardy.Snapshot, error)
	DeleteByID(ctx context.Context, playerID string) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository keeps snapshots for ttl after their last write; zero keeps them forever.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(playerID string) string {
	return "session:" + playerID
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, playerID string, snapshot *jeopardy.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.client.Set(ctx, sessionKey(playerID), snapshotJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, playerID string) (*jeopardy.Snapshot, error) {
	response, err := that.client.Get(ctx, sessionKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}

	var snapshot jeopardy.Snapshot
	if err = json.Unmarshal(response, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &snapshot, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, playerID string) error {
	if err := that.client.Del(ctx, sessionKey(playerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session by ID: %w", err)
	}

	return nil
}
