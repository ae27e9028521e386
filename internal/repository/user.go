package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if isUniqueViolation(err) {
		return apperror.ErrUserExists
	}
	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

// FindByUsername matches the username case-insensitively.
func (that *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT u.id, u.username, u.password_hash, u.created_at,
		(SELECT COUNT(*) FROM games g WHERE g.user_id = u.id)
		FROM users u WHERE u.username = ?`

	return that.find(ctx, query, username)
}

func (that *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT u.id, u.username, u.password_hash, u.created_at,
		(SELECT COUNT(*) FROM games g WHERE g.user_id = u.id)
		FROM users u WHERE u.id = ?`

	return that.find(ctx, query, id)
}

func (that *userRepository) find(ctx context.Context, query string, arg string) (*entity.User, error) {
	var user entity.User

	err := that.conn.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.TotalGames)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
