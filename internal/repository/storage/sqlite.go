package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/jeopardy-backend/internal/repository/storage/migrations"
)

type Storage struct {
	Connection *sql.DB
}

// NewSQLiteStorage opens the database at path and applies pending migrations.
func NewSQLiteStorage(ctx context.Context, path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// sqlite allows a single writer; an in-memory database also lives on one connection only.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	if err = migrations.Run(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't migrate database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}

func (that *Storage) Check(ctx context.Context) error {
	return that.Connection.PingContext(ctx)
}
