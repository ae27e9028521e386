package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/jeopardy-backend/internal/config"
	"github.com/rocketscienceinc/jeopardy-backend/internal/dailydouble"
	"github.com/rocketscienceinc/jeopardy-backend/internal/generator"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
	"github.com/rocketscienceinc/jeopardy-backend/internal/repository"
	"github.com/rocketscienceinc/jeopardy-backend/internal/repository/storage"
	"github.com/rocketscienceinc/jeopardy-backend/internal/service"
	"github.com/rocketscienceinc/jeopardy-backend/internal/usecase"
	"github.com/rocketscienceinc/jeopardy-backend/transport/rest"
	"github.com/rocketscienceinc/jeopardy-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqlStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqlStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	log.Info("storage ready", "sqlite", conf.SQLiteStoragePath, "redis", conf.Redis.GetRedisAddr())

	boards, err := generator.New(ctx, logger, generator.Config{
		APIKey:      conf.Generator.APIKey,
		Model:       conf.Generator.Model,
		Temperature: conf.Generator.Temperature,
		Timeout:     conf.Generator.Timeout,
	})
	if err != nil {
		return fmt.Errorf("could not create board generator: %w", err)
	}

	defer func() {
		if err = boards.Close(); err != nil {
			log.Error("could not close board generator", "error", err)
		}
	}()

	userRepo := repository.NewUserRepository(sqlStorage.Connection)
	historyRepo := repository.NewHistoryRepository(sqlStorage.Connection)
	sessionRepo := repository.NewSessionRepository(redisStorage.Connection, conf.Redis.SessionTTL)

	authService := service.NewAuthService(conf.JWTSecretKey, conf.JWTTTL)
	userService := service.NewUserService(userRepo)
	historyService := service.NewHistoryService(historyRepo)

	gameManager := usecase.NewGameManager(
		logger,
		boards,
		dailydouble.NewSelector(nil),
		historyService,
		sessionRepo,
		usecase.WithDismissDelays(jeopardy.DismissDelays{
			Correct:   conf.Game.CorrectDismiss,
			Incorrect: conf.Game.IncorrectDismiss,
			Skipped:   conf.Game.SkipDismiss,
		}),
		usecase.WithSessionTTL(conf.Redis.SessionTTL),
	)
	userUseCase := usecase.NewUserUseCase(userService, authService, historyService)

	live := websocket.New(logger, gameManager, rest.PlayerFrom)
	server := rest.New(logger, conf.HTTPPort, gameManager, userUseCase, authService, live,
		rest.WithHealthChecks(map[string]rest.Checker{
			"sqlite": sqlStorage,
			"redis":  redisStorage,
		}),
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return server.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting down http server")
		return server.Shutdown(context.Background())
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}
