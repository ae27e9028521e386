package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
	"github.com/rocketscienceinc/jeopardy-backend/internal/service"
	"github.com/rocketscienceinc/jeopardy-backend/internal/usecase"
)

type gameUseCase interface {
	Start(ctx context.Context, player *entity.Player, topic string) (jeopardy.View, error)
	State(ctx context.Context, player *entity.Player) jeopardy.View
	Reveal(ctx context.Context, player *entity.Player, at entity.Coord) (jeopardy.View, error)
	Wager(ctx context.Context, player *entity.Player, amount int) (jeopardy.View, error)
	Answer(ctx context.Context, player *entity.Player, answer string) (jeopardy.View, error)
	Skip(ctx context.Context, player *entity.Player) (jeopardy.View, error)
	Reset(ctx context.Context, player *entity.Player) *entity.GameResult
}

type userUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*usecase.Login, error)
	History(ctx context.Context, player *entity.Player) (*service.History, error)
}

type Server struct {
	logger *slog.Logger
	srv    *http.Server

	games  gameUseCase
	users  userUseCase
	tokens tokenParser
	checks map[string]Checker
}

// New builds the HTTP server. live, when not nil, is mounted at /ws behind the optional auth middleware.
func New(logger *slog.Logger, port string, games gameUseCase, users userUseCase, tokens tokenParser, live http.Handler, opts ...Option) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		games:  games,
		users:  users,
		tokens: tokens,
	}

	for _, opt := range opts {
		opt(server)
	}

	server.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           server.routes(live),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server
}

func (that *Server) routes(live http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newStructuredLogger(that.logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", that.handlePing)
	r.Get("/healthz", that.handleHealth)

	if live != nil {
		r.With(optionalAuth(that.tokens)).Handle("/ws", live)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", that.handleRegister)
			r.Post("/login", that.handleLogin)
			r.Post("/logout", that.handleLogout)
		})

		r.Route("/game", func(r chi.Router) {
			r.Use(optionalAuth(that.tokens))

			r.Post("/start", that.handleStart)
			r.Get("/state", that.handleState)
			r.Post("/reveal", that.handleReveal)
			r.Post("/wager", that.handleWager)
			r.Post("/answer", that.handleAnswer)
			r.Post("/skip", that.handleSkip)
			r.Post("/reset", that.handleReset)
		})

		r.With(requireAuth(that.tokens)).Get("/games/history", that.handleHistory)
	})

	return r
}

func (that *Server) Handler() http.Handler {
	return that.srv.Handler
}

func (that *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", that.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", that.srv.Addr, err)
	}

	that.logger.Info("http server started", "addr", that.srv.Addr)

	err = that.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (that *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return that.srv.Shutdown(ctx)
}
