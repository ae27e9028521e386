package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
)

// DismissListener is told when a player's feedback auto-dismisses.
type DismissListener func(player *entity.Player, feedback jeopardy.Feedback)

type GameManagerOption func(*GameManager)

func WithDismissDelays(delays jeopardy.DismissDelays) GameManagerOption {
	return func(m *GameManager) { m.delays = delays }
}

func WithScheduler(scheduler jeopardy.Scheduler) GameManagerOption {
	return func(m *GameManager) { m.scheduler = scheduler }
}

// WithSessionTTL drops live sessions nobody touched for ttl, matching the snapshot expiry.
func WithSessionTTL(ttl time.Duration) GameManagerOption {
	return func(m *GameManager) {
		if ttl > 0 {
			m.sessionTTL = ttl
		}
	}
}

const (
	defaultSessionTTL = 24 * time.Hour
	sweepInterval     = time.Minute
)

type liveSession struct {
	session  *jeopardy.Session
	lastSeen time.Time
}

// GameManager owns one live session per player and keeps a snapshot of it in the session store.
type GameManager struct {
	logger *slog.Logger

	generator   boardGeneratorDep
	selector    dailyDoubleSelectorDep
	recorder    resultRecorderDep
	sessionRepo sessionRepoDep

	delays    jeopardy.DismissDelays
	scheduler jeopardy.Scheduler

	sessionTTL time.Duration
	now        func() time.Time

	mu        sync.Mutex
	sessions  map[string]*liveSession
	lastSweep time.Time
	listeners []DismissListener
}

func NewGameManager(
	logger *slog.Logger,
	generator boardGeneratorDep,
	selector dailyDoubleSelectorDep,
	recorder resultRecorderDep,
	sessionRepo sessionRepoDep,
	opts ...GameManagerOption,
) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),

		generator:   generator,
		selector:    selector,
		recorder:    recorder,
		sessionRepo: sessionRepo,

		delays:    jeopardy.DefaultDismissDelays(),
		scheduler: jeopardy.TimerScheduler{},

		sessionTTL: defaultSessionTTL,
		now:        time.Now,

		sessions: make(map[string]*liveSession),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *GameManager) OnDismiss(listener DismissListener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

// Start generates a board on topic and opens a new game, ending the player's previous one.
// When generation fails the player stays in topic selection.
func (that *GameManager) Start(ctx context.Context, player *entity.Player, topic string) (jeopardy.View, error) {
	log := that.logger.With("method", "Start", "player", player.ID)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return jeopardy.View{}, fmt.Errorf("%w: topic is required", apperror.ErrValidation)
	}

	session := that.session(ctx, player)

	if session.View().Phase != jeopardy.PhaseIdle {
		session.Reset(ctx)
		that.save(ctx, session)
	}

	board, err := that.generator.GenerateBoard(ctx, topic)
	if err != nil {
		return session.View(), fmt.Errorf("failed to generate board: %w", err)
	}

	if err = session.Load(board); err != nil {
		return session.View(), fmt.Errorf("failed to load board: %w", err)
	}

	that.save(ctx, session)

	log.Info("game started", "topic", board.Topic)

	return session.View(), nil
}

func (that *GameManager) State(ctx context.Context, player *entity.Player) jeopardy.View {
	return that.session(ctx, player).View()
}

func (that *GameManager) Reveal(ctx context.Context, player *entity.Player, at entity.Coord) (jeopardy.View, error) {
	session := that.session(ctx, player)

	opened, err := session.Reveal(at)
	if err != nil {
		return session.View(), err
	}

	if opened {
		that.save(ctx, session)
	}

	return session.View(), nil
}

func (that *GameManager) Wager(ctx context.Context, player *entity.Player, amount int) (jeopardy.View, error) {
	session := that.session(ctx, player)

	if err := session.SubmitWager(amount); err != nil {
		return session.View(), err
	}

	that.save(ctx, session)

	return session.View(), nil
}

func (that *GameManager) Answer(ctx context.Context, player *entity.Player, answer string) (jeopardy.View, error) {
	session := that.session(ctx, player)

	if _, err := session.SubmitAnswer(answer); err != nil {
		return session.View(), err
	}

	that.save(ctx, session)

	return session.View(), nil
}

func (that *GameManager) Skip(ctx context.Context, player *entity.Player) (jeopardy.View, error) {
	session := that.session(ctx, player)

	if _, err := session.Skip(); err != nil {
		return session.View(), err
	}

	that.save(ctx, session)

	return session.View(), nil
}

// Reset ends the player's game and returns its result, nil when nothing was answered.
func (that *GameManager) Reset(ctx context.Context, player *entity.Player) *entity.GameResult {
	log := that.logger.With("method", "Reset", "player", player.ID)

	key := sessionKey(player)
	result := that.session(ctx, player).Reset(ctx)

	that.mu.Lock()
	delete(that.sessions, key)
	that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, key); err != nil {
		log.Error("failed to delete session snapshot", "error", err)
	}

	return result
}

// sessionKey separates guests from named users.
func sessionKey(player *entity.Player) string {
	if player.IsGuest() {
		return "guest:" + player.ID
	}

	return "user:" + player.ID
}

// session returns the live session of player, restoring it from its snapshot after a restart.
func (that *GameManager) session(ctx context.Context, player *entity.Player) *jeopardy.Session {
	key := sessionKey(player)

	that.mu.Lock()
	now := that.now()
	that.sweep(now)
	live, ok := that.sessions[key]
	if ok {
		live.lastSeen = now
	}
	that.mu.Unlock()

	if ok {
		return live.session
	}

	session := that.restore(ctx, player)

	that.mu.Lock()
	defer that.mu.Unlock()

	if existing, ok := that.sessions[key]; ok {
		return existing.session
	}
	that.sessions[key] = &liveSession{session: session, lastSeen: now}

	return session
}

// sweep evicts sessions idle for longer than the TTL. Callers hold the lock.
func (that *GameManager) sweep(now time.Time) {
	if now.Sub(that.lastSweep) < sweepInterval {
		return
	}
	that.lastSweep = now

	for key, live := range that.sessions {
		if now.Sub(live.lastSeen) > that.sessionTTL {
			delete(that.sessions, key)
		}
	}
}

func (that *GameManager) restore(ctx context.Context, player *entity.Player) *jeopardy.Session {
	log := that.logger.With("method", "restore", "player", player.ID)

	snapshot, err := that.sessionRepo.GetByID(ctx, sessionKey(player))
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return jeopardy.NewSession(player, that.selector, that.sessionOptions(player)...)
	case err != nil:
		log.Error("failed to load session snapshot", "error", err)
		return jeopardy.NewSession(player, that.selector, that.sessionOptions(player)...)
	}

	// the token or cookie is authoritative for who the player is
	snapshot.Player = player

	session, err := jeopardy.RestoreSession(snapshot, that.selector, that.sessionOptions(player)...)
	if err != nil {
		log.Warn("discarding broken session snapshot", "error", err)
		return jeopardy.NewSession(player, that.selector, that.sessionOptions(player)...)
	}

	log.Info("session restored", "phase", snapshot.Phase)

	return session
}

func (that *GameManager) sessionOptions(player *entity.Player) []jeopardy.Option {
	return []jeopardy.Option{
		jeopardy.WithLogger(that.logger),
		jeopardy.WithRecorder(that.recorder),
		jeopardy.WithScheduler(that.scheduler),
		jeopardy.WithDismissDelays(that.delays),
		jeopardy.WithDismissHook(func(feedback jeopardy.Feedback) {
			that.dismissed(player, feedback)
		}),
	}
}

func (that *GameManager) dismissed(player *entity.Player, feedback jeopardy.Feedback) {
	that.mu.Lock()
	listeners := append([]DismissListener(nil), that.listeners...)
	that.mu.Unlock()

	for _, listener := range listeners {
		listener(player, feedback)
	}
}

// save is best effort; the live session stays authoritative.
func (that *GameManager) save(ctx context.Context, session *jeopardy.Session) {
	player := session.Player()
	if err := that.sessionRepo.CreateOrUpdate(ctx, sessionKey(player), session.Snapshot()); err != nil {
		that.logger.Error("failed to save session snapshot", "player", player.ID, "error", err)
	}
}
