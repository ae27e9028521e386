package jeopardy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/matcher"
)

const (
	MinWager      = 200
	MaxWagerFloor = 1000
)

type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseBoard        Phase = "board"
	PhaseWagerPending Phase = "wager_pending"
	PhaseAnswering    Phase = "answering"
)

type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

// Feedback describes how the last clue was resolved. It is shown until the dismissal fires.
type Feedback struct {
	At      entity.Coord `json:"at"`
	Outcome Outcome      `json:"outcome"`
	Answer  string       `json:"answer"`
	Delta   int          `json:"delta"`
	Score   int          `json:"score"`
}

type selector interface {
	SelectBoard() ([]entity.Coord, error)
}

type recorder interface {
	SaveResult(ctx context.Context, result *entity.GameResult) error
}

// Session is one player's game: the board, the score and the clue currently open.
// At most one clue is active at a time.
type Session struct {
	mu     sync.Mutex
	logger *slog.Logger

	player   *entity.Player
	selector selector
	recorder recorder
	match    func(user, canonical string) bool

	scheduler Scheduler
	delays    DismissDelays
	onDismiss func(Feedback)

	board    *entity.Board
	phase    Phase
	active   *entity.Coord
	wager    int
	score    int
	answered int
	correct  int

	feedback      *Feedback
	cancelDismiss func()
	dismissSeq    uint64
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithRecorder(r recorder) Option {
	return func(s *Session) { s.recorder = r }
}

func WithMatcher(match func(user, canonical string) bool) Option {
	return func(s *Session) { s.match = match }
}

func WithScheduler(scheduler Scheduler) Option {
	return func(s *Session) { s.scheduler = scheduler }
}

func WithDismissDelays(delays DismissDelays) Option {
	return func(s *Session) { s.delays = delays }
}

// WithDismissHook is called, outside the session lock, every time feedback auto-dismisses.
func WithDismissHook(hook func(Feedback)) Option {
	return func(s *Session) { s.onDismiss = hook }
}

func NewSession(player *entity.Player, selector selector, opts ...Option) *Session {
	session := &Session{
		logger:    slog.Default(),
		player:    player,
		selector:  selector,
		match:     matcher.IsEquivalent,
		scheduler: TimerScheduler{},
		delays:    DefaultDismissDelays(),
		phase:     PhaseIdle,
	}

	for _, opt := range opts {
		opt(session)
	}

	session.logger = session.logger.With("component", "session", "player", player.ID)

	return session
}

func (that *Session) Player() *entity.Player {
	return that.player
}

// Load starts a game on board and tags its Daily Double cells.
func (that *Session) Load(board *entity.Board) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase != PhaseIdle {
		return fmt.Errorf("%w: a game is already loaded", apperror.ErrTransition)
	}

	if board == nil {
		return fmt.Errorf("%w: board is required", apperror.ErrValidation)
	}

	cells, err := that.selector.SelectBoard()
	if err != nil {
		return fmt.Errorf("failed to select daily doubles: %w", err)
	}

	if err = validateDailyDoubles(cells); err != nil {
		return err
	}

	if err = board.MarkDailyDoubles(cells); err != nil {
		return fmt.Errorf("failed to mark daily doubles: %w", err)
	}

	that.supersedeDismissal()
	that.board = board
	that.phase = PhaseBoard
	that.score, that.answered, that.correct = 0, 0, 0
	that.active, that.wager = nil, 0

	that.logger.Info("board loaded", "topic", board.Topic, "daily_doubles", cells)

	return nil
}

// Reveal opens the clue at the given cell. Revealing a used clue is a no-op and reports false.
func (that *Session) Reveal(at entity.Coord) (bool, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch that.phase {
	case PhaseIdle:
		return false, errNoGame()
	case PhaseWagerPending, PhaseAnswering:
		return false, fmt.Errorf("%w: clue (%d,%d) is still open", apperror.ErrTransition, that.active.Col, that.active.Row)
	}

	clue, err := that.board.Clue(at)
	if err != nil {
		return false, err
	}

	if clue.Used {
		return false, nil
	}

	that.supersedeDismissal()
	that.active = &at
	that.wager = 0

	if clue.IsDailyDouble {
		that.phase = PhaseWagerPending
	} else {
		that.phase = PhaseAnswering
	}

	return true, nil
}

// MaxWager is the largest Daily Double wager allowed at the current score.
func (that *Session) MaxWager() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.maxWager()
}

func (that *Session) maxWager() int {
	base := MinWager
	if that.score > 0 {
		base = that.score
	}

	return max(base, MaxWagerFloor)
}

func (that *Session) SubmitWager(amount int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase == PhaseIdle {
		return errNoGame()
	}

	if that.phase != PhaseWagerPending {
		return fmt.Errorf("%w: no daily double awaiting a wager", apperror.ErrTransition)
	}

	if limit := that.maxWager(); amount < MinWager || amount > limit {
		return fmt.Errorf("%w: wager must be between %d and %d, got %d", apperror.ErrValidation, MinWager, limit, amount)
	}

	that.supersedeDismissal()
	that.wager = amount
	that.phase = PhaseAnswering

	return nil
}

func (that *Session) SubmitAnswer(text string) (Feedback, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase == PhaseIdle {
		return Feedback{}, errNoGame()
	}

	if that.phase != PhaseAnswering {
		return Feedback{}, fmt.Errorf("%w: no clue is open for answering", apperror.ErrTransition)
	}

	if strings.TrimSpace(text) == "" {
		return Feedback{}, fmt.Errorf("%w: answer is empty", apperror.ErrValidation)
	}

	clue := &that.board.Clues[that.active.Col][that.active.Row]

	delta := clue.Value
	if clue.IsDailyDouble {
		delta = that.wager
	}

	outcome := OutcomeIncorrect
	if that.match(text, clue.Answer) {
		outcome = OutcomeCorrect
		that.score += delta
		that.correct++
	} else {
		that.score -= delta
		delta = -delta
	}
	that.answered++

	return that.resolve(clue, outcome, delta), nil
}

// Skip forfeits the open clue, from either the wager or the answer step. The score is unchanged.
func (that *Session) Skip() (Feedback, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.phase == PhaseIdle {
		return Feedback{}, errNoGame()
	}

	if that.phase != PhaseAnswering && that.phase != PhaseWagerPending {
		return Feedback{}, fmt.Errorf("%w: no clue is open to skip", apperror.ErrTransition)
	}

	clue := &that.board.Clues[that.active.Col][that.active.Row]
	that.answered++

	return that.resolve(clue, OutcomeSkipped, 0), nil
}

func (that *Session) resolve(clue *entity.Clue, outcome Outcome, delta int) Feedback {
	that.supersedeDismissal()

	clue.Used = true

	feedback := Feedback{
		At:      *that.active,
		Outcome: outcome,
		Answer:  clue.Answer,
		Delta:   delta,
		Score:   that.score,
	}

	that.active = nil
	that.wager = 0
	that.phase = PhaseBoard
	that.feedback = &feedback
	that.scheduleDismissal(that.delays.For(outcome))

	that.logger.Debug("clue resolved", "at", feedback.At, "outcome", outcome, "delta", delta, "score", that.score)

	return feedback
}

// Reset ends the game from any phase. Named players who answered at least one question get their
// result recorded first; a failing recorder is logged and does not stop the reset.
// The finished result is returned, or nil when nothing was answered.
func (that *Session) Reset(ctx context.Context) *entity.GameResult {
	log := that.logger.With("method", "Reset")

	that.mu.Lock()
	var result *entity.GameResult
	if that.board != nil && that.answered > 0 {
		result = &entity.GameResult{
			UserID:            that.player.ID,
			Topic:             that.board.Topic,
			QuestionsAnswered: that.answered,
			CorrectAnswers:    that.correct,
			Score:             that.score,
			PlayedAt:          time.Now().UTC(),
		}
	}
	that.mu.Unlock()

	if result != nil && !that.player.IsGuest() && that.recorder != nil {
		if err := that.recorder.SaveResult(ctx, result); err != nil {
			log.Error("failed to record game result", "error", err)
		}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.supersedeDismissal()
	that.board = nil
	that.phase = PhaseIdle
	that.active, that.wager = nil, 0
	that.score, that.answered, that.correct = 0, 0, 0

	return result
}

// errNoGame is a transition error that also tells the caller there is nothing to play.
func errNoGame() error {
	return fmt.Errorf("%w: %w", apperror.ErrTransition, apperror.ErrNoGame)
}

// validateDailyDoubles requires exactly DailyDoubleCount distinct cells.
func validateDailyDoubles(cells []entity.Coord) error {
	if len(cells) != entity.DailyDoubleCount {
		return fmt.Errorf("%w: got %d daily doubles, want %d", apperror.ErrValidation, len(cells), entity.DailyDoubleCount)
	}

	seen := make(map[entity.Coord]struct{}, len(cells))
	for _, cell := range cells {
		if _, dup := seen[cell]; dup {
			return fmt.Errorf("%w: daily double (%d,%d) picked twice", apperror.ErrValidation, cell.Col, cell.Row)
		}
		seen[cell] = struct{}{}
	}

	return nil
}

// supersedeDismissal cancels a pending dismissal and drops the feedback it would have cleared.
// Callers hold the lock.
func (that *Session) supersedeDismissal() {
	if that.cancelDismiss != nil {
		that.cancelDismiss()
		that.cancelDismiss = nil
	}
	that.dismissSeq++
	that.feedback = nil
}

// scheduleDismissal arms the feedback dismissal. Callers hold the lock.
func (that *Session) scheduleDismissal(delay time.Duration) {
	that.dismissSeq++
	seq := that.dismissSeq

	that.cancelDismiss = that.scheduler.Schedule(delay, func() {
		that.mu.Lock()
		if that.dismissSeq != seq || that.feedback == nil {
			that.mu.Unlock()
			return
		}
		feedback := *that.feedback
		that.feedback = nil
		that.cancelDismiss = nil
		hook := that.onDismiss
		that.mu.Unlock()

		if hook != nil {
			hook(feedback)
		}
	})
}
