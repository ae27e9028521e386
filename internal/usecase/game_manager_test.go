package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
	mockedUseCase "github.com/rocketscienceinc/jeopardy-backend/mocks/usecase"
	"github.com/rocketscienceinc/jeopardy-backend/testing/fixture"
)

var (
	errGeneratorDown = errors.New("generator down")
	errRedisDown     = errors.New("redis down")
)

var dailyDoubles = fixture.FixedSelector{{Col: 0, Row: 4}, {Col: 3, Row: 2}}

type pendingTasks struct {
	mu    sync.Mutex
	tasks []func()
}

func (that *pendingTasks) Schedule(_ time.Duration, task func()) func() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tasks = append(that.tasks, task)

	return func() {}
}

func (that *pendingTasks) runLast() {
	that.mu.Lock()
	task := that.tasks[len(that.tasks)-1]
	that.mu.Unlock()

	task()
}

type managerDeps struct {
	generator   *mockedUseCase.MockboardGeneratorDep
	recorder    *mockedUseCase.MockresultRecorderDep
	sessionRepo *mockedUseCase.MocksessionRepoDep
	scheduler   *pendingTasks
}

func newTestManager(t *testing.T) (*GameManager, managerDeps) {
	t.Helper()

	deps := managerDeps{
		generator:   mockedUseCase.NewMockboardGeneratorDep(t),
		recorder:    mockedUseCase.NewMockresultRecorderDep(t),
		sessionRepo: mockedUseCase.NewMocksessionRepoDep(t),
		scheduler:   &pendingTasks{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := NewGameManager(logger, deps.generator, dailyDoubles, deps.recorder, deps.sessionRepo,
		WithScheduler(deps.scheduler))

	return manager, deps
}

func noSnapshot(deps managerDeps, key string) {
	deps.sessionRepo.EXPECT().
		GetByID(mock.Anything, key).
		Return((*jeopardy.Snapshot)(nil), apperror.ErrNotFound).
		Once()
}

func TestGameManager_Start(t *testing.T) {
	ctx := context.Background()
	player := entity.NewGuestPlayer("guest-1")

	t.Run("Rejects an empty topic", func(t *testing.T) {
		// Given: a manager with no expectations on its dependencies
		manager, _ := newTestManager(t)

		// When: starting without a topic
		_, err := manager.Start(ctx, player, "  ")

		// Then: nothing is generated
		require.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("Loads a generated board and saves a snapshot", func(t *testing.T) {
		// Given: a generator that returns a board
		manager, deps := newTestManager(t)
		noSnapshot(deps, "guest:guest-1")
		deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
		deps.sessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, "guest:guest-1", mock.MatchedBy(func(s *jeopardy.Snapshot) bool {
				return s.Phase == jeopardy.PhaseBoard && s.Board.Topic == "Space"
			})).
			Return(nil).
			Once()

		// When: starting a game
		view, err := manager.Start(ctx, player, " Space ")

		// Then: the board is on screen with its Daily Doubles
		require.NoError(t, err)
		assert.Equal(t, jeopardy.PhaseBoard, view.Phase)
		assert.True(t, view.Clues[0][4].IsDailyDouble)
		assert.True(t, view.Clues[3][2].IsDailyDouble)
	})

	t.Run("Generation failure leaves the player in topic selection", func(t *testing.T) {
		manager, deps := newTestManager(t)
		noSnapshot(deps, "guest:guest-1")
		deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").
			Return((*entity.Board)(nil), errors.Join(apperror.ErrExternalCall, errGeneratorDown)).
			Once()

		view, err := manager.Start(ctx, player, "Space")

		require.ErrorIs(t, err, apperror.ErrExternalCall)
		assert.Equal(t, jeopardy.PhaseIdle, view.Phase)
	})

	t.Run("A second start records and replaces the running game", func(t *testing.T) {
		// Given: a named player with one answered clue
		user := entity.NewUserPlayer("user-1", "alice")
		manager, deps := newTestManager(t)
		noSnapshot(deps, "user:user-1")
		deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
		deps.generator.EXPECT().GenerateBoard(mock.Anything, "Rivers").Return(fixture.Board("Rivers"), nil).Once()
		deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "user:user-1", mock.Anything).Return(nil)
		deps.recorder.EXPECT().
			SaveResult(mock.Anything, mock.MatchedBy(func(r *entity.GameResult) bool {
				return r.Topic == "Space" && r.QuestionsAnswered == 1 && r.Score == -200
			})).
			Return(nil).
			Once()

		_, err := manager.Start(ctx, user, "Space")
		require.NoError(t, err)
		_, err = manager.Reveal(ctx, user, entity.Coord{Col: 0, Row: 0})
		require.NoError(t, err)
		_, err = manager.Answer(ctx, user, "Mars")
		require.NoError(t, err)

		// When: a new topic is started
		view, err := manager.Start(ctx, user, "Rivers")

		// Then: the old game was recorded and the new board starts from zero
		require.NoError(t, err)
		assert.Equal(t, "Rivers", view.Topic)
		assert.Zero(t, view.Score)
		assert.Zero(t, view.QuestionsAnswered)
	})
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()
	player := entity.NewGuestPlayer("guest-1")

	t.Run("Daily Double round trip", func(t *testing.T) {
		// Given: a started game
		manager, deps := newTestManager(t)
		noSnapshot(deps, "guest:guest-1")
		deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
		deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "guest:guest-1", mock.Anything).Return(nil)

		_, err := manager.Start(ctx, player, "Space")
		require.NoError(t, err)

		// When: the Daily Double is revealed, wagered and answered
		view, err := manager.Reveal(ctx, player, entity.Coord{Col: 0, Row: 4})
		require.NoError(t, err)
		assert.Equal(t, jeopardy.PhaseWagerPending, view.Phase)

		_, err = manager.Wager(ctx, player, 100)
		require.ErrorIs(t, err, apperror.ErrValidation)

		_, err = manager.Wager(ctx, player, 700)
		require.NoError(t, err)

		view, err = manager.Answer(ctx, player, "answer 0-4")

		// Then: the wager is scored and the feedback is pending
		require.NoError(t, err)
		assert.Equal(t, 700, view.Score)
		require.NotNil(t, view.Feedback)
		assert.Equal(t, jeopardy.OutcomeCorrect, view.Feedback.Outcome)
	})

	t.Run("Moves without a game are transition errors", func(t *testing.T) {
		manager, deps := newTestManager(t)
		noSnapshot(deps, "guest:guest-1")

		_, err := manager.Reveal(ctx, player, entity.Coord{})
		require.ErrorIs(t, err, apperror.ErrTransition)
		require.ErrorIs(t, err, apperror.ErrNoGame)

		_, err = manager.Skip(ctx, player)
		require.ErrorIs(t, err, apperror.ErrTransition)

		assert.Equal(t, jeopardy.PhaseIdle, manager.State(ctx, player).Phase)
	})

	t.Run("Snapshot failures do not fail the move", func(t *testing.T) {
		manager, deps := newTestManager(t)
		noSnapshot(deps, "guest:guest-1")
		deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
		deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "guest:guest-1", mock.Anything).Return(errRedisDown)

		_, err := manager.Start(ctx, player, "Space")
		require.NoError(t, err)

		view, err := manager.Reveal(ctx, player, entity.Coord{Col: 1, Row: 1})
		require.NoError(t, err)
		assert.Equal(t, jeopardy.PhaseAnswering, view.Phase)
	})
}

func TestGameManager_Restore(t *testing.T) {
	ctx := context.Background()
	player := entity.NewGuestPlayer("guest-1")

	t.Run("Continues from a stored snapshot", func(t *testing.T) {
		// Given: a snapshot with an open clue
		manager, deps := newTestManager(t)
		deps.sessionRepo.EXPECT().GetByID(mock.Anything, "guest:guest-1").Return(&jeopardy.Snapshot{
			Player: player,
			Board:  fixture.Board("Space"),
			Phase:  jeopardy.PhaseAnswering,
			Active: &entity.Coord{Col: 2, Row: 0},
			Score:  400,
		}, nil).Once()
		deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "guest:guest-1", mock.Anything).Return(nil).Once()

		// When: the player answers after a restart
		view, err := manager.Answer(ctx, player, "answer 2-0")

		// Then: the stored score carries on
		require.NoError(t, err)
		assert.Equal(t, 600, view.Score)
	})

	t.Run("Discards a broken snapshot", func(t *testing.T) {
		manager, deps := newTestManager(t)
		deps.sessionRepo.EXPECT().GetByID(mock.Anything, "guest:guest-1").Return(&jeopardy.Snapshot{
			Player: player,
			Phase:  jeopardy.PhaseAnswering,
		}, nil).Once()

		view := manager.State(ctx, player)

		assert.Equal(t, jeopardy.PhaseIdle, view.Phase)
	})

	t.Run("Falls back to a new session when the store is down", func(t *testing.T) {
		manager, deps := newTestManager(t)
		deps.sessionRepo.EXPECT().GetByID(mock.Anything, "guest:guest-1").
			Return((*jeopardy.Snapshot)(nil), errRedisDown).
			Once()

		view := manager.State(ctx, player)

		assert.Equal(t, jeopardy.PhaseIdle, view.Phase)

		// And: the session is cached, the store is not asked again
		assert.Equal(t, jeopardy.PhaseIdle, manager.State(ctx, player).Phase)
	})
}

func TestGameManager_Reset(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUserPlayer("user-1", "alice")

	// Given: a named player who skipped one clue
	manager, deps := newTestManager(t)
	noSnapshot(deps, "user:user-1")
	deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
	deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "user:user-1", mock.Anything).Return(nil)
	deps.sessionRepo.EXPECT().DeleteByID(mock.Anything, "user:user-1").Return(nil).Once()
	deps.recorder.EXPECT().SaveResult(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := manager.Start(ctx, user, "Space")
	require.NoError(t, err)
	_, err = manager.Reveal(ctx, user, entity.Coord{Col: 5, Row: 4})
	require.NoError(t, err)
	_, err = manager.Skip(ctx, user)
	require.NoError(t, err)

	// When: the game is reset
	result := manager.Reset(ctx, user)

	// Then: the result is returned and the snapshot is gone
	require.NotNil(t, result)
	assert.Equal(t, 1, result.QuestionsAnswered)
	assert.Equal(t, "user-1", result.UserID)

	// And: the live session is released, the next request looks in the store again
	noSnapshot(deps, "user:user-1")
	assert.Equal(t, jeopardy.PhaseIdle, manager.State(ctx, user).Phase)
}

func TestGameManager_SessionEviction(t *testing.T) {
	ctx := context.Background()
	player := entity.NewGuestPlayer("guest-1")

	// Given: a manager with a one hour session TTL and a controllable clock
	manager, deps := newTestManager(t)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return clock }
	manager.sessionTTL = time.Hour

	noSnapshot(deps, "guest:guest-1")
	manager.State(ctx, player)

	// When: the player comes back within the TTL
	clock = clock.Add(30 * time.Minute)
	manager.State(ctx, player)

	// Then: the cached session is used
	deps.sessionRepo.AssertNumberOfCalls(t, "GetByID", 1)

	// When: the player stays away longer than the TTL
	clock = clock.Add(2 * time.Hour)
	noSnapshot(deps, "guest:guest-1")
	manager.State(ctx, player)

	// Then: the session was evicted and is loaded again
	deps.sessionRepo.AssertNumberOfCalls(t, "GetByID", 2)

	manager.mu.Lock()
	defer manager.mu.Unlock()
	assert.Len(t, manager.sessions, 1)
}

func TestGameManager_GuestCannotReachUserSession(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUserPlayer("user-uuid-1", "alice")
	impostor := entity.NewGuestPlayer("user-uuid-1")

	// Given: a named user with a running game
	manager, deps := newTestManager(t)
	noSnapshot(deps, "user:user-uuid-1")
	deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
	deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "user:user-uuid-1", mock.Anything).Return(nil).Once()

	_, err := manager.Start(ctx, user, "Space")
	require.NoError(t, err)

	// When: a guest with the same id plays and resets
	noSnapshot(deps, "guest:user-uuid-1")
	deps.sessionRepo.EXPECT().DeleteByID(mock.Anything, "guest:user-uuid-1").Return(nil).Once()

	_, err = manager.Reveal(ctx, impostor, entity.Coord{Col: 1, Row: 1})
	result := manager.Reset(ctx, impostor)

	// Then: the guest has no game and nothing is recorded for the user
	require.ErrorIs(t, err, apperror.ErrNoGame)
	assert.Nil(t, result)
	deps.recorder.AssertNotCalled(t, "SaveResult", mock.Anything, mock.Anything)

	// And: the user's board is untouched
	view := manager.State(ctx, user)
	assert.Equal(t, jeopardy.PhaseBoard, view.Phase)
	assert.Equal(t, 30, view.Remaining)
}

func TestGameManager_OnDismiss(t *testing.T) {
	ctx := context.Background()
	player := entity.NewGuestPlayer("guest-1")

	// Given: a listener and an answered clue
	manager, deps := newTestManager(t)
	noSnapshot(deps, "guest:guest-1")
	deps.generator.EXPECT().GenerateBoard(mock.Anything, "Space").Return(fixture.Board("Space"), nil).Once()
	deps.sessionRepo.EXPECT().CreateOrUpdate(mock.Anything, "guest:guest-1", mock.Anything).Return(nil)

	var (
		gotPlayer   *entity.Player
		gotFeedback jeopardy.Feedback
	)
	manager.OnDismiss(func(p *entity.Player, f jeopardy.Feedback) {
		gotPlayer, gotFeedback = p, f
	})

	_, err := manager.Start(ctx, player, "Space")
	require.NoError(t, err)
	_, err = manager.Reveal(ctx, player, entity.Coord{Col: 1, Row: 0})
	require.NoError(t, err)
	_, err = manager.Answer(ctx, player, "wrong")
	require.NoError(t, err)

	// When: the dismissal fires
	deps.scheduler.runLast()

	// Then: the listener hears about it and the feedback is cleared
	assert.Equal(t, player, gotPlayer)
	assert.Equal(t, jeopardy.OutcomeIncorrect, gotFeedback.Outcome)
	assert.Nil(t, manager.State(ctx, player).Feedback)
}
