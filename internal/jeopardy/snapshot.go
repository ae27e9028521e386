package jeopardy

import (
	"fmt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

// Snapshot is the persistable part of a session. Pending feedback is not kept.
type Snapshot struct {
	Player   *entity.Player `json:"player"`
	Board    *entity.Board  `json:"board,omitempty"`
	Phase    Phase          `json:"phase"`
	Active   *entity.Coord  `json:"active,omitempty"`
	Wager    int            `json:"wager,omitempty"`
	Score    int            `json:"score"`
	Answered int            `json:"answered"`
	Correct  int            `json:"correct"`
}

func (that *Session) Snapshot() *Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := &Snapshot{
		Player:   that.player,
		Phase:    that.phase,
		Wager:    that.wager,
		Score:    that.score,
		Answered: that.answered,
		Correct:  that.correct,
	}

	if that.board != nil {
		board := *that.board
		snapshot.Board = &board
	}

	if that.active != nil {
		active := *that.active
		snapshot.Active = &active
	}

	return snapshot
}

// RestoreSession rebuilds a session from a snapshot, rejecting inconsistent ones.
func RestoreSession(snapshot *Snapshot, selector selector, opts ...Option) (*Session, error) {
	if snapshot == nil || snapshot.Player == nil {
		return nil, fmt.Errorf("%w: snapshot has no player", apperror.ErrValidation)
	}

	if err := snapshot.validate(); err != nil {
		return nil, err
	}

	session := NewSession(snapshot.Player, selector, opts...)
	session.phase = snapshot.Phase
	session.board = snapshot.Board
	session.wager = snapshot.Wager
	session.score = snapshot.Score
	session.answered = snapshot.Answered
	session.correct = snapshot.Correct

	if snapshot.Active != nil {
		active := *snapshot.Active
		session.active = &active
	}

	return session, nil
}

func (that *Snapshot) validate() error {
	switch that.Phase {
	case PhaseIdle:
		return nil
	case PhaseBoard, PhaseWagerPending, PhaseAnswering:
	default:
		return fmt.Errorf("%w: unknown phase %q", apperror.ErrValidation, that.Phase)
	}

	if that.Board == nil {
		return fmt.Errorf("%w: phase %q without a board", apperror.ErrValidation, that.Phase)
	}

	open := that.Phase == PhaseWagerPending || that.Phase == PhaseAnswering
	if open != (that.Active != nil) {
		return fmt.Errorf("%w: phase %q does not match the active clue", apperror.ErrValidation, that.Phase)
	}

	if that.Active != nil {
		clue, err := that.Board.Clue(*that.Active)
		if err != nil {
			return err
		}
		if clue.Used {
			return fmt.Errorf("%w: active clue is already used", apperror.ErrValidation)
		}
	}

	return nil
}
