package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
)

const (
	ActionGameStart     = "game:start"
	ActionGameState     = "game:state"
	ActionGameReset     = "game:reset"
	ActionClueReveal    = "clue:reveal"
	ActionClueWager     = "clue:wager"
	ActionClueAnswer    = "clue:answer"
	ActionClueSkip      = "clue:skip"
	ActionClueDismissed = "clue:dismissed"
	ActionError         = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Topic  string        `json:"topic,omitempty"`
	At     *entity.Coord `json:"at,omitempty"`
	Amount int           `json:"amount,omitempty"`
	Answer string        `json:"answer,omitempty"`
}

type ResponsePayload struct {
	Player   *entity.Player     `json:"player,omitempty"`
	State    *jeopardy.View     `json:"state,omitempty"`
	Feedback *jeopardy.Feedback `json:"feedback,omitempty"`
	Result   *entity.GameResult `json:"result,omitempty"`
	Error    string             `json:"error,omitempty"`
	Code     string             `json:"code,omitempty"`
}

// errorCode classifies an error for clients that branch on it.
func errorCode(err error) string {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return "validation"
	case errors.Is(err, apperror.ErrNoGame), errors.Is(err, apperror.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperror.ErrTransition):
		return "transition"
	case errors.Is(err, apperror.ErrExternalCall):
		return "external"
	default:
		return "internal"
	}
}
