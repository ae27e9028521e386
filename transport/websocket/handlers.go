package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
)

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// respond sends the new state, or the error when the action was rejected.
func (that *Server) respond(c *client, action string, view jeopardy.View, err error) error {
	if err != nil {
		return that.sendError(c, action, err.Error(), errorCode(err))
	}

	return that.sendMessage(c, action, ResponsePayload{Player: c.player, State: &view, Feedback: view.Feedback})
}

func (that *Server) handleStart(ctx context.Context, msg *Message, c *client) error {
	payload, err := decodePayload(msg)
	if err != nil {
		_ = that.sendError(c, msg.Action, "malformed payload", "validation")
		return err
	}

	view, err := that.games.Start(ctx, c.player, payload.Topic)
	return that.respond(c, msg.Action, view, err)
}

func (that *Server) handleState(ctx context.Context, msg *Message, c *client) error {
	return that.respond(c, msg.Action, that.games.State(ctx, c.player), nil)
}

func (that *Server) handleReveal(ctx context.Context, msg *Message, c *client) error {
	payload, err := decodePayload(msg)
	if err != nil {
		_ = that.sendError(c, msg.Action, "malformed payload", "validation")
		return err
	}

	if payload.At == nil {
		return that.sendError(c, msg.Action, "clue coordinates are required", "validation")
	}

	view, err := that.games.Reveal(ctx, c.player, *payload.At)
	return that.respond(c, msg.Action, view, err)
}

func (that *Server) handleWager(ctx context.Context, msg *Message, c *client) error {
	payload, err := decodePayload(msg)
	if err != nil {
		_ = that.sendError(c, msg.Action, "malformed payload", "validation")
		return err
	}

	view, err := that.games.Wager(ctx, c.player, payload.Amount)
	return that.respond(c, msg.Action, view, err)
}

func (that *Server) handleAnswer(ctx context.Context, msg *Message, c *client) error {
	payload, err := decodePayload(msg)
	if err != nil {
		_ = that.sendError(c, msg.Action, "malformed payload", "validation")
		return err
	}

	view, err := that.games.Answer(ctx, c.player, payload.Answer)
	return that.respond(c, msg.Action, view, err)
}

func (that *Server) handleSkip(ctx context.Context, msg *Message, c *client) error {
	view, err := that.games.Skip(ctx, c.player)
	return that.respond(c, msg.Action, view, err)
}

func (that *Server) handleReset(ctx context.Context, msg *Message, c *client) error {
	result := that.games.Reset(ctx, c.player)
	view := that.games.State(ctx, c.player)

	return that.sendMessage(c, msg.Action, ResponsePayload{Player: c.player, State: &view, Result: result})
}
