package rest

import (
	"net/http"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
	"github.com/rocketscienceinc/jeopardy-backend/internal/jeopardy"
)

type startRequest struct {
	Topic string `json:"topic"`
}

type wagerRequest struct {
	Amount int `json:"amount"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type resetResponse struct {
	Result *entity.GameResult `json:"result"`
	State  jeopardy.View      `json:"state"`
}

func (that *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := readJSON(w, r, &req); err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	view, err := that.games.Start(r.Context(), PlayerFrom(r), req.Topic)
	that.writeView(w, view, err)
}

func (that *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, that.games.State(r.Context(), PlayerFrom(r)))
}

func (that *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	var at entity.Coord
	if err := readJSON(w, r, &at); err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	view, err := that.games.Reveal(r.Context(), PlayerFrom(r), at)
	that.writeView(w, view, err)
}

func (that *Server) handleWager(w http.ResponseWriter, r *http.Request) {
	var req wagerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	view, err := that.games.Wager(r.Context(), PlayerFrom(r), req.Amount)
	that.writeView(w, view, err)
}

func (that *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	view, err := that.games.Answer(r.Context(), PlayerFrom(r), req.Answer)
	that.writeView(w, view, err)
}

func (that *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.Skip(r.Context(), PlayerFrom(r))
	that.writeView(w, view, err)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	player := PlayerFrom(r)

	result := that.games.Reset(r.Context(), player)

	writeJSON(w, http.StatusOK, resetResponse{
		Result: result,
		State:  that.games.State(r.Context(), player),
	})
}

func (that *Server) writeView(w http.ResponseWriter, view jeopardy.View, err error) {
	if err != nil {
		writeAppError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
