package jeopardy

import "github.com/rocketscienceinc/jeopardy-backend/internal/entity"

// ClueView is what the board shows for a cell before it is opened.
type ClueView struct {
	Value         int  `json:"value"`
	Used          bool `json:"used"`
	IsDailyDouble bool `json:"is_daily_double"`
}

type ActiveClue struct {
	At            entity.Coord `json:"at"`
	Category      string       `json:"category"`
	Value         int          `json:"value"`
	Question      string       `json:"question"`
	IsDailyDouble bool         `json:"is_daily_double"`
	Wager         int          `json:"wager,omitempty"`
	MaxWager      int          `json:"max_wager,omitempty"`
}

type View struct {
	Phase             Phase                                            `json:"phase"`
	Topic             string                                           `json:"topic,omitempty"`
	Categories        []string                                         `json:"categories,omitempty"`
	Clues             *[entity.CategoryCount][entity.RowCount]ClueView `json:"clues,omitempty"`
	Score             int                                              `json:"score"`
	QuestionsAnswered int                                              `json:"questions_answered"`
	CorrectAnswers    int                                              `json:"correct_answers"`
	Remaining         int                                              `json:"remaining"`
	Complete          bool                                             `json:"complete"`
	Active            *ActiveClue                                      `json:"active,omitempty"`
	Feedback          *Feedback                                        `json:"feedback,omitempty"`
}

// View is a read-only copy of the session for rendering. Canonical answers are never included.
func (that *Session) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	view := View{
		Phase:             that.phase,
		Score:             that.score,
		QuestionsAnswered: that.answered,
		CorrectAnswers:    that.correct,
	}

	if that.feedback != nil {
		feedback := *that.feedback
		view.Feedback = &feedback
	}

	if that.board == nil {
		return view
	}

	view.Topic = that.board.Topic
	view.Categories = append([]string(nil), that.board.Categories[:]...)
	view.Remaining = that.board.Remaining()
	view.Complete = view.Remaining == 0

	clues := [entity.CategoryCount][entity.RowCount]ClueView{}
	for col := range that.board.Clues {
		for row, clue := range that.board.Clues[col] {
			clues[col][row] = ClueView{Value: clue.Value, Used: clue.Used, IsDailyDouble: clue.IsDailyDouble}
		}
	}
	view.Clues = &clues

	if that.active != nil {
		clue := that.board.Clues[that.active.Col][that.active.Row]
		active := &ActiveClue{
			At:            *that.active,
			Category:      that.board.Categories[that.active.Col],
			Value:         clue.Value,
			IsDailyDouble: clue.IsDailyDouble,
			Wager:         that.wager,
		}

		if that.phase == PhaseWagerPending {
			active.MaxWager = that.maxWager()
		} else {
			active.Question = clue.Question
		}
		view.Active = active
	}

	return view
}
