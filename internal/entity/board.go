package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
)

const (
	CategoryCount = 6
	RowCount      = 5

	DailyDoubleCount = 2
)

// RowValues are the face values of the board rows, top to bottom.
var RowValues = [RowCount]int{200, 400, 600, 800, 1000}

type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (that Coord) InBounds() bool {
	return that.Col >= 0 && that.Col < CategoryCount && that.Row >= 0 && that.Row < RowCount
}

type Clue struct {
	Value         int    `json:"value"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	Used          bool   `json:"used"`
	IsDailyDouble bool   `json:"is_daily_double"`
}

// RawClue is one question as returned by the board generator.
type RawClue struct {
	Value    int    `json:"value"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Board struct {
	Topic      string                          `json:"topic"`
	Categories [CategoryCount]string           `json:"categories"`
	Clues      [CategoryCount][RowCount]Clue `json:"clues"`
}

// NewBoard validates a generated board and copies it into the fixed 6x5 grid.
func NewBoard(topic string, categories []string, questions [][]RawClue) (*Board, error) {
	if len(categories) != CategoryCount {
		return nil, fmt.Errorf("%w: got %d categories instead of %d", apperror.ErrValidation, len(categories), CategoryCount)
	}

	if len(questions) != CategoryCount {
		return nil, fmt.Errorf("%w: got %d question sets instead of %d", apperror.ErrValidation, len(questions), CategoryCount)
	}

	board := &Board{Topic: strings.TrimSpace(topic)}

	for col, category := range categories {
		if len(questions[col]) != RowCount {
			return nil, fmt.Errorf("%w: category %q doesn't have exactly %d questions", apperror.ErrValidation, category, RowCount)
		}

		board.Categories[col] = category

		for row, raw := range questions[col] {
			if raw.Value != RowValues[row] {
				return nil, fmt.Errorf("%w: category %q row %d has value %d, want %d",
					apperror.ErrValidation, category, row, raw.Value, RowValues[row])
			}

			if strings.TrimSpace(raw.Answer) == "" {
				return nil, fmt.Errorf("%w: category %q row %d has no answer", apperror.ErrValidation, category, row)
			}

			board.Clues[col][row] = Clue{
				Value:    raw.Value,
				Question: raw.Question,
				Answer:   raw.Answer,
			}
		}
	}

	return board, nil
}

func (that *Board) Clue(at Coord) (*Clue, error) {
	if !at.InBounds() {
		return nil, fmt.Errorf("%w: clue (%d,%d) is outside the board", apperror.ErrValidation, at.Col, at.Row)
	}

	return &that.Clues[at.Col][at.Row], nil
}

// MarkDailyDoubles tags the given cells. Cells are tagged once per game.
func (that *Board) MarkDailyDoubles(cells []Coord) error {
	for _, cell := range cells {
		clue, err := that.Clue(cell)
		if err != nil {
			return err
		}
		clue.IsDailyDouble = true
	}

	return nil
}

func (that *Board) DailyDoubles() []Coord {
	var cells []Coord
	for col := range that.Clues {
		for row := range that.Clues[col] {
			if that.Clues[col][row].IsDailyDouble {
				cells = append(cells, Coord{Col: col, Row: row})
			}
		}
	}

	return cells
}

func (that *Board) Remaining() int {
	remaining := 0
	for col := range that.Clues {
		for row := range that.Clues[col] {
			if !that.Clues[col][row].Used {
				remaining++
			}
		}
	}

	return remaining
}
