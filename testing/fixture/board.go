package fixture

import (
	"fmt"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

// RawBoard returns a well-formed generator payload; clue (c,r) answers "answer c-r".
func RawBoard() ([]string, [][]entity.RawClue) {
	categories := make([]string, entity.CategoryCount)
	questions := make([][]entity.RawClue, entity.CategoryCount)

	for col := range categories {
		categories[col] = fmt.Sprintf("Category %d", col+1)
		questions[col] = make([]entity.RawClue, entity.RowCount)
		for row := range questions[col] {
			questions[col][row] = entity.RawClue{
				Value:    entity.RowValues[row],
				Question: fmt.Sprintf("Question %d-%d", col, row),
				Answer:   fmt.Sprintf("answer %d-%d", col, row),
			}
		}
	}

	return categories, questions
}

// Board returns a validated board for topic, panicking on a broken fixture.
func Board(topic string) *entity.Board {
	categories, questions := RawBoard()

	board, err := entity.NewBoard(topic, categories, questions)
	if err != nil {
		panic(err)
	}

	return board
}

// FixedSelector always returns the same Daily Double cells.
type FixedSelector []entity.Coord

func (that FixedSelector) SelectBoard() ([]entity.Coord, error) {
	return append([]entity.Coord(nil), that...), nil
}
