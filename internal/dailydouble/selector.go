package dailydouble

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

const (
	DefaultCount = entity.DailyDoubleCount

	// attemptsPerPick bounds the redraw loop; collisions on a 6x5 grid are rare.
	attemptsPerPick = 1000
)

var (
	ErrInvalidGrid = errors.New("invalid grid dimensions")
	ErrExhausted   = errors.New("could not pick distinct cells")
)

// baseWeights favour the lower, more valuable rows.
var baseWeights = []float64{1, 2, 3, 5, 8}

type Selector struct {
	rng *rand.Rand
}

// NewSelector uses rng for every draw; nil seeds a fresh generator.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint: gosec // game randomness, not crypto
	}

	return &Selector{rng: rng}
}

// Select picks count distinct cells of a rows x cols grid.
// Rows are weighted, columns are uniform.
func (that *Selector) Select(rows, cols, count int) ([]entity.Coord, error) {
	if rows <= 0 || cols <= 0 || count < 0 {
		return nil, fmt.Errorf("%w: %dx%d, count %d", ErrInvalidGrid, rows, cols, count)
	}

	if count > rows*cols {
		return nil, fmt.Errorf("%w: count %d exceeds %d cells", ErrInvalidGrid, count, rows*cols)
	}

	weights := RowWeights(rows)
	total := 0.0
	for _, w := range weights {
		total += w
	}

	picked := make([]entity.Coord, 0, count)
	seen := make(map[entity.Coord]struct{}, count)

	for attempts := 0; len(picked) < count; attempts++ {
		if attempts >= attemptsPerPick*count {
			return nil, fmt.Errorf("%w: %d of %d after %d draws", ErrExhausted, len(picked), count, attempts)
		}

		cell := entity.Coord{
			Col: that.rng.IntN(cols),
			Row: pickRow(weights, that.rng.Float64()*total),
		}

		if _, dup := seen[cell]; dup {
			continue
		}

		seen[cell] = struct{}{}
		picked = append(picked, cell)
	}

	return picked, nil
}

// SelectBoard picks the Daily Double cells of a standard board.
func (that *Selector) SelectBoard() ([]entity.Coord, error) {
	return that.Select(entity.RowCount, entity.CategoryCount, DefaultCount)
}

// RowWeights returns the weight of each row, extending the base sequence Fibonacci-style.
func RowWeights(rows int) []float64 {
	weights := make([]float64, rows)
	for i := range weights {
		switch {
		case i < len(baseWeights):
			weights[i] = baseWeights[i]
		default:
			weights[i] = weights[i-1] + weights[i-2]
		}
	}

	return weights
}

func pickRow(weights []float64, r float64) int {
	for row, w := range weights {
		r -= w
		if r <= 0 {
			return row
		}
	}

	return len(weights) - 1
}
