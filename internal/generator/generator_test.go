package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/testing/fixture"
)

type stubModel struct {
	reply  string
	err    error
	prompt string
}

func (that *stubModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		that.prompt = string(parts[0].(genai.Text))
	}

	if that.err != nil {
		return nil, that.err
	}

	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(that.reply)}},
		}},
	}, nil
}

func boardJSON(t *testing.T) string {
	t.Helper()

	categories, questions := fixture.RawBoard()
	data, err := json.Marshal(boardPayload{Categories: categories, Questions: questions})
	require.NoError(t, err)

	return string(data)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerator_GenerateBoard(t *testing.T) {
	t.Run("Builds a board from the model reply", func(t *testing.T) {
		// Given: a model that wraps the JSON in prose
		model := &stubModel{reply: "Here is your game:\n```json\n" + boardJSON(t) + "\n```"}
		generator := newWithModel(discardLogger(), model, 0)

		// When: a board is generated
		board, err := generator.GenerateBoard(context.Background(), "  Space ")

		// Then: the prompt names the topic and the board is valid
		require.NoError(t, err)
		assert.Equal(t, "Space", board.Topic)
		assert.Equal(t, "answer 3-2", board.Clues[3][2].Answer)
		assert.Contains(t, model.prompt, `"Space"`)
		assert.True(t, strings.HasSuffix(model.prompt, "relate to: Space"))
	})

	t.Run("Rejects an empty topic without calling the model", func(t *testing.T) {
		model := &stubModel{}
		generator := newWithModel(discardLogger(), model, 0)

		_, err := generator.GenerateBoard(context.Background(), "   ")

		require.ErrorIs(t, err, apperror.ErrValidation)
		assert.Empty(t, model.prompt)
	})

	t.Run("Wraps transport failures", func(t *testing.T) {
		generator := newWithModel(discardLogger(), &stubModel{err: errors.New("quota exceeded")}, 0)

		_, err := generator.GenerateBoard(context.Background(), "Space")

		require.ErrorIs(t, err, apperror.ErrExternalCall)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Accepts a bare object", func(t *testing.T) {
		board, err := ParseBoard("Space", boardJSON(t))

		require.NoError(t, err)
		assert.Equal(t, "Category 6", board.Categories[5])
	})

	t.Run("Rejects text without JSON", func(t *testing.T) {
		_, err := ParseBoard("Space", "I cannot help with that.")

		require.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("Rejects missing fields", func(t *testing.T) {
		_, err := ParseBoard("Space", `{"categories": ["a", "b", "c", "d", "e", "f"]}`)

		require.ErrorIs(t, err, apperror.ErrValidation)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("Reports the shape problem", func(t *testing.T) {
		_, err := ParseBoard("Space", `{"categories": ["a"], "questions": []}`)

		require.ErrorIs(t, err, apperror.ErrValidation)
		assert.Contains(t, err.Error(), "got 1 categories instead of 6")
	})
}
