// Package generator asks a Gemini model for a Jeopardy board on a topic.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
	"github.com/rocketscienceinc/jeopardy-backend/internal/entity"
)

type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Generator struct {
	logger  *slog.Logger
	client  *genai.Client
	model   contentModel
	timeout time.Duration
}

func New(ctx context.Context, logger *slog.Logger, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: generator api key is not set", apperror.ErrValidation)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	generator := newWithModel(logger, model, cfg.Timeout)
	generator.client = client

	return generator, nil
}

func newWithModel(logger *slog.Logger, model contentModel, timeout time.Duration) *Generator {
	return &Generator{
		logger:  logger.With("component", "generator"),
		model:   model,
		timeout: timeout,
	}
}

func (that *Generator) Close() error {
	if that.client == nil {
		return nil
	}

	return that.client.Close()
}

// GenerateBoard returns a validated board for topic. Daily Doubles are not tagged yet.
func (that *Generator) GenerateBoard(ctx context.Context, topic string) (*entity.Board, error) {
	log := that.logger.With("method", "GenerateBoard", "topic", topic)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is empty", apperror.ErrValidation)
	}

	if that.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.timeout)
		defer cancel()
	}

	started := time.Now()

	resp, err := that.model.GenerateContent(ctx, genai.Text(buildPrompt(topic)))
	if err != nil {
		log.Error("generation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", apperror.ErrExternalCall, err)
	}

	board, err := ParseBoard(topic, responseText(resp))
	if err != nil {
		log.Warn("model returned an unusable board", "error", err)
		return nil, err
	}

	log.Info("board generated", "duration", time.Since(started))

	return board, nil
}

type boardPayload struct {
	Categories []string           `json:"categories"`
	Questions  [][]entity.RawClue `json:"questions"`
}

// ParseBoard decodes the model reply, tolerating text around the JSON object.
func ParseBoard(topic, text string) (*entity.Board, error) {
	var payload boardPayload
	if err := json.Unmarshal([]byte(extractObject(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse board as JSON: %w", apperror.ErrValidation, err)
	}

	if payload.Categories == nil || payload.Questions == nil {
		return nil, fmt.Errorf("%w: response missing categories or questions", apperror.ErrValidation)
	}

	return entity.NewBoard(topic, payload.Categories, payload.Questions)
}

// extractObject returns the span from the first '{' to the last '}', or text itself.
func extractObject(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return strings.TrimSpace(text)
	}

	return text[start : end+1]
}

func responseText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text.WriteString(string(txt))
			}
		}
	}

	return text.String()
}
