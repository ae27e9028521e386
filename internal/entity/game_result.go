package entity

import (
	"math"
	"time"
)

// GameResult is what gets recorded for a named user when a session is reset.
type GameResult struct {
	ID                string    `json:"id,omitempty"`
	UserID            string    `json:"user_id"`
	Topic             string    `json:"topic"`
	QuestionsAnswered int       `json:"total_questions"`
	CorrectAnswers    int       `json:"correct_answers"`
	Score             int       `json:"score"`
	PlayedAt          time.Time `json:"played_at"`
}

// PercentCorrect is rounded to the nearest integer; zero when nothing was answered.
func (that *GameResult) PercentCorrect() int {
	return roundedPercent(that.CorrectAnswers, that.QuestionsAnswered)
}

type HistoryStats struct {
	TotalGames            int `json:"total_games"`
	AverageScore          int `json:"average_score"`
	AveragePercentCorrect int `json:"average_percent_correct"`
}

// NewHistoryStats aggregates games the way the history screen shows them:
// average score per game and percent correct over all answered questions.
func NewHistoryStats(games []*GameResult) HistoryStats {
	stats := HistoryStats{TotalGames: len(games)}
	if len(games) == 0 {
		return stats
	}

	var totalScore, totalCorrect, totalQuestions int
	for _, game := range games {
		totalScore += game.Score
		totalCorrect += game.CorrectAnswers
		totalQuestions += game.QuestionsAnswered
	}

	stats.AverageScore = roundedDiv(totalScore, len(games))
	stats.AveragePercentCorrect = roundedPercent(totalCorrect, totalQuestions)

	return stats
}

func roundedPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return roundedDiv(part*100, total)
}

// roundedDiv rounds halves up, so -2.5 becomes -2.
func roundedDiv(a, b int) int {
	return int(math.Floor(float64(a)/float64(b) + 0.5))
}
