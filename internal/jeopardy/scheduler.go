package jeopardy

import "time"

// Scheduler runs task once after delay. The returned func cancels it if it has not run yet.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func())
}

type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, task func()) func() {
	timer := time.AfterFunc(delay, task)
	return func() { timer.Stop() }
}

type DismissDelays struct {
	Correct   time.Duration
	Incorrect time.Duration
	Skipped   time.Duration
}

func DefaultDismissDelays() DismissDelays {
	return DismissDelays{
		Correct:   2 * time.Second,
		Incorrect: 3 * time.Second,
		Skipped:   2 * time.Second,
	}
}

func (that DismissDelays) For(outcome Outcome) time.Duration {
	switch outcome {
	case OutcomeCorrect:
		return that.Correct
	case OutcomeIncorrect:
		return that.Incorrect
	default:
		return that.Skipped
	}
}
