// Package quiz drives one timed multiple-choice attempt from start to
// submission and scores it against the test's passing threshold.
//
// The session never reads a clock: the caller owns the timer and calls
// Tick once per elapsed second.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned for malformed tests and out-of-range answers.
var ErrInvalidInput = errors.New("invalid quiz input")

// Question is one multiple-choice question.
type Question struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Test is a timed multiple-choice test definition.
type Test struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	DurationMinutes int        `json:"durationMinutes"`
	PassingScore    int        `json:"passingScore"` // percentage in [0, 100]
	Questions       []Question `json:"questions"`
}

// TotalQuestions returns the number of questions in the test.
func (t Test) TotalQuestions() int {
	return len(t.Questions)
}

// DurationSeconds returns the time allowed for one attempt.
func (t Test) DurationSeconds() int {
	return t.DurationMinutes * 60
}

// Validate checks the test definition.
// Returns a combined error describing all problems found, or nil if valid.
func (t Test) Validate() error {
	var errs []string

	if t.ID == "" {
		errs = append(errs, "test ID is empty")
	}
	if len(t.Questions) == 0 {
		errs = append(errs, "test has no questions")
	}
	if t.DurationMinutes <= 0 {
		errs = append(errs, fmt.Sprintf("duration must be > 0 minutes, got %d", t.DurationMinutes))
	}
	if t.PassingScore < 0 || t.PassingScore > 100 {
		errs = append(errs, fmt.Sprintf("passing score must be in [0, 100], got %d", t.PassingScore))
	}
	for i, q := range t.Questions {
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %d: needs at least 2 options, got %d", i, len(q.Options)))
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			errs = append(errs, fmt.Sprintf("question %d: correct option %d out of range", i, q.CorrectOption))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidInput, strings.Join(errs, "\n  "))
	}
	return nil
}
