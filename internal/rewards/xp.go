package rewards

import (
	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/quiz"
)

// Source identifies what an XP award was earned for.
type Source string

const (
	SourceLesson Source = "lesson"
	SourceModule Source = "module"
	SourceCourse Source = "course"
	SourceQuiz   Source = "quiz"
)

// LessonXPFor returns the XP for completing a lesson of the given type.
// Unknown types earn nothing.
func (c Config) LessonXPFor(t curriculum.ContentType) int {
	return c.LessonXP[t]
}

// QuizXP returns the XP earned by a submitted attempt: a fixed amount per
// correct answer, plus a bonus for passing and another for a perfect score.
func (c Config) QuizXP(r quiz.ScoreReport) int {
	xp := r.CorrectCount * c.QuizCorrectXP
	if r.Passed {
		xp += c.QuizPassXP
	}
	if r.IsPerfect() {
		xp += c.QuizPerfectBonus
	}
	return xp
}
