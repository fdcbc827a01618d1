// Package rewards turns learning activity into experience points, daily
// streaks and achievement badges.
package rewards

import "github.com/vidhya/vidhya/internal/curriculum"

// Config holds XP amounts awarded for learning activity.
type Config struct {
	LessonXP         map[curriculum.ContentType]int
	ModuleCompleteXP int
	CourseCompleteXP int
	QuizCorrectXP    int // per correct answer
	QuizPassXP       int
	QuizPerfectBonus int
}

// DefaultConfig returns the standard XP table.
func DefaultConfig() Config {
	return Config{
		LessonXP: map[curriculum.ContentType]int{
			curriculum.TypeVideo:       10,
			curriculum.TypeText:        10,
			curriculum.TypeInteractive: 15,
			curriculum.TypeQuiz:        20,
		},
		ModuleCompleteXP: 40,
		CourseCompleteXP: 100,
		QuizCorrectXP:    5,
		QuizPassXP:       50,
		QuizPerfectBonus: 25,
	}
}
