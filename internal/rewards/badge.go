package rewards

import (
	"fmt"
	"time"
)

// BadgeType identifies the category of achievement.
type BadgeType string

const (
	BadgeFirstSteps     BadgeType = "first-steps"
	BadgeModuleComplete BadgeType = "module-complete"
	BadgeCourseComplete BadgeType = "course-complete"
	BadgeQuizPassed     BadgeType = "quiz-passed"
	BadgeQuizPerfect    BadgeType = "quiz-perfect"
	BadgeStreak         BadgeType = "streak"
	BadgeLevelUp        BadgeType = "level-up"
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{
		BadgeFirstSteps, BadgeModuleComplete, BadgeCourseComplete,
		BadgeQuizPassed, BadgeQuizPerfect, BadgeStreak, BadgeLevelUp,
	}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeFirstSteps:
		return "First Steps"
	case BadgeModuleComplete:
		return "Module Complete"
	case BadgeCourseComplete:
		return "Course Complete"
	case BadgeQuizPassed:
		return "Quiz Passed"
	case BadgeQuizPerfect:
		return "Perfect Score"
	case BadgeStreak:
		return "Streak"
	case BadgeLevelUp:
		return "Level Up"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeFirstSteps:
		return "🌱"
	case BadgeModuleComplete:
		return "📘"
	case BadgeCourseComplete:
		return "🎓"
	case BadgeQuizPassed:
		return "✅"
	case BadgeQuizPerfect:
		return "💯"
	case BadgeStreak:
		return "🔥"
	case BadgeLevelUp:
		return "⭐"
	default:
		return "✦"
	}
}

// Rarity represents how hard a badge was to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// StreakRarity returns the rarity for a daily streak length.
func StreakRarity(days int) Rarity {
	switch {
	case days >= 100:
		return RarityLegendary
	case days >= 30:
		return RarityEpic
	case days >= 7:
		return RarityRare
	default:
		return RarityCommon
	}
}

// QuizRarity returns the rarity for a quiz percentage.
func QuizRarity(percentage int) Rarity {
	switch {
	case percentage >= 100:
		return RarityLegendary
	case percentage >= 90:
		return RarityEpic
	case percentage >= 75:
		return RarityRare
	default:
		return RarityCommon
	}
}

// LevelRarity returns the rarity for reaching a level.
func LevelRarity(level int) Rarity {
	switch {
	case level >= 20:
		return RarityLegendary
	case level >= 10:
		return RarityEpic
	case level >= 5:
		return RarityRare
	default:
		return RarityCommon
	}
}

// Badge is one earned achievement. Reference scopes the badge so the same
// type can be earned once per module, course, test, milestone or level.
type Badge struct {
	Type      BadgeType
	Rarity    Rarity
	Reference string
	Reason    string
	AwardedAt time.Time
}

// FirstSteps is awarded for the first completed lesson.
func FirstSteps(lessonTitle string) Badge {
	return Badge{
		Type:      BadgeFirstSteps,
		Rarity:    RarityCommon,
		Reference: "first-lesson",
		Reason:    fmt.Sprintf("Completed your first lesson: %s", lessonTitle),
	}
}

// ModuleComplete is awarded when every lesson in a module is completed.
func ModuleComplete(courseID, moduleID, moduleTitle string) Badge {
	return Badge{
		Type:      BadgeModuleComplete,
		Rarity:    RarityRare,
		Reference: courseID + "/" + moduleID,
		Reason:    fmt.Sprintf("Finished module %s", moduleTitle),
	}
}

// CourseComplete is awarded when every lesson in a course is completed.
func CourseComplete(courseID, courseTitle string) Badge {
	return Badge{
		Type:      BadgeCourseComplete,
		Rarity:    RarityEpic,
		Reference: courseID,
		Reason:    fmt.Sprintf("Finished course %s", courseTitle),
	}
}

// QuizPassed is awarded the first time a test is passed.
func QuizPassed(testID, testTitle string, percentage int) Badge {
	return Badge{
		Type:      BadgeQuizPassed,
		Rarity:    QuizRarity(percentage),
		Reference: testID,
		Reason:    fmt.Sprintf("Passed %s with %d%%", testTitle, percentage),
	}
}

// QuizPerfect is awarded for a perfect score on a test.
func QuizPerfect(testID, testTitle string) Badge {
	return Badge{
		Type:      BadgeQuizPerfect,
		Rarity:    RarityLegendary,
		Reference: testID,
		Reason:    fmt.Sprintf("Perfect score on %s", testTitle),
	}
}

// StreakMilestone is awarded when a daily streak reaches a milestone.
func StreakMilestone(days int) Badge {
	return Badge{
		Type:      BadgeStreak,
		Rarity:    StreakRarity(days),
		Reference: fmt.Sprintf("%d-days", days),
		Reason:    fmt.Sprintf("%d day learning streak!", days),
	}
}

// LevelUp is awarded when a level is reached.
func LevelUp(level int) Badge {
	return Badge{
		Type:      BadgeLevelUp,
		Rarity:    LevelRarity(level),
		Reference: fmt.Sprintf("level-%d", level),
		Reason:    fmt.Sprintf("Reached level %d", level),
	}
}
