package rewards

import (
	"testing"
	"time"

	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/quiz"
)

func TestLessonXPFor(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		typ  curriculum.ContentType
		want int
	}{
		{curriculum.TypeVideo, 10},
		{curriculum.TypeText, 10},
		{curriculum.TypeInteractive, 15},
		{curriculum.TypeQuiz, 20},
		{curriculum.ContentType("podcast"), 0},
	}
	for _, tt := range tests {
		if got := cfg.LessonXPFor(tt.typ); got != tt.want {
			t.Errorf("LessonXPFor(%q) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestQuizXP(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name   string
		report quiz.ScoreReport
		want   int
	}{
		{"failed", quiz.ScoreReport{CorrectCount: 1, TotalQuestions: 4, Percentage: 25}, 5},
		{"passed", quiz.ScoreReport{CorrectCount: 3, TotalQuestions: 4, Percentage: 75, Passed: true}, 15 + 50},
		{"perfect", quiz.ScoreReport{CorrectCount: 4, TotalQuestions: 4, Percentage: 100, Passed: true}, 20 + 50 + 25},
		{"nothing", quiz.ScoreReport{TotalQuestions: 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.QuizXP(tt.report); got != tt.want {
				t.Errorf("QuizXP = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct{ current, want int }{
		{0, 3}, {2, 3}, {3, 7}, {6, 7}, {7, 14}, {14, 30}, {29, 30}, {30, 60}, {61, 90},
	}
	for _, tt := range tests {
		if got := NextStreakMilestone(tt.current); got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestIsStreakMilestone(t *testing.T) {
	for _, n := range []int{3, 7, 14, 30, 60, 90} {
		if !IsStreakMilestone(n) {
			t.Errorf("IsStreakMilestone(%d) = false", n)
		}
	}
	for _, n := range []int{0, 1, 2, 4, 8, 31, 45} {
		if IsStreakMilestone(n) {
			t.Errorf("IsStreakMilestone(%d) = true", n)
		}
	}
}

func TestRarities(t *testing.T) {
	if StreakRarity(3) != RarityCommon || StreakRarity(7) != RarityRare ||
		StreakRarity(30) != RarityEpic || StreakRarity(100) != RarityLegendary {
		t.Error("StreakRarity thresholds wrong")
	}
	if QuizRarity(60) != RarityCommon || QuizRarity(75) != RarityRare ||
		QuizRarity(90) != RarityEpic || QuizRarity(100) != RarityLegendary {
		t.Error("QuizRarity thresholds wrong")
	}
	if LevelRarity(2) != RarityCommon || LevelRarity(5) != RarityRare ||
		LevelRarity(10) != RarityEpic || LevelRarity(20) != RarityLegendary {
		t.Error("LevelRarity thresholds wrong")
	}
}

func TestBadgeReferences(t *testing.T) {
	tests := []struct {
		badge Badge
		typ   BadgeType
		ref   string
	}{
		{FirstSteps("Intro"), BadgeFirstSteps, "first-lesson"},
		{ModuleComplete("web", "html", "HTML"), BadgeModuleComplete, "web/html"},
		{CourseComplete("web", "Web"), BadgeCourseComplete, "web"},
		{QuizPassed("t1", "Check", 80), BadgeQuizPassed, "t1"},
		{QuizPerfect("t1", "Check"), BadgeQuizPerfect, "t1"},
		{StreakMilestone(7), BadgeStreak, "7-days"},
		{LevelUp(4), BadgeLevelUp, "level-4"},
	}
	for _, tt := range tests {
		if tt.badge.Type != tt.typ || tt.badge.Reference != tt.ref {
			t.Errorf("badge = %s/%s, want %s/%s", tt.badge.Type, tt.badge.Reference, tt.typ, tt.ref)
		}
		if tt.badge.Reason == "" {
			t.Errorf("%s: empty reason", tt.typ)
		}
	}
}

func TestBadgeTypeDisplay(t *testing.T) {
	for _, bt := range AllBadgeTypes() {
		if bt.DisplayName() == string(bt) {
			t.Errorf("%s has no display name", bt)
		}
		if bt.Icon() == "" {
			t.Errorf("%s has no icon", bt)
		}
	}
}

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestStreak(t *testing.T) {
	now := day(2026, 3, 10, 12)
	tests := []struct {
		name     string
		activity []time.Time
		want     StreakInfo
	}{
		{
			name: "no activity",
			want: StreakInfo{},
		},
		{
			name:     "today only",
			activity: []time.Time{day(2026, 3, 10, 9)},
			want:     StreakInfo{Current: 1, Longest: 1, ActiveToday: true, LastActive: day(2026, 3, 10, 0)},
		},
		{
			name:     "three days ending yesterday",
			activity: []time.Time{day(2026, 3, 7, 20), day(2026, 3, 8, 8), day(2026, 3, 9, 23)},
			want:     StreakInfo{Current: 3, Longest: 3, LastActive: day(2026, 3, 9, 0)},
		},
		{
			name:     "duplicates collapse",
			activity: []time.Time{day(2026, 3, 10, 8), day(2026, 3, 10, 9), day(2026, 3, 9, 1), day(2026, 3, 9, 2)},
			want:     StreakInfo{Current: 2, Longest: 2, ActiveToday: true, LastActive: day(2026, 3, 10, 0)},
		},
		{
			name:     "broken streak keeps longest",
			activity: []time.Time{day(2026, 3, 1, 9), day(2026, 3, 2, 9), day(2026, 3, 3, 9), day(2026, 3, 8, 9)},
			want:     StreakInfo{Current: 0, Longest: 3, LastActive: day(2026, 3, 8, 0)},
		},
		{
			name:     "gap then today",
			activity: []time.Time{day(2026, 3, 1, 9), day(2026, 3, 2, 9), day(2026, 3, 10, 9)},
			want:     StreakInfo{Current: 1, Longest: 2, ActiveToday: true, LastActive: day(2026, 3, 10, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streak(tt.activity, now)
			if got.Current != tt.want.Current || got.Longest != tt.want.Longest ||
				got.ActiveToday != tt.want.ActiveToday || !got.LastActive.Equal(tt.want.LastActive) {
				t.Errorf("Streak = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStreakUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC on the 9th is 01:30 on the 10th in IST.
	activity := []time.Time{day(2026, 3, 9, 20)}
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)

	got := Streak(activity, now)
	if !got.ActiveToday || got.Current != 1 {
		t.Errorf("Streak = %+v, want active today", got)
	}
}
