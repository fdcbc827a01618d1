// Package progress ties the curriculum, quiz, leveling and rewards engines
// to persistent learner state.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vidhya/vidhya/internal/curriculum"
	"github.com/vidhya/vidhya/internal/leveling"
	"github.com/vidhya/vidhya/internal/quiz"
	"github.com/vidhya/vidhya/internal/rewards"
	"github.com/vidhya/vidhya/internal/store"
)

var (
	// ErrNotEnrolled is returned when acting on a course without enrollment.
	ErrNotEnrolled = errors.New("not enrolled")

	// ErrLessonLocked is returned when completing a lesson that is not yet
	// unlocked.
	ErrLessonLocked = errors.New("lesson is locked")

	// ErrUnknownLesson is returned when a lesson ID is not in the course.
	ErrUnknownLesson = errors.New("unknown lesson")
)

// Rewards summarizes what an action earned.
type Rewards struct {
	XPAwarded   int
	Badges      []rewards.Badge // newly awarded only
	LevelBefore leveling.LevelInfo
	LevelAfter  leveling.LevelInfo
	LevelUps    []int
}

// LessonOutcome is the result of completing a lesson.
type LessonOutcome struct {
	Rewards
	Lesson   curriculum.LessonState
	Recorded bool // false if the lesson was already completed
	Progress curriculum.Progress
}

// AttemptOutcome is the result of recording a quiz attempt.
type AttemptOutcome struct {
	Rewards
	Report quiz.ScoreReport
}

// Service manages learner progress and the rewards it earns.
type Service struct {
	progress store.ProgressRepo
	events   store.EventRepo
	cfg      rewards.Config
	logger   *slog.Logger

	now func() time.Time
}

// NewService creates a progress Service. A nil logger discards output.
func NewService(progress store.ProgressRepo, events store.EventRepo, cfg rewards.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		progress: progress,
		events:   events,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Enroll enrolls the learner in c. It reports false if already enrolled.
func (s *Service) Enroll(ctx context.Context, c curriculum.Curriculum) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	newly, err := s.progress.Enroll(ctx, c.ID)
	if err != nil {
		return false, fmt.Errorf("enroll %s: %w", c.ID, err)
	}
	if newly {
		s.logger.Info("enrolled", "course", c.ID)
	}
	return newly, nil
}

// CourseProgress resolves the lock and completion state of every lesson in c.
func (s *Service) CourseProgress(ctx context.Context, c curriculum.Curriculum) (curriculum.Progress, error) {
	enrolled, err := s.progress.IsEnrolled(ctx, c.ID)
	if err != nil {
		return curriculum.Progress{}, fmt.Errorf("course progress %s: %w", c.ID, err)
	}
	records, err := s.progress.CompletedLessons(ctx, c.ID)
	if err != nil {
		return curriculum.Progress{}, fmt.Errorf("course progress %s: %w", c.ID, err)
	}

	completed := make(curriculum.CompletionSet, len(records))
	for _, r := range records {
		completed[r.LessonID] = true
	}
	return curriculum.Resolve(c, completed, enrolled)
}

// CompleteLesson marks a lesson complete and awards lesson XP, module and
// course completion XP, and any badges earned. Completing an already
// completed lesson succeeds without awarding anything.
func (s *Service) CompleteLesson(ctx context.Context, c curriculum.Curriculum, lessonID string) (*LessonOutcome, error) {
	mi, li, ok := c.FindLesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: %q in course %s", ErrUnknownLesson, lessonID, c.ID)
	}
	lesson := c.Modules[mi].Lessons[li]

	before, err := s.CourseProgress(ctx, c)
	if err != nil {
		return nil, err
	}
	if !before.Enrolled {
		return nil, fmt.Errorf("%w in course %s", ErrNotEnrolled, c.ID)
	}
	state, _ := before.Lesson(lessonID)
	if state.Completed {
		return &LessonOutcome{Lesson: state, Progress: before}, nil
	}
	if state.Locked {
		return nil, fmt.Errorf("%w: %q", ErrLessonLocked, lessonID)
	}

	startXP, err := s.events.TotalXP(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete lesson: %w", err)
	}

	recorded, err := s.progress.CompleteLesson(ctx, store.LessonCompletionData{
		CourseID:   c.ID,
		ModuleID:   c.Modules[mi].ID,
		LessonID:   lesson.ID,
		LessonType: string(lesson.Type),
		At:         s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("complete lesson %s: %w", lessonID, err)
	}

	after, err := s.CourseProgress(ctx, c)
	if err != nil {
		return nil, err
	}
	state, _ = after.Lesson(lessonID)
	out := &LessonOutcome{Lesson: state, Recorded: recorded, Progress: after}
	if !recorded {
		return out, nil
	}

	var xp int
	xp += s.awardXP(ctx, rewards.SourceLesson, c.ID+"/"+lesson.ID, s.cfg.LessonXPFor(lesson.Type))
	s.awardBadge(ctx, &out.Rewards, rewards.FirstSteps(lesson.Title))

	m := c.Modules[mi]
	if !before.Modules[mi].IsComplete() && after.Modules[mi].IsComplete() {
		xp += s.awardXP(ctx, rewards.SourceModule, c.ID+"/"+m.ID, s.cfg.ModuleCompleteXP)
		s.awardBadge(ctx, &out.Rewards, rewards.ModuleComplete(c.ID, m.ID, m.Title))
	}
	if !before.IsComplete() && after.IsComplete() {
		xp += s.awardXP(ctx, rewards.SourceCourse, c.ID, s.cfg.CourseCompleteXP)
		s.awardBadge(ctx, &out.Rewards, rewards.CourseComplete(c.ID, c.Title))
	}
	out.XPAwarded = xp

	if err := s.settle(ctx, &out.Rewards, startXP); err != nil {
		return nil, err
	}
	s.logger.Info("lesson completed",
		"course", c.ID, "lesson", lesson.ID, "xp", out.XPAwarded, "badges", len(out.Badges))
	return out, nil
}

// RecordAttempt persists a submitted quiz attempt and awards quiz XP and
// badges.
func (s *Service) RecordAttempt(ctx context.Context, report quiz.ScoreReport) (*AttemptOutcome, error) {
	startXP, err := s.events.TotalXP(ctx)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	answers := make([]store.AnswerRecord, len(report.Results))
	for i, r := range report.Results {
		answers[i] = store.AnswerRecord{Index: r.Index, Selected: r.Selected, Correct: r.Correct}
	}
	err = s.events.SaveAttempt(ctx, store.AttemptData{
		AttemptID:      report.AttemptID,
		TestID:         report.TestID,
		TestTitle:      report.TestTitle,
		CorrectCount:   report.CorrectCount,
		Answered:       report.Answered,
		TotalQuestions: report.TotalQuestions,
		Percentage:     report.Percentage,
		PassingScore:   report.PassingScore,
		Passed:         report.Passed,
		SubmittedBy:    string(report.SubmittedBy),
		TimeTakenSecs:  report.TimeTakenSeconds,
		Answers:        answers,
		At:             s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("record attempt %s: %w", report.AttemptID, err)
	}

	out := &AttemptOutcome{Report: report}
	out.XPAwarded = s.awardXP(ctx, rewards.SourceQuiz, report.TestID, s.cfg.QuizXP(report))
	if report.Passed {
		s.awardBadge(ctx, &out.Rewards, rewards.QuizPassed(report.TestID, report.TestTitle, report.Percentage))
	}
	if report.IsPerfect() {
		s.awardBadge(ctx, &out.Rewards, rewards.QuizPerfect(report.TestID, report.TestTitle))
	}

	if err := s.settle(ctx, &out.Rewards, startXP); err != nil {
		return nil, err
	}
	s.logger.Info("quiz attempt recorded",
		"test", report.TestID, "percentage", report.Percentage, "passed", report.Passed, "xp", out.XPAwarded)
	return out, nil
}

// Level returns the learner's level derived from total XP.
func (s *Service) Level(ctx context.Context) (leveling.LevelInfo, error) {
	total, err := s.events.TotalXP(ctx)
	if err != nil {
		return leveling.LevelInfo{}, fmt.Errorf("level: %w", err)
	}
	return leveling.FromTotal(total)
}

// Streak returns daily streak statistics.
func (s *Service) Streak(ctx context.Context) (rewards.StreakInfo, error) {
	times, err := s.events.ActivityTimes(ctx, time.Time{})
	if err != nil {
		return rewards.StreakInfo{}, fmt.Errorf("streak: %w", err)
	}
	return rewards.Streak(times, s.now()), nil
}

// Badges returns all awarded badges, newest first.
func (s *Service) Badges(ctx context.Context) ([]rewards.Badge, error) {
	records, err := s.events.QueryBadges(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("badges: %w", err)
	}
	badges := make([]rewards.Badge, len(records))
	for i, r := range records {
		badges[i] = rewards.Badge{
			Type:      rewards.BadgeType(r.BadgeType),
			Rarity:    rewards.Rarity(r.Rarity),
			Reference: r.Reference,
			Reason:    r.Reason,
			AwardedAt: r.Timestamp,
		}
	}
	return badges, nil
}

// Attempts returns recorded quiz attempts, newest first. An empty testID
// matches every test.
func (s *Service) Attempts(ctx context.Context, testID string, limit int) ([]store.AttemptRecord, error) {
	records, err := s.events.QueryAttempts(ctx, testID, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("attempts: %w", err)
	}
	return records, nil
}

// settle fills in level information, and awards level-up and streak
// milestone badges earned by the action.
func (s *Service) settle(ctx context.Context, r *Rewards, startXP int) error {
	endXP, err := s.events.TotalXP(ctx)
	if err != nil {
		return fmt.Errorf("total xp: %w", err)
	}
	before, err := leveling.FromTotal(startXP)
	if err != nil {
		return err
	}
	after, err := leveling.FromTotal(endXP)
	if err != nil {
		return err
	}
	ups, err := leveling.LevelUps(startXP, endXP)
	if err != nil {
		return err
	}
	r.LevelBefore, r.LevelAfter, r.LevelUps = before, after, ups
	for _, lvl := range ups {
		s.awardBadge(ctx, r, rewards.LevelUp(lvl))
	}

	streak, err := s.Streak(ctx)
	if err != nil {
		s.logger.Warn("streak unavailable", "err", err)
		return nil
	}
	if streak.ActiveToday && rewards.IsStreakMilestone(streak.Current) {
		s.awardBadge(ctx, r, rewards.StreakMilestone(streak.Current))
	}
	return nil
}

// awardXP persists an XP award and returns the amount granted. Failures are
// logged, not returned.
func (s *Service) awardXP(ctx context.Context, source rewards.Source, ref string, amount int) int {
	if amount <= 0 {
		return 0
	}
	err := s.events.AppendXP(ctx, store.XPEventData{
		Source:    string(source),
		Reference: ref,
		Amount:    amount,
		At:        s.now(),
	})
	if err != nil {
		s.logger.Warn("xp award not saved", "source", source, "ref", ref, "err", err)
		return 0
	}
	return amount
}

// awardBadge persists b and appends it to r if it was not awarded before.
func (s *Service) awardBadge(ctx context.Context, r *Rewards, b rewards.Badge) {
	b.AwardedAt = s.now()
	newly, err := s.events.AwardBadge(ctx, store.BadgeData{
		BadgeType: string(b.Type),
		Rarity:    string(b.Rarity),
		Reference: b.Reference,
		Reason:    b.Reason,
		At:        b.AwardedAt,
	})
	if err != nil {
		s.logger.Warn("badge not saved", "badge", b.Type, "ref", b.Reference, "err", err)
		return
	}
	if newly {
		r.Badges = append(r.Badges, b)
	}
}
