package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// EnrollmentRecord is a persisted course enrollment.
type EnrollmentRecord struct {
	CourseID   string    `sql:"course_id"`
	Sequence   int64     `sql:"sequence"`
	EnrolledAt time.Time `sql:"enrolled_at"`
}

// LessonCompletionData captures a completed lesson.
type LessonCompletionData struct {
	CourseID   string
	ModuleID   string
	LessonID   string
	LessonType string
	At         time.Time // zero means now
}

// LessonCompletionRecord is a persisted lesson completion.
type LessonCompletionRecord struct {
	CourseID    string    `sql:"course_id"`
	ModuleID    string    `sql:"module_id"`
	LessonID    string    `sql:"lesson_id"`
	LessonType  string    `sql:"lesson_type"`
	Sequence    int64     `sql:"sequence"`
	CompletedAt time.Time `sql:"completed_at"`
}

// ProgressRepo stores enrollments and lesson completions.
type ProgressRepo interface {
	// Enroll records an enrollment. It reports false if the learner was
	// already enrolled.
	Enroll(ctx context.Context, courseID string) (bool, error)

	// IsEnrolled reports whether the learner is enrolled in the course.
	IsEnrolled(ctx context.Context, courseID string) (bool, error)

	// Enrollments returns all enrollments, oldest first.
	Enrollments(ctx context.Context) ([]EnrollmentRecord, error)

	// CompleteLesson records a completion. It reports false if the lesson
	// was already completed.
	CompleteLesson(ctx context.Context, data LessonCompletionData) (bool, error)

	// CompletedLessons returns the completions for a course, oldest first.
	CompletedLessons(ctx context.Context, courseID string) ([]LessonCompletionRecord, error)
}

// XPEventData captures one XP award.
type XPEventData struct {
	Source    string
	Reference string
	Amount    int
	At        time.Time // zero means now
}

// XPEventRecord is a persisted XP award.
type XPEventRecord struct {
	Source    string    `sql:"source"`
	Reference string    `sql:"reference"`
	Amount    int       `sql:"amount"`
	Sequence  int64     `sql:"sequence"`
	Timestamp time.Time `sql:"timestamp"`
}

// AnswerRecord is the outcome for one question of an attempt.
type AnswerRecord struct {
	Index    int  `json:"index"`
	Selected int  `json:"selected"`
	Correct  bool `json:"correct"`
}

// AttemptData captures a submitted quiz attempt.
type AttemptData struct {
	AttemptID      string
	TestID         string
	TestTitle      string
	CorrectCount   int
	Answered       int
	TotalQuestions int
	Percentage     int
	PassingScore   int
	Passed         bool
	SubmittedBy    string
	TimeTakenSecs  int
	Answers        []AnswerRecord
	At             time.Time // zero means now
}

// AttemptRecord is a persisted quiz attempt.
type AttemptRecord struct {
	AttemptID      string         `sql:"attempt_id"`
	TestID         string         `sql:"test_id"`
	TestTitle      string         `sql:"test_title"`
	CorrectCount   int            `sql:"correct_count"`
	Answered       int            `sql:"answered"`
	TotalQuestions int            `sql:"total_questions"`
	Percentage     int            `sql:"percentage"`
	PassingScore   int            `sql:"passing_score"`
	Passed         bool           `sql:"passed"`
	SubmittedBy    string         `sql:"submitted_by"`
	TimeTakenSecs  int            `sql:"time_taken_secs"`
	Answers        []AnswerRecord `sql:"answers"`
	Sequence       int64          `sql:"sequence"`
	Timestamp      time.Time      `sql:"timestamp"`
}

// BadgeData captures one badge award.
type BadgeData struct {
	BadgeType string
	Rarity    string
	Reference string
	Reason    string
	At        time.Time // zero means now
}

// BadgeRecord is a persisted badge award.
type BadgeRecord struct {
	BadgeType string    `sql:"badge_type"`
	Rarity    string    `sql:"rarity"`
	Reference string    `sql:"reference"`
	Reason    string    `sql:"reason"`
	Sequence  int64     `sql:"sequence"`
	Timestamp time.Time `sql:"timestamp"`
}

// EventRepo provides append and query access to learner events.
type EventRepo interface {
	// AppendXP records an XP award.
	AppendXP(ctx context.Context, data XPEventData) error

	// TotalXP returns the sum of all XP awards.
	TotalXP(ctx context.Context) (int, error)

	// QueryXPEvents returns XP awards, newest first.
	QueryXPEvents(ctx context.Context, opts QueryOpts) ([]XPEventRecord, error)

	// SaveAttempt records a submitted quiz attempt.
	SaveAttempt(ctx context.Context, data AttemptData) error

	// QueryAttempts returns quiz attempts, newest first. An empty testID
	// matches every test.
	QueryAttempts(ctx context.Context, testID string, opts QueryOpts) ([]AttemptRecord, error)

	// AwardBadge records a badge. It reports false if a badge with the same
	// type and reference was already awarded.
	AwardBadge(ctx context.Context, data BadgeData) (bool, error)

	// QueryBadges returns badge awards, newest first.
	QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeRecord, error)

	// ActivityTimes returns the timestamps of all lesson completions and
	// quiz attempts at or after since. A zero since returns everything.
	ActivityTimes(ctx context.Context, since time.Time) ([]time.Time, error)
}
