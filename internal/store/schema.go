package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GlobalSequenceColumns holds the columns for the "global_sequence" table.
	GlobalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// GlobalSequenceTable holds the schema information for the "global_sequence" table.
	GlobalSequenceTable = &schema.Table{
		Name:       "global_sequence",
		Columns:    GlobalSequenceColumns,
		PrimaryKey: []*schema.Column{GlobalSequenceColumns[0]},
	}

	// EnrollmentsColumns holds the columns for the "enrollments" table.
	EnrollmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "enrolled_at", Type: field.TypeTime},
	}
	// EnrollmentsTable holds the schema information for the "enrollments" table.
	EnrollmentsTable = &schema.Table{
		Name:       "enrollments",
		Columns:    EnrollmentsColumns,
		PrimaryKey: []*schema.Column{EnrollmentsColumns[0]},
	}

	// LessonCompletionsColumns holds the columns for the "lesson_completions" table.
	LessonCompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "lesson_type", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// LessonCompletionsTable holds the schema information for the "lesson_completions" table.
	LessonCompletionsTable = &schema.Table{
		Name:       "lesson_completions",
		Columns:    LessonCompletionsColumns,
		PrimaryKey: []*schema.Column{LessonCompletionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessoncompletion_course_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonCompletionsColumns[2], LessonCompletionsColumns[4]},
			},
		},
	}

	// XPEventsColumns holds the columns for the "xp_events" table.
	XPEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString},
		{Name: "reference", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
	}
	// XPEventsTable holds the schema information for the "xp_events" table.
	XPEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XPEventsColumns,
		PrimaryKey: []*schema.Column{XPEventsColumns[0]},
	}

	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "test_id", Type: field.TypeString},
		{Name: "test_title", Type: field.TypeString},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "answered", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "passing_score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "submitted_by", Type: field.TypeString},
		{Name: "time_taken_secs", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeJSON},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_test_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[4]},
			},
		},
	}

	// BadgeAwardsColumns holds the columns for the "badge_awards" table.
	BadgeAwardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "badge_type", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "reference", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	// BadgeAwardsTable holds the schema information for the "badge_awards" table.
	BadgeAwardsTable = &schema.Table{
		Name:       "badge_awards",
		Columns:    BadgeAwardsColumns,
		PrimaryKey: []*schema.Column{BadgeAwardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeaward_badge_type_reference",
				Unique:  true,
				Columns: []*schema.Column{BadgeAwardsColumns[3], BadgeAwardsColumns[5]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GlobalSequenceTable,
		EnrollmentsTable,
		LessonCompletionsTable,
		XPEventsTable,
		QuizAttemptsTable,
		BadgeAwardsTable,
	}

	// learnerTables are wiped by Reset.
	learnerTables = []*schema.Table{
		EnrollmentsTable,
		LessonCompletionsTable,
		XPEventsTable,
		QuizAttemptsTable,
		BadgeAwardsTable,
	}
)

// migrate creates or updates all tables using ent's Atlas migration engine.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
