package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type progressRepo struct {
	drv dialect.ExecQuerier
	seq *sequenceCounter
}

func (r *progressRepo) Enroll(ctx context.Context, courseID string) (bool, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return false, fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(EnrollmentsTable.Name).
		Columns("sequence", "course_id", "enrolled_at").
		Values(seqNum, courseID, time.Now().UTC()).
		OnConflict(entsql.ConflictColumns("course_id"), entsql.DoNothing()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return false, fmt.Errorf("save enrollment: %w", err)
	}
	return inserted(res)
}

func (r *progressRepo) IsEnrolled(ctx context.Context, courseID string) (bool, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select().Count().
		From(entsql.Table(EnrollmentsTable.Name)).
		Where(entsql.EQ("course_id", courseID)).
		Query()

	n, err := queryInt(ctx, r.drv, q, args)
	if err != nil {
		return false, fmt.Errorf("query enrollment: %w", err)
	}
	return n > 0, nil
}

func (r *progressRepo) Enrollments(ctx context.Context) ([]EnrollmentRecord, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("course_id", "sequence", "enrolled_at").
		From(entsql.Table(EnrollmentsTable.Name)).
		OrderBy(entsql.Asc("sequence")).
		Query()

	var records []EnrollmentRecord
	if err := queryAll(ctx, r.drv, q, args, &records); err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	return records, nil
}

func (r *progressRepo) CompleteLesson(ctx context.Context, data LessonCompletionData) (bool, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return false, fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(LessonCompletionsTable.Name).
		Columns("sequence", "course_id", "module_id", "lesson_id", "lesson_type", "completed_at").
		Values(seqNum, data.CourseID, data.ModuleID, data.LessonID, data.LessonType, timestamp(data.At)).
		OnConflict(entsql.ConflictColumns("course_id", "lesson_id"), entsql.DoNothing()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return false, fmt.Errorf("save lesson completion: %w", err)
	}
	return inserted(res)
}

func (r *progressRepo) CompletedLessons(ctx context.Context, courseID string) ([]LessonCompletionRecord, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("course_id", "module_id", "lesson_id", "lesson_type", "sequence", "completed_at").
		From(entsql.Table(LessonCompletionsTable.Name)).
		Where(entsql.EQ("course_id", courseID)).
		OrderBy(entsql.Asc("sequence")).
		Query()

	var records []LessonCompletionRecord
	if err := queryAll(ctx, r.drv, q, args, &records); err != nil {
		return nil, fmt.Errorf("query lesson completions: %w", err)
	}
	return records, nil
}

// queryAll runs q and scans every row into v, a pointer to a slice.
func queryAll(ctx context.Context, drv dialect.ExecQuerier, q string, args []any, v any) error {
	var rows entsql.Rows
	if err := drv.Query(ctx, q, args, &rows); err != nil {
		return err
	}
	defer rows.Close()
	return entsql.ScanSlice(rows, v)
}

// queryInt runs a single-value query such as COUNT(*).
func queryInt(ctx context.Context, drv dialect.ExecQuerier, q string, args []any) (int, error) {
	var rows entsql.Rows
	if err := drv.Query(ctx, q, args, &rows); err != nil {
		return 0, err
	}
	defer rows.Close()
	return entsql.ScanInt(rows)
}

func inserted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// timestamp normalizes event times to UTC so stored values sort lexically.
func timestamp(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC()
}
