package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	drv dialect.ExecQuerier
	seq *sequenceCounter
}

func (r *eventRepo) AppendXP(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(XPEventsTable.Name).
		Columns("sequence", "timestamp", "source", "reference", "amount").
		Values(seqNum, timestamp(data.At), data.Source, data.Reference, data.Amount).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save xp event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalXP(ctx context.Context) (int, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Sum("amount")).
		From(entsql.Table(XPEventsTable.Name)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return 0, fmt.Errorf("query total xp: %w", err)
	}
	defer rows.Close()

	// SUM over no rows is NULL.
	var total sql.NullInt64
	if err := entsql.ScanOne(rows, &total); err != nil {
		return 0, fmt.Errorf("scan total xp: %w", err)
	}
	return int(total.Int64), nil
}

func (r *eventRepo) QueryXPEvents(ctx context.Context, opts QueryOpts) ([]XPEventRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("source", "reference", "amount", "sequence", "timestamp").
		From(entsql.Table(XPEventsTable.Name))
	q, args := applyOpts(sel, "timestamp", opts).Query()

	var records []XPEventRecord
	if err := queryAll(ctx, r.drv, q, args, &records); err != nil {
		return nil, fmt.Errorf("query xp events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) SaveAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(QuizAttemptsTable.Name).
		Columns(
			"sequence", "timestamp", "attempt_id", "test_id", "test_title",
			"correct_count", "answered", "total_questions", "percentage",
			"passing_score", "passed", "submitted_by", "time_taken_secs", "answers",
		).
		Values(
			seqNum, timestamp(data.At), data.AttemptID, data.TestID, data.TestTitle,
			data.CorrectCount, data.Answered, data.TotalQuestions, data.Percentage,
			data.PassingScore, data.Passed, data.SubmittedBy, data.TimeTakenSecs, answers,
		).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, testID string, opts QueryOpts) ([]AttemptRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(
			"attempt_id", "test_id", "test_title", "correct_count", "answered",
			"total_questions", "percentage", "passing_score", "passed",
			"submitted_by", "time_taken_secs", "answers", "sequence", "timestamp",
		).
		From(entsql.Table(QuizAttemptsTable.Name))
	if testID != "" {
		sel.Where(entsql.EQ("test_id", testID))
	}
	q, args := applyOpts(sel, "timestamp", opts).Query()

	var records []AttemptRecord
	if err := queryAll(ctx, r.drv, q, args, &records); err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	return records, nil
}

func (r *eventRepo) AwardBadge(ctx context.Context, data BadgeData) (bool, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return false, fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(BadgeAwardsTable.Name).
		Columns("sequence", "timestamp", "badge_type", "rarity", "reference", "reason").
		Values(seqNum, timestamp(data.At), data.BadgeType, data.Rarity, data.Reference, data.Reason).
		OnConflict(entsql.ConflictColumns("badge_type", "reference"), entsql.DoNothing()).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return false, fmt.Errorf("save badge award: %w", err)
	}
	return inserted(res)
}

func (r *eventRepo) QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("badge_type", "rarity", "reference", "reason", "sequence", "timestamp").
		From(entsql.Table(BadgeAwardsTable.Name))
	q, args := applyOpts(sel, "timestamp", opts).Query()

	var records []BadgeRecord
	if err := queryAll(ctx, r.drv, q, args, &records); err != nil {
		return nil, fmt.Errorf("query badge awards: %w", err)
	}
	return records, nil
}

func (r *eventRepo) ActivityTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	sources := []struct{ table, column string }{
		{LessonCompletionsTable.Name, "completed_at"},
		{QuizAttemptsTable.Name, "timestamp"},
	}

	var times []time.Time
	for _, src := range sources {
		sel := entsql.Dialect(dialect.SQLite).
			Select(src.column).
			From(entsql.Table(src.table))
		if !since.IsZero() {
			sel.Where(entsql.GTE(src.column, since.UTC()))
		}
		q, args := sel.Query()

		got, err := queryTimes(ctx, r.drv, q, args)
		if err != nil {
			return nil, fmt.Errorf("query activity from %s: %w", src.table, err)
		}
		times = append(times, got...)
	}

	slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })
	return times, nil
}

func queryTimes(ctx context.Context, drv dialect.ExecQuerier, q string, args []any) ([]time.Time, error) {
	var rows entsql.Rows
	if err := drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

// applyOpts adds QueryOpts filtering and newest-first ordering to sel.
func applyOpts(sel *entsql.Selector, timeColumn string, opts QueryOpts) *entsql.Selector {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(timeColumn, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(timeColumn, opts.To.UTC()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}
