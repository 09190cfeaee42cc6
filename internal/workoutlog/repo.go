package workoutlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/repstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("entry not found")

type EntryParams struct {
	ExerciseName string
	MuscleGroup  string
	From         *time.Time
	To           *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise_entry
				(entry_date, workout_name, exercise_name, muscle_group_primary, muscle_group_secondary, kilos, reps, sets, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		entry.Day(), entry.WorkoutName, entry.ExerciseName,
		entry.MuscleGroupPrimary, entry.MuscleGroupSecondary,
		entry.Kilos, entry.Reps, entry.Sets, entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("entry.id", id))

	entry.ID = id
	return &entry, nil
}

// AddBatch inserts all given entries in a single transaction, so a CSV
// import either lands completely or not at all.
func (r *Repo) AddBatch(ctx context.Context, entries []Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.addbatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, entry := range entries {
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO exercise_entry
					(entry_date, workout_name, exercise_name, muscle_group_primary, muscle_group_secondary, kilos, reps, sets, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			entry.Day(), entry.WorkoutName, entry.ExerciseName,
			entry.MuscleGroupPrimary, entry.MuscleGroupSecondary,
			entry.Kilos, entry.Reps, entry.Sets, entry.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert entry [%s %s]: %w", entry.Day(), entry.ExerciseName, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, entry_date, workout_name, exercise_name, muscle_group_primary, muscle_group_secondary, kilos, reps, sets, created_at
			FROM exercise_entry
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}

	if len(entries) != 1 {
		return nil, ErrEntryNotFound
	}

	return &entries[0], nil
}

// List returns all entries matching the given params, ordered by entry date
// ascending. The analytics engine operates on this snapshot.
func (r *Repo) List(ctx context.Context, params EntryParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_name", params.ExerciseName))
	span.SetAttributes(attribute.String("muscle_group", params.MuscleGroup))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, entry_date, workout_name, exercise_name, muscle_group_primary, muscle_group_secondary, kilos, reps, sets, created_at
			FROM exercise_entry
				WHERE ($1::text = '' OR exercise_name = $1)
				AND ($2::text = '' OR muscle_group_primary = $2 OR muscle_group_secondary = $2)
				AND ($3::date IS NULL OR entry_date >= $3)
				AND ($4::date IS NULL OR entry_date <= $4)
			ORDER BY entry_date ASC, id ASC;`,
		params.ExerciseName, params.MuscleGroup,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2entries: %w", err)
	}
	return entries, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_entry WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *Repo) Count(ctx context.Context, params EntryParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM exercise_entry
			WHERE ($1::text = '' OR exercise_name = $1)
			AND ($2::text = '' OR muscle_group_primary = $2 OR muscle_group_secondary = $2)
			AND ($3::date IS NULL OR entry_date >= $3)
			AND ($4::date IS NULL OR entry_date <= $4);
	`,
		params.ExerciseName, params.MuscleGroup,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get entries count")
}

func (r *Repo) DistinctExerciseNames(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.distinctexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT exercise_name FROM exercise_entry ORDER BY exercise_name ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		names = append(names, name)
	}

	return names, nil
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.WorkoutName, &e.ExerciseName,
			&e.MuscleGroupPrimary, &e.MuscleGroupSecondary,
			&e.Kilos, &e.Reps, &e.Sets, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if entries == nil {
		entries = make([]Entry, 0)
	}

	return entries, nil
}
