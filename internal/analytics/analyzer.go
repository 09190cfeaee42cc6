package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/repstats/internal/telemetry/tracing"
	"github.com/2beens/repstats/internal/workoutlog"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

type entriesRepo interface {
	List(ctx context.Context, params workoutlog.EntryParams) ([]workoutlog.Entry, error)
	Count(ctx context.Context, params workoutlog.EntryParams) (int, error)
	DistinctExerciseNames(ctx context.Context) ([]string, error)
}

// Overview is a small cross-exercise summary of the whole log.
type Overview struct {
	TotalEntries     int        `json:"totalEntries"`
	TotalExercises   int        `json:"totalExercises"`
	TotalWorkoutDays int        `json:"totalWorkoutDays"`
	TotalVolume      float64    `json:"totalVolume"`
	FirstEntryDate   *time.Time `json:"firstEntryDate,omitempty"`
	LastEntryDate    *time.Time `json:"lastEntryDate,omitempty"`
}

// Analyzer is the read side of the analytics engine. Each call takes a fresh
// snapshot from the entries repo, applies the period filter at the query
// level, and runs the pure computation over the result. No state is kept
// between calls, repeated calls over an unchanged log return identical
// output.
type Analyzer struct {
	repo entriesRepo
	now  func() time.Time
}

func NewAnalyzer(repo entriesRepo) *Analyzer {
	return NewAnalyzerWithClock(repo, time.Now)
}

func NewAnalyzerWithClock(repo entriesRepo, now func() time.Time) *Analyzer {
	return &Analyzer{
		repo: repo,
		now:  now,
	}
}

// RestIntervals computes the rest statistics per category over the entries
// within the given period. The period bound is applied before gap
// computation, so an occurrence right outside the window does not
// contribute a gap.
func (a *Analyzer) RestIntervals(
	ctx context.Context,
	categoryType CategoryType,
	periodToken string,
) (_ []RestIntervalMetric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.restintervals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category_type", string(categoryType)))
	span.SetAttributes(attribute.String("period", periodToken))

	entries, err := a.repo.List(ctx, workoutlog.EntryParams{
		From: ResolvePeriod(a.now(), periodToken),
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return RestIntervals(entries, categoryType), nil
}

// PerformanceSeries computes the session series for one exercise over the
// entries within the given period.
func (a *Analyzer) PerformanceSeries(
	ctx context.Context,
	exerciseName string,
	periodToken string,
) (_ []PerformanceRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.performanceseries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_name", exerciseName))
	span.SetAttributes(attribute.String("period", periodToken))

	entries, err := a.repo.List(ctx, workoutlog.EntryParams{
		ExerciseName: exerciseName,
		From:         ResolvePeriod(a.now(), periodToken),
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return PerformanceSeries(exerciseName, entries), nil
}

// Exercises returns all distinct exercise names present in the log.
func (a *Analyzer) Exercises(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return a.repo.DistinctExerciseNames(ctx)
}

// Overview summarizes the whole log: entry and exercise totals, distinct
// workout dates, and the total volume ever lifted.
func (a *Analyzer) Overview(ctx context.Context) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := a.repo.Count(ctx, workoutlog.EntryParams{})
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	names, err := a.repo.DistinctExerciseNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct exercise names: %w", err)
	}

	entries, err := a.repo.List(ctx, workoutlog.EntryParams{})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	overview := &Overview{
		TotalEntries:   count,
		TotalExercises: len(names),
	}

	workoutDays := make(map[time.Time]struct{})
	for _, entry := range entries {
		workoutDays[entry.Day()] = struct{}{}
		overview.TotalVolume += entry.Kilos * float64(entry.Reps)
	}
	overview.TotalWorkoutDays = len(workoutDays)

	if len(entries) > 0 {
		firstDate := entries[0].Day()
		lastDate := entries[len(entries)-1].Day()
		overview.FirstEntryDate = &firstDate
		overview.LastEntryDate = &lastDate
	}

	return overview, nil
}
