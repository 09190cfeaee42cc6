package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/repstats/internal/telemetry/metrics"
	"github.com/2beens/repstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// RefreshResult reports the outcome of recomputing one derived result set.
type RefreshResult struct {
	Set string
	Err error
}

// Refresher recomputes the derived result sets over the full history and
// replaces their cached values. It runs after each successful ingestion
// and on manual request. Individual set failures are reported per set and
// never abort the remaining sets, stale cached values stay servable until
// the next successful run.
type Refresher struct {
	analyzer       *Analyzer
	cache          *ResultsCache
	metricsManager *metrics.Manager
}

func NewRefresher(analyzer *Analyzer, cache *ResultsCache, metricsManager *metrics.Manager) *Refresher {
	return &Refresher{
		analyzer:       analyzer,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

// RefreshAll recomputes all derived result sets over the unrestricted
// period: rest intervals per category type, and the performance series of
// every known exercise.
func (r *Refresher) RefreshAll(ctx context.Context) []RefreshResult {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.refresher.refreshall")
	defer span.End()

	startTime := time.Now()
	defer func() {
		r.metricsManager.HistRecomputeDuration.Observe(time.Since(startTime).Seconds())
	}()

	var results []RefreshResult
	for _, categoryType := range []CategoryType{CategoryByMuscleGroup, CategoryByExercise} {
		results = append(results, RefreshResult{
			Set: "rest:" + string(categoryType),
			Err: r.refreshRestIntervals(ctx, categoryType),
		})
	}

	exerciseNames, err := r.analyzer.Exercises(ctx)
	if err != nil {
		results = append(results, RefreshResult{
			Set: "performance",
			Err: fmt.Errorf("get exercise names: %w", err),
		})
	} else {
		for _, exerciseName := range exerciseNames {
			results = append(results, RefreshResult{
				Set: "performance:" + exerciseName,
				Err: r.refreshPerformanceSeries(ctx, exerciseName),
			})
		}
	}

	for _, result := range results {
		if result.Err != nil {
			r.metricsManager.CounterRecomputeFailures.Inc()
			log.Warnf("refresh derived set [%s]: %s", result.Set, result.Err)
		}
	}

	return results
}

// Recompute runs RefreshAll and aggregates the per-set failures into one
// error. It satisfies the recompute trigger used by the ingestion handlers.
func (r *Refresher) Recompute(ctx context.Context) error {
	var combinedErr error
	for _, result := range r.RefreshAll(ctx) {
		if result.Err != nil {
			combinedErr = multierr.Append(combinedErr, fmt.Errorf("%s: %w", result.Set, result.Err))
		}
	}
	return combinedErr
}

func (r *Refresher) refreshRestIntervals(ctx context.Context, categoryType CategoryType) error {
	restIntervals, err := r.analyzer.RestIntervals(ctx, categoryType, PeriodAll)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	if err := r.cache.SetRestIntervals(ctx, categoryType, PeriodAll, restIntervals); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

func (r *Refresher) refreshPerformanceSeries(ctx context.Context, exerciseName string) error {
	series, err := r.analyzer.PerformanceSeries(ctx, exerciseName, PeriodAll)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	if err := r.cache.SetPerformanceSeries(ctx, exerciseName, PeriodAll, series); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
