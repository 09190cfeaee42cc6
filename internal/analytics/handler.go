package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/repstats/internal/telemetry/tracing"
	"github.com/2beens/repstats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=analytics_test

type analyticsEngine interface {
	RestIntervals(ctx context.Context, categoryType CategoryType, periodToken string) ([]RestIntervalMetric, error)
	PerformanceSeries(ctx context.Context, exerciseName, periodToken string) ([]PerformanceRecord, error)
	Overview(ctx context.Context) (*Overview, error)
}

type refreshRunner interface {
	RefreshAll(ctx context.Context) []RefreshResult
}

type RefreshSetResponse struct {
	Set   string `json:"set"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type RefreshResponse struct {
	Results []RefreshSetResponse `json:"results"`
}

type Handler struct {
	engine    analyticsEngine
	cache     *ResultsCache
	refresher refreshRunner
}

func NewHandler(engine analyticsEngine, cache *ResultsCache, refresher refreshRunner) *Handler {
	return &Handler{
		engine:    engine,
		cache:     cache,
		refresher: refresher,
	}
}

// HandleRestIntervals serves GET /analytics/rest. An unknown category_type
// is a client error, an unknown period token silently means "all".
func (handler *Handler) HandleRestIntervals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.restintervals")
	defer span.End()

	categoryType, err := ParseCategoryType(r.URL.Query().Get("category_type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	periodToken := periodTokenFromQuery(r)

	if handler.cache != nil {
		cachedMetrics, err := handler.cache.GetRestIntervals(ctx, categoryType, periodToken)
		if err == nil {
			writeJson(w, cachedMetrics)
			return
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Warnf("get cached rest intervals: %s", err)
		}
	}

	restIntervals, err := handler.engine.RestIntervals(ctx, categoryType, periodToken)
	if err != nil {
		log.Errorf("compute rest intervals: %s", err)
		http.Error(w, "failed to compute rest intervals", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		if err := handler.cache.SetRestIntervals(ctx, categoryType, periodToken, restIntervals); err != nil {
			log.Warnf("store rest intervals in cache: %s", err)
		}
	}

	writeJson(w, restIntervals)
}

// HandlePerformance serves GET /analytics/performance for one exercise.
func (handler *Handler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.performance")
	defer span.End()

	exerciseName := r.URL.Query().Get("exercise")
	if exerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	periodToken := periodTokenFromQuery(r)

	if handler.cache != nil {
		cachedSeries, err := handler.cache.GetPerformanceSeries(ctx, exerciseName, periodToken)
		if err == nil {
			writeJson(w, cachedSeries)
			return
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Warnf("get cached performance series: %s", err)
		}
	}

	series, err := handler.engine.PerformanceSeries(ctx, exerciseName, periodToken)
	if err != nil {
		log.Errorf("compute performance series: %s", err)
		http.Error(w, "failed to compute performance series", http.StatusInternalServerError)
		return
	}

	if handler.cache != nil {
		if err := handler.cache.SetPerformanceSeries(ctx, exerciseName, periodToken, series); err != nil {
			log.Warnf("store performance series in cache: %s", err)
		}
	}

	writeJson(w, series)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.overview")
	defer span.End()

	overview, err := handler.engine.Overview(ctx)
	if err != nil {
		log.Errorf("compute overview: %s", err)
		http.Error(w, "failed to compute overview", http.StatusInternalServerError)
		return
	}

	writeJson(w, overview)
}

// HandleRefresh serves POST /analytics/refresh and reports the outcome per
// derived result set. A failed set never fails the whole request.
func (handler *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.refresh")
	defer span.End()

	refreshResponse := RefreshResponse{
		Results: make([]RefreshSetResponse, 0),
	}
	for _, result := range handler.refresher.RefreshAll(ctx) {
		setResponse := RefreshSetResponse{
			Set: result.Set,
			OK:  result.Err == nil,
		}
		if result.Err != nil {
			setResponse.Error = result.Err.Error()
		}
		refreshResponse.Results = append(refreshResponse.Results, setResponse)
	}

	writeJson(w, refreshResponse)
}

func periodTokenFromQuery(r *http.Request) string {
	periodToken := r.URL.Query().Get("period")
	if periodToken == "" {
		return PeriodAll
	}
	return periodToken
}

func writeJson(w http.ResponseWriter, value interface{}) {
	valueJson, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal analytics response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, valueJson, http.StatusOK)
}
