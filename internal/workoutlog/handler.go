package workoutlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/repstats/internal/telemetry/metrics"
	"github.com/2beens/repstats/internal/telemetry/tracing"
	"github.com/2beens/repstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workoutlog_mocks_test.go -package=workoutlog_test

type entriesRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	AddBatch(ctx context.Context, entries []Entry) error
	Get(ctx context.Context, id int) (*Entry, error)
	List(ctx context.Context, params EntryParams) ([]Entry, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, params EntryParams) (int, error)
	DistinctExerciseNames(ctx context.Context) ([]string, error)
}

// recomputeTrigger refreshes the derived analytics sets. Recompute failures
// are logged only: a successful import must never be failed or rolled back
// because a recompute did not go through.
type recomputeTrigger interface {
	Recompute(ctx context.Context) error
}

type ImportResponse struct {
	Added    int        `json:"added"`
	Skipped  []RowError `json:"skipped,omitempty"`
	Unmapped []string   `json:"unmapped,omitempty"`
}

type DeleteEntryResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	repo           entriesRepo
	enricher       *Enricher
	recomputer     recomputeTrigger
	metricsManager *metrics.Manager
}

func NewHandler(
	repo entriesRepo,
	enricher *Enricher,
	recomputer recomputeTrigger,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		enricher:       enricher,
		recomputer:     recomputer,
		metricsManager: metricsManager,
	}
}

// HandleImport ingests a whole workout CSV export. Valid rows are enriched
// with muscle groups and stored in one batch, invalid rows are reported back.
func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.import")
	defer span.End()

	parseResult, err := ParseCSV(r.Body)
	if err != nil {
		log.Errorf("import entries, parse csv: %s", err)
		http.Error(w, "invalid csv: "+err.Error(), http.StatusBadRequest)
		return
	}

	unmapped := handler.enricher.EnrichAll(parseResult.Entries)
	for range unmapped {
		handler.metricsManager.CounterUnmappedExercises.Inc()
	}

	now := time.Now()
	for i := range parseResult.Entries {
		parseResult.Entries[i].CreatedAt = now
	}

	if err := handler.repo.AddBatch(ctx, parseResult.Entries); err != nil {
		log.Errorf("import entries, add batch: %s", err)
		http.Error(w, "failed to store entries", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterImportedFiles.Inc()
	handler.metricsManager.CounterEntriesImported.Add(float64(len(parseResult.Entries)))

	// recompute derived metrics without blocking the import response;
	// a failed recompute leaves previously cached results servable
	handler.triggerRecompute(ctx)

	importResponse := ImportResponse{
		Added:    len(parseResult.Entries),
		Skipped:  parseResult.Skipped,
		Unmapped: unmapped,
	}
	responseJson, err := json.Marshal(importResponse)
	if err != nil {
		log.Errorf("import entries, marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	log.Debugf("imported %d entries (%d skipped)", importResponse.Added, len(importResponse.Skipped))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusCreated)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new entry, unmarshal json params: %s", err)
		http.Error(w, "add entry failed", http.StatusBadRequest)
		return
	}

	if entry.ExerciseName == "" {
		http.Error(w, "error, exercise name empty", http.StatusBadRequest)
		return
	}
	if entry.Reps <= 0 {
		http.Error(w, "error, reps must be positive", http.StatusBadRequest)
		return
	}
	if entry.Kilos < 0 {
		http.Error(w, "error, kilos must be non-negative", http.StatusBadRequest)
		return
	}

	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.Sets < 1 {
		entry.Sets = 1
	}

	if entry.MuscleGroupPrimary == "" {
		groups, _ := handler.enricher.Resolve(entry.ExerciseName)
		entry.MuscleGroupPrimary = groups.Primary
		entry.MuscleGroupSecondary = groups.Secondary
	}

	addedEntry, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add new entry [%s]: %s", entry.ExerciseName, err)
		http.Error(w, "error, failed to add new entry", http.StatusInternalServerError)
		return
	}

	handler.triggerRecompute(ctx)

	addedEntryJson, err := json.Marshal(addedEntry)
	if err != nil {
		log.Errorf("failed to marshal new entry: %s", err)
		http.Error(w, "error, failed to add new entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("new entry added: %s", addedEntryJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedEntryJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list")
	defer span.End()

	params, err := entryParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.List(ctx, *params)
	if err != nil {
		log.Errorf("list entries error: %s", err)
		http.Error(w, "failed to get entries", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Entries: entries,
		Total:   len(entries),
	})
	if err != nil {
		log.Errorf("marshal entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.count")
	defer span.End()

	params, err := entryParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	count, err := handler.repo.Count(ctx, *params)
	if err != nil {
		log.Errorf("count entries error: %s", err)
		http.Error(w, "failed to count entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"count": `+strconv.Itoa(count)+`}`)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			log.Debugf("entry %d not found", id)
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete entry %d: %s", id, err)
		http.Error(w, "entry not deleted", http.StatusInternalServerError)
		return
	}

	handler.triggerRecompute(ctx)

	deleteRespJson, err := json.Marshal(DeleteEntryResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleDistinctExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.distinctexercises")
	defer span.End()

	names, err := handler.repo.DistinctExerciseNames(ctx)
	if err != nil {
		log.Errorf("failed to get distinct exercise names: %s", err)
		http.Error(w, "failed to get exercise names", http.StatusInternalServerError)
		return
	}

	namesJson, err := json.Marshal(map[string][]string{
		"exercises": names,
	})
	if err != nil {
		log.Errorf("failed to marshal exercise names: %s", err)
		http.Error(w, "failed to marshal exercise names", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, namesJson, http.StatusOK)
}

func (handler *Handler) triggerRecompute(ctx context.Context) {
	if handler.recomputer == nil {
		return
	}
	recomputeCtx := context.WithoutCancel(ctx)
	go func() {
		if err := handler.recomputer.Recompute(recomputeCtx); err != nil {
			log.Warnf("recompute derived metrics after ingestion: %s", err)
		}
	}()
}

func entryParamsFromQuery(r *http.Request) (*EntryParams, error) {
	params := EntryParams{
		ExerciseName: r.URL.Query().Get("exercise"),
		MuscleGroup:  r.URL.Query().Get("group"),
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, errors.New("invalid from date (expected YYYY-MM-DD)")
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, errors.New("invalid to date (expected YYYY-MM-DD)")
		}
		params.To = &to
	}

	return &params, nil
}
