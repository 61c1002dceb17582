// Package tracker exposes the workout history and progress over HTTP.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutprogress/internal/history"
	"github.com/2beens/workoutprogress/internal/progress"
	"github.com/2beens/workoutprogress/internal/telemetry/tracing"
	"github.com/2beens/workoutprogress/internal/workouts"
	"github.com/2beens/workoutprogress/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=tracker_test

type entryStore interface {
	Load(ctx context.Context) []workouts.Entry
	TryLoad(ctx context.Context) ([]workouts.Entry, error)
	Upsert(ctx context.Context, entry workouts.Entry) error
	Delete(ctx context.Context, entry workouts.Entry) error
	Reslot(ctx context.Context, entry workouts.Entry, req workouts.EditSlotRequest) error
	Reset(ctx context.Context) error
}

type ListResponse struct {
	Workouts []workouts.Entry `json:"workouts"`
	Total    int              `json:"total"`
}

type DeleteResponse struct {
	Deleted workouts.RecordKey `json:"deleted"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

type Handler struct {
	store    entryStore
	analyzer *progress.Analyzer
}

func NewHandler(store entryStore, analyzer *progress.Analyzer) *Handler {
	return &Handler{
		store:    store,
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	recordPath := "/workouts/week/{week}/day/{day}/date/{date}"

	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", handler.HandleSave).Methods("POST", "OPTIONS").Name("save-workout")
	r.HandleFunc("/workouts/reset", handler.HandleReset).Methods("POST", "OPTIONS").Name("reset-workouts")
	r.HandleFunc(recordPath, handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc(recordPath+"/slot", handler.HandleReslot).Methods("PUT", "OPTIONS").Name("reslot-workout")

	r.HandleFunc("/progress/report", handler.HandleReport).Methods("GET", "OPTIONS").Name("progress-report")
	r.HandleFunc("/progress/series/{metric}", handler.HandleSeries).Methods("GET", "OPTIONS").Name("progress-series")
	r.HandleFunc("/progress/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")
	r.HandleFunc("/progress/weeks", handler.HandleWeeks).Methods("GET", "OPTIONS").Name("progress-weeks")
	r.HandleFunc("/progress/next", handler.HandleNextSlot).Methods("GET", "OPTIONS").Name("progress-next")

	r.HandleFunc("/program", handler.HandleProgram).Methods("GET", "OPTIONS").Name("program")
	r.HandleFunc("/health", handler.HandleHealth).Methods("GET").Name("health")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	entries := progress.SortChronologically(handler.store.Load(ctx))
	writeJSON(w, ListResponse{
		Workouts: entries,
		Total:    len(entries),
	}, http.StatusOK)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.save")
	defer span.End()

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry workouts.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("save workout, unmarshal json: %s", err)
		http.Error(w, "invalid workout json", http.StatusBadRequest)
		return
	}

	if err := entry.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.store.Upsert(ctx, entry); err != nil {
		log.Errorf("failed to save workout %s [%s]: %s", entry.Slot(), entry.Date, err)
		http.Error(w, "error, workout not saved", http.StatusInternalServerError)
		return
	}
	handler.analyzer.Invalidate()

	log.Debugf("workout saved: %s [%s]", entry.Slot(), entry.Date)
	writeJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	key, err := recordKeyFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry := workouts.Entry{Week: key.Week, Day: key.Day, Date: key.Date}
	if err := handler.store.Delete(ctx, entry); err != nil {
		log.Errorf("failed to delete workout %+v: %s", key, err)
		http.Error(w, "error, workout not deleted", http.StatusInternalServerError)
		return
	}
	handler.analyzer.Invalidate()

	writeJSON(w, DeleteResponse{Deleted: key}, http.StatusOK)
}

func (handler *Handler) HandleReslot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.reslot")
	defer span.End()

	key, err := recordKeyFromVars(mux.Vars(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req workouts.EditSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("reslot workout, unmarshal json: %s", err)
		http.Error(w, "invalid slot json", http.StatusBadRequest)
		return
	}

	entry := workouts.Entry{Week: key.Week, Day: key.Day, Date: key.Date}
	err = handler.store.Reslot(ctx, entry, req)

	var validationErr *workouts.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, history.ErrEntryNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	default:
		log.Errorf("failed to move workout %+v to %s: %s", key, req.Slot(), err)
		http.Error(w, "error, workout not moved", http.StatusInternalServerError)
		return
	}
	handler.analyzer.Invalidate()

	moved := workouts.RecordKey{Week: req.NewWeek, Day: req.NewDay, Date: key.Date}
	writeJSON(w, moved, http.StatusOK)
}

func (handler *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.reset")
	defer span.End()

	if err := handler.store.Reset(ctx); err != nil {
		log.Errorf("failed to reset workout history: %s", err)
		http.Error(w, "error, history not reset", http.StatusInternalServerError)
		return
	}
	handler.analyzer.Invalidate()

	pkg.WriteTextResponseOK(w, "reset")
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	reportJson, err := handler.analyzer.ReportJSON(r.Context())
	if err != nil {
		log.Errorf("progress report: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reportJson)
}

func (handler *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	metric, err := workouts.ParseMetric(mux.Vars(r)["metric"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, handler.analyzer.Series(r.Context(), metric), http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, handler.analyzer.Summary(r.Context()), http.StatusOK)
}

func (handler *Handler) HandleWeeks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, handler.analyzer.Weeks(r.Context()), http.StatusOK)
}

func (handler *Handler) HandleNextSlot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, handler.analyzer.NextSlot(r.Context()), http.StatusOK)
}

func (handler *Handler) HandleProgram(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, workouts.Program(), http.StatusOK)
}

func (handler *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	entries, err := handler.store.TryLoad(r.Context())
	if err != nil {
		log.Warnf("health check: %s", err)
		writeJSON(w, HealthResponse{Status: "degraded", Error: err.Error()}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, HealthResponse{Status: "ok", Entries: len(entries)}, http.StatusOK)
}

func recordKeyFromVars(vars map[string]string) (workouts.RecordKey, error) {
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		return workouts.RecordKey{}, fmt.Errorf("invalid week: %q", vars["week"])
	}
	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		return workouts.RecordKey{}, fmt.Errorf("invalid day: %q", vars["day"])
	}
	date := vars["date"]
	if date == "" {
		return workouts.RecordKey{}, errors.New("date empty")
	}
	return workouts.RecordKey{Week: week, Day: day, Date: date}, nil
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
