package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutprogress/internal/telemetry/metrics"
	"github.com/2beens/workoutprogress/internal/telemetry/tracing"
	"github.com/2beens/workoutprogress/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

const (
	reportCacheKey    = "progress::report"
	reportCacheExpire = 5 * 60 // seconds; bounds how long writes from other processes go unseen
	megabyte          = 1024 * 1024
)

type historyLoader interface {
	Load(ctx context.Context) []workouts.Entry
	TryLoad(ctx context.Context) ([]workouts.Entry, error)
}

// Report is everything the progress page shows, computed from one history load.
type Report struct {
	Series       map[workouts.Metric][]Point         `json:"series"`
	Improvements map[workouts.Metric]ImprovementInfo `json:"improvements"`
	Summary      Summary                             `json:"summary"`
	Weeks        []WeekSummary                       `json:"weeks"`
	Next         workouts.Slot                       `json:"next"`
}

type Analyzer struct {
	history        historyLoader
	metricsManager *metrics.Manager // optional

	// held while a report is built and cached, and while it is invalidated,
	// so a report built from a stale load never outlives Invalidate
	cacheMutex sync.Mutex
	cache      *freecache.Cache
}

func NewAnalyzer(history historyLoader, cacheSizeMB int, metricsManager *metrics.Manager) *Analyzer {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &Analyzer{
		history:        history,
		metricsManager: metricsManager,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
	}
}

// BuildReport computes a report from the given entries.
func BuildReport(entries []workouts.Entry) *Report {
	report := &Report{
		Series:       make(map[workouts.Metric][]Point, len(workouts.Metrics)),
		Improvements: make(map[workouts.Metric]ImprovementInfo, len(workouts.Metrics)),
		Summary:      Summarize(entries),
		Weeks:        WeeklyBreakdown(entries),
		Next:         NextSlot(entries),
	}
	for _, metric := range workouts.Metrics {
		series := slices.Collect(SeriesFor(metric, entries))
		if series == nil {
			series = []Point{}
		}
		report.Series[metric] = series
		report.Improvements[metric] = Improvement(metric, entries)
	}
	return report
}

// ReportJSON returns the encoded report, from cache when the history has not
// changed since it was last built.
func (a *Analyzer) ReportJSON(ctx context.Context) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	if reportBytes, err := a.cache.Get([]byte(reportCacheKey)); err == nil {
		log.Trace("progress report found in cache")
		span.SetAttributes(attribute.Bool("cached", true))
		if a.metricsManager != nil {
			a.metricsManager.CounterReportCacheHits.Inc()
		}
		return reportBytes, nil
	}

	entries, loadErr := a.history.TryLoad(ctx)
	if loadErr != nil {
		span.RecordError(loadErr)
		log.Errorf("progress report built from empty history, not cached: %s", loadErr)
		if a.metricsManager != nil {
			a.metricsManager.CounterLoadFailures.Inc()
		}
	}
	span.SetAttributes(attribute.Int("entries", len(entries)))

	reportBytes, err := json.Marshal(BuildReport(entries))
	if err != nil {
		return nil, fmt.Errorf("marshal progress report: %w", err)
	}

	// a fallback report must not outlive the storage failure
	if loadErr != nil {
		return reportBytes, nil
	}

	if err = a.cache.Set([]byte(reportCacheKey), reportBytes, reportCacheExpire); err != nil {
		log.Errorf("failed to cache progress report: %s", err)
	}

	return reportBytes, nil
}

func (a *Analyzer) Report(ctx context.Context) (*Report, error) {
	reportBytes, err := a.ReportJSON(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{}
	if err := json.Unmarshal(reportBytes, report); err != nil {
		return nil, fmt.Errorf("unmarshal progress report: %w", err)
	}
	return report, nil
}

// Invalidate drops the cached report. Call it after every history mutation.
func (a *Analyzer) Invalidate() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache.Del([]byte(reportCacheKey))
}

func (a *Analyzer) Series(ctx context.Context, metric workouts.Metric) []Point {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.series")
	defer span.End()
	span.SetAttributes(attribute.String("metric", metric.String()))

	series := slices.Collect(SeriesFor(metric, a.history.Load(ctx)))
	if series == nil {
		return []Point{}
	}
	return series
}

func (a *Analyzer) Summary(ctx context.Context) Summary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.summary")
	defer span.End()
	return Summarize(a.history.Load(ctx))
}

func (a *Analyzer) Weeks(ctx context.Context) []WeekSummary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.weeks")
	defer span.End()
	return WeeklyBreakdown(a.history.Load(ctx))
}

func (a *Analyzer) NextSlot(ctx context.Context) workouts.Slot {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.next-slot")
	defer span.End()
	return NextSlot(a.history.Load(ctx))
}
