// Package history persists the workout history: one named slot holding the whole
// collection, rewritten in full on every mutation.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutprogress/internal/telemetry/metrics"
	"github.com/2beens/workoutprogress/internal/telemetry/tracing"
	"github.com/2beens/workoutprogress/internal/workouts"
)

var ErrStorageNil = errors.New("history storage is nil")

// Store is the history of logged workouts.
// Upserts are keyed by slot (week, day); deletes match the full record key (week, day, date).
type Store struct {
	storage        SlotStorage
	metricsManager *metrics.Manager // optional

	// serializes read-modify-write cycles within this process
	mutex sync.Mutex
}

func NewStore(storage SlotStorage, metricsManager *metrics.Manager) (*Store, error) {
	if storage == nil {
		return nil, ErrStorageNil
	}
	return &Store{
		storage:        storage,
		metricsManager: metricsManager,
	}, nil
}

// Load returns the whole persisted history, in no particular order.
// It never fails: a missing slot yields an empty history, and so does an unreadable
// payload, in which case the failure is logged and counted (see Verify).
func (s *Store) Load(ctx context.Context) []workouts.Entry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.load")
	defer span.End()

	entries, err := s.read(ctx)
	if err != nil {
		span.RecordError(err)
		log.Errorf("load workout history, falling back to empty history: %s", err)
		if s.metricsManager != nil {
			s.metricsManager.CounterLoadFailures.Inc()
		}
		return []workouts.Entry{}
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries
}

// TryLoad is Load without the fallback: on a read or parse failure it returns an
// empty history together with the error, and neither logs nor counts it.
func (s *Store) TryLoad(ctx context.Context) (_ []workouts.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.try_load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.read(ctx)
	if err != nil {
		return []workouts.Entry{}, err
	}
	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

// Verify reports why Load would fall back to an empty history, or nil when it would not.
func (s *Store) Verify(ctx context.Context) error {
	_, err := s.TryLoad(ctx)
	return err
}

// Upsert replaces whatever occupies the entry's slot with the entry and persists
// the resulting history in a single write.
func (s *Store) Upsert(ctx context.Context, entry workouts.Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("week", entry.Week),
		attribute.Int("day", entry.Day),
		attribute.String("date", entry.Date),
	)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, err := s.readForMutation(ctx, "upsert")
	if err != nil {
		return err
	}

	slot := entry.Slot()
	updated := make([]workouts.Entry, 0, len(current)+1)
	for _, e := range current {
		if e.Slot() == slot {
			log.Debugf("history: replacing %s entry from [%s]", slot, e.Date)
			continue
		}
		updated = append(updated, e)
	}
	updated = append(updated, entry)

	if err := s.write(ctx, "upsert", updated); err != nil {
		return err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterUpserts.Inc()
	}
	log.Debugf("history: %s [%s] saved, total entries: %d", slot, entry.Date, len(updated))

	return nil
}

// Delete removes the entry with the same week, day and date.
// Deleting a record that does not exist succeeds without touching the storage.
func (s *Store) Delete(ctx context.Context, entry workouts.Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("week", entry.Week),
		attribute.Int("day", entry.Day),
		attribute.String("date", entry.Date),
	)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, err := s.readForMutation(ctx, "delete")
	if err != nil {
		return err
	}

	key := entry.Key()
	remaining := make([]workouts.Entry, 0, len(current))
	for _, e := range current {
		if e.Key() != key {
			remaining = append(remaining, e)
		}
	}

	if len(remaining) == len(current) {
		log.Debugf("history: delete %+v, no such entry", key)
		span.SetAttributes(attribute.Bool("noop", true))
		return nil
	}

	if err := s.write(ctx, "delete", remaining); err != nil {
		return err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterDeletes.Inc()
	}
	log.Debugf("history: deleted %+v, total entries: %d", key, len(remaining))

	return nil
}

// Reslot moves an existing entry to another slot. Whatever occupied the target slot is
// replaced, and the move is persisted in a single write.
func (s *Store) Reslot(ctx context.Context, entry workouts.Entry, req workouts.EditSlotRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.reslot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", entry.Slot().String()),
		attribute.String("to", req.Slot().String()),
	)

	moved, err := req.Apply(entry)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, err := s.readForMutation(ctx, "reslot")
	if err != nil {
		return err
	}

	found := false
	key := entry.Key()
	target := moved.Slot()
	updated := make([]workouts.Entry, 0, len(current))
	for _, e := range current {
		switch {
		case e.Key() == key:
			found = true
			moved = e
			moved.Week, moved.Day = target.Week, target.Day
		case e.Slot() == target:
			log.Debugf("history: reslot replaces %s entry from [%s]", target, e.Date)
		default:
			updated = append(updated, e)
		}
	}
	if !found {
		return ErrEntryNotFound
	}
	updated = append(updated, moved)

	if err := s.write(ctx, "reslot", updated); err != nil {
		return err
	}

	log.Debugf("history: moved [%s] from %s to %s", entry.Date, entry.Slot(), target)
	return nil
}

// Reset durably replaces the history with an empty one. It is the way out of
// an unreadable payload, which the other mutations refuse to overwrite.
func (s *Store) Reset(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.write(ctx, "reset", []workouts.Entry{}); err != nil {
		return err
	}
	log.Warnln("history: reset to empty")
	return nil
}

func (s *Store) Close() error {
	return s.storage.Close()
}

func (s *Store) read(ctx context.Context) ([]workouts.Entry, error) {
	payload, err := s.storage.Read(ctx)
	if errors.Is(err, ErrSlotEmpty) {
		return []workouts.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history slot: %w", err)
	}
	return decode(payload)
}

func (s *Store) readForMutation(ctx context.Context, op string) ([]workouts.Entry, error) {
	current, err := s.read(ctx)
	if err != nil {
		if s.metricsManager != nil {
			s.metricsManager.CounterPersistenceErrors.WithLabelValues(op).Inc()
		}
		return nil, &PersistenceError{Op: op, Err: err}
	}
	return current, nil
}

func (s *Store) write(ctx context.Context, op string, entries []workouts.Entry) error {
	payload, err := encode(entries)
	if err != nil {
		if s.metricsManager != nil {
			s.metricsManager.CounterPersistenceErrors.WithLabelValues(op).Inc()
		}
		return &PersistenceError{Op: op, Err: fmt.Errorf("marshal history: %w", err)}
	}

	start := time.Now()
	if err := s.storage.Write(ctx, payload); err != nil {
		if s.metricsManager != nil {
			s.metricsManager.CounterPersistenceErrors.WithLabelValues(op).Inc()
		}
		return &PersistenceError{Op: op, Err: err}
	}

	if s.metricsManager != nil {
		s.metricsManager.HistogramWriteDuration.Observe(time.Since(start).Seconds())
		s.metricsManager.GaugeHistoryEntries.Set(float64(len(entries)))
	}
	return nil
}

func encode(entries []workouts.Entry) ([]byte, error) {
	if entries == nil {
		entries = []workouts.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

func decode(payload []byte) ([]workouts.Entry, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return []workouts.Entry{}, nil
	}
	var entries []workouts.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, &ParseError{Err: err}
	}
	if entries == nil {
		entries = []workouts.Entry{}
	}
	return entries, nil
}
