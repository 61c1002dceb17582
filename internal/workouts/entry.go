package workouts

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used for Entry.Date.
const DateLayout = "2006-01-02"

// Entry is one logged training session.
// Treat it as a value: replace it, never edit it in place.
type Entry struct {
	Week    int    `json:"week"`
	Day     int    `json:"day"`
	Pushups int    `json:"pushups"`
	Burpees int    `json:"burpees"`
	RPE     int    `json:"rpe"`
	Notes   string `json:"notes"`
	Date    string `json:"date"`
}

// Slot is the (week, day) program session an entry belongs to,
// regardless of when it was actually performed.
type Slot struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

func (s Slot) String() string {
	return fmt.Sprintf("W%dD%d", s.Week, s.Day)
}

// RecordKey identifies a single persisted entry: its slot plus the date it was done.
type RecordKey struct {
	Week int    `json:"week"`
	Day  int    `json:"day"`
	Date string `json:"date"`
}

func (e Entry) Slot() Slot {
	return Slot{Week: e.Week, Day: e.Day}
}

func (e Entry) Key() RecordKey {
	return RecordKey{Week: e.Week, Day: e.Day, Date: e.Date}
}

// Label is the human readable form used on chart axes, e.g. "W1D2 (2024-01-03)".
func (e Entry) Label() string {
	return fmt.Sprintf("W%dD%d (%s)", e.Week, e.Day, e.Date)
}

// ParsedDate returns the entry date as a UTC midnight time.
func (e Entry) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// Metric is one of the numeric values tracked per session.
type Metric string

const (
	MetricPushups Metric = "pushups"
	MetricBurpees Metric = "burpees"
	MetricRPE     Metric = "rpe"
)

// Metrics lists all tracked metrics in display order.
var Metrics = []Metric{MetricPushups, MetricBurpees, MetricRPE}

func (m Metric) String() string {
	return string(m)
}

func (m Metric) IsValid() bool {
	switch m {
	case MetricPushups, MetricBurpees, MetricRPE:
		return true
	default:
		return false
	}
}

// DisplayName is the chart title used for the metric.
func (m Metric) DisplayName() string {
	switch m {
	case MetricPushups:
		return "Push-ups"
	case MetricBurpees:
		return "Burpees"
	case MetricRPE:
		return "RPE"
	default:
		return string(m)
	}
}

// Value extracts the metric from an entry. Unknown metrics yield 0.
func (m Metric) Value(e Entry) int {
	switch m {
	case MetricPushups:
		return e.Pushups
	case MetricBurpees:
		return e.Burpees
	case MetricRPE:
		return e.RPE
	default:
		return 0
	}
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown metric: %q", s)
	}
	return m, nil
}
