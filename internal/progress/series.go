// Package progress derives trend series, improvement figures and summary
// statistics from the workout history. Everything but Analyzer is pure.
package progress

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/2beens/workoutprogress/internal/workouts"
)

// Point is one value of a metric series, labeled for a chart axis.
type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SortChronologically returns a sorted copy of entries: by date, then week, then day.
// Entries with unparseable dates come first, ordered by their raw date string.
func SortChronologically(entries []workouts.Entry) []workouts.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compareChronologically)
	return sorted
}

func compareChronologically(a, b workouts.Entry) int {
	dateA, errA := a.ParsedDate()
	dateB, errB := b.ParsedDate()

	switch {
	case errA != nil && errB == nil:
		return -1
	case errA == nil && errB != nil:
		return 1
	case errA != nil && errB != nil:
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
	default:
		if c := dateA.Compare(dateB); c != 0 {
			return c
		}
	}

	if c := cmp.Compare(a.Week, b.Week); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// SeriesFor yields the metric's values in chronological order.
// The sequence can be ranged over any number of times.
func SeriesFor(metric workouts.Metric, entries []workouts.Entry) iter.Seq[Point] {
	sorted := SortChronologically(entries)
	return func(yield func(Point) bool) {
		for _, e := range sorted {
			if !yield(Point{Label: e.Label(), Value: metric.Value(e)}) {
				return
			}
		}
	}
}

// Values strips the labels off a series.
func Values(series iter.Seq[Point]) []int {
	var values []int
	for p := range series {
		values = append(values, p.Value)
	}
	return values
}
