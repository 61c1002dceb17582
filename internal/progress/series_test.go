package progress_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workoutprogress/internal/progress"
	"github.com/2beens/workoutprogress/internal/workouts"
)

func TestSortChronologically(t *testing.T) {
	entries := []workouts.Entry{
		{Week: 2, Day: 1, Date: "2024-01-08"},
		{Week: 1, Day: 3, Date: "2024-01-05"},
		{Week: 1, Day: 2, Date: "2024-01-05"},
		{Week: 1, Day: 1, Date: "2024-01-01"},
	}
	original := slices.Clone(entries)

	sorted := progress.SortChronologically(entries)
	require.Len(t, sorted, 4)
	assert.Equal(t, workouts.Slot{Week: 1, Day: 1}, sorted[0].Slot())
	// same date, ties broken by week then day
	assert.Equal(t, workouts.Slot{Week: 1, Day: 2}, sorted[1].Slot())
	assert.Equal(t, workouts.Slot{Week: 1, Day: 3}, sorted[2].Slot())
	assert.Equal(t, workouts.Slot{Week: 2, Day: 1}, sorted[3].Slot())

	// input left alone
	assert.Equal(t, original, entries)
}

func TestSortChronologically_TieBreakByWeekFirst(t *testing.T) {
	sorted := progress.SortChronologically([]workouts.Entry{
		{Week: 2, Day: 1, Date: "2024-03-01"},
		{Week: 1, Day: 3, Date: "2024-03-01"},
	})
	assert.Equal(t, 1, sorted[0].Week)
	assert.Equal(t, 2, sorted[1].Week)
}

func TestSortChronologically_InvalidDatesFirst(t *testing.T) {
	sorted := progress.SortChronologically([]workouts.Entry{
		{Week: 1, Day: 1, Date: "2024-01-01"},
		{Week: 1, Day: 2, Date: "someday"},
		{Week: 1, Day: 3, Date: ""},
	})
	assert.Equal(t, []string{"", "someday", "2024-01-01"}, []string{sorted[0].Date, sorted[1].Date, sorted[2].Date})
}

func TestSortChronologically_Empty(t *testing.T) {
	assert.Empty(t, progress.SortChronologically(nil))
}

func TestSeriesFor(t *testing.T) {
	entries := []workouts.Entry{
		{Week: 1, Day: 2, Pushups: 15, Burpees: 22, RPE: 6, Date: "2024-01-03"},
		{Week: 1, Day: 1, Pushups: 10, Burpees: 20, RPE: 5, Date: "2024-01-01"},
	}

	series := progress.SeriesFor(workouts.MetricPushups, entries)
	expected := []progress.Point{
		{Label: "W1D1 (2024-01-01)", Value: 10},
		{Label: "W1D2 (2024-01-03)", Value: 15},
	}
	assert.Equal(t, expected, slices.Collect(series))
	// restartable
	assert.Equal(t, expected, slices.Collect(series))

	assert.Equal(t, []int{20, 22}, progress.Values(progress.SeriesFor(workouts.MetricBurpees, entries)))
	assert.Equal(t, []int{5, 6}, progress.Values(progress.SeriesFor(workouts.MetricRPE, entries)))
}

func TestSeriesFor_EarlyStop(t *testing.T) {
	entries := []workouts.Entry{
		{Week: 1, Day: 1, Pushups: 10, Date: "2024-01-01"},
		{Week: 1, Day: 2, Pushups: 11, Date: "2024-01-03"},
		{Week: 1, Day: 3, Pushups: 12, Date: "2024-01-05"},
	}
	var seen []int
	for p := range progress.SeriesFor(workouts.MetricPushups, entries) {
		seen = append(seen, p.Value)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{10, 11}, seen)
}

func TestSeriesFor_Empty(t *testing.T) {
	assert.Empty(t, slices.Collect(progress.SeriesFor(workouts.MetricPushups, nil)))
}
