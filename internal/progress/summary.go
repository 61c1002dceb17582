package progress

import (
	"cmp"
	"slices"

	"github.com/2beens/workoutprogress/internal/workouts"
)

// Summary holds aggregate stats over a set of entries.
// The pointer fields are nil when there are no entries.
type Summary struct {
	TotalWorkouts int      `json:"totalWorkouts"`
	BestPushups   *int     `json:"bestPushups"`
	BestBurpees   *int     `json:"bestBurpees"`
	AverageRPE    *float64 `json:"averageRpe"`
}

func Summarize(entries []workouts.Entry) Summary {
	summary := Summary{TotalWorkouts: len(entries)}
	if len(entries) == 0 {
		return summary
	}

	bestPushups := entries[0].Pushups
	bestBurpees := entries[0].Burpees
	rpeSum := 0
	for _, e := range entries {
		bestPushups = max(bestPushups, e.Pushups)
		bestBurpees = max(bestBurpees, e.Burpees)
		rpeSum += e.RPE
	}
	averageRPE := float64(rpeSum) / float64(len(entries))

	summary.BestPushups = &bestPushups
	summary.BestBurpees = &bestBurpees
	summary.AverageRPE = &averageRPE
	return summary
}

// WeekSummary is the summary of the sessions logged for one program week.
type WeekSummary struct {
	Week int `json:"week"`
	Summary
}

// WeeklyBreakdown groups entries by week, ordered by week number.
// Weeks without entries are left out.
func WeeklyBreakdown(entries []workouts.Entry) []WeekSummary {
	byWeek := make(map[int][]workouts.Entry)
	for _, e := range entries {
		byWeek[e.Week] = append(byWeek[e.Week], e)
	}

	weeks := make([]WeekSummary, 0, len(byWeek))
	for week, weekEntries := range byWeek {
		weeks = append(weeks, WeekSummary{
			Week:    week,
			Summary: Summarize(weekEntries),
		})
	}
	slices.SortFunc(weeks, func(a, b WeekSummary) int {
		return cmp.Compare(a.Week, b.Week)
	})

	return weeks
}

// NextSlot is the slot to pre-fill for the next session: the one after the
// chronologically last entry, {1,1} for an empty history, never past the final slot.
func NextSlot(entries []workouts.Entry) workouts.Slot {
	if len(entries) == 0 {
		return workouts.Slot{Week: 1, Day: 1}
	}
	sorted := SortChronologically(entries)
	return sorted[len(sorted)-1].Slot().After()
}
