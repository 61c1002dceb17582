// Package seed generates plausible workout histories for demos and tests.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/workoutprogress/internal/workouts"
)

type Params struct {
	// Weeks of the program to fill, 1 to 4.
	Weeks int
	// Seed makes the output reproducible; 0 picks a random one.
	Seed int64
	// Start is the date of the first session; zero picks one in the past year.
	Start time.Time
}

// sessions fall on monday, wednesday and friday
var dayOffsets = [workouts.DaysPerWeek]int{0, 2, 4}

// Generate returns one valid entry per slot for the requested weeks, with push-ups and
// burpees slowly trending up.
func Generate(params Params) ([]workouts.Entry, error) {
	if params.Weeks < 1 || params.Weeks > workouts.ProgramWeeks {
		return nil, fmt.Errorf("weeks must be between 1 and %d, got %d", workouts.ProgramWeeks, params.Weeks)
	}

	faker := gofakeit.New(params.Seed)

	start := params.Start
	if start.IsZero() {
		start = time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -faker.Number(30, 365))
	}

	pushups := faker.Number(5, 25)
	burpees := faker.Number(5, 20)

	entries := make([]workouts.Entry, 0, params.Weeks*workouts.DaysPerWeek)
	for week := 1; week <= params.Weeks; week++ {
		for day := 1; day <= workouts.DaysPerWeek; day++ {
			date := start.AddDate(0, 0, (week-1)*7+dayOffsets[day-1])

			entry := workouts.Entry{
				Week:    week,
				Day:     day,
				Pushups: pushups,
				Burpees: burpees,
				RPE:     faker.Number(5, 9),
				Date:    date.Format(workouts.DateLayout),
			}
			if faker.Bool() {
				entry.Notes = faker.Sentence(4)
			}
			if err := entry.Validate(); err != nil {
				return nil, fmt.Errorf("generated invalid entry %s: %w", entry.Slot(), err)
			}
			entries = append(entries, entry)

			pushups += faker.Number(-1, 3)
			burpees += faker.Number(-1, 2)
			pushups = max(pushups, 0)
			burpees = max(burpees, 0)
		}
	}

	return entries, nil
}
