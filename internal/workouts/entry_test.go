package workouts_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workoutprogress/internal/workouts"
)

func validEntry() workouts.Entry {
	return workouts.Entry{
		Week:    1,
		Day:     2,
		Pushups: 12,
		Burpees: 20,
		RPE:     6,
		Notes:   "felt ok",
		Date:    "2024-01-03",
	}
}

func TestEntry_JSONKeys(t *testing.T) {
	entryJson, err := json.Marshal(validEntry())
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"week":1,"day":2,"pushups":12,"burpees":20,"rpe":6,"notes":"felt ok","date":"2024-01-03"}`,
		string(entryJson),
	)
}

func TestEntry_Identities(t *testing.T) {
	e := validEntry()
	assert.Equal(t, workouts.Slot{Week: 1, Day: 2}, e.Slot())
	assert.Equal(t, workouts.RecordKey{Week: 1, Day: 2, Date: "2024-01-03"}, e.Key())
	assert.Equal(t, "W1D2 (2024-01-03)", e.Label())
	assert.Equal(t, "W1D2", e.Slot().String())
}

func TestEntry_Validate(t *testing.T) {
	require.NoError(t, validEntry().Validate())

	testCases := []struct {
		name   string
		modify func(e *workouts.Entry)
		field  string
	}{
		{"week zero", func(e *workouts.Entry) { e.Week = 0 }, "week"},
		{"week five", func(e *workouts.Entry) { e.Week = 5 }, "week"},
		{"day four", func(e *workouts.Entry) { e.Day = 4 }, "day"},
		{"negative pushups", func(e *workouts.Entry) { e.Pushups = -1 }, "pushups"},
		{"negative burpees", func(e *workouts.Entry) { e.Burpees = -3 }, "burpees"},
		{"rpe too low", func(e *workouts.Entry) { e.RPE = 0 }, "rpe"},
		{"rpe too high", func(e *workouts.Entry) { e.RPE = 11 }, "rpe"},
		{"missing date", func(e *workouts.Entry) { e.Date = " " }, "date"},
		{"bad date", func(e *workouts.Entry) { e.Date = "03/01/2024" }, "date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEntry()
			tc.modify(&e)
			err := e.Validate()
			require.Error(t, err)
			var validationErr *workouts.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestEditSlotRequest_Apply(t *testing.T) {
	e := validEntry()

	moved, err := workouts.EditSlotRequest{NewWeek: 3, NewDay: 1}.Apply(e)
	require.NoError(t, err)
	assert.Equal(t, workouts.Slot{Week: 3, Day: 1}, moved.Slot())
	assert.Equal(t, e.Date, moved.Date)
	assert.Equal(t, e.Pushups, moved.Pushups)
	// source untouched
	assert.Equal(t, workouts.Slot{Week: 1, Day: 2}, e.Slot())

	_, err = workouts.EditSlotRequest{NewWeek: 0, NewDay: 1}.Apply(e)
	var validationErr *workouts.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "newWeek", validationErr.Field)

	_, err = workouts.EditSlotRequest{NewWeek: 2, NewDay: 9}.Apply(e)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "newDay", validationErr.Field)
}

func TestMetric(t *testing.T) {
	e := validEntry()
	assert.Equal(t, 12, workouts.MetricPushups.Value(e))
	assert.Equal(t, 20, workouts.MetricBurpees.Value(e))
	assert.Equal(t, 6, workouts.MetricRPE.Value(e))
	assert.Equal(t, 0, workouts.Metric("plank").Value(e))

	m, err := workouts.ParseMetric("burpees")
	require.NoError(t, err)
	assert.Equal(t, workouts.MetricBurpees, m)
	assert.Equal(t, "Burpees", m.DisplayName())

	_, err = workouts.ParseMetric("squats")
	assert.Error(t, err)
}
