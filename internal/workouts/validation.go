package workouts

import (
	"fmt"
	"strings"
)

const (
	MinRPE = 1
	MaxRPE = 10
)

// ValidationError reports a single malformed or out of range field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks an entry the way the input form does before it is submitted.
// The history store itself does not call this.
func (e Entry) Validate() error {
	if err := validateSlot("week", e.Week, ProgramWeeks); err != nil {
		return err
	}
	if err := validateSlot("day", e.Day, DaysPerWeek); err != nil {
		return err
	}
	if e.Pushups < 0 {
		return &ValidationError{Field: "pushups", Reason: "must not be negative"}
	}
	if e.Burpees < 0 {
		return &ValidationError{Field: "burpees", Reason: "must not be negative"}
	}
	if e.RPE < MinRPE || e.RPE > MaxRPE {
		return &ValidationError{Field: "rpe", Reason: fmt.Sprintf("must be between %d and %d", MinRPE, MaxRPE)}
	}
	if strings.TrimSpace(e.Date) == "" {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if _, err := e.ParsedDate(); err != nil {
		return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	return nil
}

// EditSlotRequest moves an already logged entry to another (week, day) slot.
type EditSlotRequest struct {
	NewWeek int `json:"newWeek"`
	NewDay  int `json:"newDay"`
}

func (r EditSlotRequest) Validate() error {
	if err := validateSlot("newWeek", r.NewWeek, ProgramWeeks); err != nil {
		return err
	}
	return validateSlot("newDay", r.NewDay, DaysPerWeek)
}

func (r EditSlotRequest) Slot() Slot {
	return Slot{Week: r.NewWeek, Day: r.NewDay}
}

// Apply returns a copy of e moved to the requested slot.
func (r EditSlotRequest) Apply(e Entry) (Entry, error) {
	if err := r.Validate(); err != nil {
		return Entry{}, err
	}
	e.Week = r.NewWeek
	e.Day = r.NewDay
	return e, nil
}

func validateSlot(field string, value, upper int) error {
	if value < 1 || value > upper {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be between 1 and %d", upper)}
	}
	return nil
}
