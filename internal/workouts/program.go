package workouts

const (
	ProgramWeeks = 4
	DaysPerWeek  = 3
)

// FinalSlot is the last session of the program.
var FinalSlot = Slot{Week: ProgramWeeks, Day: DaysPerWeek}

// Exercise is one prescribed block of a session.
type Exercise struct {
	Name         string `json:"name"`
	Prescription string `json:"prescription"`
	// Tracked is set for exercises whose result is logged on the entry.
	Tracked Metric `json:"tracked,omitempty"`
}

type Session struct {
	Slot      Slot       `json:"slot"`
	Exercises []Exercise `json:"exercises"`
}

// every session of the bodyweight program is the same; progress comes from beating last week
var sessionPlan = []Exercise{
	{Name: "Push-ups", Prescription: "3 sets max reps", Tracked: MetricPushups},
	{Name: "Air Squats", Prescription: "3 sets of 20"},
	{Name: "Plank", Prescription: "2 rounds of 30 sec"},
	{Name: "Burpees", Prescription: "1 min max reps", Tracked: MetricBurpees},
}

// Program lists all sessions in program order.
func Program() []Session {
	sessions := make([]Session, 0, ProgramWeeks*DaysPerWeek)
	for week := 1; week <= ProgramWeeks; week++ {
		for day := 1; day <= DaysPerWeek; day++ {
			exercises := make([]Exercise, len(sessionPlan))
			copy(exercises, sessionPlan)
			sessions = append(sessions, Session{
				Slot:      Slot{Week: week, Day: day},
				Exercises: exercises,
			})
		}
	}
	return sessions
}

func IsProgramSlot(s Slot) bool {
	return s.Week >= 1 && s.Week <= ProgramWeeks && s.Day >= 1 && s.Day <= DaysPerWeek
}

// After returns the session following s, wrapping from the last day of a week
// to the first day of the next one. The final slot has no successor and is returned as is.
func (s Slot) After() Slot {
	if s.Week > ProgramWeeks || (s.Week == ProgramWeeks && s.Day >= DaysPerWeek) {
		return FinalSlot
	}
	if s.Week < 1 {
		return Slot{Week: 1, Day: 1}
	}
	if s.Day >= DaysPerWeek {
		return Slot{Week: s.Week + 1, Day: 1}
	}
	if s.Day < 1 {
		return Slot{Week: s.Week, Day: 1}
	}
	return Slot{Week: s.Week, Day: s.Day + 1}
}
