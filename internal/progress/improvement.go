package progress

import (
	"fmt"
	"math"

	"github.com/2beens/workoutprogress/internal/workouts"
)

type Direction string

const (
	DirectionUp            Direction = "up"
	DirectionDown          Direction = "down"
	DirectionFlat          Direction = "flat"
	DirectionNotApplicable Direction = "n/a"
)

// ImprovementPercent is ((last - first) / first) * 100.
// Fewer than two values give (0, true). A zero first value has no meaningful
// ratio and gives (0, false).
func ImprovementPercent(values []int) (float64, bool) {
	if len(values) < 2 {
		return 0, true
	}
	first, last := values[0], values[len(values)-1]
	if first == 0 {
		return 0, false
	}
	return float64(last-first) / float64(first) * 100, true
}

// ImprovementInfo is the display form of a metric's improvement.
type ImprovementInfo struct {
	Metric     workouts.Metric `json:"metric"`
	Percent    float64         `json:"percent"`
	Applicable bool            `json:"applicable"`
	Direction  Direction       `json:"direction"`
	// Message is e.g. "↑ 12.5% improvement", empty when flat or not applicable.
	Message string `json:"message"`
}

func Improvement(metric workouts.Metric, entries []workouts.Entry) ImprovementInfo {
	percent, ok := ImprovementPercent(Values(SeriesFor(metric, entries)))
	info := ImprovementInfo{
		Metric:     metric,
		Applicable: ok,
	}

	if !ok {
		info.Direction = DirectionNotApplicable
		return info
	}

	info.Percent = math.Round(percent*10) / 10
	switch {
	case percent > 0:
		info.Direction = DirectionUp
		info.Message = fmt.Sprintf("↑ %.1f%% improvement", math.Abs(percent))
	case percent < 0:
		info.Direction = DirectionDown
		info.Message = fmt.Sprintf("↓ %.1f%% improvement", math.Abs(percent))
	default:
		info.Direction = DirectionFlat
	}

	return info
}
