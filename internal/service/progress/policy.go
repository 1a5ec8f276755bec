package progress

import (
	"math"
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
)

// Advance applies the spaced-repetition policy to a question's current
// interval given a fresh mastery score. Pure function. No DB, no context,
// no logger — all decisions are deterministic based on the inputs.
//
// A score at or above the mastery threshold passes (inclusive boundary):
// the interval grows by the policy's growth factor and the question is
// marked mastered. A failing score resets the interval to one day and
// clears the mastery flag.
func Advance(p domain.ReviewPolicy, prevInterval, score int, now time.Time) domain.ScheduleUpdate {
	// Defensive floor: a corrupt or unset interval is treated as 1,
	// never propagated.
	if prevInterval < 1 {
		prevInterval = 1
	}

	if score >= p.MasteryThreshold {
		interval := maxInt(1, int(math.Round(float64(prevInterval)*p.GrowthFactor)))
		return domain.ScheduleUpdate{
			Interval:   interval,
			DueDate:    now.AddDate(0, 0, interval),
			IsMastered: true,
		}
	}

	return domain.ScheduleUpdate{
		Interval:   1,
		DueDate:    now.AddDate(0, 0, 1),
		IsMastered: false,
	}
}
