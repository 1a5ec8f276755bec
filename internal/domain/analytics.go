package domain

import "time"

// DayActivity is the number of scored answers recorded on one UTC calendar day.
// Days with zero samples are omitted from activity series, not zero-filled.
type DayActivity struct {
	Date  time.Time
	Count int
}

// WeekAccuracy is the average performance for one ISO week, expressed 0–100.
type WeekAccuracy struct {
	Year     int
	Week     int
	Accuracy int
}

// MasteryRatio is the mastered/unmastered split across all of a learner's
// questions. Both fields are zero for a learner with no questions.
type MasteryRatio struct {
	Mastered   int
	Unmastered int
}

// Dashboard bundles the analytics roll-ups served to the progress dashboard.
type Dashboard struct {
	DueCount      int
	DailyActivity []DayActivity
	WeeklyTrend   []WeekAccuracy
	Mastery       MasteryRatio
}
