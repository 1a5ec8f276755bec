package progress

import (
	"math"
	"sort"
	"time"

	"github.com/prepstack/interview-backend/internal/domain"
)

// weeklyBucketCap is the maximum number of weekly accuracy buckets
// returned, counted back from the most recent week.
const weeklyBucketCap = 8

// DailyActivity groups performance samples by UTC calendar day within a
// trailing window ending at now. Days without samples are omitted, not
// zero-filled; callers needing a dense series fill gaps themselves.
// The result is sorted by date ascending.
func DailyActivity(samples []domain.PerformanceSample, now time.Time, windowDays int) []domain.DayActivity {
	cutoff := now.UTC().AddDate(0, 0, -windowDays)

	counts := make(map[time.Time]int)
	for _, s := range samples {
		ts := s.ReviewDate.UTC()
		if ts.Before(cutoff) || ts.After(now.UTC()) {
			continue
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		counts[day]++
	}

	out := make([]domain.DayActivity, 0, len(counts))
	for day, n := range counts {
		out = append(out, domain.DayActivity{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	return out
}

// WeeklyAccuracy groups samples into ISO-week buckets and averages the
// performance score per bucket, expressed 0–100. Buckets are ordered
// chronologically and capped to the most recent eight. A learner with no
// history gets a single current-week bucket with accuracy 0.
func WeeklyAccuracy(samples []domain.PerformanceSample, now time.Time) []domain.WeekAccuracy {
	if len(samples) == 0 {
		year, week := now.UTC().ISOWeek()
		return []domain.WeekAccuracy{{Year: year, Week: week, Accuracy: 0}}
	}

	type bucket struct {
		sum   float64
		count int
	}
	type weekKey struct {
		year, week int
	}

	buckets := make(map[weekKey]*bucket)
	for _, s := range samples {
		year, week := s.ReviewDate.UTC().ISOWeek()
		k := weekKey{year, week}
		b := buckets[k]
		if b == nil {
			b = &bucket{}
			buckets[k] = b
		}
		b.sum += s.PerformanceScore
		b.count++
	}

	out := make([]domain.WeekAccuracy, 0, len(buckets))
	for k, b := range buckets {
		out = append(out, domain.WeekAccuracy{
			Year:     k.year,
			Week:     k.week,
			Accuracy: int(math.Round(100 * b.sum / float64(b.count))),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Week < out[j].Week
	})

	if len(out) > weeklyBucketCap {
		out = out[len(out)-weeklyBucketCap:]
	}

	return out
}

// FoldMasteryRatio counts mastered and unmastered flags. Zero questions
// yields {0, 0}, never an omitted result.
func FoldMasteryRatio(mastered []bool) domain.MasteryRatio {
	var r domain.MasteryRatio
	for _, m := range mastered {
		if m {
			r.Mastered++
		} else {
			r.Unmastered++
		}
	}
	return r
}
