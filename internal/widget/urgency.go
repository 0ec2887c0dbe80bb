package widget

import (
	"time"
)

// Weights for the daily-goal urgency formula. The three components are
// clamped individually before summing and the total is clamped to [0,1].
const (
	dailyProgressWeight = 0.5
	dailyTimeWeight     = 0.4
	dailyStreakWeight   = 0.1

	secondsPerDay = 86400
)

// Score computes the urgency of a goal at the given instant, in [0,1].
// A completed goal always scores 0.
func Score(g Goal, now time.Time) float64 {
	if g.IsCompleted(now) {
		return 0
	}
	if g.Kind == KindDaily {
		return dailyScore(g, now)
	}
	return longTermScore(g, now)
}

// dailyScore blends in-day progress (0.5), time until the next due
// instant (0.4) and streak lapse risk (0.1). Habits are forgiving of
// timing jitter but not of skipping, so progress carries most weight.
func dailyScore(g Goal, now time.Time) float64 {
	progress := (1 - g.progressFraction(now)) * dailyProgressWeight

	timeComponent := 0.0
	if due, ok := nextDue(g, now); ok {
		remaining := due.Sub(now).Seconds()
		timeRatio := clamp(remaining/secondsPerDay, 0, 1)
		timeComponent = (1 - timeRatio) * dailyTimeWeight
	}

	streakRisk := 0.0
	if g.CurrentStreak > 0 && streakLapsing(g, now) {
		streakRisk = dailyStreakWeight
	}

	return clamp(progress+timeComponent+streakRisk, 0, 1)
}

// longTermScore weights time pressure over progress deficit: deadlines
// are harder constraints than pace. Goals without a deadline are capped
// at 0.5 so they never dominate selection.
func longTermScore(g Goal, now time.Time) float64 {
	actual := g.progressFraction(now)

	if g.Deadline == nil {
		return clamp((1-actual)*0.5, 0, 0.5)
	}
	deadline := *g.Deadline
	if now.After(deadline) {
		return 1.0
	}

	totalDays := int(deadline.Sub(g.CreatedAt).Hours() / 24)
	if totalDays <= 0 {
		// Degenerate window counts as overdue
		return 1.0
	}
	daysRemaining := int(deadline.Sub(now).Hours() / 24)
	daysElapsed := totalDays - daysRemaining

	expected := float64(daysElapsed) / float64(totalDays)
	deficit := clamp(expected-actual, 0, 1)
	timePressure := 1 - clamp(float64(daysRemaining)/float64(totalDays), 0, 1)

	return clamp(timePressure*0.6+deficit*0.4, 0, 1)
}

// nextDue returns the next due instant for a daily goal. The goal's
// deadline carries the recurring due time-of-day; the due instant is
// its next occurrence at or after now, recurring every 24 hours. A
// daily goal without a deadline has no due instant.
func nextDue(g Goal, now time.Time) (time.Time, bool) {
	if g.Kind != KindDaily || g.Deadline == nil {
		return time.Time{}, false
	}
	anchor := *g.Deadline
	due := time.Date(now.Year(), now.Month(), now.Day(),
		anchor.Hour(), anchor.Minute(), anchor.Second(), 0, now.Location())
	if due.Before(now) {
		due = due.Add(24 * time.Hour)
	}
	return due, true
}

// streakLapsing reports whether an active streak is about to break:
// the last completion was neither today nor yesterday.
func streakLapsing(g Goal, now time.Time) bool {
	if g.LastCompletedAt == nil {
		return true
	}
	last := *g.LastCompletedAt
	if sameCalendarDay(now, last) {
		return false
	}
	yesterday := now.AddDate(0, 0, -1)
	return !sameCalendarDay(yesterday, last)
}
