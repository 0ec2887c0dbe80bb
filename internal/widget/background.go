package widget

import (
	"time"
)

// BandForHour maps an hour of day onto one of the four fixed,
// non-overlapping background bands: dawn [5,8), day [8,17),
// dusk [17,21), night otherwise.
func BandForHour(hour int) TimeBand {
	switch {
	case hour >= 5 && hour < 8:
		return BandDawn
	case hour >= 8 && hour < 17:
		return BandDay
	case hour >= 17 && hour < 21:
		return BandDusk
	default:
		return BandNight
	}
}

// StatusCode maps each status onto a fixed small constant. The variant
// formula combines these arithmetically; it must never depend on a
// runtime string hash, which is not stable across platforms.
func StatusCode(s Status) int {
	switch s {
	case StatusIdle:
		return 0
	case StatusOnTrack:
		return 1
	case StatusBehind:
		return 2
	case StatusUrgent:
		return 3
	case StatusCelebrating:
		return 4
	}
	return 0
}

// Variant picks the background variant in {1,2,3}. The formula is the
// canonical one for every rendering surface: it varies across days,
// hours and statuses for visual freshness, and is reproducible for the
// same (date, hour, status) triple.
func Variant(now time.Time, status Status) uint {
	n := now.YearDay() + now.Hour()*7 + StatusCode(status)
	return uint(n%3) + 1
}
