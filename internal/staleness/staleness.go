// Package staleness decides whether cached data is old enough to refetch.
package staleness

import "time"

// Policy reports whether a value captured at last must be refreshed at now.
type Policy func(last, now time.Time) bool

// Interval returns a policy that is stale once more than d has elapsed
// since capture. No wall-clock alignment.
func Interval(d time.Duration) Policy {
	return func(last, now time.Time) bool {
		return now.Sub(last) > d
	}
}

// safetyWindow forces an hourly refresh even when boundary math says the
// data is fresh (clock skew, suspend/resume across a missed boundary).
const safetyWindow = 65 * time.Minute

// HourlyBoundary returns a policy that refreshes once per hour, at minute 1
// past the hour, giving upstream providers a moment after the top of the
// hour to publish. The applicable boundary is the most recent XX:01 mark;
// data captured before it is stale.
func HourlyBoundary() Policy {
	return func(last, now time.Time) bool {
		if now.Sub(last) > safetyWindow {
			return true
		}
		threshold := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 1, 0, 0, now.Location())
		if now.Before(threshold) {
			// Still before XX:01, so the previous hour's mark applies.
			threshold = threshold.Add(-time.Hour)
		}
		return last.Before(threshold)
	}
}

// CalendarDay returns a policy that refreshes when the calendar day
// changes. It compares day-of-month only: a value captured on the 5th and
// checked on the 5th of the following month reads as fresh. Known
// limitation, kept as-is.
func CalendarDay() Policy {
	return func(last, now time.Time) bool {
		return last.Day() != now.Day()
	}
}
