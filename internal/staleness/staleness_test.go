package staleness

import (
	"testing"
	"time"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 12, hour, min, sec, 0, time.UTC)
}

func TestInterval(t *testing.T) {
	p := Interval(10 * time.Minute)
	base := at(12, 0, 0)

	tests := []struct {
		elapsed time.Duration
		want    bool
	}{
		{0, false},
		{5 * time.Minute, false},
		{10 * time.Minute, false}, // exactly at the threshold is still fresh
		{10*time.Minute + time.Second, true},
		{time.Hour, true},
	}
	for _, tt := range tests {
		if got := p(base, base.Add(tt.elapsed)); got != tt.want {
			t.Errorf("Interval(10m) after %v = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestHourlyBoundary(t *testing.T) {
	p := HourlyBoundary()

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want bool
	}{
		{"captured after previous boundary", at(9, 1, 5), at(10, 0, 30), false},
		{"captured before previous boundary", at(8, 59, 59), at(10, 0, 30), true},
		{"captured before this hour's boundary", at(10, 0, 30), at(10, 5, 0), true},
		{"captured after this hour's boundary", at(10, 1, 30), at(10, 45, 0), false},
		{"just refreshed", at(10, 44, 0), at(10, 45, 0), false},
	}
	for _, tt := range tests {
		if got := p(tt.last, tt.now); got != tt.want {
			t.Errorf("%s: HourlyBoundary(%v, %v) = %v, want %v", tt.name, tt.last, tt.now, got, tt.want)
		}
	}
}

func TestHourlyBoundarySafetyWindow(t *testing.T) {
	p := HourlyBoundary()

	// 70 minutes elapsed is stale regardless of boundary alignment.
	now := at(10, 11, 0)
	last := now.Add(-70 * time.Minute)
	if !p(last, now) {
		t.Error("expected stale after 70 minutes")
	}
}

func TestCalendarDay(t *testing.T) {
	p := CalendarDay()

	sameDay := time.Date(2025, time.March, 12, 23, 59, 0, 0, time.UTC)
	if p(at(0, 1, 0), sameDay) {
		t.Error("same calendar day should be fresh")
	}

	nextDay := time.Date(2025, time.March, 13, 0, 1, 0, 0, time.UTC)
	if !p(at(23, 59, 0), nextDay) {
		t.Error("next calendar day should be stale")
	}
}

func TestCalendarDayMonthCollision(t *testing.T) {
	// Day-of-month comparison only: one month apart on the same day of the
	// month reads as fresh. Documented behavior, asserted here so a change
	// is deliberate.
	p := CalendarDay()
	last := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.April, 5, 8, 0, 0, 0, time.UTC)
	if p(last, now) {
		t.Error("same day-of-month across months currently reads as fresh")
	}
}
