package noticesync

import (
	"context"
	"time"

	"ajou-backend/lib/timezone"
)

func daysFromMonday(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// nextMondayMorning is the weekend gate: Monday 09:00 local.
func nextMondayMorning(now time.Time) time.Time {
	monday := time.Date(
		now.Year(), now.Month(), now.Day(),
		9, 0, 0, 0, timezone.Location,
	)
	return monday.AddDate(0, 0, 7-daysFromMonday(now.Weekday()))
}

// nextMorning is the overnight gate: the next 09:30 local, same day if
// the clock has not reached it yet.
func nextMorning(now time.Time) time.Time {
	morning := time.Date(
		now.Year(), now.Month(), now.Day(),
		9, 30, 0, 0, timezone.Location,
	)
	if now.Hour() >= 19 {
		morning = morning.AddDate(0, 0, 1)
	}
	return morning
}

// NextWake decides whether a sync may run right now. When it may not,
// it returns the single next wake-up time; the loop re-checks after
// waking, so a Friday-evening rest lands on Saturday morning and only
// then routes through the weekend gate.
func NextWake(now time.Time) (wake time.Time, resting bool) {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return nextMondayMorning(now), true
	}
	if now.Hour() >= 19 || now.Hour() <= 8 {
		return nextMorning(now), true
	}
	return time.Time{}, false
}

// sleepUntil blocks until `wake` or context cancellation, reporting
// whether the full rest completed.
func sleepUntil(ctx context.Context, now, wake time.Time) bool {
	timer := time.NewTimer(wake.Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
