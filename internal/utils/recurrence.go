package utils

import (
	"time"

	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/models"
)

// NextOccurrence advances one recurrence step from the previous occurrence.
// Monthly steps use calendar arithmetic with no end-of-month clamping, so a
// pattern anchored on the 31st drifts through short months.
func NextOccurrence(prev time.Time, pattern models.RecurringPattern) time.Time {
	switch pattern.Type {
	case models.RecurrenceDaily:
		return prev.AddDate(0, 0, pattern.Interval)
	case models.RecurrenceWeekly:
		return prev.AddDate(0, 0, 7*pattern.Interval)
	case models.RecurrenceMonthly:
		return prev.AddDate(0, pattern.Interval, 0)
	default:
		return prev
	}
}

// ExpandOccurrences generates the future occurrence instants of a recurring
// task, stepping from the task's own datetime. Expansion stops at the first
// occurrence that reaches the pattern's end date or falls beyond the horizon
// from now; it never skips an out-of-range occurrence and continues.
func ExpandOccurrences(start time.Time, pattern models.RecurringPattern, now time.Time) []time.Time {
	if pattern.Interval < 1 {
		return nil
	}

	horizon := now.AddDate(0, constants.RecurringHorizonMonths, 0)

	var occurrences []time.Time
	next := NextOccurrence(start, pattern)
	for {
		if pattern.EndDate != nil && !next.Before(*pattern.EndDate) {
			break
		}
		if !next.Before(horizon) {
			break
		}
		occurrences = append(occurrences, next)
		next = NextOccurrence(next, pattern)
	}
	return occurrences
}
