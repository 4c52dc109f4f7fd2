package utils

import (
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/constants"
)

// FormatClock formats an instant as an HH:MM clock string.
func FormatClock(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// FormatDateTime formats an instant as YYYY/MM/DD HH:MM, used when a
// notification refers to an occurrence on another day.
func FormatDateTime(t time.Time) string {
	return t.Format(constants.DateTimeFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// MinutesUntil returns whole minutes from now until t, truncated toward zero.
// Negative when t is in the past.
func MinutesUntil(now, t time.Time) int {
	return int(t.Sub(now) / time.Minute)
}

// FormatDuration renders a second count as a compact h/m/s string, omitting
// leading zero units ("1h 5m 3s", "5m 3s", "45s").
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remaining := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, remaining)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, remaining)
	}
	return fmt.Sprintf("%ds", remaining)
}

// FormatCountdown renders remaining seconds as MM:SS, or H:MM:SS once an
// hour or more remains.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remaining := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, remaining)
	}
	return fmt.Sprintf("%02d:%02d", minutes, remaining)
}

// RelativeTime describes t relative to now ("in 3m", "2h ago", "just now").
func RelativeTime(now, t time.Time) string {
	diff := t.Sub(now)

	future := diff > 0
	if !future {
		diff = -diff
	}

	var unit string
	switch {
	case diff >= 24*time.Hour:
		unit = fmt.Sprintf("%dd", int(diff/(24*time.Hour)))
	case diff >= time.Hour:
		unit = fmt.Sprintf("%dh", int(diff/time.Hour))
	case diff >= time.Minute:
		unit = fmt.Sprintf("%dm", int(diff/time.Minute))
	case diff >= time.Second:
		unit = fmt.Sprintf("%ds", int(diff/time.Second))
	default:
		return "just now"
	}

	if future {
		return "in " + unit
	}
	return unit + " ago"
}
