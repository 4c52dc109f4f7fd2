package utils

import (
	"testing"
	"time"
)

func TestValidateTimeFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"09:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"noon", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateTimeFormat(tt.input); got != tt.want {
				t.Errorf("ValidateTimeFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"one hour ahead", now.Add(time.Hour), 60},
		{"same instant", now, 0},
		{"in the past", now.Add(-30 * time.Minute), -30},
		{"partial minute truncates", now.Add(90 * time.Second), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesUntil(now, tt.t); got != tt.want {
				t.Errorf("MinutesUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{3903, "1h 5m 3s"},
		{303, "5m 3s"},
		{45, "45s"},
		{0, "0s"},
		{-10, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{65, "01:05"},
		{0, "00:00"},
		{3661, "1:01:01"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCountdown(tt.seconds); got != tt.want {
				t.Errorf("FormatCountdown(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"future minutes", now.Add(3 * time.Minute), "in 3m"},
		{"past hours", now.Add(-2 * time.Hour), "2h ago"},
		{"future days", now.Add(49 * time.Hour), "in 2d"},
		{"sub second", now.Add(200 * time.Millisecond), "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(now, tt.t); got != tt.want {
				t.Errorf("RelativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}
