package models

import (
	"fmt"
	"time"
)

// EventType discriminates what kind of event a rule applies to.
type EventType string

const (
	EventTimer EventType = "timer"
	EventTask  EventType = "task"
)

// DayOfWeek is a lowercase three-letter weekday token as used in rule
// conditions and notification schedules.
type DayOfWeek string

const (
	DaySun DayOfWeek = "sun"
	DayMon DayOfWeek = "mon"
	DayTue DayOfWeek = "tue"
	DayWed DayOfWeek = "wed"
	DayThu DayOfWeek = "thu"
	DayFri DayOfWeek = "fri"
	DaySat DayOfWeek = "sat"
)

var weekdayTokens = map[time.Weekday]DayOfWeek{
	time.Sunday:    DaySun,
	time.Monday:    DayMon,
	time.Tuesday:   DayTue,
	time.Wednesday: DayWed,
	time.Thursday:  DayThu,
	time.Friday:    DayFri,
	time.Saturday:  DaySat,
}

// DayOfWeekFor returns the token for a time.Weekday.
func DayOfWeekFor(wd time.Weekday) DayOfWeek {
	return weekdayTokens[wd]
}

// ParseDayOfWeek converts a token back to a time.Weekday.
func ParseDayOfWeek(d DayOfWeek) (time.Weekday, error) {
	for wd, tok := range weekdayTokens {
		if tok == d {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday token %q", d)
}

// TimeRange is a [Start, End) window in HH:MM clock strings. A range whose
// start is after its end wraps past midnight.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the HH:MM clock string falls inside the range.
// Lexicographic comparison is correct for zero-padded HH:MM values.
func (r TimeRange) Contains(clock string) bool {
	if r.Start > r.End {
		return clock >= r.Start || clock < r.End
	}
	return clock >= r.Start && clock < r.End
}

// RuleConditions are the clauses a candidate event must satisfy. Absent
// clauses are vacuously satisfied; every present clause must hold.
type RuleConditions struct {
	Type       EventType   `json:"type"`
	Categories []string    `json:"categories,omitempty"`
	Priorities []Priority  `json:"priorities,omitempty"`
	TimeRange  *TimeRange  `json:"time_range,omitempty"`
	Days       []DayOfWeek `json:"days,omitempty"`

	// Timer only: bounds on the session duration in seconds.
	MinDuration *int `json:"min_duration,omitempty"`
	MaxDuration *int `json:"max_duration,omitempty"`

	// Task only: bounds on minutes from now until the deadline.
	MinTimeUntilDeadline *int `json:"min_time_until_deadline,omitempty"`
	MaxTimeUntilDeadline *int `json:"max_time_until_deadline,omitempty"`
}

// RuleActions is what a matching rule does to the notification.
type RuleActions struct {
	Mute             bool   `json:"mute,omitempty"`
	OverrideSound    string `json:"override_sound,omitempty"`
	OverrideTemplate string `json:"override_template,omitempty"`
	CustomMessage    string `json:"custom_message,omitempty"`
}

// NotificationRule is one declarative rule in the notification layer.
// Priority orders evaluation (higher first) and is unrelated to Task.Priority.
type NotificationRule struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Enabled    bool           `json:"enabled"`
	Priority   int            `json:"priority"`
	Conditions RuleConditions `json:"conditions"`
	Actions    RuleActions    `json:"actions"`
}

func (r *NotificationRule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule name cannot be empty")
	}

	switch r.Conditions.Type {
	case EventTimer, EventTask:
	default:
		return fmt.Errorf("invalid rule event type %q (expected timer or task)", r.Conditions.Type)
	}

	for _, p := range r.Conditions.Priorities {
		if !p.IsValid() {
			return fmt.Errorf("invalid priority %q in rule conditions", p)
		}
	}

	for _, d := range r.Conditions.Days {
		if _, err := ParseDayOfWeek(d); err != nil {
			return err
		}
	}

	if tr := r.Conditions.TimeRange; tr != nil {
		if _, err := time.Parse("15:04", tr.Start); err != nil {
			return fmt.Errorf("invalid time range start (expected HH:MM): %w", err)
		}
		if _, err := time.Parse("15:04", tr.End); err != nil {
			return fmt.Errorf("invalid time range end (expected HH:MM): %w", err)
		}
	}

	return nil
}
