package models

import (
	"fmt"
	"time"
)

// Priority is the urgency band of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priority bands.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// RecurrenceType identifies the unit a recurring task steps by.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// RecurringPattern describes how a recurring task repeats. Interval is the
// number of units (days, weeks, or months) between occurrences and must be
// at least 1. EndDate, when set, bounds the expansion: occurrences must fall
// strictly before it.
type RecurringPattern struct {
	Type     RecurrenceType `json:"type"`
	Interval int            `json:"interval"`
	EndDate  *time.Time     `json:"end_date,omitempty"`
}

// Task is a single reminder item with an optional recurrence.
type Task struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Datetime    time.Time         `json:"datetime"`
	Category    string            `json:"category,omitempty"` // Category.ID reference, not owned
	Priority    Priority          `json:"priority"`
	IsCompleted bool              `json:"is_completed"`
	IsRecurring bool              `json:"is_recurring,omitempty"`
	Recurring   *RecurringPattern `json:"recurring_pattern,omitempty"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}

	if t.Datetime.IsZero() {
		return fmt.Errorf("task datetime cannot be empty")
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("invalid priority %q (expected low, medium, or high)", t.Priority)
	}

	// A recurring task must carry its pattern
	if t.IsRecurring {
		if t.Recurring == nil {
			return fmt.Errorf("recurring task must have a recurring pattern")
		}
		switch t.Recurring.Type {
		case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		default:
			return fmt.Errorf("invalid recurrence type %q (expected daily, weekly, or monthly)", t.Recurring.Type)
		}
		if t.Recurring.Interval < 1 {
			return fmt.Errorf("recurrence interval must be at least 1")
		}
	}

	return nil
}

// IsOverdue reports whether the task's deadline has passed without completion.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.IsCompleted && t.Datetime.Before(now)
}
