// Package notify implements the rules-based notification layer: evaluating
// declarative rules against task and timer events, and rendering message
// templates into presentable notifications.
package notify

import (
	"sort"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

// Event is a candidate for notification: either a task or a timer session.
type Event struct {
	Type    models.EventType
	Task    *models.Task
	Session *models.TimerSession
}

// TaskEvent wraps a task for rule evaluation.
func TaskEvent(t *models.Task) Event {
	return Event{Type: models.EventTask, Task: t}
}

// TimerEvent wraps a timer session for rule evaluation.
func TimerEvent(s *models.TimerSession) Event {
	return Event{Type: models.EventTimer, Session: s}
}

// Decision is the outcome of rule evaluation. Template, Sound, and Message
// are overrides from the winning rule and are empty when not overridden.
type Decision struct {
	ShouldNotify bool
	Template     string
	Sound        string
	Message      string
}

// Evaluate runs the rule set against an event at a single instant. Rules are
// evaluated in descending priority order (stable for ties); the first rule
// whose present condition clauses all hold wins and evaluation stops. A
// winning mute action suppresses the notification outright. With no matching
// rule the default is to notify: rules opt out, not in.
//
// Evaluate is pure. Both the clock string and the weekday derive from the
// single now argument so clauses cannot disagree about the current instant.
func Evaluate(rules []models.NotificationRule, ev Event, now time.Time) Decision {
	sorted := make([]models.NotificationRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	clock := utils.FormatClock(now)
	today := models.DayOfWeekFor(now.Weekday())

	for _, rule := range sorted {
		if !rule.Enabled {
			continue
		}
		if rule.Conditions.Type != ev.Type {
			continue
		}
		if !conditionsMet(rule.Conditions, ev, now, clock, today) {
			continue
		}

		if rule.Actions.Mute {
			return Decision{ShouldNotify: false}
		}

		return Decision{
			ShouldNotify: true,
			Template:     rule.Actions.OverrideTemplate,
			Sound:        rule.Actions.OverrideSound,
			Message:      rule.Actions.CustomMessage,
		}
	}

	return Decision{ShouldNotify: true}
}

func conditionsMet(c models.RuleConditions, ev Event, now time.Time, clock string, today models.DayOfWeek) bool {
	if len(c.Categories) > 0 {
		// Only tasks carry a category; an event without one fails the clause
		if ev.Task == nil || ev.Task.Category == "" {
			return false
		}
		if !containsString(c.Categories, ev.Task.Category) {
			return false
		}
	}

	if len(c.Priorities) > 0 {
		if ev.Task == nil {
			return false
		}
		found := false
		for _, p := range c.Priorities {
			if p == ev.Task.Priority {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.TimeRange != nil && !c.TimeRange.Contains(clock) {
		return false
	}

	if len(c.Days) > 0 {
		found := false
		for _, d := range c.Days {
			if d == today {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if ev.Type == models.EventTimer && ev.Session != nil {
		if c.MinDuration != nil && ev.Session.Duration < *c.MinDuration {
			return false
		}
		if c.MaxDuration != nil && ev.Session.Duration > *c.MaxDuration {
			return false
		}
	}

	if ev.Type == models.EventTask && ev.Task != nil {
		minutes := utils.MinutesUntil(now, ev.Task.Datetime)
		if c.MinTimeUntilDeadline != nil && minutes < *c.MinTimeUntilDeadline {
			return false
		}
		if c.MaxTimeUntilDeadline != nil && minutes > *c.MaxTimeUntilDeadline {
			return false
		}
	}

	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
