package notify

import (
	"strings"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

// Vars are the named placeholder values substituted into a template message.
type Vars map[string]string

// ActionDescriptor is a presentable notification action, ready for the
// display collaborator.
type ActionDescriptor struct {
	Action string
	Label  string
	Data   map[string]any
}

// Rendered is a notification ready for display.
type Rendered struct {
	Title   string
	Body    string
	Actions []ActionDescriptor
}

// Render substitutes {placeholder} tokens in the template message with the
// given variables and maps the template's actions to descriptors. Unknown
// placeholders are left in place. The first line of the rendered message
// becomes the title; the full message is the body.
func Render(tpl models.NotificationTemplate, vars Vars) Rendered {
	message := tpl.Message
	for key, value := range vars {
		message = strings.ReplaceAll(message, "{"+key+"}", value)
	}

	title := message
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		title = message[:idx]
	}

	actions := make([]ActionDescriptor, 0, len(tpl.Actions))
	for _, a := range tpl.Actions {
		actions = append(actions, ActionDescriptor{
			Action: string(a.Action),
			Label:  a.Label,
			Data:   a.Data,
		})
	}

	return Rendered{
		Title:   title,
		Body:    message,
		Actions: actions,
	}
}

// ScheduleAllows reports whether a notification channel's schedule gate
// permits scheduling for the given task at now. A nil or disabled schedule
// always allows.
func ScheduleAllows(schedule *models.NotificationSchedule, task *models.Task, now time.Time) bool {
	if schedule == nil || !schedule.Enabled {
		return true
	}

	if len(schedule.Days) > 0 {
		today := models.DayOfWeekFor(now.Weekday())
		found := false
		for _, d := range schedule.Days {
			if d == today {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(schedule.Categories) > 0 && task != nil && task.Category != "" {
		if !containsString(schedule.Categories, task.Category) {
			return false
		}
	}

	if len(schedule.Priorities) > 0 && task != nil {
		found := false
		for _, p := range schedule.Priorities {
			if p == task.Priority {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if schedule.TimeRange != nil {
		if !schedule.TimeRange.Contains(utils.FormatClock(now)) {
			return false
		}
	}

	return true
}
