package cli

import (
	"fmt"
	"strings"

	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/sched"
	"github.com/flowdeck-app/flowdeck/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Scheduler *sched.Scheduler
	Debug     bool
}

// ParseDays parses a comma-separated list of weekday tokens (sun..sat,
// full names accepted).
func ParseDays(s string) ([]models.DayOfWeek, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	aliases := map[string]models.DayOfWeek{
		"sun": models.DaySun, "sunday": models.DaySun,
		"mon": models.DayMon, "monday": models.DayMon,
		"tue": models.DayTue, "tuesday": models.DayTue,
		"wed": models.DayWed, "wednesday": models.DayWed,
		"thu": models.DayThu, "thursday": models.DayThu,
		"fri": models.DayFri, "friday": models.DayFri,
		"sat": models.DaySat, "saturday": models.DaySat,
	}

	var days []models.DayOfWeek
	for _, part := range strings.Split(s, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		day, ok := aliases[token]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		days = append(days, day)
	}
	return days, nil
}

// ParsePriorities parses a comma-separated list of priority bands.
func ParsePriorities(s string) ([]models.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var priorities []models.Priority
	for _, part := range strings.Split(s, ",") {
		p := models.Priority(strings.ToLower(strings.TrimSpace(part)))
		if !p.IsValid() {
			return nil, fmt.Errorf("invalid priority %q (expected low, medium, or high)", part)
		}
		priorities = append(priorities, p)
	}
	return priorities, nil
}
