// Package stats aggregates timer sessions and tasks into the summary shapes
// the stats command and views read.
package stats

import (
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

// DayCount is one day's session activity.
type DayCount struct {
	Date      time.Time
	Count     int
	TotalTime int // seconds
}

// TimerStats summarises timer sessions.
type TimerStats struct {
	TotalSessions      int
	TotalTime          int // seconds, completed sessions only
	CompletedSessions  int
	AverageSessionTime float64 // seconds
	CurrentWeek        []DayCount
}

// GroupCount is a per-category or per-priority tally.
type GroupCount struct {
	Key       string
	Count     int
	Completed int
}

// TaskStats summarises the task list.
type TaskStats struct {
	TotalTasks     int
	CompletedTasks int
	OverdueTasks   int
	ByCategory     []GroupCount
	ByPriority     []GroupCount
}

// CalculateTimerStats tallies sessions, with a per-day breakdown for the
// week containing now (weeks start on Sunday).
func CalculateTimerStats(sessions []models.TimerSession, now time.Time) TimerStats {
	weekStart := startOfWeek(now)

	week := make([]DayCount, 7)
	for i := range week {
		week[i] = DayCount{Date: weekStart.AddDate(0, 0, i)}
	}

	var totalTime, completed int
	for _, session := range sessions {
		if !session.Completed {
			continue
		}
		completed++
		totalTime += session.Duration

		day := int(session.StartTime.Sub(weekStart).Hours() / 24)
		if day >= 0 && day < 7 {
			week[day].Count++
			week[day].TotalTime += session.Duration
		}
	}

	var average float64
	if completed > 0 {
		average = float64(totalTime) / float64(completed)
	}

	return TimerStats{
		TotalSessions:      len(sessions),
		TotalTime:          totalTime,
		CompletedSessions:  completed,
		AverageSessionTime: average,
		CurrentWeek:        week,
	}
}

// CalculateTaskStats tallies tasks overall and grouped by category id and
// priority. Tasks without a category land in the "uncategorized" group.
func CalculateTaskStats(tasks []models.Task, now time.Time) TaskStats {
	s := TaskStats{TotalTasks: len(tasks)}

	byCategory := map[string]*GroupCount{}
	byPriority := map[string]*GroupCount{}
	var categoryOrder, priorityOrder []string

	for _, task := range tasks {
		if task.IsCompleted {
			s.CompletedTasks++
		}
		if task.IsOverdue(now) {
			s.OverdueTasks++
		}

		category := task.Category
		if category == "" {
			category = "uncategorized"
		}
		if _, ok := byCategory[category]; !ok {
			byCategory[category] = &GroupCount{Key: category}
			categoryOrder = append(categoryOrder, category)
		}
		byCategory[category].Count++
		if task.IsCompleted {
			byCategory[category].Completed++
		}

		priority := string(task.Priority)
		if priority == "" {
			priority = string(models.PriorityMedium)
		}
		if _, ok := byPriority[priority]; !ok {
			byPriority[priority] = &GroupCount{Key: priority}
			priorityOrder = append(priorityOrder, priority)
		}
		byPriority[priority].Count++
		if task.IsCompleted {
			byPriority[priority].Completed++
		}
	}

	for _, key := range categoryOrder {
		s.ByCategory = append(s.ByCategory, *byCategory[key])
	}
	for _, key := range priorityOrder {
		s.ByPriority = append(s.ByPriority, *byPriority[key])
	}

	return s
}

func startOfWeek(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}
