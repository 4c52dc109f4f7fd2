package stats

import (
	"testing"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

// Wednesday
var statsNow = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func session(start time.Time, duration int, completed bool) models.TimerSession {
	return models.TimerSession{
		ID:        "s-" + start.Format("0102-1504"),
		Type:      models.SessionWork,
		StartTime: start,
		Duration:  duration,
		Completed: completed,
	}
}

func TestCalculateTimerStats(t *testing.T) {
	sessions := []models.TimerSession{
		session(statsNow.Add(-2*time.Hour), 1500, true),             // Wednesday
		session(statsNow.AddDate(0, 0, -2), 3000, true),             // Monday
		session(statsNow.AddDate(0, 0, -1), 1500, false),            // abandoned
		session(statsNow.AddDate(0, 0, -10), 1500, true),            // prior week
	}

	s := CalculateTimerStats(sessions, statsNow)

	if s.TotalSessions != 4 {
		t.Errorf("TotalSessions = %d, want 4", s.TotalSessions)
	}
	if s.CompletedSessions != 3 {
		t.Errorf("CompletedSessions = %d, want 3", s.CompletedSessions)
	}
	if s.TotalTime != 6000 {
		t.Errorf("TotalTime = %d, want 6000", s.TotalTime)
	}
	if s.AverageSessionTime != 2000 {
		t.Errorf("AverageSessionTime = %v, want 2000", s.AverageSessionTime)
	}

	if len(s.CurrentWeek) != 7 {
		t.Fatalf("CurrentWeek has %d days, want 7", len(s.CurrentWeek))
	}
	// Sunday-start week: Monday is index 1, Wednesday index 3
	if s.CurrentWeek[1].Count != 1 || s.CurrentWeek[1].TotalTime != 3000 {
		t.Errorf("Monday = %+v, want 1 session / 3000s", s.CurrentWeek[1])
	}
	if s.CurrentWeek[3].Count != 1 || s.CurrentWeek[3].TotalTime != 1500 {
		t.Errorf("Wednesday = %+v, want 1 session / 1500s", s.CurrentWeek[3])
	}
	// The abandoned Tuesday session and the prior-week session don't count
	if s.CurrentWeek[2].Count != 0 {
		t.Errorf("Tuesday = %+v, want empty", s.CurrentWeek[2])
	}
}

func TestCalculateTimerStatsEmpty(t *testing.T) {
	s := CalculateTimerStats(nil, statsNow)
	if s.TotalSessions != 0 || s.AverageSessionTime != 0 {
		t.Errorf("empty input should zero everything, got %+v", s)
	}
}

func TestCalculateTaskStats(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "a", Datetime: statsNow.Add(time.Hour), Category: "work", Priority: models.PriorityHigh},
		{ID: "2", Title: "b", Datetime: statsNow.Add(-time.Hour), Category: "work", Priority: models.PriorityHigh},
		{ID: "3", Title: "c", Datetime: statsNow.Add(-time.Hour), Category: "work", Priority: models.PriorityLow, IsCompleted: true},
		{ID: "4", Title: "d", Datetime: statsNow.Add(time.Hour), Priority: models.PriorityMedium},
	}

	s := CalculateTaskStats(tasks, statsNow)

	if s.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", s.TotalTasks)
	}
	if s.CompletedTasks != 1 {
		t.Errorf("CompletedTasks = %d, want 1", s.CompletedTasks)
	}
	// Task 3 is past due but completed; only task 2 is overdue
	if s.OverdueTasks != 1 {
		t.Errorf("OverdueTasks = %d, want 1", s.OverdueTasks)
	}

	if len(s.ByCategory) != 2 {
		t.Fatalf("ByCategory has %d groups, want 2", len(s.ByCategory))
	}
	if s.ByCategory[0].Key != "work" || s.ByCategory[0].Count != 3 || s.ByCategory[0].Completed != 1 {
		t.Errorf("work group = %+v", s.ByCategory[0])
	}
	if s.ByCategory[1].Key != "uncategorized" || s.ByCategory[1].Count != 1 {
		t.Errorf("uncategorized group = %+v", s.ByCategory[1])
	}

	if len(s.ByPriority) != 3 {
		t.Fatalf("ByPriority has %d groups, want 3", len(s.ByPriority))
	}
	if s.ByPriority[0].Key != "high" || s.ByPriority[0].Count != 2 {
		t.Errorf("high group = %+v", s.ByPriority[0])
	}
}
