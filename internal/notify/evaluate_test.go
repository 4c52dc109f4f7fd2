package notify

import (
	"testing"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func intPtr(v int) *int { return &v }

// Wednesday, 12:00 local
var noon = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func taskDueIn(minutes int) *models.Task {
	return &models.Task{
		ID:       "t1",
		Title:    "write report",
		Datetime: noon.Add(time.Duration(minutes) * time.Minute),
		Category: "work",
		Priority: models.PriorityHigh,
	}
}

func workSession(durationSec int) *models.TimerSession {
	return &models.TimerSession{
		ID:        "s1",
		Type:      models.SessionWork,
		StartTime: noon,
		Duration:  durationSec,
	}
}

func TestEvaluateDefaults(t *testing.T) {
	t.Run("no rules notifies", func(t *testing.T) {
		d := Evaluate(nil, TaskEvent(taskDueIn(60)), noon)
		if !d.ShouldNotify {
			t.Error("expected default allow with no rules")
		}
		if d.Template != "" || d.Sound != "" || d.Message != "" {
			t.Errorf("expected no overrides, got %+v", d)
		}
	})

	t.Run("no matching rule notifies", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r1", Name: "timer only", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTimer},
			Actions:    models.RuleActions{Mute: true},
		}}
		d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon)
		if !d.ShouldNotify {
			t.Error("rule for a different event type must not match")
		}
	})

	t.Run("disabled rule is skipped", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r1", Name: "muter", Enabled: false,
			Conditions: models.RuleConditions{Type: models.EventTask},
			Actions:    models.RuleActions{Mute: true},
		}}
		d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon)
		if !d.ShouldNotify {
			t.Error("disabled rule must not mute")
		}
	})
}

func TestEvaluateOrdering(t *testing.T) {
	t.Run("higher priority wins", func(t *testing.T) {
		rules := []models.NotificationRule{
			{
				ID: "low", Name: "low", Enabled: true, Priority: 1,
				Conditions: models.RuleConditions{Type: models.EventTask},
				Actions:    models.RuleActions{OverrideSound: "quiet"},
			},
			{
				ID: "high", Name: "high", Enabled: true, Priority: 10,
				Conditions: models.RuleConditions{Type: models.EventTask},
				Actions:    models.RuleActions{OverrideSound: "loud"},
			},
		}
		d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon)
		if d.Sound != "loud" {
			t.Errorf("expected high-priority rule to win, got sound %q", d.Sound)
		}
	})

	t.Run("ties keep declaration order", func(t *testing.T) {
		rules := []models.NotificationRule{
			{
				ID: "first", Name: "first", Enabled: true, Priority: 5,
				Conditions: models.RuleConditions{Type: models.EventTask},
				Actions:    models.RuleActions{OverrideSound: "first"},
			},
			{
				ID: "second", Name: "second", Enabled: true, Priority: 5,
				Conditions: models.RuleConditions{Type: models.EventTask},
				Actions:    models.RuleActions{OverrideSound: "second"},
			},
		}
		d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon)
		if d.Sound != "first" {
			t.Errorf("expected stable order for equal priorities, got %q", d.Sound)
		}
	})

	t.Run("first match stops evaluation", func(t *testing.T) {
		rules := []models.NotificationRule{
			{
				ID: "mute", Name: "mute", Enabled: true, Priority: 10,
				Conditions: models.RuleConditions{Type: models.EventTask},
				Actions:    models.RuleActions{Mute: true},
			},
			{
				ID: "override", Name: "override", Enabled: true, Priority: 1,
				Conditions: models.RuleConditions{Type: models.EventTask},
				Actions:    models.RuleActions{OverrideSound: "loud"},
			},
		}
		d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon)
		if d.ShouldNotify {
			t.Error("winning mute must suppress the notification")
		}
		if d.Sound != "" {
			t.Errorf("lower-priority rule must not contribute, got sound %q", d.Sound)
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		rules := []models.NotificationRule{
			{ID: "a", Name: "a", Enabled: true, Priority: 1, Conditions: models.RuleConditions{Type: models.EventTask}},
			{ID: "b", Name: "b", Enabled: true, Priority: 9, Conditions: models.RuleConditions{Type: models.EventTask}},
		}
		Evaluate(rules, TaskEvent(taskDueIn(60)), noon)
		if rules[0].ID != "a" || rules[1].ID != "b" {
			t.Error("Evaluate must not mutate the caller's rule slice")
		}
	})
}

func TestEvaluateConditions(t *testing.T) {
	t.Run("category match", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r", Name: "work muter", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask, Categories: []string{"work"}},
			Actions:    models.RuleActions{Mute: true},
		}}
		if d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon); d.ShouldNotify {
			t.Error("expected category clause to match")
		}

		other := taskDueIn(60)
		other.Category = "home"
		if d := Evaluate(rules, TaskEvent(other), noon); !d.ShouldNotify {
			t.Error("expected mismatched category to fall through")
		}
	})

	t.Run("category clause fails without a category", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r", Name: "work muter", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask, Categories: []string{"work"}},
			Actions:    models.RuleActions{Mute: true},
		}}
		uncategorized := taskDueIn(60)
		uncategorized.Category = ""
		if d := Evaluate(rules, TaskEvent(uncategorized), noon); !d.ShouldNotify {
			t.Error("task without a category must not satisfy a category clause")
		}
	})

	t.Run("priority clause fails for timer events", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r", Name: "high only", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTimer, Priorities: []models.Priority{models.PriorityHigh}},
			Actions:    models.RuleActions{Mute: true},
		}}
		if d := Evaluate(rules, TimerEvent(workSession(1500)), noon); !d.ShouldNotify {
			t.Error("timer events carry no task priority and must fail the clause")
		}
	})

	t.Run("day of week", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r", Name: "weekend muter", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask, Days: []models.DayOfWeek{models.DaySat, models.DaySun}},
			Actions:    models.RuleActions{Mute: true},
		}}
		// noon is a Wednesday
		if d := Evaluate(rules, TaskEvent(taskDueIn(60)), noon); !d.ShouldNotify {
			t.Error("weekday event must not match a weekend rule")
		}
		saturday := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
		if d := Evaluate(rules, TaskEvent(taskDueIn(60)), saturday); d.ShouldNotify {
			t.Error("saturday event must match the weekend rule")
		}
	})

	t.Run("duration bounds", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r", Name: "long sessions", Enabled: true,
			Conditions: models.RuleConditions{
				Type:        models.EventTimer,
				MinDuration: intPtr(1800),
				MaxDuration: intPtr(3600),
			},
			Actions: models.RuleActions{OverrideSound: "gong"},
		}}
		if d := Evaluate(rules, TimerEvent(workSession(2400)), noon); d.Sound != "gong" {
			t.Errorf("session inside the bounds should match, got %q", d.Sound)
		}
		if d := Evaluate(rules, TimerEvent(workSession(600)), noon); d.Sound != "" {
			t.Error("session below min duration must not match")
		}
		if d := Evaluate(rules, TimerEvent(workSession(7200)), noon); d.Sound != "" {
			t.Error("session above max duration must not match")
		}
	})

	t.Run("deadline bounds", func(t *testing.T) {
		rules := []models.NotificationRule{{
			ID: "r", Name: "imminent", Enabled: true,
			Conditions: models.RuleConditions{
				Type:                 models.EventTask,
				MaxTimeUntilDeadline: intPtr(30),
			},
			Actions: models.RuleActions{OverrideTemplate: "task-deadline"},
		}}
		if d := Evaluate(rules, TaskEvent(taskDueIn(15)), noon); d.Template != "task-deadline" {
			t.Errorf("task due in 15m should match max 30m, got %q", d.Template)
		}
		if d := Evaluate(rules, TaskEvent(taskDueIn(120)), noon); d.Template != "" {
			t.Error("task due in 2h must not match max 30m")
		}
	})
}

func TestEvaluateTimeRange(t *testing.T) {
	rules := []models.NotificationRule{{
		ID: "r", Name: "night muter", Enabled: true,
		Conditions: models.RuleConditions{
			Type:      models.EventTask,
			TimeRange: &models.TimeRange{Start: "22:00", End: "06:00"},
		},
		Actions: models.RuleActions{Mute: true},
	}}

	tests := []struct {
		name   string
		clock  time.Time
		wantIn bool
	}{
		{"late evening inside", time.Date(2024, 3, 6, 23, 30, 0, 0, time.UTC), true},
		{"early morning inside", time.Date(2024, 3, 7, 5, 0, 0, 0, time.UTC), true},
		{"start boundary inside", time.Date(2024, 3, 6, 22, 0, 0, 0, time.UTC), true},
		{"end boundary outside", time.Date(2024, 3, 7, 6, 0, 0, 0, time.UTC), false},
		{"midday outside", time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(rules, TaskEvent(taskDueIn(60)), tt.clock)
			muted := !d.ShouldNotify
			if muted != tt.wantIn {
				t.Errorf("at %s muted = %v, want %v", tt.clock.Format("15:04"), muted, tt.wantIn)
			}
		})
	}
}
