package sched

import (
	"testing"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

var planNow = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func testSettings() models.NotificationSettings {
	return models.NotificationSettings{
		Sound:  "default",
		Volume: 70,
		TimerNotifications: models.TimerNotificationSettings{
			BeforeEnd:        true,
			BeforeEndMinutes: 5,
			OnComplete:       true,
		},
		TaskNotifications: models.TaskNotificationSettings{
			BeforeDeadline:        true,
			BeforeDeadlineMinutes: 30,
			OnDeadline:            true,
			RecurringTasks:        true,
		},
		Templates: models.DefaultTemplates(),
	}
}

func deadlineTask(minutes int) *models.Task {
	return &models.Task{
		ID:       "t1",
		Title:    "write report",
		Datetime: planNow.Add(time.Duration(minutes) * time.Minute),
		Priority: models.PriorityMedium,
	}
}

func TestPlanTaskEntries(t *testing.T) {
	t.Run("before and on deadline", func(t *testing.T) {
		plan := PlanTask(deadlineTask(45), testSettings(), planNow)
		if len(plan.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(plan.Entries))
		}
		if plan.Entries[0].Delay != 15*time.Minute {
			t.Errorf("before-deadline delay = %v, want 15m", plan.Entries[0].Delay)
		}
		if plan.Entries[1].Delay != 45*time.Minute {
			t.Errorf("on-deadline delay = %v, want 45m", plan.Entries[1].Delay)
		}
	})

	t.Run("inside the before window plans only the deadline", func(t *testing.T) {
		plan := PlanTask(deadlineTask(10), testSettings(), planNow)
		if len(plan.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(plan.Entries))
		}
		if plan.Entries[0].Delay != 10*time.Minute {
			t.Errorf("delay = %v, want 10m", plan.Entries[0].Delay)
		}
	})

	t.Run("past deadline plans nothing", func(t *testing.T) {
		plan := PlanTask(deadlineTask(-5), testSettings(), planNow)
		if len(plan.Entries) != 0 {
			t.Errorf("expected no entries for a past deadline, got %d", len(plan.Entries))
		}
	})

	t.Run("disabled channels plan nothing", func(t *testing.T) {
		settings := testSettings()
		settings.TaskNotifications.BeforeDeadline = false
		settings.TaskNotifications.OnDeadline = false
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if len(plan.Entries) != 0 {
			t.Errorf("expected no entries, got %d", len(plan.Entries))
		}
	})
}

func TestPlanTaskGates(t *testing.T) {
	t.Run("mute rule empties the plan", func(t *testing.T) {
		settings := testSettings()
		settings.Rules = []models.NotificationRule{{
			ID: "r", Name: "mute all tasks", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask},
			Actions:    models.RuleActions{Mute: true},
		}}
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if len(plan.Entries) != 0 {
			t.Errorf("muted task must plan nothing, got %d entries", len(plan.Entries))
		}
	})

	t.Run("schedule gate empties the plan", func(t *testing.T) {
		settings := testSettings()
		settings.TaskNotifications.Schedule = &models.NotificationSchedule{
			Enabled: true,
			Days:    []models.DayOfWeek{models.DaySat},
		}
		// planNow is a Wednesday
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if len(plan.Entries) != 0 {
			t.Errorf("gated task must plan nothing, got %d entries", len(plan.Entries))
		}
	})

	t.Run("missing template empties the plan", func(t *testing.T) {
		settings := testSettings()
		settings.TaskNotifications.Template = "no-such-template"
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if len(plan.Entries) != 0 {
			t.Errorf("unknown template must skip the task, got %d entries", len(plan.Entries))
		}
	})
}

func TestPlanTaskResolution(t *testing.T) {
	t.Run("default template", func(t *testing.T) {
		plan := PlanTask(deadlineTask(45), testSettings(), planNow)
		if plan.Template.ID != "task-default" {
			t.Errorf("template = %q, want task-default", plan.Template.ID)
		}
	})

	t.Run("channel template beats default", func(t *testing.T) {
		settings := testSettings()
		settings.TaskNotifications.Template = "task-recurring"
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if plan.Template.ID != "task-recurring" {
			t.Errorf("template = %q, want task-recurring", plan.Template.ID)
		}
	})

	t.Run("rule override beats channel template", func(t *testing.T) {
		settings := testSettings()
		settings.TaskNotifications.Template = "task-recurring"
		settings.Rules = []models.NotificationRule{{
			ID: "r", Name: "deadline style", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask},
			Actions:    models.RuleActions{OverrideTemplate: "task-deadline"},
		}}
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if plan.Template.ID != "task-deadline" {
			t.Errorf("template = %q, want task-deadline", plan.Template.ID)
		}
	})

	t.Run("sound chain", func(t *testing.T) {
		// task-default carries its own sound, which beats the global one
		plan := PlanTask(deadlineTask(45), testSettings(), planNow)
		if plan.Sound != "default" {
			t.Errorf("sound = %q, want template sound", plan.Sound)
		}

		settings := testSettings()
		settings.Rules = []models.NotificationRule{{
			ID: "r", Name: "loud", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask},
			Actions:    models.RuleActions{OverrideSound: "klaxon"},
		}}
		plan = PlanTask(deadlineTask(45), settings, planNow)
		if plan.Sound != "klaxon" {
			t.Errorf("sound = %q, want rule override", plan.Sound)
		}
	})

	t.Run("custom message replaces the template message", func(t *testing.T) {
		settings := testSettings()
		settings.Rules = []models.NotificationRule{{
			ID: "r", Name: "custom", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTask},
			Actions:    models.RuleActions{CustomMessage: "look alive"},
		}}
		plan := PlanTask(deadlineTask(45), settings, planNow)
		if plan.Template.Message != "look alive" {
			t.Errorf("message = %q, want custom override", plan.Template.Message)
		}
	})
}

func TestPlanTaskRecurring(t *testing.T) {
	end := time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC)
	task := &models.Task{
		ID:          "t1",
		Title:       "weekly review",
		Datetime:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Priority:    models.PriorityMedium,
		IsRecurring: true,
		Recurring: &models.RecurringPattern{
			Type:     models.RecurrenceWeekly,
			Interval: 1,
			EndDate:  &end,
		},
	}

	now := time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)
	plan := PlanTask(task, testSettings(), now)

	// Base occurrence Jan 1 plus expansions Jan 8 and Jan 15, each with a
	// before and an on entry. Jan 22 falls on the end date and is excluded.
	if len(plan.Entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(plan.Entries))
	}

	last := plan.Entries[len(plan.Entries)-1]
	wantLast := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC).Sub(now)
	if last.Delay != wantLast {
		t.Errorf("last delay = %v, want %v (Jan 15 occurrence)", last.Delay, wantLast)
	}
}

func TestPlanSession(t *testing.T) {
	preset := &models.TimerPreset{
		ID:                     "p1",
		Name:                   "deep work",
		Duration:               50 * 60,
		BreakDuration:          10 * 60,
		LongBreakDuration:      30 * 60,
		SessionsUntilLongBreak: 4,
	}
	session := &models.TimerSession{
		ID:        "s1",
		PresetID:  "p1",
		Type:      models.SessionWork,
		StartTime: planNow,
		Duration:  50 * 60,
	}

	t.Run("before end and on complete", func(t *testing.T) {
		plan := PlanSession(session, preset, testSettings(), planNow)
		if len(plan.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(plan.Entries))
		}
		if plan.Entries[0].Delay != 45*time.Minute {
			t.Errorf("before-end delay = %v, want 45m", plan.Entries[0].Delay)
		}
		if plan.Entries[1].Delay != 50*time.Minute {
			t.Errorf("on-complete delay = %v, want 50m", plan.Entries[1].Delay)
		}
		if plan.Template.ID != "timer-complete" {
			t.Errorf("template = %q, want timer-complete", plan.Template.ID)
		}
	})

	t.Run("vars carry the preset name", func(t *testing.T) {
		plan := PlanSession(session, preset, testSettings(), planNow)
		if plan.Entries[0].Vars["title"] != "deep work" {
			t.Errorf("title var = %q, want preset name", plan.Entries[0].Vars["title"])
		}
		if plan.Entries[0].Vars["duration"] != "50" {
			t.Errorf("duration var = %q, want 50", plan.Entries[0].Vars["duration"])
		}
	})

	t.Run("elapsed matches each entry's fire time", func(t *testing.T) {
		plan := PlanSession(session, preset, testSettings(), planNow)
		if plan.Entries[0].Vars["elapsed"] != "45" {
			t.Errorf("before-end elapsed = %q, want 45", plan.Entries[0].Vars["elapsed"])
		}
		if plan.Entries[1].Vars["elapsed"] != "50" {
			t.Errorf("on-complete elapsed = %q, want 50", plan.Entries[1].Vars["elapsed"])
		}
	})

	t.Run("break phase defaults to the break template", func(t *testing.T) {
		brk := &models.TimerSession{
			ID:        "s1",
			PresetID:  "p1",
			Type:      models.SessionBreak,
			StartTime: planNow,
			Duration:  10 * 60,
		}
		plan := PlanSession(brk, preset, testSettings(), planNow)
		if plan.Template.ID != "break-complete" {
			t.Errorf("template = %q, want break-complete", plan.Template.ID)
		}
		if len(plan.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(plan.Entries))
		}
		if plan.Entries[1].Delay != 10*time.Minute {
			t.Errorf("break on-complete delay = %v, want 10m", plan.Entries[1].Delay)
		}
	})

	t.Run("mute rule empties the plan", func(t *testing.T) {
		settings := testSettings()
		settings.Rules = []models.NotificationRule{{
			ID: "r", Name: "mute timers", Enabled: true,
			Conditions: models.RuleConditions{Type: models.EventTimer},
			Actions:    models.RuleActions{Mute: true},
		}}
		plan := PlanSession(session, preset, settings, planNow)
		if len(plan.Entries) != 0 {
			t.Errorf("muted session must plan nothing, got %d entries", len(plan.Entries))
		}
	})
}

func TestPlanSessionAfterResume(t *testing.T) {
	// Started 30 minutes ago with a 10-minute pause closed along the way,
	// so only 20 of the 50 phase minutes have actually run. The entries
	// must line up with the extended countdown, not the wall-clock start.
	preset := &models.TimerPreset{ID: "p1", Name: "deep work", Duration: 50 * 60}
	session := &models.TimerSession{
		ID:        "s1",
		PresetID:  "p1",
		Type:      models.SessionWork,
		StartTime: planNow.Add(-30 * time.Minute),
		Duration:  50 * 60,
		Interruptions: []models.Interruption{{
			StartTime: planNow.Add(-10 * time.Minute),
			EndTime:   planNow,
			Reason:    "coffee",
		}},
	}

	plan := PlanSession(session, preset, testSettings(), planNow)
	if len(plan.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(plan.Entries))
	}
	if plan.Entries[0].Delay != 25*time.Minute {
		t.Errorf("before-end delay = %v, want 25m", plan.Entries[0].Delay)
	}
	if plan.Entries[1].Delay != 30*time.Minute {
		t.Errorf("on-complete delay = %v, want 30m", plan.Entries[1].Delay)
	}
}

func TestHandleCancel(t *testing.T) {
	t.Run("nil handle is safe", func(t *testing.T) {
		var h *Handle
		h.Cancel()
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		h := &Handle{timer: time.AfterFunc(time.Hour, func() {})}
		h.Cancel()
		h.Cancel()
	})

	t.Run("batch cancel tolerates empty lists", func(t *testing.T) {
		s := New(nil, nil)
		s.Cancel(nil)
		s.CancelAll()
	})
}

func TestRescheduleTask(t *testing.T) {
	s := New(nil, nil)
	defer s.CancelAll()

	old := s.ScheduleTask(deadlineTask(45), testSettings(), planNow)
	if len(old) == 0 {
		t.Fatal("expected armed handles for a future deadline")
	}

	fresh := s.RescheduleTask(deadlineTask(90), testSettings(), old, planNow)
	if len(fresh) == 0 {
		t.Fatal("expected fresh handles after reschedule")
	}

	// Old batch stays cancellable after reschedule
	s.Cancel(old)
}
