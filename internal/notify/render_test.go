package notify

import (
	"testing"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		vars      Vars
		wantTitle string
		wantBody  string
	}{
		{
			name:      "substitutes placeholders",
			message:   "{title} - due {time}",
			vars:      Vars{"title": "write report", "time": "14:30"},
			wantTitle: "write report - due 14:30",
			wantBody:  "write report - due 14:30",
		},
		{
			name:      "first line becomes the title",
			message:   "{title} is due\n{description}",
			vars:      Vars{"title": "write report", "description": "quarterly numbers"},
			wantTitle: "write report is due",
			wantBody:  "write report is due\nquarterly numbers",
		},
		{
			name:      "unknown placeholders stay in place",
			message:   "{title} at {nowhere}",
			vars:      Vars{"title": "write report"},
			wantTitle: "write report at {nowhere}",
			wantBody:  "write report at {nowhere}",
		},
		{
			name:      "empty vars",
			message:   "plain message",
			vars:      Vars{},
			wantTitle: "plain message",
			wantBody:  "plain message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(models.NotificationTemplate{ID: "x", Message: tt.message}, tt.vars)
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", got.Body, tt.wantBody)
			}
		})
	}
}

func TestRenderActions(t *testing.T) {
	tpl := models.NotificationTemplate{
		ID:      "task-deadline",
		Message: "due",
		Actions: []models.NotificationAction{
			{Action: models.ActionComplete, Label: "Done"},
			{Action: models.ActionPostpone, Label: "Postpone", Data: map[string]any{"minutes": 30}},
		},
	}

	got := Render(tpl, nil)
	if len(got.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(got.Actions))
	}
	if got.Actions[0].Action != "complete" || got.Actions[0].Label != "Done" {
		t.Errorf("unexpected first action: %+v", got.Actions[0])
	}
	if got.Actions[1].Data["minutes"] != 30 {
		t.Errorf("action data not carried through: %+v", got.Actions[1])
	}
}

func TestScheduleAllows(t *testing.T) {
	task := &models.Task{
		ID:       "t1",
		Title:    "write report",
		Datetime: noon.Add(time.Hour),
		Category: "work",
		Priority: models.PriorityHigh,
	}

	tests := []struct {
		name     string
		schedule *models.NotificationSchedule
		now      time.Time
		want     bool
	}{
		{
			name:     "nil schedule allows",
			schedule: nil,
			now:      noon,
			want:     true,
		},
		{
			name:     "disabled schedule allows",
			schedule: &models.NotificationSchedule{Enabled: false, Days: []models.DayOfWeek{models.DaySat}},
			now:      noon,
			want:     true,
		},
		{
			name:     "matching weekday allows",
			schedule: &models.NotificationSchedule{Enabled: true, Days: []models.DayOfWeek{models.DayWed}},
			now:      noon,
			want:     true,
		},
		{
			name:     "other weekday blocks",
			schedule: &models.NotificationSchedule{Enabled: true, Days: []models.DayOfWeek{models.DaySat}},
			now:      noon,
			want:     false,
		},
		{
			name:     "category mismatch blocks",
			schedule: &models.NotificationSchedule{Enabled: true, Categories: []string{"home"}},
			now:      noon,
			want:     false,
		},
		{
			name:     "priority mismatch blocks",
			schedule: &models.NotificationSchedule{Enabled: true, Priorities: []models.Priority{models.PriorityLow}},
			now:      noon,
			want:     false,
		},
		{
			name:     "time window blocks outside hours",
			schedule: &models.NotificationSchedule{Enabled: true, TimeRange: &models.TimeRange{Start: "09:00", End: "11:00"}},
			now:      noon,
			want:     false,
		},
		{
			name:     "time window allows inside hours",
			schedule: &models.NotificationSchedule{Enabled: true, TimeRange: &models.TimeRange{Start: "09:00", End: "17:00"}},
			now:      noon,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScheduleAllows(tt.schedule, task, tt.now); got != tt.want {
				t.Errorf("ScheduleAllows() = %v, want %v", got, tt.want)
			}
		})
	}
}
