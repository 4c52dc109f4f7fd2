package validation

import (
	"testing"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func validSnapshot() Snapshot {
	return Snapshot{
		Tasks: []models.Task{{
			ID:       "t1",
			Title:    "write report",
			Datetime: time.Date(2024, 3, 6, 14, 0, 0, 0, time.UTC),
			Category: "c1",
			Priority: models.PriorityHigh,
		}},
		Categories: []models.Category{
			{ID: "c1", Name: "Work", Order: 0},
			{ID: "c2", Name: "Home", Order: 1},
		},
		Presets: []models.TimerPreset{{
			ID:                     "p1",
			Name:                   "classic",
			Duration:               25 * 60,
			BreakDuration:          5 * 60,
			LongBreakDuration:      15 * 60,
			SessionsUntilLongBreak: 4,
		}},
		Sessions: []models.TimerSession{{
			ID:        "s1",
			PresetID:  "p1",
			Type:      models.SessionWork,
			StartTime: time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
			Duration:  25 * 60,
		}},
		Settings: models.DefaultSettings(),
	}
}

func conflictTypes(r Result) map[ConflictType]int {
	types := make(map[ConflictType]int)
	for _, c := range r.Conflicts {
		types[c.Type]++
	}
	return types
}

func TestValidateClean(t *testing.T) {
	result := New().Validate(validSnapshot())
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %v", result.Conflicts)
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected report: %q", result.FormatReport())
	}
}

func TestValidateConflicts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   ConflictType
	}{
		{
			name: "task with missing category",
			mutate: func(s *Snapshot) {
				s.Tasks[0].Category = "nope"
			},
			want: ConflictMissingCategory,
		},
		{
			name: "recurring task without a pattern",
			mutate: func(s *Snapshot) {
				s.Tasks[0].IsRecurring = true
				s.Tasks[0].Recurring = nil
			},
			want: ConflictInvalidRecurrence,
		},
		{
			name: "preset with zero duration",
			mutate: func(s *Snapshot) {
				s.Presets[0].Duration = 0
			},
			want: ConflictInvalidPreset,
		},
		{
			name: "session with missing preset",
			mutate: func(s *Snapshot) {
				s.Sessions[0].PresetID = "nope"
			},
			want: ConflictMissingPreset,
		},
		{
			name: "duplicate category order",
			mutate: func(s *Snapshot) {
				s.Categories[1].Order = 0
			},
			want: ConflictDuplicateCategoryOrd,
		},
		{
			name: "rule with bad event type",
			mutate: func(s *Snapshot) {
				s.Settings.Notifications.Rules = []models.NotificationRule{{
					ID: "r1", Name: "broken", Enabled: true,
					Conditions: models.RuleConditions{Type: "meeting"},
				}}
			},
			want: ConflictInvalidRule,
		},
		{
			name: "rule overriding a missing template",
			mutate: func(s *Snapshot) {
				s.Settings.Notifications.Rules = []models.NotificationRule{{
					ID: "r1", Name: "dangling", Enabled: true,
					Conditions: models.RuleConditions{Type: models.EventTask},
					Actions:    models.RuleActions{OverrideTemplate: "nope"},
				}}
			},
			want: ConflictMissingTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := validSnapshot()
			tt.mutate(&snap)

			result := New().Validate(snap)
			if !result.HasConflicts() {
				t.Fatal("expected a conflict")
			}
			if conflictTypes(result)[tt.want] == 0 {
				t.Errorf("expected conflict type %q, got %v", tt.want, result.Conflicts)
			}
		})
	}
}
