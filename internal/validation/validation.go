// Package validation checks a state snapshot for coherence problems:
// dangling references, broken recurrence invariants, and preset bounds.
// Conflicts are reported, not fixed; the notification path degrades
// gracefully around them either way.
package validation

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictMissingTemplate      ConflictType = "missing_template"
	ConflictMissingCategory      ConflictType = "missing_category"
	ConflictMissingPreset        ConflictType = "missing_preset"
	ConflictInvalidRecurrence    ConflictType = "invalid_recurrence"
	ConflictInvalidPreset        ConflictType = "invalid_preset"
	ConflictInvalidRule          ConflictType = "invalid_rule"
	ConflictDuplicateCategoryOrd ConflictType = "duplicate_category_order"
)

// Conflict is one detected problem in the snapshot.
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // ids of the entities involved
}

// Result contains all detected conflicts.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Snapshot is the slice of state the validator inspects.
type Snapshot struct {
	Tasks      []models.Task
	Categories []models.Category
	Presets    []models.TimerPreset
	Sessions   []models.TimerSession
	Settings   models.Settings
}

// Validator validates state snapshots.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs every check against the snapshot.
func (v *Validator) Validate(snap Snapshot) Result {
	var result Result

	categoryIDs := make(map[string]bool, len(snap.Categories))
	orderSeen := make(map[int]string, len(snap.Categories))
	for _, category := range snap.Categories {
		categoryIDs[category.ID] = true
		if other, dup := orderSeen[category.Order]; dup {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateCategoryOrd,
				Description: fmt.Sprintf("categories %q and %q share sort order %d", other, category.Name, category.Order),
				Items:       []string{other, category.ID},
			})
		} else {
			orderSeen[category.Order] = category.ID
		}
	}

	presetIDs := make(map[string]bool, len(snap.Presets))
	for _, preset := range snap.Presets {
		presetIDs[preset.ID] = true
		if err := preset.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidPreset,
				Description: fmt.Sprintf("preset %q is invalid: %v", preset.Name, err),
				Items:       []string{preset.ID},
			})
		}
	}

	templateIDs := make(map[string]bool, len(snap.Settings.Notifications.Templates))
	for _, template := range snap.Settings.Notifications.Templates {
		templateIDs[template.ID] = true
	}

	for _, task := range snap.Tasks {
		if task.Category != "" && !categoryIDs[task.Category] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingCategory,
				Description: fmt.Sprintf("task %q references missing category %s", task.Title, task.Category),
				Items:       []string{task.ID, task.Category},
			})
		}
		if err := task.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidRecurrence,
				Description: fmt.Sprintf("task %q is invalid: %v", task.Title, err),
				Items:       []string{task.ID},
			})
		}
	}

	for _, session := range snap.Sessions {
		if !presetIDs[session.PresetID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingPreset,
				Description: fmt.Sprintf("session %s references missing preset %s", session.ID, session.PresetID),
				Items:       []string{session.ID, session.PresetID},
			})
		}
	}

	for _, rule := range snap.Settings.Notifications.Rules {
		if err := rule.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidRule,
				Description: fmt.Sprintf("rule %q is invalid: %v", rule.Name, err),
				Items:       []string{rule.ID},
			})
		}
		if rule.Actions.OverrideTemplate != "" && !templateIDs[rule.Actions.OverrideTemplate] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingTemplate,
				Description: fmt.Sprintf("rule %q overrides missing template %s", rule.Name, rule.Actions.OverrideTemplate),
				Items:       []string{rule.ID, rule.Actions.OverrideTemplate},
			})
		}
	}

	return result
}
