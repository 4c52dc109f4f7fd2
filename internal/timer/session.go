// Package timer models the interval-timer session lifecycle: work, break,
// and long-break phases, pause/resume with interruption logging, and the
// completion counter that decides when a long break is due.
//
// All transition functions take now explicitly and mutate the session in
// place; nothing here touches the wall clock.
package timer

import (
	"time"

	"github.com/google/uuid"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

// Start creates a new work session from a preset. sessionCount carries the
// completed-work-phase count from the prior context (0 for a fresh cycle).
func Start(preset *models.TimerPreset, sessionCount int, now time.Time) models.TimerSession {
	return models.TimerSession{
		ID:            uuid.NewString(),
		PresetID:      preset.ID,
		StartTime:     now,
		Duration:      preset.Duration,
		Completed:     false,
		Type:          models.SessionWork,
		SessionCount:  sessionCount,
		Interruptions: []models.Interruption{},
	}
}

// Pause records the start of an interruption. The entry is appended open
// (EndTime == StartTime) and closed later by Resume. Pausing an already
// paused or completed session is a no-op.
func Pause(s *models.TimerSession, reason string, now time.Time) {
	if s.Completed || s.Paused() {
		return
	}
	s.Interruptions = append(s.Interruptions, models.Interruption{
		StartTime: now,
		EndTime:   now,
		Reason:    reason,
	})
}

// Resume closes the most recent open interruption. It is a no-op when there
// is no open interruption.
func Resume(s *models.TimerSession, now time.Time) {
	if len(s.Interruptions) == 0 {
		return
	}
	last := &s.Interruptions[len(s.Interruptions)-1]
	if !last.Open() {
		return
	}
	last.EndTime = now
}

// Complete marks the session done and advances the work-phase counter. When
// the incremented counter reaches the preset's threshold it resets to zero
// and the next phase should be a long break; Complete returns that decision.
// Completing an already-completed session is a safe no-op.
func Complete(s *models.TimerSession, preset *models.TimerPreset, now time.Time) (longBreakDue bool) {
	if s.Completed {
		return false
	}

	s.Completed = true
	s.EndTime = now

	next := s.SessionCount + 1
	if next >= preset.SessionsUntilLongBreak {
		s.SessionCount = 0
		return true
	}
	s.SessionCount = next
	return false
}

// StartBreak transitions the session into its break phase, restarting the
// clock with the preset's break duration.
func StartBreak(s *models.TimerSession, preset *models.TimerPreset, now time.Time) {
	s.Type = models.SessionBreak
	s.StartTime = now
	s.Duration = preset.BreakDuration
}

// StartLongBreak transitions into the long-break phase and resets the
// work-phase counter regardless of its prior value.
func StartLongBreak(s *models.TimerSession, preset *models.TimerPreset, now time.Time) {
	s.Type = models.SessionLongBreak
	s.StartTime = now
	s.Duration = preset.LongBreakDuration
	s.SessionCount = 0
}

// EndBreak transitions back to the work phase.
func EndBreak(s *models.TimerSession, now time.Time) {
	s.Type = models.SessionWork
	s.EndTime = now
}

// EndLongBreak transitions back to the work phase and forces the counter to
// zero again.
func EndLongBreak(s *models.TimerSession, now time.Time) {
	s.Type = models.SessionWork
	s.EndTime = now
	s.SessionCount = 0
}

// Remaining returns the seconds left on the session's current phase at now,
// excluding time spent in closed interruptions. Never negative.
func Remaining(s *models.TimerSession, now time.Time) int {
	elapsed := now.Sub(s.StartTime) - s.InterruptedFor()
	left := s.Duration - int(elapsed/time.Second)
	if left < 0 {
		return 0
	}
	return left
}
